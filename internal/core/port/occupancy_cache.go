package port

import (
	"context"
	"time"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

// OccupancyCache caches the current occupants of each role. The cache is a
// read accelerator only; a miss falls through to the ledger.
type OccupancyCache interface {
	// Get returns the cached occupants and whether the role was cached at all.
	Get(ctx context.Context, role domain.Role) ([]domain.RoleAssignment, bool, error)
	Set(ctx context.Context, role domain.Role, entries []domain.RoleAssignment, ttl time.Duration) error
	Invalidate(ctx context.Context, role domain.Role) error
}
