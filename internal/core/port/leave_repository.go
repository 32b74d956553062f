package port

import (
	"context"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

// LeaveRepository persists the append-only leave register.
type LeaveRepository interface {
	Insert(ctx context.Context, record domain.LeaveRecord) error
	List(ctx context.Context) ([]domain.LeaveRecord, error)
	CountByPerson(ctx context.Context, personID string) (int, error)
}
