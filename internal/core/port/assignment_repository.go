package port

import (
	"context"
	"time"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

// AssignmentRepository persists the role history ledger.
type AssignmentRepository interface {
	// Insert appends a ledger entry without touching existing ones.
	Insert(ctx context.Context, entry domain.RoleAssignment) error

	// AssignWithSuccession closes every open entry for the entry's role and
	// inserts the new one in a single transaction, returning the IDs of the
	// entries it closed. The closing date is the new entry's start date, so
	// the outgoing tenure ends exactly when the incoming one begins.
	AssignWithSuccession(ctx context.Context, entry domain.RoleAssignment) ([]string, error)

	// CloseOpen sets the end date on every open entry for the role and
	// returns the affected IDs. Closing all of them, not just the newest,
	// repairs any duplicate open entries left by earlier writers.
	CloseOpen(ctx context.Context, role domain.Role, endDate time.Time) ([]string, error)

	// ListOpenByRole returns open entries for the role, most recent start
	// first, with the person name and rank joined in.
	ListOpenByRole(ctx context.Context, role domain.Role) ([]domain.RoleAssignment, error)

	// ListHistory returns entries ordered by start date descending,
	// optionally filtered by role.
	ListHistory(ctx context.Context, role *domain.Role) ([]domain.RoleAssignment, error)

	// CountByPerson reports how many ledger entries reference the person.
	CountByPerson(ctx context.Context, personID string) (int, error)
}
