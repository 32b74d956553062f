package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

var assignmentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "roster",
	Subsystem: "ledger",
	Name:      "assignments_total",
	Help:      "Total ledger assignments recorded, partitioned by role.",
}, []string{"role"})

// AssignInput captures a role assignment request.
type AssignInput struct {
	PersonID  string
	Role      domain.Role
	StartDate time.Time
}

// LedgerService maintains the role history ledger and enforces the
// single-seat succession rule.
type LedgerService struct {
	assignments port.AssignmentRepository
	people      port.PersonRepository
	events      port.EventPublisher
	cache       port.OccupancyCache
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(assignments port.AssignmentRepository, people port.PersonRepository, events port.EventPublisher) *LedgerService {
	return &LedgerService{
		assignments: assignments,
		people:      people,
		events:      events,
		logger:      zap.NewNop(),
	}
}

// WithOccupancyCache enables caching of current occupants.
func (s *LedgerService) WithOccupancyCache(cache port.OccupancyCache, ttl time.Duration) *LedgerService {
	s.cache = cache
	if ttl <= 0 {
		ttl = time.Minute
	}
	s.cacheTTL = ttl
	return s
}

// WithLogger attaches a structured logger.
func (s *LedgerService) WithLogger(logger *zap.Logger) *LedgerService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// CurrentOccupants returns the open entries for a role, most recent start
// first. For single-seat roles more than one result means an earlier writer
// violated the seat invariant; callers get the full set and should prefer
// the first entry rather than fail.
func (s *LedgerService) CurrentOccupants(ctx context.Context, role domain.Role) ([]domain.RoleAssignment, error) {
	if s.cache != nil {
		entries, hit, err := s.cache.Get(ctx, role)
		if err != nil {
			s.logger.Warn("occupancy cache read failed", zap.String("role", string(role)), zap.Error(err))
		} else if hit {
			return entries, nil
		}
	}

	entries, err := s.assignments.ListOpenByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list open assignments: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, role, entries, s.cacheTTL); err != nil {
			s.logger.Warn("occupancy cache write failed", zap.String("role", string(role)), zap.Error(err))
		}
	}

	return entries, nil
}

// FullHistory returns ledger entries ordered by start date descending,
// optionally filtered by role.
func (s *LedgerService) FullHistory(ctx context.Context, role *domain.Role) ([]domain.RoleAssignment, error) {
	entries, err := s.assignments.ListHistory(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list assignment history: %w", err)
	}
	return entries, nil
}

// CloseOpenEntry terminates the current occupancy of a role. Every open
// entry is closed, not only the most recent, so duplicate open entries are
// repaired on the way out. Returns the number of entries closed; zero is
// not an error.
func (s *LedgerService) CloseOpenEntry(ctx context.Context, role domain.Role, endDate time.Time) (int, error) {
	closed, err := s.assignments.CloseOpen(ctx, role, endDate)
	if err != nil {
		return 0, fmt.Errorf("close open assignments: %w", err)
	}

	s.invalidateOccupancy(ctx, role)

	return len(closed), nil
}

// Assign records a person taking a role starting at the given date.
//
// For single-seat roles the previous occupant's entry is closed with the new
// start date — zero gap, zero overlap — and both steps run in one store
// transaction. Multi-seat roles are a pure insert and never touch other
// entries. Assigning a person to a role they already hold produces a second
// open entry; the ledger does not deduplicate by person.
func (s *LedgerService) Assign(ctx context.Context, input AssignInput) (domain.RoleAssignment, error) {
	var entry domain.RoleAssignment

	if input.PersonID == "" {
		return entry, fmt.Errorf("%w: person id is required", ErrValidation)
	}
	if input.StartDate.IsZero() {
		return entry, fmt.Errorf("%w: start date is required", ErrValidation)
	}

	person, err := s.people.GetByID(ctx, input.PersonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entry, ErrPersonNotFound
		}
		return entry, fmt.Errorf("lookup person: %w", err)
	}
	if !person.Active {
		return entry, ErrPersonInactive
	}

	entry = domain.RoleAssignment{
		ID:         uuid.NewString(),
		PersonID:   person.ID,
		Role:       input.Role,
		StartDate:  input.StartDate,
		PersonName: person.Name,
		PersonRank: person.Rank,
	}

	var closedIDs []string
	if input.Role.SingleSeat() {
		closedIDs, err = s.assignments.AssignWithSuccession(ctx, entry)
		if err != nil {
			return domain.RoleAssignment{}, fmt.Errorf("assign with succession: %w", err)
		}
	} else {
		if err := s.assignments.Insert(ctx, entry); err != nil {
			return domain.RoleAssignment{}, fmt.Errorf("insert assignment: %w", err)
		}
	}

	s.invalidateOccupancy(ctx, input.Role)
	assignmentsRecorded.WithLabelValues(string(input.Role)).Inc()

	if s.events != nil {
		event := domain.RoleAssignedEvent{
			EventID:        uuid.NewString(),
			AssignmentID:   entry.ID,
			PersonID:       entry.PersonID,
			Role:           entry.Role,
			StartDate:      entry.StartDate,
			SingleSeat:     input.Role.SingleSeat(),
			ClosedEntryIDs: closedIDs,
		}
		if err := s.events.PublishRoleAssigned(ctx, event); err != nil {
			s.logger.Warn("publish role assigned event failed", zap.Error(err))
		}
	}

	s.logger.Info("role assigned",
		zap.String("person_id", entry.PersonID),
		zap.String("role", string(entry.Role)),
		zap.Int("entries_closed", len(closedIDs)),
	)

	return entry, nil
}

func (s *LedgerService) invalidateOccupancy(ctx context.Context, role domain.Role) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, role); err != nil {
		s.logger.Warn("occupancy cache invalidation failed", zap.String("role", string(role)), zap.Error(err))
	}
}
