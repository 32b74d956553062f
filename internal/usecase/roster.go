package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	uuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

// CreatePersonInput captures the payload for registering a roster member.
type CreatePersonInput struct {
	Name       string
	WarName    string
	NationalID string
	EmployeeID string
	Rank       string
	Quadro     string
	Phone      string
}

// UpdatePersonInput carries a partial update; nil fields are left unchanged.
type UpdatePersonInput struct {
	Name       *string
	WarName    *string
	NationalID *string
	EmployeeID *string
	Rank       *string
	Quadro     *string
	Phone      *string
	Active     *bool
}

// RosterService manages person records and the derived active roster.
type RosterService struct {
	people      port.PersonRepository
	assignments port.AssignmentRepository
	leaves      port.LeaveRepository
	events      port.EventPublisher
	logger      *zap.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(people port.PersonRepository, assignments port.AssignmentRepository, leaves port.LeaveRepository, events port.EventPublisher) *RosterService {
	return &RosterService{
		people:      people,
		assignments: assignments,
		leaves:      leaves,
		events:      events,
		logger:      zap.NewNop(),
	}
}

// WithLogger attaches a structured logger.
func (s *RosterService) WithLogger(logger *zap.Logger) *RosterService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// ListPeople returns the roster ordered by rank seniority then name. The
// sort is stable and total: people with unrecognized ranks come after every
// known rank instead of breaking the listing.
func (s *RosterService) ListPeople(ctx context.Context, activeOnly bool) ([]domain.Person, error) {
	people, err := s.people.List(ctx, port.PersonFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	sort.SliceStable(people, func(i, j int) bool {
		wi, wj := people[i].Rank.Weight(), people[j].Rank.Weight()
		if wi != wj {
			return wi < wj
		}
		return people[i].Name < people[j].Name
	})

	return people, nil
}

// GetPerson retrieves a single roster member.
func (s *RosterService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	person, err := s.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

// CreatePerson registers a new roster member. The name is required and the
// rank must belong to the hierarchy; both are rejected at this boundary
// rather than defaulting somewhere deeper.
func (s *RosterService) CreatePerson(ctx context.Context, input CreatePersonInput) (domain.Person, error) {
	var person domain.Person

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return person, fmt.Errorf("%w: name is required", ErrValidation)
	}

	rank, err := domain.ParseRank(input.Rank)
	if err != nil {
		return person, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	person = domain.Person{
		ID:         uuid.NewString(),
		Name:       name,
		WarName:    strings.TrimSpace(input.WarName),
		NationalID: strings.TrimSpace(input.NationalID),
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		Rank:       rank,
		Quadro:     strings.TrimSpace(input.Quadro),
		Phone:      strings.TrimSpace(input.Phone),
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.people.Create(ctx, person); err != nil {
		return domain.Person{}, fmt.Errorf("create person: %w", err)
	}

	if s.events != nil {
		event := domain.PersonRegisteredEvent{
			EventID:      uuid.NewString(),
			PersonID:     person.ID,
			Name:         person.Name,
			WarName:      person.WarName,
			Rank:         person.Rank,
			RegisteredAt: person.CreatedAt,
		}
		if err := s.events.PublishPersonRegistered(ctx, event); err != nil {
			s.logger.Warn("publish person registered event failed", zap.Error(err))
		}
	}

	return person, nil
}

// UpdatePerson applies a partial update to an existing member.
func (s *RosterService) UpdatePerson(ctx context.Context, id string, input UpdatePersonInput) (domain.Person, error) {
	existing, err := s.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Person{}, ErrPersonNotFound
		}
		return domain.Person{}, fmt.Errorf("lookup person: %w", err)
	}

	person := *existing

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domain.Person{}, fmt.Errorf("%w: name is required", ErrValidation)
		}
		person.Name = name
	}
	if input.WarName != nil {
		person.WarName = strings.TrimSpace(*input.WarName)
	}
	if input.NationalID != nil {
		person.NationalID = strings.TrimSpace(*input.NationalID)
	}
	if input.EmployeeID != nil {
		person.EmployeeID = strings.TrimSpace(*input.EmployeeID)
	}
	if input.Rank != nil {
		rank, err := domain.ParseRank(*input.Rank)
		if err != nil {
			return domain.Person{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		person.Rank = rank
	}
	if input.Quadro != nil {
		person.Quadro = strings.TrimSpace(*input.Quadro)
	}
	if input.Phone != nil {
		person.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Active != nil {
		person.Active = *input.Active
	}

	if err := s.people.Update(ctx, person); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Person{}, ErrPersonNotFound
		}
		return domain.Person{}, fmt.Errorf("update person: %w", err)
	}

	return person, nil
}

// DeletePerson removes a member from the roster. Deletion is refused while
// ledger or leave entries still reference the person, so history rows never
// silently lose their subject.
func (s *RosterService) DeletePerson(ctx context.Context, id string) error {
	if _, err := s.people.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return fmt.Errorf("lookup person: %w", err)
	}

	assignmentRefs, err := s.assignments.CountByPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("count assignment references: %w", err)
	}
	leaveRefs, err := s.leaves.CountByPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("count leave references: %w", err)
	}
	if assignmentRefs > 0 || leaveRefs > 0 {
		return ErrPersonReferenced
	}

	if err := s.people.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPersonNotFound
		}
		return fmt.Errorf("delete person: %w", err)
	}

	s.logger.Info("person deleted", zap.String("person_id", id))

	return nil
}
