package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	uuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/repository"
)

// RecordLeaveInput captures a leave register entry.
type RecordLeaveInput struct {
	PersonID  string
	Type      domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Note      string
}

// LeaveService manages the append-only leave register.
type LeaveService struct {
	leaves port.LeaveRepository
	people port.PersonRepository
	events port.EventPublisher
	logger *zap.Logger
}

// NewLeaveService constructs a LeaveService.
func NewLeaveService(leaves port.LeaveRepository, people port.PersonRepository, events port.EventPublisher) *LeaveService {
	return &LeaveService{
		leaves: leaves,
		people: people,
		events: events,
		logger: zap.NewNop(),
	}
}

// WithLogger attaches a structured logger.
func (s *LeaveService) WithLogger(logger *zap.Logger) *LeaveService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Record appends a leave period for an active roster member. An end date
// before the start date is rejected.
func (s *LeaveService) Record(ctx context.Context, input RecordLeaveInput) (domain.LeaveRecord, error) {
	var record domain.LeaveRecord

	if input.PersonID == "" {
		return record, fmt.Errorf("%w: person id is required", ErrValidation)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return record, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return record, fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}

	person, err := s.people.GetByID(ctx, input.PersonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return record, ErrPersonNotFound
		}
		return record, fmt.Errorf("lookup person: %w", err)
	}
	if !person.Active {
		return record, ErrPersonInactive
	}

	record = domain.LeaveRecord{
		ID:         uuid.NewString(),
		PersonID:   person.ID,
		Type:       input.Type,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Note:       strings.TrimSpace(input.Note),
		PersonName: person.Name,
	}

	if err := s.leaves.Insert(ctx, record); err != nil {
		return domain.LeaveRecord{}, fmt.Errorf("insert leave: %w", err)
	}

	if s.events != nil {
		event := domain.LeaveRecordedEvent{
			EventID:   uuid.NewString(),
			LeaveID:   record.ID,
			PersonID:  record.PersonID,
			Type:      record.Type,
			StartDate: record.StartDate,
			EndDate:   record.EndDate,
		}
		if err := s.events.PublishLeaveRecorded(ctx, event); err != nil {
			s.logger.Warn("publish leave recorded event failed", zap.Error(err))
		}
	}

	return record, nil
}

// List returns the register ordered by start date descending.
func (s *LeaveService) List(ctx context.Context) ([]domain.LeaveRecord, error) {
	records, err := s.leaves.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	return records, nil
}
