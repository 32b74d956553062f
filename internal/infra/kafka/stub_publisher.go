package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
)

// StubPublisher logs events instead of sending them to Kafka. Useful for development environments.
type StubPublisher struct {
	logger *zap.Logger
}

// NewStubPublisher constructs a development-friendly event publisher.
func NewStubPublisher(logger *zap.Logger) *StubPublisher {
	return &StubPublisher{logger: logger}
}

func (p *StubPublisher) logEvent(eventType, personID string, at time.Time, payload any) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	p.logger.Info("Stub event published",
		zap.String("event_type", eventType),
		zap.String("person_id", personID),
		zap.Time("timestamp", at.UTC()),
		zap.Any("payload", payload),
	)
}

// PublishPersonRegistered logs roster.person.registered events.
func (p *StubPublisher) PublishPersonRegistered(_ context.Context, event domain.PersonRegisteredEvent) error {
	payload := map[string]any{
		"person_id":     event.PersonID,
		"name":          event.Name,
		"war_name":      event.WarName,
		"rank":          event.Rank,
		"registered_at": event.RegisteredAt,
	}
	p.logEvent("roster.person.registered", event.PersonID, event.RegisteredAt, payload)
	return nil
}

// PublishRoleAssigned logs roster.role.assigned events.
func (p *StubPublisher) PublishRoleAssigned(_ context.Context, event domain.RoleAssignedEvent) error {
	payload := map[string]any{
		"assignment_id":    event.AssignmentID,
		"person_id":        event.PersonID,
		"role":             event.Role,
		"start_date":       event.StartDate,
		"single_seat":      event.SingleSeat,
		"closed_entry_ids": event.ClosedEntryIDs,
	}
	p.logEvent("roster.role.assigned", event.PersonID, event.StartDate, payload)
	return nil
}

// PublishLeaveRecorded logs roster.leave.recorded events.
func (p *StubPublisher) PublishLeaveRecorded(_ context.Context, event domain.LeaveRecordedEvent) error {
	payload := map[string]any{
		"leave_id":   event.LeaveID,
		"person_id":  event.PersonID,
		"type":       event.Type,
		"start_date": event.StartDate,
		"end_date":   event.EndDate,
	}
	p.logEvent("roster.leave.recorded", event.PersonID, event.StartDate, payload)
	return nil
}

var _ port.EventPublisher = (*StubPublisher)(nil)
