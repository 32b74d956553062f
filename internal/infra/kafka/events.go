package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/infra/config"
)

const schemaVersion = "1.0"

// EventPublisher implements port.EventPublisher using Kafka.
type EventPublisher struct {
	producer *Producer
	logger   *zap.Logger
	appCfg   config.AppSettings
}

// NewEventPublisher constructs a Kafka-backed event publisher.
func NewEventPublisher(producer *Producer, appCfg config.AppSettings, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{producer: producer, appCfg: appCfg, logger: logger}
}

type envelopeMetadata map[string]string

type eventEnvelope struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	PersonID  string           `json:"person_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Version   string           `json:"version"`
	Payload   any              `json:"payload"`
	Metadata  envelopeMetadata `json:"metadata,omitempty"`
}

func (p *EventPublisher) publish(ctx context.Context, eventID, eventType, personID string, ts time.Time, payload any) error {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	id := eventID
	if id == "" {
		id = uuid.NewString()
	}

	metadata := envelopeMetadata{
		"service":     p.appCfg.Name,
		"environment": p.appCfg.Env,
	}

	envelope := eventEnvelope{
		EventID:   id,
		EventType: eventType,
		PersonID:  personID,
		Timestamp: ts.UTC(),
		Version:   schemaVersion,
		Payload:   payload,
		Metadata:  metadata,
	}

	bytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.producer.TopicName(eventType),
		Value: sarama.ByteEncoder(bytes),
	}

	select {
	case p.producer.Producer().Input() <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishPersonRegistered publishes roster.person.registered events.
func (p *EventPublisher) PublishPersonRegistered(ctx context.Context, event domain.PersonRegisteredEvent) error {
	payload := struct {
		PersonID     string    `json:"person_id"`
		Name         string    `json:"name"`
		WarName      string    `json:"war_name,omitempty"`
		Rank         string    `json:"rank"`
		RegisteredAt time.Time `json:"registered_at"`
	}{
		PersonID:     event.PersonID,
		Name:         event.Name,
		WarName:      event.WarName,
		Rank:         string(event.Rank),
		RegisteredAt: event.RegisteredAt.UTC(),
	}

	return p.publish(ctx, event.EventID, "roster.person.registered", event.PersonID, event.RegisteredAt, payload)
}

// PublishRoleAssigned publishes roster.role.assigned events.
func (p *EventPublisher) PublishRoleAssigned(ctx context.Context, event domain.RoleAssignedEvent) error {
	payload := struct {
		AssignmentID   string    `json:"assignment_id"`
		PersonID       string    `json:"person_id"`
		Role           string    `json:"role"`
		StartDate      time.Time `json:"start_date"`
		SingleSeat     bool      `json:"single_seat"`
		ClosedEntryIDs []string  `json:"closed_entry_ids,omitempty"`
	}{
		AssignmentID:   event.AssignmentID,
		PersonID:       event.PersonID,
		Role:           string(event.Role),
		StartDate:      event.StartDate.UTC(),
		SingleSeat:     event.SingleSeat,
		ClosedEntryIDs: event.ClosedEntryIDs,
	}

	return p.publish(ctx, event.EventID, "roster.role.assigned", event.PersonID, event.StartDate, payload)
}

// PublishLeaveRecorded publishes roster.leave.recorded events.
func (p *EventPublisher) PublishLeaveRecorded(ctx context.Context, event domain.LeaveRecordedEvent) error {
	payload := struct {
		LeaveID   string    `json:"leave_id"`
		PersonID  string    `json:"person_id"`
		Type      string    `json:"type"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}{
		LeaveID:   event.LeaveID,
		PersonID:  event.PersonID,
		Type:      string(event.Type),
		StartDate: event.StartDate.UTC(),
		EndDate:   event.EndDate.UTC(),
	}

	return p.publish(ctx, event.EventID, "roster.leave.recorded", event.PersonID, event.StartDate, payload)
}

var _ port.EventPublisher = (*EventPublisher)(nil)
