package port

import (
	"context"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/domain"
)

// EventPublisher publishes roster domain events to the message bus.
type EventPublisher interface {
	PublishPersonRegistered(ctx context.Context, event domain.PersonRegisteredEvent) error
	PublishRoleAssigned(ctx context.Context, event domain.RoleAssignedEvent) error
	PublishLeaveRecorded(ctx context.Context, event domain.LeaveRecordedEvent) error
}
