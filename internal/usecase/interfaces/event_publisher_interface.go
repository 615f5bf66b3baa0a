package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IEventPublisher publishes audit events (e.g. RabbitMQ).
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.AuditEvent) error
}
