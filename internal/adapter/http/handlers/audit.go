package handlers

import (
	"context"
	"log"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"time"
)

// publishAudit is best-effort: a broker failure never fails the request.
func publishAudit(ctx context.Context, pub interfaces.IEventPublisher, eventType entities.AuditEventType, entityID string, payload any) {
	if pub == nil {
		return
	}
	event := entities.NewAuditEvent(eventType, entityID, payload, time.Now())
	if err := pub.Publish(ctx, event); err != nil {
		log.Printf("[audit][handler] publish failed type=%s entity_id=%s err=%v", eventType, entityID, err)
	}
}
