package entities

import (
	"encoding/json"
	"time"
)

type AuditEventType string

const (
	AuditEventProposalCreated       AuditEventType = "proposal.created"
	AuditEventProposalStatusChanged AuditEventType = "proposal.status_changed"
	AuditEventHiringCreated         AuditEventType = "hiring.created"
)

// AuditEvent is a best-effort notification of a completed write.
type AuditEvent struct {
	Type       AuditEventType  `json:"type"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewAuditEvent(eventType AuditEventType, entityID string, payload any, now time.Time) AuditEvent {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = nil
	}
	return AuditEvent{
		Type:       eventType,
		EntityID:   entityID,
		Payload:    raw,
		OccurredAt: now.UTC(),
	}
}
