package entities

import (
	"time"

	"github.com/google/uuid"
)

// Hiring (contratação) records that an approved proposal became a contract.
//
// Storage model (Postgres):
//   - table hirings, PK: id
//   - unique index on proposal_id (one hiring per proposal)
//
// Storage model (DynamoDB):
//   - PK: proposal_id (one hiring per proposal)
//   - GSI1 (id-index): id
//
// The approval check happens once, at creation. Later status changes of the
// proposal do not touch existing hirings.
type Hiring struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposal_id"`
	HiredAt    time.Time `json:"hired_at"`
}

func NewHiring(proposalID string, now time.Time) Hiring {
	return Hiring{
		ID:         uuid.NewString(),
		ProposalID: proposalID,
		HiredAt:    now.UTC(),
	}
}
