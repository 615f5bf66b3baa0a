package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IProposalRepository abstracts persistence for Proposal.
//
// The proposal-service must be able to:
//   - create a proposal (always UnderReview)
//   - fetch one proposal by id / list every proposal
//   - overwrite the status of an existing proposal
//
// Lookups return a zero Proposal (empty ID) when nothing matches.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
