package interfaces

import (
	"context"
	"seguros_xpto/internal/domain/entities"
)

// IProposalGateway abstracts the proposal-service as seen by the hiring-service.
//
// Outcomes:
//   - found: view with non-empty ID, status copied verbatim, nil error
//   - absent: zero view (empty ID), nil error
//   - transport failure: non-nil error, never reported as absent
type IProposalGateway interface {
	GetProposalStatus(ctx context.Context, proposalID string) (entities.ProposalStatusView, error)
}
