package response

import (
	"seguros_xpto/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID             string          `json:"id"`
	ClientName     string          `json:"client_name"`
	ClientDocument string          `json:"client_document"`
	InsuredValue   decimal.Decimal `json:"insured_value" swaggertype:"string" example:"100.00"`
	CreatedAt      time.Time       `json:"created_at"`
	Status         string          `json:"status" example:"UnderReview"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		ClientName:     p.ClientName,
		ClientDocument: p.ClientDocument,
		InsuredValue:   p.InsuredValue,
		CreatedAt:      p.CreatedAt,
		Status:         string(p.Status),
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
