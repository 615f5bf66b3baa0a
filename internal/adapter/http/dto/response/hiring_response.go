package response

import (
	"seguros_xpto/internal/domain/entities"
	"time"
)

type HiringResponse struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposal_id"`
	HiredAt    time.Time `json:"hired_at"`
}

func FromHiring(h entities.Hiring) HiringResponse {
	return HiringResponse{
		ID:         h.ID,
		ProposalID: h.ProposalID,
		HiredAt:    h.HiredAt,
	}
}

func FromHirings(hs []entities.Hiring) []HiringResponse {
	out := make([]HiringResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHiring(h))
	}
	return out
}
