package request

import "strings"

// HiringCreateRequest is the payload of POST /hiring.
type HiringCreateRequest struct {
	ProposalID       string `json:"proposal_id"`
	LegacyProposalID string `json:"propostaId"`
}

func (r HiringCreateRequest) ResolveProposalID() string {
	if v := strings.TrimSpace(r.ProposalID); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.LegacyProposalID); v != "" {
		return v
	}
	return ""
}
