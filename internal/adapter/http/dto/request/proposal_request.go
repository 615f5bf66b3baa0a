package request

import (
	"errors"
	"seguros_xpto/internal/domain/entities"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingProposalStatus = errors.New("missing new_status")
)

// ProposalCreateRequest is the payload of POST /proposals.
//
// insured_value accepts a JSON number or a decimal string. No field is
// validated beyond being well-formed JSON.
type ProposalCreateRequest struct {
	ClientName     string          `json:"client_name"`
	ClientDocument string          `json:"client_document"`
	InsuredValue   decimal.Decimal `json:"insured_value"`
}

// ProposalStatusRequest is the payload of PATCH /proposals/{id}/status.
//
// novoStatus is the field name used by older clients.
type ProposalStatusRequest struct {
	NewStatus       string `json:"new_status"`
	LegacyNewStatus string `json:"novoStatus"`
}

func (r ProposalStatusRequest) ResolveStatus() (entities.ProposalStatus, error) {
	raw := strings.TrimSpace(r.NewStatus)
	if raw == "" {
		raw = strings.TrimSpace(r.LegacyNewStatus)
	}
	if raw == "" {
		return "", ErrMissingProposalStatus
	}
	return entities.ParseProposalStatus(raw)
}
