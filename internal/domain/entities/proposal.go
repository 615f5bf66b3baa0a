package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidProposalStatus = errors.New("invalid proposal status")

// ProposalStatus represents the lifecycle of an insurance proposal (proposta).
//
// Domain notes:
//   - A proposal always starts UnderReview.
//   - Any status may overwrite any other one; there is no transition graph.
//   - Persisted by its textual name.

type ProposalStatus string

const (
	ProposalStatusUnderReview ProposalStatus = "UnderReview"
	ProposalStatusApproved    ProposalStatus = "Approved"
	ProposalStatusRejected    ProposalStatus = "Rejected"
)

var proposalStatusAliases = map[string]ProposalStatus{
	"underreview": ProposalStatusUnderReview,
	"emanalise":   ProposalStatusUnderReview,
	"approved":    ProposalStatusApproved,
	"aprovada":    ProposalStatusApproved,
	"rejected":    ProposalStatusRejected,
	"rejeitada":   ProposalStatusRejected,
}

// ParseProposalStatus accepts the canonical names and the legacy ones
// (EmAnalise, Aprovada, Rejeitada), case-insensitively.
func ParseProposalStatus(raw string) (ProposalStatus, error) {
	if s, ok := proposalStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s, nil
	}
	return "", ErrInvalidProposalStatus
}

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusUnderReview, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

func (s ProposalStatus) String() string {
	return string(s)
}

// Proposal is the insurance quote persisted by the proposal-service.
//
// Storage model (Postgres):
//   - table proposals, PK: id
//   - insured_value numeric(18,2), status text
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only Status is mutable, through ChangeStatus.
type Proposal struct {
	ID             string          `json:"id"`
	ClientName     string          `json:"client_name"`
	ClientDocument string          `json:"client_document"`
	InsuredValue   decimal.Decimal `json:"insured_value"`
	CreatedAt      time.Time       `json:"created_at"`
	Status         ProposalStatus  `json:"status"`
}

func NewProposal(clientName, clientDocument string, insuredValue decimal.Decimal, now time.Time) Proposal {
	return Proposal{
		ID:             uuid.NewString(),
		ClientName:     clientName,
		ClientDocument: clientDocument,
		InsuredValue:   insuredValue,
		CreatedAt:      now.UTC(),
		Status:         ProposalStatusUnderReview,
	}
}

func (p *Proposal) ChangeStatus(status ProposalStatus) error {
	if !status.IsValid() {
		return ErrInvalidProposalStatus
	}
	p.Status = status
	return nil
}

// ProposalStatusView is what the hiring-service knows about a remote proposal.
//
// Status is kept exactly as the proposal-service returned it. An empty ID
// means the proposal does not exist.
type ProposalStatusView struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (v ProposalStatusView) IsApproved() bool {
	return v.Status == string(ProposalStatusApproved)
}
