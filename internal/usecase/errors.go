package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProposalID    = errors.New("invalid proposal id")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrProposalNotApproved  = errors.New("proposal not approved")
	ErrProposalLookupFailed = errors.New("proposal lookup failed")
	ErrInvalidHiringID      = errors.New("invalid hiring id")
	ErrHiringNotFound       = errors.New("hiring not found")
	ErrPersistenceFailure   = errors.New("persistence failure")
)

// ProposalNotApprovedError carries the status that blocked a hiring.
type ProposalNotApprovedError struct {
	ProposalID string
	Status     string
}

func (e *ProposalNotApprovedError) Error() string {
	return fmt.Sprintf("proposal %s not approved: status=%q", e.ProposalID, e.Status)
}

func (e *ProposalNotApprovedError) Is(target error) bool {
	return target == ErrProposalNotApproved
}
