package usecase

import (
	"context"
	"fmt"
	"log"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"strings"
	"time"
)

// IHiringUseCase encapsulates the "hire an approved proposal" behavior.
//
// Requested behavior:
//   - Ask the proposal-service for the proposal status.
//   - Persist a hiring only when the proposal exists and is Approved.

type IHiringUseCase interface {
	Hire(ctx context.Context, proposalID string) (entities.Hiring, error)
	GetByID(ctx context.Context, id string) (entities.Hiring, error)
	List(ctx context.Context) ([]entities.Hiring, error)
}

type HiringUseCase struct {
	repo    interfaces.IHiringRepository
	gateway interfaces.IProposalGateway
}

var _ IHiringUseCase = (*HiringUseCase)(nil)

func NewHiringUseCase(repo interfaces.IHiringRepository, gateway interfaces.IProposalGateway) *HiringUseCase {
	return &HiringUseCase{repo: repo, gateway: gateway}
}

// Hire checks the remote status once and then writes the hiring.
//
// The status may change between the check and the write; the hiring is
// still created. Two concurrent hires of the same proposal are settled by
// the repository uniqueness constraint.
func (u *HiringUseCase) Hire(ctx context.Context, proposalID string) (entities.Hiring, error) {
	proposalID = strings.TrimSpace(proposalID)
	log.Printf("[hiring][usecase] hire start proposal_id=%q", proposalID)
	if proposalID == "" {
		return entities.Hiring{}, ErrInvalidProposalID
	}

	view, err := u.gateway.GetProposalStatus(ctx, proposalID)
	if err != nil {
		log.Printf("[hiring][usecase] proposal lookup failed proposal_id=%s err=%v", proposalID, err)
		return entities.Hiring{}, fmt.Errorf("%w: %w", ErrProposalLookupFailed, err)
	}
	if view.ID == "" {
		log.Printf("[hiring][usecase] proposal not found proposal_id=%s", proposalID)
		return entities.Hiring{}, ErrProposalNotFound
	}
	if !view.IsApproved() {
		log.Printf("[hiring][usecase] proposal not approved proposal_id=%s status=%s", proposalID, view.Status)
		return entities.Hiring{}, &ProposalNotApprovedError{ProposalID: proposalID, Status: view.Status}
	}

	h := entities.NewHiring(proposalID, time.Now())
	created, err := u.repo.Create(ctx, h)
	if err != nil {
		log.Printf("[hiring][usecase] hiring repository create failed proposal_id=%s hiring_id=%s err=%v", proposalID, h.ID, err)
		return entities.Hiring{}, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	log.Printf("[hiring][usecase] hire success proposal_id=%s hiring_id=%s", proposalID, created.ID)
	return created, nil
}

func (u *HiringUseCase) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Hiring{}, ErrInvalidHiringID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Hiring{}, err
	}
	if h.ID == "" {
		return entities.Hiring{}, ErrHiringNotFound
	}
	return h, nil
}

func (u *HiringUseCase) List(ctx context.Context) ([]entities.Hiring, error) {
	hirings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if hirings == nil {
		hirings = []entities.Hiring{}
	}
	return hirings, nil
}
