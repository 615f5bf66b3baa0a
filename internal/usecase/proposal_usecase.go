package usecase

import (
	"context"
	"log"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IProposalUseCase exposes the proposal-service operations.
//
//   - POST /proposals => Create()
//   - GET /proposals => List()
//   - GET /proposals/{id} => GetByID()
//   - PATCH /proposals/{id}/status => SetStatus()

type IProposalUseCase interface {
	Create(ctx context.Context, clientName, clientDocument string, insuredValue decimal.Decimal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	SetStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

// Create does not validate the client fields nor the insured value.
func (u *ProposalUseCase) Create(ctx context.Context, clientName, clientDocument string, insuredValue decimal.Decimal) (entities.Proposal, error) {
	p := entities.NewProposal(clientName, clientDocument, insuredValue, time.Now())

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] create failed proposal_id=%s err=%v", p.ID, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	proposals, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if proposals == nil {
		proposals = []entities.Proposal{}
	}
	return proposals, nil
}

// SetStatus overwrites the status whatever the current one is.
// A missing proposal is reported without writing anything.
func (u *ProposalUseCase) SetStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		log.Printf("[proposal][usecase] set-status not-found proposal_id=%s", id)
		return entities.Proposal{}, ErrProposalNotFound
	}

	previous := p.Status
	if err := p.ChangeStatus(status); err != nil {
		return entities.Proposal{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, p.Status)
	if err != nil {
		log.Printf("[proposal][usecase] set-status failed proposal_id=%s err=%v", id, err)
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	log.Printf("[proposal][usecase] status changed proposal_id=%s from=%s to=%s", id, previous, updated.Status)
	return updated, nil
}
