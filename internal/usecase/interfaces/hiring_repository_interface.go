package interfaces

import (
	"context"
	"errors"
	"seguros_xpto/internal/domain/entities"
)

// ErrHiringAlreadyExists is returned by Create when the proposal already has a hiring.
var ErrHiringAlreadyExists = errors.New("hiring already exists for proposal")

// IHiringRepository abstracts persistence for Hiring.
//
// Create must enforce at most one hiring per proposal_id; concurrent hires of
// the same proposal race on that constraint and the loser gets
// ErrHiringAlreadyExists.

type IHiringRepository interface {
	Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error)
	GetByID(ctx context.Context, id string) (entities.Hiring, error)
	List(ctx context.Context) ([]entities.Hiring, error)
}
