package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var proposalColumns = []string{
	"id::text", "client_name", "client_document", "insured_value::text", "created_at", "status",
}

// ProposalPostgresRepository persists Proposal entities in the proposals table.
type ProposalPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IProposalRepository = (*ProposalPostgresRepository)(nil)

func NewProposalPostgresRepository(db *pgxpool.Pool) *ProposalPostgresRepository {
	return &ProposalPostgresRepository{db: db}
}

func (r *ProposalPostgresRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	query, args, err := psql.
		Insert("proposals").
		Columns("id", "client_name", "client_document", "insured_value", "created_at", "status").
		Values(p.ID, p.ClientName, p.ClientDocument, p.InsuredValue.String(), p.CreatedAt, string(p.Status)).
		Suffix("RETURNING " + strings.Join(proposalColumns, ", ")).
		ToSql()
	if err != nil {
		return entities.Proposal{}, err
	}
	return scanProposal(r.db.QueryRow(ctx, query, args...))
}

func (r *ProposalPostgresRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	if !isUUID(id) {
		return entities.Proposal{}, nil
	}
	query, args, err := psql.
		Select(proposalColumns...).
		From("proposals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entities.Proposal{}, err
	}

	p, err := scanProposal(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Proposal{}, nil
	}
	return p, err
}

func (r *ProposalPostgresRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	query, args, err := psql.
		Select(proposalColumns...).
		From("proposals").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Proposal, 0)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *ProposalPostgresRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	if !isUUID(id) {
		return entities.Proposal{}, nil
	}
	query, args, err := psql.
		Update("proposals").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(proposalColumns, ", ")).
		ToSql()
	if err != nil {
		return entities.Proposal{}, err
	}

	p, err := scanProposal(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Proposal{}, nil
	}
	return p, err
}

func scanProposal(row pgx.Row) (entities.Proposal, error) {
	var (
		p      entities.Proposal
		value  string
		status string
	)
	if err := row.Scan(&p.ID, &p.ClientName, &p.ClientDocument, &value, &p.CreatedAt, &status); err != nil {
		return entities.Proposal{}, err
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("insured_value %q: %w", value, err)
	}
	p.InsuredValue = amount
	p.Status = entities.ProposalStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
