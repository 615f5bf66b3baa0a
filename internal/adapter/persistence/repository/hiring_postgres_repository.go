package repository

import (
	"context"
	"errors"
	"strings"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var hiringColumns = []string{"id::text", "proposal_id", "hired_at"}

// HiringPostgresRepository persists Hiring entities in the hirings table.
//
// ux_hirings_proposal_id keeps one hiring per proposal.
type HiringPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IHiringRepository = (*HiringPostgresRepository)(nil)

func NewHiringPostgresRepository(db *pgxpool.Pool) *HiringPostgresRepository {
	return &HiringPostgresRepository{db: db}
}

func (r *HiringPostgresRepository) Create(ctx context.Context, h entities.Hiring) (entities.Hiring, error) {
	query, args, err := psql.
		Insert("hirings").
		Columns("id", "proposal_id", "hired_at").
		Values(h.ID, h.ProposalID, h.HiredAt).
		Suffix("RETURNING " + strings.Join(hiringColumns, ", ")).
		ToSql()
	if err != nil {
		return entities.Hiring{}, err
	}

	out, err := scanHiring(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
		}
		return entities.Hiring{}, err
	}
	return out, nil
}

func (r *HiringPostgresRepository) GetByID(ctx context.Context, id string) (entities.Hiring, error) {
	if !isUUID(id) {
		return entities.Hiring{}, nil
	}
	query, args, err := psql.
		Select(hiringColumns...).
		From("hirings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entities.Hiring{}, err
	}

	h, err := scanHiring(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Hiring{}, nil
	}
	return h, err
}

func (r *HiringPostgresRepository) List(ctx context.Context) ([]entities.Hiring, error) {
	query, args, err := psql.
		Select(hiringColumns...).
		From("hirings").
		OrderBy("hired_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Hiring, 0)
	for rows.Next() {
		h, err := scanHiring(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func scanHiring(row pgx.Row) (entities.Hiring, error) {
	var h entities.Hiring
	if err := row.Scan(&h.ID, &h.ProposalID, &h.HiredAt); err != nil {
		return entities.Hiring{}, err
	}
	h.HiredAt = h.HiredAt.UTC()
	return h, nil
}
