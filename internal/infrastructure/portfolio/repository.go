package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Close()
}

// Holdings. The (user_id, instrument_id) primary key serializes concurrent
// creates on the same pair: the second insert fails with a unique violation
// instead of producing a duplicate row.

func (r *Repository) CreateHolding(ctx context.Context, holding *domain.Holding) error {
	if holding == nil {
		return errors.New("holding is nil")
	}
	if holding.CreatedAt.IsZero() {
		holding.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO holdings (user_id, instrument_id, quantity, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING user_id, instrument_id, quantity, created_at`

	row := r.pool.QueryRow(ctx, query,
		holding.UserID,
		holding.InstrumentID,
		holding.Quantity,
		holding.CreatedAt,
	)
	if err := scanHoldingInto(row, holding); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyHeld
		}
		return err
	}
	return nil
}

func (r *Repository) GetHolding(ctx context.Context, userID, instrumentID uuid.UUID) (*domain.Holding, error) {
	const query = `
		SELECT user_id, instrument_id, quantity, created_at
		FROM holdings
		WHERE user_id = $1 AND instrument_id = $2`

	row := r.pool.QueryRow(ctx, query, userID, instrumentID)
	holding := &domain.Holding{}
	if err := scanHoldingInto(row, holding); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHoldingNotFound
		}
		return nil, err
	}
	return holding, nil
}

func (r *Repository) ListHoldingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Holding, error) {
	const query = `
		SELECT user_id, instrument_id, quantity, created_at
		FROM holdings
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holdings := make([]domain.Holding, 0)
	for rows.Next() {
		var holding domain.Holding
		if err := scanHoldingInto(rows, &holding); err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}
	return holdings, rows.Err()
}

func (r *Repository) DeleteHolding(ctx context.Context, userID, instrumentID uuid.UUID) error {
	const query = `DELETE FROM holdings WHERE user_id = $1 AND instrument_id = $2`
	cmdTag, err := r.pool.Exec(ctx, query, userID, instrumentID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrHoldingNotFound
	}
	return nil
}

func scanHoldingInto(row pgx.Row, holding *domain.Holding) error {
	return row.Scan(
		&holding.UserID,
		&holding.InstrumentID,
		&holding.Quantity,
		&holding.CreatedAt,
	)
}
