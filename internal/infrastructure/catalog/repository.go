package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "main/internal/domain/entity/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
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

// Instruments

// price_usd is a NUMERIC column; it travels as text so decimal precision
// survives the round trip.
const instrumentColumns = `id, name, price_usd::text, created_at, updated_at`

func (r *Repository) CreateInstrument(ctx context.Context, instrument *domain.Instrument) error {
	if instrument == nil {
		return errors.New("instrument is nil")
	}
	if instrument.ID == uuid.Nil {
		instrument.ID = uuid.New()
	}
	now := time.Now().UTC()
	if instrument.CreatedAt.IsZero() {
		instrument.CreatedAt = now
	}
	instrument.UpdatedAt = now

	const query = `
		INSERT INTO instruments (id, name, price_usd, created_at, updated_at)
		VALUES ($1,$2,$3::numeric,$4,$5)
		RETURNING ` + instrumentColumns

	row := r.pool.QueryRow(ctx, query,
		instrument.ID,
		instrument.Name,
		instrument.PriceUSD.String(),
		instrument.CreatedAt,
		instrument.UpdatedAt,
	)
	return scanInstrumentInto(row, instrument)
}

func (r *Repository) GetInstrument(ctx context.Context, id uuid.UUID) (*domain.Instrument, error) {
	const query = `SELECT ` + instrumentColumns + ` FROM instruments WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	instrument := &domain.Instrument{}
	if err := scanInstrumentInto(row, instrument); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInstrumentNotFound
		}
		return nil, err
	}
	return instrument, nil
}

func (r *Repository) ListInstruments(ctx context.Context) ([]domain.Instrument, error) {
	const query = `SELECT ` + instrumentColumns + ` FROM instruments ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instruments := make([]domain.Instrument, 0)
	for rows.Next() {
		var instrument domain.Instrument
		if err := scanInstrumentInto(rows, &instrument); err != nil {
			return nil, err
		}
		instruments = append(instruments, instrument)
	}
	return instruments, rows.Err()
}

func (r *Repository) UpdateInstrument(ctx context.Context, instrument *domain.Instrument) error {
	if instrument == nil {
		return errors.New("instrument is nil")
	}
	if instrument.ID == uuid.Nil {
		return errors.New("instrument ID is required")
	}
	instrument.UpdatedAt = time.Now().UTC()

	const query = `
		UPDATE instruments
		SET name=$2,
			price_usd=$3::numeric,
			updated_at=$4
		WHERE id=$1
		RETURNING ` + instrumentColumns

	row := r.pool.QueryRow(ctx, query,
		instrument.ID,
		instrument.Name,
		instrument.PriceUSD.String(),
		instrument.UpdatedAt,
	)
	if err := scanInstrumentInto(row, instrument); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInstrumentNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteInstrument(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM instruments WHERE id=$1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrInstrumentNotFound
	}
	return nil
}

func scanInstrumentInto(row pgx.Row, instrument *domain.Instrument) error {
	var price string
	if err := row.Scan(
		&instrument.ID,
		&instrument.Name,
		&price,
		&instrument.CreatedAt,
		&instrument.UpdatedAt,
	); err != nil {
		return err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("parse price: %w", err)
	}
	instrument.PriceUSD = parsed
	return nil
}
