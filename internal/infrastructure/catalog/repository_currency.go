package catalog

import (
	"context"
	"errors"

	domain "main/internal/domain/entity/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateCurrency(ctx context.Context, currency *domain.Currency) error {
	if currency == nil {
		return errors.New("currency is nil")
	}
	if currency.ID == uuid.Nil {
		currency.ID = uuid.New()
	}

	const query = `
		INSERT INTO currencies (id, name, country_id)
		VALUES ($1,$2,$3)
		RETURNING id, name, country_id`

	row := r.pool.QueryRow(ctx, query, currency.ID, currency.Name, currency.CountryID)
	return row.Scan(&currency.ID, &currency.Name, &currency.CountryID)
}

func (r *Repository) GetCurrency(ctx context.Context, id uuid.UUID) (*domain.Currency, error) {
	const query = `SELECT id, name, country_id FROM currencies WHERE id = $1`

	currency := &domain.Currency{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&currency.ID, &currency.Name, &currency.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCurrencyNotFound
		}
		return nil, err
	}
	return currency, nil
}

func (r *Repository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	const query = `SELECT id, name, country_id FROM currencies ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0)
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(&currency.ID, &currency.Name, &currency.CountryID); err != nil {
			return nil, err
		}
		currencies = append(currencies, currency)
	}
	return currencies, rows.Err()
}

func (r *Repository) UpdateCurrency(ctx context.Context, currency *domain.Currency) error {
	if currency == nil {
		return errors.New("currency is nil")
	}
	if currency.ID == uuid.Nil {
		return errors.New("currency ID is required")
	}

	const query = `
		UPDATE currencies
		SET name=$2,
			country_id=$3
		WHERE id=$1
		RETURNING id, name, country_id`

	err := r.pool.QueryRow(ctx, query, currency.ID, currency.Name, currency.CountryID).
		Scan(&currency.ID, &currency.Name, &currency.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCurrencyNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteCurrency(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM currencies WHERE id=$1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrCurrencyNotFound
	}
	return nil
}
