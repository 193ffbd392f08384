package catalog

import (
	"context"
	"errors"
	"fmt"

	domain "main/internal/domain/entity/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Countries persist the allow-list as text[]; identifiers are normalized to
// uuid on the way in and out so the permission gate never compares raw
// strings against uuids.

func (r *Repository) CreateCountry(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return errors.New("country is nil")
	}
	if country.ID == uuid.Nil {
		country.ID = uuid.New()
	}

	const query = `
		INSERT INTO countries (id, name, permitted_instruments)
		VALUES ($1,$2,$3)
		RETURNING id, name, permitted_instruments`

	row := r.pool.QueryRow(ctx, query, country.ID, country.Name, idsToStrings(country.PermittedInstruments))
	return scanCountryInto(row, country)
}

func (r *Repository) GetCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	const query = `SELECT id, name, permitted_instruments FROM countries WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	country := &domain.Country{}
	if err := scanCountryInto(row, country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, err
	}
	return country, nil
}

func (r *Repository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	const query = `SELECT id, name, permitted_instruments FROM countries ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var country domain.Country
		if err := scanCountryInto(rows, &country); err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

func (r *Repository) UpdateCountry(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return errors.New("country is nil")
	}
	if country.ID == uuid.Nil {
		return errors.New("country ID is required")
	}

	const query = `
		UPDATE countries
		SET name=$2,
			permitted_instruments=$3
		WHERE id=$1
		RETURNING id, name, permitted_instruments`

	row := r.pool.QueryRow(ctx, query, country.ID, country.Name, idsToStrings(country.PermittedInstruments))
	if err := scanCountryInto(row, country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCountryNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM countries WHERE id=$1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func scanCountryInto(row pgx.Row, country *domain.Country) error {
	var raw []string
	if err := row.Scan(&country.ID, &country.Name, &raw); err != nil {
		return err
	}
	ids, err := domain.NormalizeIDs(raw)
	if err != nil {
		return fmt.Errorf("normalize permitted instruments: %w", err)
	}
	country.PermittedInstruments = ids
	return nil
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
