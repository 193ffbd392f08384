package catalog

import (
	"context"
	"errors"

	domain "main/internal/domain/entity/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateManager(ctx context.Context, manager *domain.Manager) error {
	if manager == nil {
		return errors.New("manager is nil")
	}
	if manager.ID == uuid.Nil {
		manager.ID = uuid.New()
	}

	const query = `
		INSERT INTO managers (id, name, country_id)
		VALUES ($1,$2,$3)
		RETURNING id, name, country_id`

	row := r.pool.QueryRow(ctx, query, manager.ID, manager.Name, manager.CountryID)
	return row.Scan(&manager.ID, &manager.Name, &manager.CountryID)
}

func (r *Repository) GetManager(ctx context.Context, id uuid.UUID) (*domain.Manager, error) {
	const query = `SELECT id, name, country_id FROM managers WHERE id = $1`

	manager := &domain.Manager{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&manager.ID, &manager.Name, &manager.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrManagerNotFound
		}
		return nil, err
	}
	return manager, nil
}

func (r *Repository) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	const query = `SELECT id, name, country_id FROM managers ORDER BY name`
	return r.listManagers(ctx, query)
}

func (r *Repository) ListManagersByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.Manager, error) {
	const query = `SELECT id, name, country_id FROM managers WHERE country_id = $1 ORDER BY name`
	return r.listManagers(ctx, query, countryID)
}

func (r *Repository) listManagers(ctx context.Context, query string, args ...interface{}) ([]domain.Manager, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	managers := make([]domain.Manager, 0)
	for rows.Next() {
		var manager domain.Manager
		if err := rows.Scan(&manager.ID, &manager.Name, &manager.CountryID); err != nil {
			return nil, err
		}
		managers = append(managers, manager)
	}
	return managers, rows.Err()
}

func (r *Repository) UpdateManager(ctx context.Context, manager *domain.Manager) error {
	if manager == nil {
		return errors.New("manager is nil")
	}
	if manager.ID == uuid.Nil {
		return errors.New("manager ID is required")
	}

	const query = `
		UPDATE managers
		SET name=$2,
			country_id=$3
		WHERE id=$1
		RETURNING id, name, country_id`

	err := r.pool.QueryRow(ctx, query, manager.ID, manager.Name, manager.CountryID).
		Scan(&manager.ID, &manager.Name, &manager.CountryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrManagerNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteManager(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM managers WHERE id=$1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrManagerNotFound
	}
	return nil
}
