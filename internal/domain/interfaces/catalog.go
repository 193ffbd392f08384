package interfaces

import (
	"context"

	catalog "main/internal/domain/entity/catalog"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	CreateInstrument(ctx context.Context, instrument *catalog.Instrument) error
	GetInstrument(ctx context.Context, id uuid.UUID) (*catalog.Instrument, error)
	ListInstruments(ctx context.Context) ([]catalog.Instrument, error)
	UpdateInstrument(ctx context.Context, instrument *catalog.Instrument) error
	DeleteInstrument(ctx context.Context, id uuid.UUID) error

	CreateCountry(ctx context.Context, country *catalog.Country) error
	GetCountry(ctx context.Context, id uuid.UUID) (*catalog.Country, error)
	ListCountries(ctx context.Context) ([]catalog.Country, error)
	UpdateCountry(ctx context.Context, country *catalog.Country) error
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	CreateCurrency(ctx context.Context, currency *catalog.Currency) error
	GetCurrency(ctx context.Context, id uuid.UUID) (*catalog.Currency, error)
	ListCurrencies(ctx context.Context) ([]catalog.Currency, error)
	UpdateCurrency(ctx context.Context, currency *catalog.Currency) error
	DeleteCurrency(ctx context.Context, id uuid.UUID) error

	CreateManager(ctx context.Context, manager *catalog.Manager) error
	GetManager(ctx context.Context, id uuid.UUID) (*catalog.Manager, error)
	ListManagers(ctx context.Context) ([]catalog.Manager, error)
	ListManagersByCountry(ctx context.Context, countryID uuid.UUID) ([]catalog.Manager, error)
	UpdateManager(ctx context.Context, manager *catalog.Manager) error
	DeleteManager(ctx context.Context, id uuid.UUID) error

	Close()
}
