// Package catalog exposes CRUD over the reference data: instruments,
// countries, currencies and fund managers.
package catalog

import (
	"context"
	"errors"

	domain "main/internal/domain/entity/catalog"
	interfaces "main/internal/domain/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNilInstrument = errors.New("instrument is nil")
	ErrNilCountry    = errors.New("country is nil")
	ErrNilCurrency   = errors.New("currency is nil")
	ErrNilManager    = errors.New("manager is nil")
)

type Service struct {
	repo interfaces.CatalogRepository
}

func NewService(repo interfaces.CatalogRepository) *Service {
	return &Service{repo: repo}
}

// Instruments

func (s *Service) CreateInstrument(ctx context.Context, instrument *domain.Instrument) error {
	if instrument == nil {
		return ErrNilInstrument
	}
	if err := instrument.Validate(); err != nil {
		return err
	}
	return s.repo.CreateInstrument(ctx, instrument)
}

func (s *Service) GetInstrument(ctx context.Context, id uuid.UUID) (*domain.Instrument, error) {
	return s.repo.GetInstrument(ctx, id)
}

func (s *Service) ListInstruments(ctx context.Context) ([]domain.Instrument, error) {
	return s.repo.ListInstruments(ctx)
}

func (s *Service) UpdateInstrument(ctx context.Context, instrument *domain.Instrument) error {
	if instrument == nil {
		return ErrNilInstrument
	}
	if err := instrument.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateInstrument(ctx, instrument)
}

func (s *Service) DeleteInstrument(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInstrument(ctx, id)
}

// Countries

func (s *Service) CreateCountry(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return ErrNilCountry
	}
	return s.repo.CreateCountry(ctx, country)
}

func (s *Service) GetCountry(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	return s.repo.GetCountry(ctx, id)
}

func (s *Service) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *Service) UpdateCountry(ctx context.Context, country *domain.Country) error {
	if country == nil {
		return ErrNilCountry
	}
	return s.repo.UpdateCountry(ctx, country)
}

func (s *Service) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCountry(ctx, id)
}

// Currencies

func (s *Service) CreateCurrency(ctx context.Context, currency *domain.Currency) error {
	if currency == nil {
		return ErrNilCurrency
	}
	if _, err := s.repo.GetCountry(ctx, currency.CountryID); err != nil {
		return err
	}
	return s.repo.CreateCurrency(ctx, currency)
}

func (s *Service) GetCurrency(ctx context.Context, id uuid.UUID) (*domain.Currency, error) {
	return s.repo.GetCurrency(ctx, id)
}

func (s *Service) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.ListCurrencies(ctx)
}

func (s *Service) UpdateCurrency(ctx context.Context, currency *domain.Currency) error {
	if currency == nil {
		return ErrNilCurrency
	}
	return s.repo.UpdateCurrency(ctx, currency)
}

func (s *Service) DeleteCurrency(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCurrency(ctx, id)
}

// Managers

func (s *Service) CreateManager(ctx context.Context, manager *domain.Manager) error {
	if manager == nil {
		return ErrNilManager
	}
	if _, err := s.repo.GetCountry(ctx, manager.CountryID); err != nil {
		return err
	}
	return s.repo.CreateManager(ctx, manager)
}

func (s *Service) GetManager(ctx context.Context, id uuid.UUID) (*domain.Manager, error) {
	return s.repo.GetManager(ctx, id)
}

func (s *Service) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	return s.repo.ListManagers(ctx)
}

func (s *Service) ListManagersByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.Manager, error) {
	return s.repo.ListManagersByCountry(ctx, countryID)
}

func (s *Service) UpdateManager(ctx context.Context, manager *domain.Manager) error {
	if manager == nil {
		return ErrNilManager
	}
	return s.repo.UpdateManager(ctx, manager)
}

func (s *Service) DeleteManager(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteManager(ctx, id)
}

func (s *Service) Close() {
	s.repo.Close()
}
