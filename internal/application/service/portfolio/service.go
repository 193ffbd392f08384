// Package portfolio implements the trading-permission gate, the holding
// ledger and the valuation engine. Everything else in the service is data
// plumbing around these rules.
package portfolio

import (
	"context"
	"errors"
	"fmt"

	accountsdomain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	domain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The service names exactly the store operations it needs; the pgx
// repositories satisfy these, and tests substitute in-memory fakes.

type UserSource interface {
	GetUser(ctx context.Context, id uuid.UUID) (*accountsdomain.User, error)
}

type CatalogSource interface {
	GetInstrument(ctx context.Context, id uuid.UUID) (*catalogdomain.Instrument, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*catalogdomain.Country, error)
}

type HoldingStore interface {
	CreateHolding(ctx context.Context, holding *domain.Holding) error
	GetHolding(ctx context.Context, userID, instrumentID uuid.UUID) (*domain.Holding, error)
	ListHoldingsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Holding, error)
	DeleteHolding(ctx context.Context, userID, instrumentID uuid.UUID) error
}

type TransactionSource interface {
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

type Service struct {
	users        UserSource
	catalog      CatalogSource
	holdings     HoldingStore
	transactions TransactionSource
}

func NewService(
	users UserSource,
	catalog CatalogSource,
	holdings HoldingStore,
	transactions TransactionSource,
) *Service {
	return &Service{
		users:        users,
		catalog:      catalog,
		holdings:     holdings,
		transactions: transactions,
	}
}

// CanAcquire checks whether the user's country permits holding the
// instrument. The lookup order is a contract: user first, then instrument,
// then the country allow-list, so overlapping failures always report the
// same error kind.
func (s *Service) CanAcquire(ctx context.Context, userID, instrumentID uuid.UUID) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.catalog.GetInstrument(ctx, instrumentID); err != nil {
		return err
	}
	country, err := s.catalog.GetCountry(ctx, user.CountryID)
	if err != nil {
		return fmt.Errorf("load country of user %s: %w", userID, err)
	}
	if !country.Permits(instrumentID) {
		return domain.ErrNotPermitted
	}
	return nil
}

// Associate runs the permission gate and creates the holding. A pair that is
// already held is rejected; quantity is fixed at creation and a new
// association requires an explicit Disassociate first.
func (s *Service) Associate(ctx context.Context, userID, instrumentID uuid.UUID, quantity int64) (*domain.Holding, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := s.CanAcquire(ctx, userID, instrumentID); err != nil {
		return nil, err
	}
	holding := &domain.Holding{
		UserID:       userID,
		InstrumentID: instrumentID,
		Quantity:     quantity,
	}
	if err := s.holdings.CreateHolding(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// Disassociate removes the holding for the exact (user, instrument) pair.
func (s *Service) Disassociate(ctx context.Context, userID, instrumentID uuid.UUID) error {
	if _, err := s.holdings.GetHolding(ctx, userID, instrumentID); err != nil {
		return err
	}
	return s.holdings.DeleteHolding(ctx, userID, instrumentID)
}

// Holdings lists the user's current positions. Unknown users simply have an
// empty portfolio.
func (s *Service) Holdings(ctx context.Context, userID uuid.UUID) ([]domain.Holding, error) {
	return s.holdings.ListHoldingsByUser(ctx, userID)
}

// Balance is the mark-to-market value of the user's holdings: the sum of
// quantity times current catalog price. A holding whose instrument has
// disappeared from the catalog contributes zero; a stale reference must not
// sink the whole valuation.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	holdings, err := s.holdings.ListHoldingsByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, holding := range holdings {
		instrument, err := s.catalog.GetInstrument(ctx, holding.InstrumentID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrInstrumentNotFound) {
				continue
			}
			return decimal.Zero, err
		}
		balance = balance.Add(instrument.PriceUSD.Mul(decimal.NewFromInt(holding.Quantity)))
	}
	return balance, nil
}

// Earnings sums, over every transaction of the user regardless of side,
// (current price - execution price) * quantity. Unlike Balance this is
// hard-fail: a transaction pointing at an unknown instrument fails the whole
// request, since a historical trade with no valuation basis has no sane
// zero interpretation.
func (s *Service) Earnings(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	transactions, err := s.transactions.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	earnings := decimal.Zero
	for _, tx := range transactions {
		instrument, err := s.catalog.GetInstrument(ctx, tx.InstrumentID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("value transaction %s: %w", tx.ID, err)
		}
		delta := instrument.PriceUSD.Sub(tx.UnitPrice)
		earnings = earnings.Add(delta.Mul(decimal.NewFromInt(tx.Quantity)))
	}
	return earnings, nil
}
