package portfolio

import (
	"context"

	accountsdomain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	domain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for all four external stores.
type fakeStore struct {
	users        map[uuid.UUID]accountsdomain.User
	instruments  map[uuid.UUID]catalogdomain.Instrument
	countries    map[uuid.UUID]catalogdomain.Country
	holdings     map[[2]uuid.UUID]domain.Holding
	transactions []domain.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uuid.UUID]accountsdomain.User),
		instruments: make(map[uuid.UUID]catalogdomain.Instrument),
		countries:   make(map[uuid.UUID]catalogdomain.Country),
		holdings:    make(map[[2]uuid.UUID]domain.Holding),
	}
}

func (f *fakeStore) GetUser(_ context.Context, id uuid.UUID) (*accountsdomain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, accountsdomain.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeStore) GetInstrument(_ context.Context, id uuid.UUID) (*catalogdomain.Instrument, error) {
	instrument, ok := f.instruments[id]
	if !ok {
		return nil, catalogdomain.ErrInstrumentNotFound
	}
	return &instrument, nil
}

func (f *fakeStore) GetCountry(_ context.Context, id uuid.UUID) (*catalogdomain.Country, error) {
	country, ok := f.countries[id]
	if !ok {
		return nil, catalogdomain.ErrCountryNotFound
	}
	return &country, nil
}

func (f *fakeStore) CreateHolding(_ context.Context, holding *domain.Holding) error {
	key := [2]uuid.UUID{holding.UserID, holding.InstrumentID}
	if _, ok := f.holdings[key]; ok {
		return domain.ErrAlreadyHeld
	}
	f.holdings[key] = *holding
	return nil
}

func (f *fakeStore) GetHolding(_ context.Context, userID, instrumentID uuid.UUID) (*domain.Holding, error) {
	holding, ok := f.holdings[[2]uuid.UUID{userID, instrumentID}]
	if !ok {
		return nil, domain.ErrHoldingNotFound
	}
	return &holding, nil
}

func (f *fakeStore) ListHoldingsByUser(_ context.Context, userID uuid.UUID) ([]domain.Holding, error) {
	holdings := make([]domain.Holding, 0)
	for key, holding := range f.holdings {
		if key[0] == userID {
			holdings = append(holdings, holding)
		}
	}
	return holdings, nil
}

func (f *fakeStore) DeleteHolding(_ context.Context, userID, instrumentID uuid.UUID) error {
	key := [2]uuid.UUID{userID, instrumentID}
	if _, ok := f.holdings[key]; !ok {
		return domain.ErrHoldingNotFound
	}
	delete(f.holdings, key)
	return nil
}

func (f *fakeStore) ListTransactionsByUser(_ context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
