package http

import (
	"context"

	accountsdomain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	portfoliodomain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the pgx repositories, shared by all
// services under test so cross-entity checks see the same data.
type memStore struct {
	users        map[uuid.UUID]accountsdomain.User
	instruments  map[uuid.UUID]catalogdomain.Instrument
	countries    map[uuid.UUID]catalogdomain.Country
	currencies   map[uuid.UUID]catalogdomain.Currency
	managers     map[uuid.UUID]catalogdomain.Manager
	holdings     map[holdingKey]portfoliodomain.Holding
	transactions map[uuid.UUID]portfoliodomain.Transaction
}

type holdingKey struct {
	userID       uuid.UUID
	instrumentID uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]accountsdomain.User),
		instruments:  make(map[uuid.UUID]catalogdomain.Instrument),
		countries:    make(map[uuid.UUID]catalogdomain.Country),
		currencies:   make(map[uuid.UUID]catalogdomain.Currency),
		managers:     make(map[uuid.UUID]catalogdomain.Manager),
		holdings:     make(map[holdingKey]portfoliodomain.Holding),
		transactions: make(map[uuid.UUID]portfoliodomain.Transaction),
	}
}

func (s *memStore) Close() {}

// Users

func (s *memStore) CreateUser(_ context.Context, user *accountsdomain.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return accountsdomain.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) GetUser(_ context.Context, id uuid.UUID) (*accountsdomain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, accountsdomain.ErrUserNotFound
	}
	return &user, nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*accountsdomain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, accountsdomain.ErrUserNotFound
}

func (s *memStore) ListUsers(_ context.Context) ([]accountsdomain.User, error) {
	users := make([]accountsdomain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *memStore) UpdateUser(_ context.Context, user *accountsdomain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return accountsdomain.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return accountsdomain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// Instruments

func (s *memStore) CreateInstrument(_ context.Context, instrument *catalogdomain.Instrument) error {
	if instrument.ID == uuid.Nil {
		instrument.ID = uuid.New()
	}
	s.instruments[instrument.ID] = *instrument
	return nil
}

func (s *memStore) GetInstrument(_ context.Context, id uuid.UUID) (*catalogdomain.Instrument, error) {
	instrument, ok := s.instruments[id]
	if !ok {
		return nil, catalogdomain.ErrInstrumentNotFound
	}
	return &instrument, nil
}

func (s *memStore) ListInstruments(_ context.Context) ([]catalogdomain.Instrument, error) {
	instruments := make([]catalogdomain.Instrument, 0, len(s.instruments))
	for _, instrument := range s.instruments {
		instruments = append(instruments, instrument)
	}
	return instruments, nil
}

func (s *memStore) UpdateInstrument(_ context.Context, instrument *catalogdomain.Instrument) error {
	if _, ok := s.instruments[instrument.ID]; !ok {
		return catalogdomain.ErrInstrumentNotFound
	}
	s.instruments[instrument.ID] = *instrument
	return nil
}

func (s *memStore) DeleteInstrument(_ context.Context, id uuid.UUID) error {
	if _, ok := s.instruments[id]; !ok {
		return catalogdomain.ErrInstrumentNotFound
	}
	delete(s.instruments, id)
	return nil
}

// Countries

func (s *memStore) CreateCountry(_ context.Context, country *catalogdomain.Country) error {
	if country.ID == uuid.Nil {
		country.ID = uuid.New()
	}
	s.countries[country.ID] = *country
	return nil
}

func (s *memStore) GetCountry(_ context.Context, id uuid.UUID) (*catalogdomain.Country, error) {
	country, ok := s.countries[id]
	if !ok {
		return nil, catalogdomain.ErrCountryNotFound
	}
	return &country, nil
}

func (s *memStore) ListCountries(_ context.Context) ([]catalogdomain.Country, error) {
	countries := make([]catalogdomain.Country, 0, len(s.countries))
	for _, country := range s.countries {
		countries = append(countries, country)
	}
	return countries, nil
}

func (s *memStore) UpdateCountry(_ context.Context, country *catalogdomain.Country) error {
	if _, ok := s.countries[country.ID]; !ok {
		return catalogdomain.ErrCountryNotFound
	}
	s.countries[country.ID] = *country
	return nil
}

func (s *memStore) DeleteCountry(_ context.Context, id uuid.UUID) error {
	if _, ok := s.countries[id]; !ok {
		return catalogdomain.ErrCountryNotFound
	}
	delete(s.countries, id)
	return nil
}

// Currencies

func (s *memStore) CreateCurrency(_ context.Context, currency *catalogdomain.Currency) error {
	if currency.ID == uuid.Nil {
		currency.ID = uuid.New()
	}
	s.currencies[currency.ID] = *currency
	return nil
}

func (s *memStore) GetCurrency(_ context.Context, id uuid.UUID) (*catalogdomain.Currency, error) {
	currency, ok := s.currencies[id]
	if !ok {
		return nil, catalogdomain.ErrCurrencyNotFound
	}
	return &currency, nil
}

func (s *memStore) ListCurrencies(_ context.Context) ([]catalogdomain.Currency, error) {
	currencies := make([]catalogdomain.Currency, 0, len(s.currencies))
	for _, currency := range s.currencies {
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

func (s *memStore) UpdateCurrency(_ context.Context, currency *catalogdomain.Currency) error {
	if _, ok := s.currencies[currency.ID]; !ok {
		return catalogdomain.ErrCurrencyNotFound
	}
	s.currencies[currency.ID] = *currency
	return nil
}

func (s *memStore) DeleteCurrency(_ context.Context, id uuid.UUID) error {
	if _, ok := s.currencies[id]; !ok {
		return catalogdomain.ErrCurrencyNotFound
	}
	delete(s.currencies, id)
	return nil
}

// Managers

func (s *memStore) CreateManager(_ context.Context, manager *catalogdomain.Manager) error {
	if manager.ID == uuid.Nil {
		manager.ID = uuid.New()
	}
	s.managers[manager.ID] = *manager
	return nil
}

func (s *memStore) GetManager(_ context.Context, id uuid.UUID) (*catalogdomain.Manager, error) {
	manager, ok := s.managers[id]
	if !ok {
		return nil, catalogdomain.ErrManagerNotFound
	}
	return &manager, nil
}

func (s *memStore) ListManagers(_ context.Context) ([]catalogdomain.Manager, error) {
	managers := make([]catalogdomain.Manager, 0, len(s.managers))
	for _, manager := range s.managers {
		managers = append(managers, manager)
	}
	return managers, nil
}

func (s *memStore) ListManagersByCountry(_ context.Context, countryID uuid.UUID) ([]catalogdomain.Manager, error) {
	managers := make([]catalogdomain.Manager, 0)
	for _, manager := range s.managers {
		if manager.CountryID == countryID {
			managers = append(managers, manager)
		}
	}
	return managers, nil
}

func (s *memStore) UpdateManager(_ context.Context, manager *catalogdomain.Manager) error {
	if _, ok := s.managers[manager.ID]; !ok {
		return catalogdomain.ErrManagerNotFound
	}
	s.managers[manager.ID] = *manager
	return nil
}

func (s *memStore) DeleteManager(_ context.Context, id uuid.UUID) error {
	if _, ok := s.managers[id]; !ok {
		return catalogdomain.ErrManagerNotFound
	}
	delete(s.managers, id)
	return nil
}

// Holdings

func (s *memStore) CreateHolding(_ context.Context, holding *portfoliodomain.Holding) error {
	key := holdingKey{holding.UserID, holding.InstrumentID}
	if _, ok := s.holdings[key]; ok {
		return portfoliodomain.ErrAlreadyHeld
	}
	s.holdings[key] = *holding
	return nil
}

func (s *memStore) GetHolding(_ context.Context, userID, instrumentID uuid.UUID) (*portfoliodomain.Holding, error) {
	holding, ok := s.holdings[holdingKey{userID, instrumentID}]
	if !ok {
		return nil, portfoliodomain.ErrHoldingNotFound
	}
	return &holding, nil
}

func (s *memStore) ListHoldingsByUser(_ context.Context, userID uuid.UUID) ([]portfoliodomain.Holding, error) {
	holdings := make([]portfoliodomain.Holding, 0)
	for key, holding := range s.holdings {
		if key.userID == userID {
			holdings = append(holdings, holding)
		}
	}
	return holdings, nil
}

func (s *memStore) DeleteHolding(_ context.Context, userID, instrumentID uuid.UUID) error {
	key := holdingKey{userID, instrumentID}
	if _, ok := s.holdings[key]; !ok {
		return portfoliodomain.ErrHoldingNotFound
	}
	delete(s.holdings, key)
	return nil
}

// Transactions

func (s *memStore) CreateTransaction(_ context.Context, tx *portfoliodomain.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	s.transactions[tx.ID] = *tx
	return nil
}

func (s *memStore) GetTransaction(_ context.Context, id uuid.UUID) (*portfoliodomain.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, portfoliodomain.ErrTransactionNotFound
	}
	return &tx, nil
}

func (s *memStore) ListTransactions(_ context.Context) ([]portfoliodomain.Transaction, error) {
	txs := make([]portfoliodomain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *memStore) ListTransactionsByUser(_ context.Context, userID uuid.UUID) ([]portfoliodomain.Transaction, error) {
	txs := make([]portfoliodomain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (s *memStore) UpdateTransaction(_ context.Context, tx *portfoliodomain.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return portfoliodomain.ErrTransactionNotFound
	}
	s.transactions[tx.ID] = *tx
	return nil
}

func (s *memStore) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	if _, ok := s.transactions[id]; !ok {
		return portfoliodomain.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}
