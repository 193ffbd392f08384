package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appauth "main/internal/application/service/auth"
	appcatalog "main/internal/application/service/catalog"
	appportfolio "main/internal/application/service/portfolio"
	apptransactions "main/internal/application/service/transactions"
	appusers "main/internal/application/service/users"
	"main/internal/config"
	accountsdomain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	portfoliodomain "main/internal/domain/entity/portfolio"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler() (*Handler, *memStore) {
	store := newMemStore()
	authCfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}

	logger := logrus.New()
	auth := appauth.NewService(store, authCfg)
	users := appusers.NewService(store, store, store)
	catalog := appcatalog.NewService(store)
	portfolio := appportfolio.NewService(store, store, store, store)
	transactions := apptransactions.NewService(store, nil, logger)

	return NewHandler(auth, users, catalog, portfolio, transactions, nil, 0), store
}

func doJSON(h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func accountUser(id uuid.UUID, email string, countryID uuid.UUID) accountsdomain.User {
	return accountsdomain.User{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		CountryID: countryID,
	}
}

// seedWorld creates a country permitting one instrument plus a second
// instrument outside the allow-list, and a user in that country.
func seedWorld(store *memStore) (userID, permittedID, forbiddenID uuid.UUID) {
	permitted := catalogdomain.Instrument{ID: uuid.New(), Name: "ACME", PriceUSD: decimal.RequireFromString("100")}
	forbidden := catalogdomain.Instrument{ID: uuid.New(), Name: "RISKY", PriceUSD: decimal.RequireFromString("10")}
	store.instruments[permitted.ID] = permitted
	store.instruments[forbidden.ID] = forbidden

	country := catalogdomain.Country{ID: uuid.New(), Name: "Chile", PermittedInstruments: []uuid.UUID{permitted.ID}}
	store.countries[country.ID] = country

	userID = uuid.New()
	store.users[userID] = accountUser(userID, "ada@example.com", country.ID)
	return userID, permitted.ID, forbidden.ID
}

func TestAssociateHoldingStatusMapping(t *testing.T) {
	h, store := newTestHandler()
	userID, permittedID, forbiddenID := seedWorld(store)

	payload := func(user, instrument uuid.UUID) holdingPayload {
		return holdingPayload{UserID: user.String(), InstrumentID: instrument.String(), Quantity: 5}
	}

	if rec := doJSON(h, http.MethodPost, "/api/v1/users/holdings", payload(uuid.New(), permittedID)); rec.Code != http.StatusNotFound {
		t.Errorf("unknown user: got %d, want 404", rec.Code)
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users/holdings", payload(userID, uuid.New())); rec.Code != http.StatusNotFound {
		t.Errorf("unknown instrument: got %d, want 404", rec.Code)
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users/holdings", payload(userID, forbiddenID)); rec.Code != http.StatusForbidden {
		t.Errorf("forbidden instrument: got %d, want 403", rec.Code)
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users/holdings", payload(userID, permittedID)); rec.Code != http.StatusCreated {
		t.Fatalf("permitted instrument: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users/holdings", payload(userID, permittedID)); rec.Code != http.StatusConflict {
		t.Errorf("duplicate holding: got %d, want 409", rec.Code)
	}
}

func TestDisassociateHolding(t *testing.T) {
	h, store := newTestHandler()
	userID, permittedID, _ := seedWorld(store)
	store.holdings[holdingKey{userID, permittedID}] = portfoliodomain.Holding{
		UserID: userID, InstrumentID: permittedID, Quantity: 3,
	}

	payload := holdingPayload{UserID: userID.String(), InstrumentID: permittedID.String()}
	if rec := doJSON(h, http.MethodDelete, "/api/v1/users/holdings", payload); rec.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204: %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(h, http.MethodDelete, "/api/v1/users/holdings", payload); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rec.Code)
	}
}

func TestBalanceEndpoint(t *testing.T) {
	h, store := newTestHandler()
	userID, permittedID, _ := seedWorld(store)
	store.holdings[holdingKey{userID, permittedID}] = portfoliodomain.Holding{
		UserID: userID, InstrumentID: permittedID, Quantity: 5,
	}

	rec := doJSON(h, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/balance", userID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body map[string]decimal.Decimal
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body["balance"].Equal(decimal.RequireFromString("500")) {
		t.Errorf("balance = %s, want 500", body["balance"])
	}
}

func TestEarningsEndpoint(t *testing.T) {
	h, store := newTestHandler()
	userID, permittedID, _ := seedWorld(store)
	txID := uuid.New()
	store.transactions[txID] = portfoliodomain.Transaction{
		ID:           txID,
		UserID:       userID,
		InstrumentID: permittedID,
		Type:         portfoliodomain.TransactionBuy,
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("80"),
	}

	rec := doJSON(h, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/earnings", userID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body map[string]decimal.Decimal
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body["earnings"].Equal(decimal.RequireFromString("60")) {
		t.Errorf("earnings = %s, want 60", body["earnings"])
	}
}

func TestEarningsMissingInstrumentFails(t *testing.T) {
	h, store := newTestHandler()
	userID, _, _ := seedWorld(store)
	txID := uuid.New()
	store.transactions[txID] = portfoliodomain.Transaction{
		ID:           txID,
		UserID:       userID,
		InstrumentID: uuid.New(),
		Type:         portfoliodomain.TransactionBuy,
		Quantity:     1,
		UnitPrice:    decimal.RequireFromString("10"),
	}

	rec := doJSON(h, http.MethodGet, fmt.Sprintf("/api/v1/users/%s/earnings", userID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	h, store := newTestHandler()
	countryID := uuid.New()
	store.countries[countryID] = catalogdomain.Country{ID: countryID, Name: "Chile"}

	register := registerPayload{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
		CountryID: countryID.String(),
	}
	rec := doJSON(h, http.MethodPost, "/api/v1/auth/register", register)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("register returned no token: %s", rec.Body.String())
	}

	if rec := doJSON(h, http.MethodPost, "/api/v1/auth/register", register); rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: got %d, want 400", rec.Code)
	}

	login := loginPayload{Email: register.Email, Password: register.Password}
	if rec := doJSON(h, http.MethodPost, "/api/v1/auth/login", login); rec.Code != http.StatusOK {
		t.Errorf("login: got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	login.Password = "wrong"
	if rec := doJSON(h, http.MethodPost, "/api/v1/auth/login", login); rec.Code != http.StatusBadRequest {
		t.Errorf("wrong password: got %d, want 400", rec.Code)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h, store := newTestHandler()
	countryID := uuid.New()
	store.countries[countryID] = catalogdomain.Country{ID: countryID, Name: "Chile"}

	payload := userPayload{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
		CountryID: countryID.String(),
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users", payload); rec.Code != http.StatusCreated {
		t.Fatalf("first create: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/users", payload); rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email: got %d, want 400", rec.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	h, _ := newTestHandler()
	rec := doJSON(h, http.MethodGet, fmt.Sprintf("/api/v1/users/%s", uuid.New()), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
	if rec := doJSON(h, http.MethodGet, "/api/v1/users/not-a-uuid", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: got %d, want 400", rec.Code)
	}
}

func TestManagersByCountry(t *testing.T) {
	h, store := newTestHandler()
	chileID, peruID := uuid.New(), uuid.New()
	store.countries[chileID] = catalogdomain.Country{ID: chileID, Name: "Chile"}
	store.countries[peruID] = catalogdomain.Country{ID: peruID, Name: "Peru"}
	a, b := uuid.New(), uuid.New()
	store.managers[a] = catalogdomain.Manager{ID: a, Name: "Andes Capital", CountryID: chileID}
	store.managers[b] = catalogdomain.Manager{ID: b, Name: "Lima Funds", CountryID: peruID}

	rec := doJSON(h, http.MethodGet, fmt.Sprintf("/api/v1/managers/country/%s", chileID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var managers []catalogdomain.Manager
	if err := json.Unmarshal(rec.Body.Bytes(), &managers); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(managers) != 1 || managers[0].Name != "Andes Capital" {
		t.Errorf("got %+v, want only Andes Capital", managers)
	}
}

func TestCreateTransactionRejectsInvalidType(t *testing.T) {
	h, store := newTestHandler()
	userID, permittedID, _ := seedWorld(store)

	payload := transactionPayload{
		UserID:       userID.String(),
		InstrumentID: permittedID.String(),
		Type:         "transfer",
		Quantity:     1,
		UnitPrice:    "10",
	}
	if rec := doJSON(h, http.MethodPost, "/api/v1/transactions", payload); rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", rec.Code)
	}

	payload.Type = "buy"
	if rec := doJSON(h, http.MethodPost, "/api/v1/transactions", payload); rec.Code != http.StatusCreated {
		t.Errorf("got %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateInstrumentRejectsNegativePrice(t *testing.T) {
	h, _ := newTestHandler()
	payload := instrumentPayload{Name: "ACME", PriceUSD: "-1"}
	if rec := doJSON(h, http.MethodPost, "/api/v1/instruments", payload); rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", rec.Code)
	}
}
