package users

import (
	"context"
	"errors"
	"fmt"

	domain "main/internal/domain/entity/accounts"
	catalogdomain "main/internal/domain/entity/catalog"
	portfoliodomain "main/internal/domain/entity/portfolio"
	interfaces "main/internal/domain/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var ErrNilUser = errors.New("user is nil")

type CatalogSource interface {
	GetInstrument(ctx context.Context, id uuid.UUID) (*catalogdomain.Instrument, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*catalogdomain.Country, error)
}

type HoldingSource interface {
	ListHoldingsByUser(ctx context.Context, userID uuid.UUID) ([]portfoliodomain.Holding, error)
}

type Service struct {
	repo     interfaces.UsersRepository
	catalog  CatalogSource
	holdings HoldingSource
}

func NewService(repo interfaces.UsersRepository, catalog CatalogSource, holdings HoldingSource) *Service {
	return &Service{repo: repo, catalog: catalog, holdings: holdings}
}

// HeldInstrument is the instrument summary attached to user reads.
type HeldInstrument struct {
	InstrumentID uuid.UUID       `json:"instrument_id"`
	Name         string          `json:"name"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
	Quantity     int64           `json:"quantity"`
}

// UserDetail is a user together with the instruments they currently hold.
type UserDetail struct {
	domain.User
	Instruments []HeldInstrument `json:"instruments"`
}

// Create registers a user record. The email must be free and the country
// must exist; the password is stored as a bcrypt hash.
func (s *Service) Create(ctx context.Context, user *domain.User, password string) error {
	if user == nil {
		return ErrNilUser
	}
	if _, err := s.repo.GetUserByEmail(ctx, user.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.catalog.GetCountry(ctx, user.CountryID); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.repo.CreateUser(ctx, user)
}

// Get returns the user enriched with their current holdings. A holding whose
// instrument is gone from the catalog is omitted, matching the valuation
// engine's soft-fail policy.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*UserDetail, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	held, err := s.heldInstruments(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserDetail{User: *user, Instruments: held}, nil
}

// List returns all users, each enriched with their holdings.
func (s *Service) List(ctx context.Context) ([]UserDetail, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]UserDetail, 0, len(users))
	for _, user := range users {
		held, err := s.heldInstruments(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, UserDetail{User: user, Instruments: held})
	}
	return details, nil
}

func (s *Service) Update(ctx context.Context, user *domain.User, password string) error {
	if user == nil {
		return ErrNilUser
	}
	current, err := s.repo.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	} else {
		user.PasswordHash = current.PasswordHash
	}
	return s.repo.UpdateUser(ctx, user)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) heldInstruments(ctx context.Context, userID uuid.UUID) ([]HeldInstrument, error) {
	holdings, err := s.holdings.ListHoldingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	held := make([]HeldInstrument, 0, len(holdings))
	for _, holding := range holdings {
		instrument, err := s.catalog.GetInstrument(ctx, holding.InstrumentID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrInstrumentNotFound) {
				continue
			}
			return nil, err
		}
		held = append(held, HeldInstrument{
			InstrumentID: instrument.ID,
			Name:         instrument.Name,
			PriceUSD:     instrument.PriceUSD,
			Quantity:     holding.Quantity,
		})
	}
	return held, nil
}
