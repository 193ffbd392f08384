package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrNegativePrice      = errors.New("instrument price must be non-negative")
)

// Instrument is a tradable asset quoted in US dollars. PriceUSD is the
// current unit price used by the valuation engine; it is owned by the
// catalog and only read everywhere else.
type Instrument struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	PriceUSD  decimal.Decimal `json:"price_usd"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i Instrument) Validate() error {
	if i.PriceUSD.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
