package portfolio

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionBuy, TransactionSell:
		return true
	default:
		return false
	}
}

func NewTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}

// Transaction is an immutable record of a trade executed at a point in time.
// UnitPrice is the execution price; the earnings computation compares it
// against the instrument's current catalog price.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	InstrumentID uuid.UUID       `json:"instrument_id"`
	Type         TransactionType `json:"type"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ExecutedAt   time.Time       `json:"executed_at"`
}

func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("invalid transaction type: %s", t.Type)
	}
	if t.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if t.UnitPrice.IsNegative() {
		return errors.New("unit price must be non-negative")
	}
	return nil
}
