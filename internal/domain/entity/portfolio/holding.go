package portfolio

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHoldingNotFound = errors.New("holding not found")
	ErrAlreadyHeld     = errors.New("instrument already held by user")
	ErrNotPermitted    = errors.New("instrument not permitted for user country")
	ErrInvalidQuantity = errors.New("quantity must be non-negative")
)

// Holding records that a user currently owns a quantity of an instrument.
// The (UserID, InstrumentID) pair is the primary key: a user holds at most
// one position per instrument, and re-association requires an explicit
// disassociation first. Quantity is set once at creation.
type Holding struct {
	UserID       uuid.UUID `json:"user_id"`
	InstrumentID uuid.UUID `json:"instrument_id"`
	Quantity     int64     `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}
