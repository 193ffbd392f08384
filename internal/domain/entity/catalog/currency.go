package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var ErrCurrencyNotFound = errors.New("currency not found")

// Currency is reference data: the national currency of a country.
type Currency struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
}
