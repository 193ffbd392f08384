package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var ErrManagerNotFound = errors.New("manager not found")

// Manager is a fund management firm registered in a country.
type Manager struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
}
