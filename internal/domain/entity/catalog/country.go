package catalog

import (
	"errors"

	"github.com/google/uuid"
)

var ErrCountryNotFound = errors.New("country not found")

// Country carries the per-country trading policy: the set of instrument IDs
// residents are allowed to hold. The list is normalized to uuid.UUID on both
// write and read, so membership is always tested on canonical identifiers.
type Country struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	PermittedInstruments []uuid.UUID `json:"permitted_instruments"`
}

// Permits reports whether the country allow-list contains the instrument.
func (c Country) Permits(instrumentID uuid.UUID) bool {
	for _, id := range c.PermittedInstruments {
		if id == instrumentID {
			return true
		}
	}
	return false
}

// NormalizeIDs parses raw identifier strings into uuid form. Any
// non-identifier entry is rejected rather than silently coerced.
func NormalizeIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
