package valueobject

import (
	"strings"

	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// Location identifies where a client is based. Country and state are both
// required; a profile can never carry a half-set location.
type Location struct {
	country string
	state   string
}

func NewLocation(country, state string) (Location, error) {
	country = strings.TrimSpace(country)
	state = strings.TrimSpace(state)
	if country == "" {
		return Location{}, apperrors.Validation("country is required")
	}
	if state == "" {
		return Location{}, apperrors.Validation("state is required")
	}
	return Location{country: country, state: state}, nil
}

func (l Location) Country() string { return l.country }
func (l Location) State() string   { return l.state }

func (l Location) Equals(other Location) bool {
	return l.country == other.country && l.state == other.state
}
