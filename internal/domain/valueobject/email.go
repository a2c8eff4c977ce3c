package valueobject

import (
	"regexp"
	"strings"

	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a normalized, validated email address.
type Email struct {
	value string
}

// NewEmail validates and normalizes (lowercase, trimmed) an email address.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, apperrors.Validation("email is required")
	}
	if !emailPattern.MatchString(v) {
		return Email{}, apperrors.Validation("invalid email format")
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
