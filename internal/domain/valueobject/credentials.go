package valueobject

import (
	"strings"
	"time"

	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// BarCredentials holds a lawyer's bar registration.
type BarCredentials struct {
	barNumber string
	issuedAt  time.Time
}

func NewBarCredentials(barNumber string, issuedAt time.Time) (BarCredentials, error) {
	barNumber = strings.TrimSpace(barNumber)
	if len(barNumber) < 5 {
		return BarCredentials{}, apperrors.Validation("bar number must be at least 5 characters")
	}
	if issuedAt.IsZero() {
		return BarCredentials{}, apperrors.Validation("bar credentials issue date is required")
	}
	return BarCredentials{barNumber: barNumber, issuedAt: issuedAt}, nil
}

func (b BarCredentials) BarNumber() string { return b.barNumber }
func (b BarCredentials) IssuedAt() time.Time { return b.issuedAt }

// Education records a lawyer's law-school background.
type Education struct {
	school         string
	graduationYear int
}

func NewEducation(school string, graduationYear int) (Education, error) {
	school = strings.TrimSpace(school)
	if len(school) < 3 {
		return Education{}, apperrors.Validation("school name must be at least 3 characters")
	}
	if graduationYear < 1900 || graduationYear > time.Now().Year() {
		return Education{}, apperrors.Validation("graduation year is out of range")
	}
	return Education{school: school, graduationYear: graduationYear}, nil
}

func (e Education) School() string      { return e.school }
func (e Education) GraduationYear() int { return e.graduationYear }
