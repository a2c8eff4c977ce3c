package entity

import "time"

// Specialization is a catalog entry lawyers and clients reference by id.
// Read-mostly; managed outside the onboarding flows.
type Specialization struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Language is a catalog entry for the languages a lawyer works in.
type Language struct {
	ID   string
	Name string
	Code string
}
