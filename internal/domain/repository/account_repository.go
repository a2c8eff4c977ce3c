package repository

import (
	"context"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
)

// AccountFilter narrows admin account listings. Nil fields are not applied.
type AccountFilter struct {
	Role                *string
	Banned              *bool
	OnboardingCompleted *bool
	Page                int
	Limit               int
}

// AccountPage is one page of an account listing.
type AccountPage struct {
	Items       []*entity.Account
	Page        int
	Limit       int
	Total       int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// AccountRepository defines persistence for the Account aggregate.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter AccountFilter) (*AccountPage, error)
	Update(ctx context.Context, a *entity.Account) error
}
