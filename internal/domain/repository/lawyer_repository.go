package repository

import (
	"context"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
)

// LawyerProfileRepository defines persistence for the LawyerProfile
// aggregate. The specialization and language sets use a full-replace
// strategy: delete then insert, inside the same transaction as the profile
// row update.
type LawyerProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.LawyerProfile, error)
	FindByAccountID(ctx context.Context, accountID string) (*entity.LawyerProfile, error)
	FindByEmail(ctx context.Context, email string) (*entity.LawyerProfile, error)
	ExistsByAccountID(ctx context.Context, accountID string) (bool, error)
	ExistsByBarNumber(ctx context.Context, barNumber, excludeProfileID string) (bool, error)
	Save(ctx context.Context, l *entity.LawyerProfile) error
	Update(ctx context.Context, l *entity.LawyerProfile) error
}
