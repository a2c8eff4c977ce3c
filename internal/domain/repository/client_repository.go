package repository

import (
	"context"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
)

// ClientProfileRepository defines persistence for the ClientProfile
// aggregate. Save and Update are atomic across the profile row and its
// specialization set; no partial state is observable by subsequent reads.
type ClientProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.ClientProfile, error)
	FindByAccountID(ctx context.Context, accountID string) (*entity.ClientProfile, error)
	ExistsByAccountID(ctx context.Context, accountID string) (bool, error)
	FindAll(ctx context.Context) ([]*entity.ClientProfile, error)
	Save(ctx context.Context, p *entity.ClientProfile) error
	Update(ctx context.Context, p *entity.ClientProfile) error
}
