package repository

import (
	"context"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
)

// SpecializationRepository reads the read-mostly specialization catalog.
type SpecializationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Specialization, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Specialization, error)
	ExistsByIDs(ctx context.Context, ids []string) (bool, error)
}

// LanguageRepository reads the language catalog.
type LanguageRepository interface {
	FindAll(ctx context.Context) ([]*entity.Language, error)
	ExistsByIDs(ctx context.Context, ids []string) (bool, error)
}
