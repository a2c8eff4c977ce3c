package application

import (
	"context"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	repo "github.com/lawbridge/lawbridge-backend/internal/domain/repository"
)

// CatalogService exposes the read-mostly specialization and language
// catalogs onboarding UIs select from.
type CatalogService struct {
	Specs     repo.SpecializationRepository
	Languages repo.LanguageRepository
}

func NewCatalogService(specs repo.SpecializationRepository, languages repo.LanguageRepository) *CatalogService {
	return &CatalogService{Specs: specs, Languages: languages}
}

func (s *CatalogService) ListSpecializations(ctx context.Context) ([]*entity.Specialization, error) {
	return s.Specs.FindAll(ctx)
}

func (s *CatalogService) ListLanguages(ctx context.Context) ([]*entity.Language, error) {
	return s.Languages.FindAll(ctx)
}
