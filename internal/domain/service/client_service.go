package service

import (
	"context"
	"strings"

	"github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// ClientDomainService enforces cross-aggregate invariants for client
// profiles: the one-profile-per-account rule and catalog membership of
// selected specializations.
type ClientDomainService struct {
	clients         repository.ClientProfileRepository
	specializations repository.SpecializationRepository
}

func NewClientDomainService(clients repository.ClientProfileRepository, specs repository.SpecializationRepository) *ClientDomainService {
	return &ClientDomainService{clients: clients, specializations: specs}
}

// EnsureClientDoesNotExist is a check-then-act pre-check for the 1:1
// invariant. The real guarantee is the unique account_id constraint at the
// storage layer; this exists for a fast, friendly error.
func (s *ClientDomainService) EnsureClientDoesNotExist(ctx context.Context, accountID string) error {
	exists, err := s.clients.ExistsByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict("client profile already exists for this user")
	}
	return nil
}

// ValidateSpecializations fails with a validation error naming exactly the
// ids absent from the catalog.
func (s *ClientDomainService) ValidateSpecializations(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return apperrors.Validation("at least one specialization is required")
	}
	found, err := s.specializations.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(found))
	for _, spec := range found {
		known[spec.ID] = struct{}{}
	}
	var invalid []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return apperrors.ValidationWithDetails(
			"invalid specialization ids: "+strings.Join(invalid, ", "),
			map[string]any{"invalid_ids": invalid},
		)
	}
	return nil
}
