package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	repo "github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/internal/domain/service"
	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// OnboardingService orchestrates client onboarding. CompleteOnboarding is
// the only path that creates a ClientProfile. The repository's Save is
// atomic across the profile row, its specialization set and the account
// onboarding flag.
type OnboardingService struct {
	Clients    repo.ClientProfileRepository
	Domain     *service.ClientDomainService
	Dispatcher *EventDispatcher
	Logger     *logrus.Logger
}

func NewOnboardingService(clients repo.ClientProfileRepository, domain *service.ClientDomainService, dispatcher *EventDispatcher, logger *logrus.Logger) *OnboardingService {
	return &OnboardingService{
		Clients:    clients,
		Domain:     domain,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// CompleteOnboardingInput is the validated payload plus the caller identity
// resolved by the session collaborator.
type CompleteOnboardingInput struct {
	AccountID         string
	DisplayName       string
	EmailVerified     bool
	PhoneNumber       string
	Country           string
	State             string
	Company           string
	SpecializationIDs []string
}

// CompleteOnboardingResult is the summary returned on success.
type CompleteOnboardingResult struct {
	ProfileID           string `json:"client_id"`
	AccountID           string `json:"account_id"`
	SpecializationCount int    `json:"specialization_count"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// CompleteOnboarding fuses the five independent validation failures into
// one atomic attempt: verified email, no existing profile, known
// specializations, valid location, valid profile construction. If any step
// fails, nothing is persisted.
func (s *OnboardingService) CompleteOnboarding(ctx context.Context, in CompleteOnboardingInput) (*CompleteOnboardingResult, error) {
	if !in.EmailVerified {
		return nil, apperrors.Unauthorized("email must be verified before onboarding")
	}
	if err := s.Domain.EnsureClientDoesNotExist(ctx, in.AccountID); err != nil {
		return nil, err
	}
	if err := s.Domain.ValidateSpecializations(ctx, in.SpecializationIDs); err != nil {
		return nil, err
	}
	location, err := valueobject.NewLocation(in.Country, in.State)
	if err != nil {
		return nil, err
	}

	profile, err := entity.NewClientProfile(entity.ClientProfileProps{
		AccountID:         in.AccountID,
		DisplayName:       in.DisplayName,
		PhoneNumber:       in.PhoneNumber,
		Location:          location,
		Company:           in.Company,
		SpecializationIDs: in.SpecializationIDs,
	})
	if err != nil {
		return nil, err
	}
	if err := profile.CompleteOnboarding(); err != nil {
		return nil, err
	}

	if err := s.Clients.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.Dispatcher.Dispatch(ctx, profile.PullEvents())
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"profile_id": profile.ID,
			"account_id": profile.AccountID,
		}).Info("client onboarding completed")
	}

	return &CompleteOnboardingResult{
		ProfileID:           profile.ID,
		AccountID:           profile.AccountID,
		SpecializationCount: len(profile.SpecializationIDs),
		OnboardingCompleted: profile.OnboardingCompleted,
	}, nil
}

// ClientProfileUpdateInput carries optional fields; nil means unchanged.
// Country and state must be provided together or not at all.
type ClientProfileUpdateInput struct {
	DisplayName *string
	PhoneNumber *string
	Company     *string
	Country     *string
	State       *string
}

// UpdateClientProfile applies a partial update. A half-provided location is
// a usage error rejected before it reaches the aggregate.
func (s *OnboardingService) UpdateClientProfile(ctx context.Context, accountID string, in ClientProfileUpdateInput) (*entity.ClientProfile, error) {
	if (in.Country == nil) != (in.State == nil) {
		return nil, apperrors.Validation("country and state must be provided together")
	}
	profile, err := s.Clients.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := profile.UpdateProfile(entity.ClientProfileUpdate{
		DisplayName: in.DisplayName,
		PhoneNumber: in.PhoneNumber,
		Company:     in.Company,
	}); err != nil {
		return nil, err
	}
	if in.Country != nil {
		location, err := valueobject.NewLocation(*in.Country, *in.State)
		if err != nil {
			return nil, err
		}
		profile.Location = location
	}
	if err := s.Clients.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddSpecialization validates the id against the catalog, then delegates to
// the aggregate's bound check.
func (s *OnboardingService) AddSpecialization(ctx context.Context, accountID, specializationID string) (*entity.ClientProfile, error) {
	if err := s.Domain.ValidateSpecializations(ctx, []string{specializationID}); err != nil {
		return nil, err
	}
	profile, err := s.Clients.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := profile.AddSpecialization(specializationID); err != nil {
		return nil, err
	}
	if err := s.Clients.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveSpecialization delegates to the aggregate's minimum-of-one check.
func (s *OnboardingService) RemoveSpecialization(ctx context.Context, accountID, specializationID string) (*entity.ClientProfile, error) {
	profile, err := s.Clients.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := profile.RemoveSpecialization(specializationID); err != nil {
		return nil, err
	}
	if err := s.Clients.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetClientProfile loads the caller's profile.
func (s *OnboardingService) GetClientProfile(ctx context.Context, accountID string) (*entity.ClientProfile, error) {
	return s.Clients.FindByAccountID(ctx, accountID)
}
