package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	repo "github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
	"github.com/lawbridge/lawbridge-backend/pkg/helpers"
)

// LawyerOnboardingService orchestrates the lawyer's multi-step onboarding
// state machine and document uploads.
type LawyerOnboardingService struct {
	Lawyers    repo.LawyerProfileRepository
	Languages  repo.LanguageRepository
	Specs      repo.SpecializationRepository
	Dispatcher *EventDispatcher
	GCS        *storage.Client
	GCSBucket  string
	Logger     *logrus.Logger
}

func NewLawyerOnboardingService(lawyers repo.LawyerProfileRepository, languages repo.LanguageRepository, specs repo.SpecializationRepository, dispatcher *EventDispatcher, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *LawyerOnboardingService {
	return &LawyerOnboardingService{
		Lawyers:    lawyers,
		Languages:  languages,
		Specs:      specs,
		Dispatcher: dispatcher,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		Logger:     logger,
	}
}

// StartOnboardingInput is the basic-info payload.
type StartOnboardingInput struct {
	AccountID   string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Country     string
	CurrentFirm string
}

// StartOnboarding creates the profile at the basic_info step. Uniqueness of
// account id is pre-checked here and enforced by the storage constraint.
func (s *LawyerOnboardingService) StartOnboarding(ctx context.Context, in StartOnboardingInput) (*entity.LawyerProfile, error) {
	exists, err := s.Lawyers.ExistsByAccountID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("lawyer profile already exists for this user")
	}
	profile, err := entity.NewLawyerProfile(entity.LawyerProfileProps{
		AccountID:   in.AccountID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Country:     in.Country,
		CurrentFirm: in.CurrentFirm,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Lawyers.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, profile.PullEvents())
	return profile, nil
}

// SaveCredentialsInput is the credentials-step payload.
type SaveCredentialsInput struct {
	AccountID      string
	BarNumber      string
	BarIssuedAt    time.Time
	School         string
	GraduationYear int
}

// SaveCredentials advances basic_info → credentials. The step check runs
// before the bar-number uniqueness check; the caller's own profile never
// counts as a bar-number collision.
func (s *LawyerOnboardingService) SaveCredentials(ctx context.Context, in SaveCredentialsInput) (*entity.LawyerProfile, error) {
	profile, err := s.Lawyers.FindByAccountID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if err := profile.SaveCredentials(in.BarNumber, in.BarIssuedAt, in.School, in.GraduationYear); err != nil {
		return nil, err
	}
	taken, err := s.Lawyers.ExistsByBarNumber(ctx, strings.TrimSpace(in.BarNumber), profile.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("bar number is already registered")
	}
	if err := s.Lawyers.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, profile.PullEvents())
	return profile, nil
}

// SpecializationInput tags one specialization with years of experience.
type SpecializationInput struct {
	SpecializationID  string
	YearsOfExperience int
}

// SaveSpecializationsInput is the specializations-step payload.
type SaveSpecializationsInput struct {
	AccountID   string
	Primary     []SpecializationInput
	Secondary   []SpecializationInput
	LanguageIDs []string
}

// SaveSpecializations advances credentials → specializations. Every id must
// exist in its catalog before the aggregate sees it.
func (s *LawyerOnboardingService) SaveSpecializations(ctx context.Context, in SaveSpecializationsInput) (*entity.LawyerProfile, error) {
	allIDs := make([]string, 0, len(in.Primary)+len(in.Secondary))
	for _, spec := range in.Primary {
		allIDs = append(allIDs, spec.SpecializationID)
	}
	for _, spec := range in.Secondary {
		allIDs = append(allIDs, spec.SpecializationID)
	}
	if len(allIDs) > 0 {
		ok, err := s.Specs.ExistsByIDs(ctx, allIDs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.Validation("one or more specialization ids are unknown")
		}
	}
	if len(in.LanguageIDs) > 0 {
		ok, err := s.Languages.ExistsByIDs(ctx, in.LanguageIDs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperrors.Validation("one or more language ids are unknown")
		}
	}

	profile, err := s.Lawyers.FindByAccountID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if err := profile.SaveSpecializations(toLawyerSpecs(in.Primary, true), toLawyerSpecs(in.Secondary, false), in.LanguageIDs); err != nil {
		return nil, err
	}
	if err := s.Lawyers.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, profile.PullEvents())
	return profile, nil
}

func toLawyerSpecs(in []SpecializationInput, primary bool) []entity.LawyerSpecialization {
	out := make([]entity.LawyerSpecialization, 0, len(in))
	for _, spec := range in {
		out = append(out, entity.LawyerSpecialization{
			SpecializationID:  spec.SpecializationID,
			Primary:           primary,
			YearsOfExperience: spec.YearsOfExperience,
		})
	}
	return out
}

// UploadDocument stores a supporting document in GCS and attaches its URL
// to the profile.
func (s *LawyerOnboardingService) UploadDocument(ctx context.Context, accountID string, r io.Reader, filename, contentType string) (*entity.LawyerProfile, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, apperrors.Validation("document storage is not configured")
	}
	profile, err := s.Lawyers.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	// a submitted profile must leave nothing in the bucket
	if profile.Step == entity.StepSubmitted {
		return nil, apperrors.Conflict("profile is already submitted for review")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("documents", profile.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	if err := profile.AddDocument(filename, url); err != nil {
		return nil, err
	}
	if err := s.Lawyers.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SubmitForReview runs the terminal transition and notifies downstream via
// the submitted event.
func (s *LawyerOnboardingService) SubmitForReview(ctx context.Context, accountID string) (*entity.LawyerProfile, error) {
	profile, err := s.Lawyers.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := profile.SubmitForReview(); err != nil {
		return nil, err
	}
	if err := s.Lawyers.Update(ctx, profile); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, profile.PullEvents())
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"lawyer_id":  profile.ID,
			"account_id": profile.AccountID,
		}).Info("lawyer submitted for review")
	}
	return profile, nil
}

// GetProfile loads the caller's lawyer profile with its current step.
func (s *LawyerOnboardingService) GetProfile(ctx context.Context, accountID string) (*entity.LawyerProfile, error) {
	return s.Lawyers.FindByAccountID(ctx, accountID)
}
