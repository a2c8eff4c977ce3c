package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

const (
	minClientSpecializations = 1
	maxClientSpecializations = 3
)

// ClientProfile is the aggregate root for a client's onboarding data,
// one-to-one with an Account.
type ClientProfile struct {
	Meta
	AccountID           string
	DisplayName         string
	PhoneNumber         string
	Location            valueobject.Location
	Company             string
	SpecializationIDs   []string
	OnboardingCompleted bool
}

// ClientProfileProps is the validated input for NewClientProfile.
type ClientProfileProps struct {
	AccountID         string
	DisplayName       string
	PhoneNumber       string
	Location          valueobject.Location
	Company           string
	SpecializationIDs []string
}

// NewClientProfile validates and constructs a fresh profile. Onboarding is
// always created incomplete regardless of input.
func NewClientProfile(props ClientProfileProps) (*ClientProfile, error) {
	if strings.TrimSpace(props.AccountID) == "" {
		return nil, apperrors.Validation("account id is required")
	}
	if len(strings.TrimSpace(props.DisplayName)) < 2 {
		return nil, apperrors.Validation("display name must be at least 2 characters")
	}
	if len(props.SpecializationIDs) < minClientSpecializations {
		return nil, apperrors.Validation("at least one specialization is required")
	}
	if len(props.SpecializationIDs) > maxClientSpecializations {
		return nil, apperrors.Validation("a client can select at most 3 specializations")
	}
	ids := make([]string, 0, len(props.SpecializationIDs))
	seen := make(map[string]struct{}, len(props.SpecializationIDs))
	for _, id := range props.SpecializationIDs {
		if _, ok := seen[id]; ok {
			return nil, apperrors.Validation("duplicate specialization id: " + id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return &ClientProfile{
		Meta:              newMeta(uuid.NewString(), time.Now().UTC()),
		AccountID:         props.AccountID,
		DisplayName:       strings.TrimSpace(props.DisplayName),
		PhoneNumber:       props.PhoneNumber,
		Location:          props.Location,
		Company:           props.Company,
		SpecializationIDs: ids,
	}, nil
}

// ReconstituteClientProfile rebuilds a profile from trusted storage data.
func ReconstituteClientProfile(id string, props ClientProfileProps, onboardingCompleted bool, createdAt, updatedAt time.Time) *ClientProfile {
	return &ClientProfile{
		Meta:                Meta{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		AccountID:           props.AccountID,
		DisplayName:         props.DisplayName,
		PhoneNumber:         props.PhoneNumber,
		Location:            props.Location,
		Company:             props.Company,
		SpecializationIDs:   props.SpecializationIDs,
		OnboardingCompleted: onboardingCompleted,
	}
}

// CompleteOnboarding is a one-way transition; repeat calls fail.
func (p *ClientProfile) CompleteOnboarding() error {
	if p.OnboardingCompleted {
		return apperrors.Conflict("onboarding is already completed")
	}
	if len(p.SpecializationIDs) == 0 {
		return apperrors.Validation("at least one specialization is required")
	}
	p.OnboardingCompleted = true
	p.touch()
	p.record(ClientOnboardedEvent{
		ProfileID:           p.ID,
		AccountID:           p.AccountID,
		SpecializationCount: len(p.SpecializationIDs),
	})
	return nil
}

// AddSpecialization appends an id, keeping the set within bounds.
func (p *ClientProfile) AddSpecialization(id string) error {
	if len(p.SpecializationIDs) >= maxClientSpecializations {
		return apperrors.Validation("a client can select at most 3 specializations")
	}
	for _, existing := range p.SpecializationIDs {
		if existing == id {
			return apperrors.Validation("specialization already selected")
		}
	}
	p.SpecializationIDs = append(p.SpecializationIDs, id)
	p.touch()
	return nil
}

// RemoveSpecialization removes an id, never below the minimum of one.
func (p *ClientProfile) RemoveSpecialization(id string) error {
	if len(p.SpecializationIDs) <= minClientSpecializations {
		return apperrors.Validation("at least one specialization is required")
	}
	for i, existing := range p.SpecializationIDs {
		if existing == id {
			p.SpecializationIDs = append(p.SpecializationIDs[:i], p.SpecializationIDs[i+1:]...)
			p.touch()
			return nil
		}
	}
	return apperrors.Validation("specialization is not selected")
}

// ClientProfileUpdate carries optional fields; nil means unchanged.
// Location is immutable here: a location change requires both country and
// state together and is handled at the orchestration layer.
type ClientProfileUpdate struct {
	DisplayName *string
	PhoneNumber *string
	Company     *string
}

func (p *ClientProfile) UpdateProfile(in ClientProfileUpdate) error {
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if len(name) < 2 {
			return apperrors.Validation("display name must be at least 2 characters")
		}
		p.DisplayName = name
	}
	if in.PhoneNumber != nil {
		p.PhoneNumber = *in.PhoneNumber
	}
	if in.Company != nil {
		p.Company = *in.Company
	}
	p.touch()
	return nil
}
