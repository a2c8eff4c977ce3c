package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// Account is the aggregate root for identity, role and ban state. Accounts
// are created by the auth provider; this aggregate only mutates them.
type Account struct {
	Meta
	DisplayName         string
	Email               string
	EmailVerified       bool
	AvatarURL           string
	Role                valueobject.Role
	Banned              bool
	BanReason           *string
	BanExpiresAt        *time.Time
	OnboardingCompleted bool
}

// AccountProps is the validated input for NewAccount.
type AccountProps struct {
	DisplayName   string
	Email         string
	EmailVerified bool
	AvatarURL     string
	Role          valueobject.Role
}

// NewAccount runs full validation and yields a fresh aggregate. Used by the
// seed path; in production the auth provider inserts accounts directly.
func NewAccount(props AccountProps) (*Account, error) {
	if len(strings.TrimSpace(props.DisplayName)) < 2 {
		return nil, apperrors.Validation("display name must be at least 2 characters")
	}
	email, err := valueobject.NewEmail(props.Email)
	if err != nil {
		return nil, err
	}
	if props.Role == "" {
		props.Role = valueobject.RoleClient
	}
	return &Account{
		Meta:          newMeta(uuid.NewString(), time.Now().UTC()),
		DisplayName:   strings.TrimSpace(props.DisplayName),
		Email:         email.String(),
		EmailVerified: props.EmailVerified,
		AvatarURL:     props.AvatarURL,
		Role:          props.Role,
	}, nil
}

// ReconstituteAccount rebuilds an aggregate from trusted storage data,
// bypassing validation.
func ReconstituteAccount(id string, props AccountProps, banned bool, banReason *string, banExpiresAt *time.Time, onboardingCompleted bool, createdAt, updatedAt time.Time) *Account {
	return &Account{
		Meta:                Meta{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		DisplayName:         props.DisplayName,
		Email:               props.Email,
		EmailVerified:       props.EmailVerified,
		AvatarURL:           props.AvatarURL,
		Role:                props.Role,
		Banned:              banned,
		BanReason:           banReason,
		BanExpiresAt:        banExpiresAt,
		OnboardingCompleted: onboardingCompleted,
	}
}

// AccountProfileUpdate carries optional profile fields; nil means unchanged.
type AccountProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
}

// UpdateProfile applies only the provided fields.
func (a *Account) UpdateProfile(in AccountProfileUpdate) error {
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if len(name) < 2 {
			return apperrors.Validation("display name must be at least 2 characters")
		}
		a.DisplayName = name
	}
	if in.AvatarURL != nil {
		a.AvatarURL = *in.AvatarURL
	}
	a.touch()
	return nil
}

// ChangeRole replaces the role. No-op changes are rejected rather than
// silently accepted.
func (a *Account) ChangeRole(newRole valueobject.Role, actingAdminID string) error {
	if newRole == a.Role {
		return apperrors.Validation("account already has this role")
	}
	oldRole := a.Role
	a.Role = newRole
	a.touch()
	a.record(RoleChangedEvent{
		AccountID:     a.ID,
		Email:         a.Email,
		OldRole:       oldRole.String(),
		NewRole:       newRole.String(),
		ActingAdminID: actingAdminID,
	})
	return nil
}

// Ban marks the account banned with a reason and optional expiry.
func (a *Account) Ban(reason string, expiresAt *time.Time, actingAdminID string) error {
	if a.Banned {
		return apperrors.Validation("user is already banned")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("ban reason is required")
	}
	a.Banned = true
	a.BanReason = &reason
	a.BanExpiresAt = expiresAt
	a.touch()
	a.record(AccountBannedEvent{
		AccountID:     a.ID,
		Email:         a.Email,
		Reason:        reason,
		ExpiresAt:     expiresAt,
		ActingAdminID: actingAdminID,
	})
	return nil
}

// Unban clears ban state.
func (a *Account) Unban(actingAdminID string) error {
	if !a.Banned {
		return apperrors.Validation("user is not banned")
	}
	a.Banned = false
	a.BanReason = nil
	a.BanExpiresAt = nil
	a.touch()
	a.record(AccountUnbannedEvent{AccountID: a.ID, Email: a.Email, ActingAdminID: actingAdminID})
	return nil
}

// IsBanExpired is advisory only: the aggregate never auto-unbans, an admin
// must call Unban explicitly.
func (a *Account) IsBanExpired() bool {
	if !a.Banned || a.BanExpiresAt == nil {
		return false
	}
	return a.BanExpiresAt.Before(time.Now().UTC())
}

// CompleteOnboarding flips the account-level flag. The idempotency guard
// lives on ClientProfile, not here.
func (a *Account) CompleteOnboarding() {
	a.OnboardingCompleted = true
	a.touch()
}
