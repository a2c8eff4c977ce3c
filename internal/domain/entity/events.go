package entity

import "time"

// Event names double as routing keys on the notification queue.
const (
	EventRoleChanged         = "account.role_changed"
	EventAccountBanned       = "account.banned"
	EventAccountUnbanned     = "account.unbanned"
	EventClientOnboarded     = "client.onboarded"
	EventOnboardingStepSaved = "lawyer.onboarding_step_completed"
	EventLawyerSubmitted     = "lawyer.submitted_for_review"
)

type RoleChangedEvent struct {
	AccountID     string `json:"account_id"`
	Email         string `json:"email"`
	OldRole       string `json:"old_role"`
	NewRole       string `json:"new_role"`
	ActingAdminID string `json:"acting_admin_id"`
}

func (RoleChangedEvent) EventName() string { return EventRoleChanged }

type AccountBannedEvent struct {
	AccountID     string     `json:"account_id"`
	Email         string     `json:"email"`
	Reason        string     `json:"reason"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	ActingAdminID string     `json:"acting_admin_id,omitempty"`
}

func (AccountBannedEvent) EventName() string { return EventAccountBanned }

type AccountUnbannedEvent struct {
	AccountID     string `json:"account_id"`
	Email         string `json:"email"`
	ActingAdminID string `json:"acting_admin_id,omitempty"`
}

func (AccountUnbannedEvent) EventName() string { return EventAccountUnbanned }

type ClientOnboardedEvent struct {
	ProfileID           string `json:"profile_id"`
	AccountID           string `json:"account_id"`
	SpecializationCount int    `json:"specialization_count"`
}

func (ClientOnboardedEvent) EventName() string { return EventClientOnboarded }

type OnboardingStepCompletedEvent struct {
	LawyerID    string `json:"lawyer_id"`
	CurrentStep string `json:"current_step"`
	NextStep    string `json:"next_step"`
}

func (OnboardingStepCompletedEvent) EventName() string { return EventOnboardingStepSaved }

type LawyerSubmittedEvent struct {
	LawyerID  string `json:"lawyer_id"`
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

func (LawyerSubmittedEvent) EventName() string { return EventLawyerSubmitted }
