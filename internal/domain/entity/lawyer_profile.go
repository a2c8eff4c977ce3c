package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// OnboardingStep is a stage in the lawyer's linear registration state
// machine. Steps only advance forward, never backward.
type OnboardingStep string

const (
	StepBasicInfo       OnboardingStep = "basic_info"
	StepCredentials     OnboardingStep = "credentials"
	StepSpecializations OnboardingStep = "specializations"
	StepSubmitted       OnboardingStep = "submitted"
)

// ApplicationStatus is the admin-review outcome, independent of the
// onboarding step machine.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
	StatusRevision ApplicationStatus = "revision"
)

const (
	maxPrimarySpecializations   = 5
	maxSecondarySpecializations = 3
)

// LawyerSpecialization tags a specialization as primary or secondary with
// the lawyer's years of experience in it.
type LawyerSpecialization struct {
	SpecializationID  string
	Primary           bool
	YearsOfExperience int
}

// LawyerDocument is an uploaded supporting document (license scan, diploma).
type LawyerDocument struct {
	ID         string
	Name       string
	URL        string
	UploadedAt time.Time
}

// LawyerProfile is the aggregate root for a lawyer's multi-step onboarding,
// one-to-one with an Account.
type LawyerProfile struct {
	Meta
	AccountID        string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Country          string
	CurrentFirm      string
	BarCredentials   *valueobject.BarCredentials
	Education        *valueobject.Education
	Step             OnboardingStep
	Status           ApplicationStatus
	ProfileCompleted bool
	Documents        []LawyerDocument
	Specializations  []LawyerSpecialization
	LanguageIDs      []string
}

// LawyerProfileProps is the validated input for NewLawyerProfile.
type LawyerProfileProps struct {
	AccountID   string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Country     string
	CurrentFirm string
}

// NewLawyerProfile validates the basic-info step and constructs a fresh
// profile at the entry state.
func NewLawyerProfile(props LawyerProfileProps) (*LawyerProfile, error) {
	if strings.TrimSpace(props.AccountID) == "" {
		return nil, apperrors.Validation("account id is required")
	}
	if len(strings.TrimSpace(props.FirstName)) < 2 {
		return nil, apperrors.Validation("first name must be at least 2 characters")
	}
	if len(strings.TrimSpace(props.LastName)) < 2 {
		return nil, apperrors.Validation("last name must be at least 2 characters")
	}
	if len(strings.TrimSpace(props.PhoneNumber)) < 10 {
		return nil, apperrors.Validation("phone number must be at least 10 characters")
	}
	email, err := valueobject.NewEmail(props.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(props.Country) == "" {
		return nil, apperrors.Validation("country is required")
	}
	return &LawyerProfile{
		Meta:        newMeta(uuid.NewString(), time.Now().UTC()),
		AccountID:   props.AccountID,
		FirstName:   strings.TrimSpace(props.FirstName),
		LastName:    strings.TrimSpace(props.LastName),
		Email:       email.String(),
		PhoneNumber: strings.TrimSpace(props.PhoneNumber),
		Country:     strings.TrimSpace(props.Country),
		CurrentFirm: props.CurrentFirm,
		Step:        StepBasicInfo,
		Status:      StatusPending,
	}, nil
}

// ReconstituteLawyerProfile rebuilds a profile from trusted storage data.
func ReconstituteLawyerProfile(id string, props LawyerProfileProps, creds *valueobject.BarCredentials, edu *valueobject.Education, step OnboardingStep, status ApplicationStatus, completed bool, docs []LawyerDocument, specs []LawyerSpecialization, langIDs []string, createdAt, updatedAt time.Time) *LawyerProfile {
	return &LawyerProfile{
		Meta:             Meta{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		AccountID:        props.AccountID,
		FirstName:        props.FirstName,
		LastName:         props.LastName,
		Email:            props.Email,
		PhoneNumber:      props.PhoneNumber,
		Country:          props.Country,
		CurrentFirm:      props.CurrentFirm,
		BarCredentials:   creds,
		Education:        edu,
		Step:             step,
		Status:           status,
		ProfileCompleted: completed,
		Documents:        docs,
		Specializations:  specs,
		LanguageIDs:      langIDs,
	}
}

func (l *LawyerProfile) invalidStep(expected OnboardingStep) error {
	return apperrors.Conflict("invalid onboarding step: expected " + string(expected) + ", current step is " + string(l.Step))
}

func (l *LawyerProfile) advance(next OnboardingStep) {
	current := l.Step
	l.Step = next
	l.touch()
	l.record(OnboardingStepCompletedEvent{
		LawyerID:    l.ID,
		CurrentStep: string(current),
		NextStep:    string(next),
	})
}

// SaveCredentials records bar credentials and education, advancing
// basic_info → credentials. Allowed only from basic_info.
func (l *LawyerProfile) SaveCredentials(barNumber string, issuedAt time.Time, school string, graduationYear int) error {
	if l.Step != StepBasicInfo {
		return l.invalidStep(StepBasicInfo)
	}
	creds, err := valueobject.NewBarCredentials(barNumber, issuedAt)
	if err != nil {
		return err
	}
	edu, err := valueobject.NewEducation(school, graduationYear)
	if err != nil {
		return err
	}
	l.BarCredentials = &creds
	l.Education = &edu
	l.advance(StepCredentials)
	return nil
}

// SaveSpecializations records specializations and languages, advancing
// credentials → specializations. Allowed only from credentials.
func (l *LawyerProfile) SaveSpecializations(primary, secondary []LawyerSpecialization, languageIDs []string) error {
	if l.Step != StepCredentials {
		return l.invalidStep(StepCredentials)
	}
	if len(primary) == 0 {
		return apperrors.Validation("at least one primary specialization is required")
	}
	if len(primary) > maxPrimarySpecializations {
		return apperrors.Validation("at most 5 primary specializations are allowed")
	}
	if len(secondary) > maxSecondarySpecializations {
		return apperrors.Validation("at most 3 secondary specializations are allowed")
	}
	if len(languageIDs) == 0 {
		return apperrors.Validation("at least one language is required")
	}
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	specs := make([]LawyerSpecialization, 0, len(primary)+len(secondary))
	for _, s := range primary {
		if _, ok := seen[s.SpecializationID]; ok {
			return apperrors.Validation("duplicate specialization id: " + s.SpecializationID)
		}
		seen[s.SpecializationID] = struct{}{}
		s.Primary = true
		specs = append(specs, s)
	}
	for _, s := range secondary {
		if _, ok := seen[s.SpecializationID]; ok {
			return apperrors.Validation("duplicate specialization id: " + s.SpecializationID)
		}
		seen[s.SpecializationID] = struct{}{}
		s.Primary = false
		specs = append(specs, s)
	}
	l.Specializations = specs
	l.LanguageIDs = languageIDs
	l.advance(StepSpecializations)
	return nil
}

// AddDocument attaches an uploaded document reference. Documents may be
// added any time before submission.
func (l *LawyerProfile) AddDocument(name, url string) error {
	if l.Step == StepSubmitted {
		return apperrors.Conflict("profile is already submitted for review")
	}
	if strings.TrimSpace(url) == "" {
		return apperrors.Validation("document url is required")
	}
	l.Documents = append(l.Documents, LawyerDocument{
		ID:         uuid.NewString(),
		Name:       name,
		URL:        url,
		UploadedAt: time.Now().UTC(),
	})
	l.touch()
	return nil
}

// SubmitForReview is the terminal step transition. It requires the full
// application to be present; on failure the step stays at specializations.
func (l *LawyerProfile) SubmitForReview() error {
	if l.Step != StepSpecializations {
		return l.invalidStep(StepSpecializations)
	}
	missing := make([]string, 0, 4)
	if l.BarCredentials == nil {
		missing = append(missing, "bar_credentials")
	}
	if l.Education == nil {
		missing = append(missing, "education")
	}
	if len(l.Documents) == 0 {
		missing = append(missing, "documents")
	}
	if len(l.Specializations) == 0 {
		missing = append(missing, "specializations")
	}
	if len(missing) > 0 {
		return apperrors.ValidationWithDetails("onboarding is incomplete", map[string]any{"missing": missing})
	}
	l.ProfileCompleted = true
	l.advance(StepSubmitted)
	l.record(LawyerSubmittedEvent{LawyerID: l.ID, AccountID: l.AccountID, Email: l.Email, FirstName: l.FirstName})
	return nil
}
