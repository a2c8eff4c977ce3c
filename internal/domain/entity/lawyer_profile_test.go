package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

func newTestLawyerProfile(t *testing.T) *LawyerProfile {
	t.Helper()
	p, err := NewLawyerProfile(LawyerProfileProps{
		AccountID:   "acct-1",
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john.smith@example.com",
		PhoneNumber: "+14155550100",
		Country:     "US",
		CurrentFirm: "Smith & Partners",
	})
	require.NoError(t, err)
	return p
}

func saveTestCredentials(t *testing.T, p *LawyerProfile) {
	t.Helper()
	issued := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, p.SaveCredentials("NY123456", issued, "Harvard Law School", 2012))
}

func saveTestSpecializations(t *testing.T, p *LawyerProfile) {
	t.Helper()
	primary := []LawyerSpecialization{{SpecializationID: "spec-1", YearsOfExperience: 8}}
	require.NoError(t, p.SaveSpecializations(primary, nil, []string{"lang-en"}))
}

func TestNewLawyerProfile(t *testing.T) {
	p := newTestLawyerProfile(t)
	assert.Equal(t, StepBasicInfo, p.Step)
	assert.Equal(t, StatusPending, p.Status)
	assert.False(t, p.ProfileCompleted)

	t.Run("rejects short phone number", func(t *testing.T) {
		_, err := NewLawyerProfile(LawyerProfileProps{
			AccountID:   "acct-1",
			FirstName:   "John",
			LastName:    "Smith",
			Email:       "john@example.com",
			PhoneNumber: "12345",
			Country:     "US",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestLawyerProfileStepOrder(t *testing.T) {
	t.Run("specializations before credentials conflicts", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		primary := []LawyerSpecialization{{SpecializationID: "spec-1"}}
		err := p.SaveSpecializations(primary, nil, []string{"lang-en"})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.Equal(t, "invalid onboarding step: expected credentials, current step is basic_info", err.Error())
	})

	t.Run("submit before specializations conflicts", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		saveTestCredentials(t, p)
		err := p.SubmitForReview()
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("credentials cannot be saved twice", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		saveTestCredentials(t, p)
		err := p.SaveCredentials("CA654321", time.Now(), "Yale Law School", 2014)
		require.Error(t, err)
		assert.Equal(t, "invalid onboarding step: expected basic_info, current step is credentials", err.Error())
	})
}

func TestLawyerProfileHappyPath(t *testing.T) {
	p := newTestLawyerProfile(t)

	saveTestCredentials(t, p)
	assert.Equal(t, StepCredentials, p.Step)
	require.NotNil(t, p.BarCredentials)
	assert.Equal(t, "NY123456", p.BarCredentials.BarNumber())

	saveTestSpecializations(t, p)
	assert.Equal(t, StepSpecializations, p.Step)
	require.Len(t, p.Specializations, 1)
	assert.True(t, p.Specializations[0].Primary)

	require.NoError(t, p.AddDocument("license.pdf", "https://storage.example.com/license.pdf"))

	require.NoError(t, p.SubmitForReview())
	assert.Equal(t, StepSubmitted, p.Step)
	assert.True(t, p.ProfileCompleted)
	assert.Equal(t, StatusPending, p.Status, "review outcome is independent of submission")

	var submitted bool
	for _, ev := range p.PullEvents() {
		if ev.EventName() == EventLawyerSubmitted {
			submitted = true
		}
	}
	assert.True(t, submitted)
}

func TestLawyerProfileSubmitIncomplete(t *testing.T) {
	p := newTestLawyerProfile(t)
	saveTestCredentials(t, p)
	saveTestSpecializations(t, p)
	// no documents uploaded

	err := p.SubmitForReview()
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Equal(t, "onboarding is incomplete", err.Error())

	details, ok := apperrors.DetailsOf(err).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"documents"}, details["missing"])

	// a failed submit leaves the step where it was
	assert.Equal(t, StepSpecializations, p.Step)
	assert.False(t, p.ProfileCompleted)
}

func TestLawyerProfileSpecializationRules(t *testing.T) {
	newAtCredentials := func(t *testing.T) *LawyerProfile {
		p := newTestLawyerProfile(t)
		saveTestCredentials(t, p)
		return p
	}

	t.Run("requires a primary specialization", func(t *testing.T) {
		p := newAtCredentials(t)
		err := p.SaveSpecializations(nil, nil, []string{"lang-en"})
		require.Error(t, err)
		assert.Equal(t, "at least one primary specialization is required", err.Error())
	})

	t.Run("caps primary at five", func(t *testing.T) {
		p := newAtCredentials(t)
		primary := make([]LawyerSpecialization, 6)
		for i := range primary {
			primary[i] = LawyerSpecialization{SpecializationID: string(rune('a' + i))}
		}
		err := p.SaveSpecializations(primary, nil, []string{"lang-en"})
		assert.Error(t, err)
	})

	t.Run("rejects id shared across primary and secondary", func(t *testing.T) {
		p := newAtCredentials(t)
		primary := []LawyerSpecialization{{SpecializationID: "spec-1"}}
		secondary := []LawyerSpecialization{{SpecializationID: "spec-1"}}
		err := p.SaveSpecializations(primary, secondary, []string{"lang-en"})
		require.Error(t, err)
		assert.Equal(t, "duplicate specialization id: spec-1", err.Error())
	})

	t.Run("requires a language", func(t *testing.T) {
		p := newAtCredentials(t)
		primary := []LawyerSpecialization{{SpecializationID: "spec-1"}}
		err := p.SaveSpecializations(primary, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "at least one language is required", err.Error())
	})
}

func TestLawyerProfileDocuments(t *testing.T) {
	t.Run("documents allowed before submission", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		require.NoError(t, p.AddDocument("diploma.pdf", "https://storage.example.com/diploma.pdf"))
		assert.Len(t, p.Documents, 1)
	})

	t.Run("documents blocked after submission", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		saveTestCredentials(t, p)
		saveTestSpecializations(t, p)
		require.NoError(t, p.AddDocument("license.pdf", "https://storage.example.com/license.pdf"))
		require.NoError(t, p.SubmitForReview())

		err := p.AddDocument("extra.pdf", "https://storage.example.com/extra.pdf")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("url is required", func(t *testing.T) {
		p := newTestLawyerProfile(t)
		err := p.AddDocument("file.pdf", "  ")
		assert.Error(t, err)
	})
}
