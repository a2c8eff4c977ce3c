package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

func newTestClientProfile(t *testing.T, specIDs ...string) *ClientProfile {
	t.Helper()
	loc, err := valueobject.NewLocation("US", "California")
	require.NoError(t, err)
	p, err := NewClientProfile(ClientProfileProps{
		AccountID:         "acct-1",
		DisplayName:       "Jane Doe",
		PhoneNumber:       "+14155550100",
		Location:          loc,
		SpecializationIDs: specIDs,
	})
	require.NoError(t, err)
	return p
}

func TestNewClientProfile(t *testing.T) {
	t.Run("created incomplete", func(t *testing.T) {
		p := newTestClientProfile(t, "spec-1", "spec-2")
		assert.False(t, p.OnboardingCompleted)
		assert.Len(t, p.SpecializationIDs, 2)
	})

	t.Run("requires at least one specialization", func(t *testing.T) {
		loc, _ := valueobject.NewLocation("US", "California")
		_, err := NewClientProfile(ClientProfileProps{
			AccountID:   "acct-1",
			DisplayName: "Jane Doe",
			Location:    loc,
		})
		require.Error(t, err)
		assert.Equal(t, "at least one specialization is required", err.Error())
	})

	t.Run("caps specializations at three", func(t *testing.T) {
		loc, _ := valueobject.NewLocation("US", "California")
		_, err := NewClientProfile(ClientProfileProps{
			AccountID:         "acct-1",
			DisplayName:       "Jane Doe",
			Location:          loc,
			SpecializationIDs: []string{"a", "b", "c", "d"},
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		loc, _ := valueobject.NewLocation("US", "California")
		_, err := NewClientProfile(ClientProfileProps{
			AccountID:         "acct-1",
			DisplayName:       "Jane Doe",
			Location:          loc,
			SpecializationIDs: []string{"a", "a"},
		})
		assert.Error(t, err)
	})
}

func TestClientProfileCompleteOnboarding(t *testing.T) {
	t.Run("one-way transition with event", func(t *testing.T) {
		p := newTestClientProfile(t, "spec-1", "spec-2")
		require.NoError(t, p.CompleteOnboarding())
		assert.True(t, p.OnboardingCompleted)

		events := p.PullEvents()
		require.Len(t, events, 1)
		ev := events[0].(ClientOnboardedEvent)
		assert.Equal(t, p.ID, ev.ProfileID)
		assert.Equal(t, 2, ev.SpecializationCount)
	})

	t.Run("repeat completion conflicts", func(t *testing.T) {
		p := newTestClientProfile(t, "spec-1")
		require.NoError(t, p.CompleteOnboarding())
		err := p.CompleteOnboarding()
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.Equal(t, "onboarding is already completed", err.Error())
	})
}

func TestClientProfileSpecializationBounds(t *testing.T) {
	t.Run("add beyond three fails", func(t *testing.T) {
		p := newTestClientProfile(t, "a", "b", "c")
		err := p.AddSpecialization("d")
		require.Error(t, err)
		assert.Equal(t, "a client can select at most 3 specializations", err.Error())
	})

	t.Run("add duplicate fails", func(t *testing.T) {
		p := newTestClientProfile(t, "a")
		err := p.AddSpecialization("a")
		assert.Error(t, err)
	})

	t.Run("remove below one fails", func(t *testing.T) {
		p := newTestClientProfile(t, "a")
		err := p.RemoveSpecialization("a")
		require.Error(t, err)
		assert.Equal(t, "at least one specialization is required", err.Error())
	})

	t.Run("remove unknown id fails", func(t *testing.T) {
		p := newTestClientProfile(t, "a", "b")
		err := p.RemoveSpecialization("z")
		assert.Error(t, err)
		assert.Len(t, p.SpecializationIDs, 2)
	})

	t.Run("add then remove round trip", func(t *testing.T) {
		p := newTestClientProfile(t, "a")
		require.NoError(t, p.AddSpecialization("b"))
		require.NoError(t, p.RemoveSpecialization("a"))
		assert.Equal(t, []string{"b"}, p.SpecializationIDs)
	})
}

func TestClientProfileUpdate(t *testing.T) {
	p := newTestClientProfile(t, "a")

	name := "Janet"
	company := "Acme Corp"
	require.NoError(t, p.UpdateProfile(ClientProfileUpdate{DisplayName: &name, Company: &company}))
	assert.Equal(t, "Janet", p.DisplayName)
	assert.Equal(t, "Acme Corp", p.Company)

	short := "X"
	err := p.UpdateProfile(ClientProfileUpdate{DisplayName: &short})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
