package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/internal/domain/service"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// fakeClientRepo is an in-memory ClientProfileRepository.
type fakeClientRepo struct {
	byAccount map[string]*entity.ClientProfile
	saves     int
	updates   int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byAccount: make(map[string]*entity.ClientProfile)}
}

func (r *fakeClientRepo) FindByID(_ context.Context, id string) (*entity.ClientProfile, error) {
	for _, p := range r.byAccount {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("client profile not found")
}

func (r *fakeClientRepo) FindByAccountID(_ context.Context, accountID string) (*entity.ClientProfile, error) {
	if p, ok := r.byAccount[accountID]; ok {
		return p, nil
	}
	return nil, apperrors.NotFound("client profile not found")
}

func (r *fakeClientRepo) ExistsByAccountID(_ context.Context, accountID string) (bool, error) {
	_, ok := r.byAccount[accountID]
	return ok, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.ClientProfile, error) {
	out := make([]*entity.ClientProfile, 0, len(r.byAccount))
	for _, p := range r.byAccount {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeClientRepo) Save(_ context.Context, p *entity.ClientProfile) error {
	if _, ok := r.byAccount[p.AccountID]; ok {
		return apperrors.Conflict("client profile already exists for this user")
	}
	r.byAccount[p.AccountID] = p
	r.saves++
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, p *entity.ClientProfile) error {
	r.byAccount[p.AccountID] = p
	r.updates++
	return nil
}

// fakeSpecRepo knows a fixed set of catalog ids.
type fakeSpecRepo struct {
	known map[string]string // id -> name
}

func newFakeSpecRepo(ids ...string) *fakeSpecRepo {
	known := make(map[string]string, len(ids))
	for _, id := range ids {
		known[id] = "Specialization " + id
	}
	return &fakeSpecRepo{known: known}
}

func (r *fakeSpecRepo) FindAll(_ context.Context) ([]*entity.Specialization, error) {
	out := make([]*entity.Specialization, 0, len(r.known))
	for id, name := range r.known {
		out = append(out, &entity.Specialization{ID: id, Name: name, Active: true, CreatedAt: time.Now(), UpdatedAt: time.Now()})
	}
	return out, nil
}

func (r *fakeSpecRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Specialization, error) {
	out := make([]*entity.Specialization, 0, len(ids))
	for _, id := range ids {
		if name, ok := r.known[id]; ok {
			out = append(out, &entity.Specialization{ID: id, Name: name, Active: true})
		}
	}
	return out, nil
}

func (r *fakeSpecRepo) ExistsByIDs(_ context.Context, ids []string) (bool, error) {
	for _, id := range ids {
		if _, ok := r.known[id]; !ok {
			return false, nil
		}
	}
	return len(ids) > 0, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestOnboardingService(clients *fakeClientRepo, specs *fakeSpecRepo) *OnboardingService {
	domain := service.NewClientDomainService(clients, specs)
	dispatcher := NewEventDispatcher(nil, nil)
	return NewOnboardingService(clients, domain, dispatcher, quietLogger())
}

func validInput() CompleteOnboardingInput {
	return CompleteOnboardingInput{
		AccountID:         "acct-1",
		DisplayName:       "Jane Doe",
		EmailVerified:     true,
		PhoneNumber:       "+14155550100",
		Country:           "US",
		State:             "California",
		SpecializationIDs: []string{"spec-1", "spec-2"},
	}
}

func TestCompleteOnboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path persists a completed profile", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2"))

		res, err := svc.CompleteOnboarding(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, "acct-1", res.AccountID)
		assert.Equal(t, 2, res.SpecializationCount)
		assert.True(t, res.OnboardingCompleted)

		stored, err := clients.FindByAccountID(ctx, "acct-1")
		require.NoError(t, err)
		assert.True(t, stored.OnboardingCompleted)
		assert.Empty(t, stored.PullEvents(), "events are drained after dispatch")
	})

	t.Run("unverified email is rejected before any check", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2"))

		in := validInput()
		in.EmailVerified = false
		_, err := svc.CompleteOnboarding(ctx, in)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
		assert.Zero(t, clients.saves)
	})

	t.Run("existing profile conflicts without writing", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2"))

		_, err := svc.CompleteOnboarding(ctx, validInput())
		require.NoError(t, err)

		_, err = svc.CompleteOnboarding(ctx, validInput())
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.Equal(t, "client profile already exists for this user", err.Error())
		assert.Equal(t, 1, clients.saves)
	})

	t.Run("unknown specialization ids are named", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1"))

		in := validInput()
		in.SpecializationIDs = []string{"spec-1", "spec-404"}
		_, err := svc.CompleteOnboarding(ctx, in)
		require.Error(t, err)
		assert.Equal(t, "invalid specialization ids: spec-404", err.Error())

		details, ok := apperrors.DetailsOf(err).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []string{"spec-404"}, details["invalid_ids"])
		assert.Zero(t, clients.saves)
	})

	t.Run("empty specialization list never reaches the store", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1"))

		in := validInput()
		in.SpecializationIDs = nil
		_, err := svc.CompleteOnboarding(ctx, in)
		require.Error(t, err)
		assert.Equal(t, "at least one specialization is required", err.Error())
		assert.Zero(t, clients.saves)
	})

	t.Run("half location is rejected", func(t *testing.T) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2"))

		in := validInput()
		in.State = ""
		_, err := svc.CompleteOnboarding(ctx, in)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		assert.Zero(t, clients.saves)
	})
}

func TestUpdateClientProfile(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*OnboardingService, *fakeClientRepo) {
		clients := newFakeClientRepo()
		svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2"))
		_, err := svc.CompleteOnboarding(ctx, validInput())
		require.NoError(t, err)
		return svc, clients
	}

	t.Run("country without state fails", func(t *testing.T) {
		svc, clients := seed(t)
		country := "CA"
		_, err := svc.UpdateClientProfile(ctx, "acct-1", ClientProfileUpdateInput{Country: &country})
		require.Error(t, err)
		assert.Equal(t, "country and state must be provided together", err.Error())
		assert.Zero(t, clients.updates)
	})

	t.Run("full location replacement", func(t *testing.T) {
		svc, _ := seed(t)
		country, state := "CA", "Ontario"
		p, err := svc.UpdateClientProfile(ctx, "acct-1", ClientProfileUpdateInput{Country: &country, State: &state})
		require.NoError(t, err)
		assert.Equal(t, "CA", p.Location.Country())
		assert.Equal(t, "Ontario", p.Location.State())
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		svc, _ := seed(t)
		name := "Someone"
		_, err := svc.UpdateClientProfile(ctx, "acct-404", ClientProfileUpdateInput{DisplayName: &name})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestAddRemoveSpecialization(t *testing.T) {
	ctx := context.Background()
	clients := newFakeClientRepo()
	svc := newTestOnboardingService(clients, newFakeSpecRepo("spec-1", "spec-2", "spec-3"))

	in := validInput()
	in.SpecializationIDs = []string{"spec-1"}
	_, err := svc.CompleteOnboarding(ctx, in)
	require.NoError(t, err)

	t.Run("add validates against the catalog", func(t *testing.T) {
		_, err := svc.AddSpecialization(ctx, "acct-1", "spec-404")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("add and remove round trip", func(t *testing.T) {
		p, err := svc.AddSpecialization(ctx, "acct-1", "spec-2")
		require.NoError(t, err)
		assert.Len(t, p.SpecializationIDs, 2)

		p, err = svc.RemoveSpecialization(ctx, "acct-1", "spec-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"spec-2"}, p.SpecializationIDs)
	})

	t.Run("removing the last one fails", func(t *testing.T) {
		_, err := svc.RemoveSpecialization(ctx, "acct-1", "spec-2")
		require.Error(t, err)
		assert.Equal(t, "at least one specialization is required", err.Error())
	})
}
