package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	repo "github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/internal/domain/service"
	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// fakeAccountRepo is an in-memory AccountRepository.
type fakeAccountRepo struct {
	byID    map[string]*entity.Account
	updates int
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{byID: make(map[string]*entity.Account)}
	for _, a := range accounts {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*entity.Account, error) {
	if a, ok := r.byID[id]; ok {
		return a, nil
	}
	return nil, apperrors.NotFound("account not found")
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.NotFound("account not found")
}

func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAccountRepo) List(_ context.Context, filter repo.AccountFilter) (*repo.AccountPage, error) {
	items := make([]*entity.Account, 0, len(r.byID))
	for _, a := range r.byID {
		if filter.Role != nil && a.Role.String() != *filter.Role {
			continue
		}
		if filter.Banned != nil && a.Banned != *filter.Banned {
			continue
		}
		items = append(items, a)
	}
	return &repo.AccountPage{Items: items, Page: filter.Page, Limit: filter.Limit, Total: len(items), TotalPages: 1}, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.byID[a.ID] = a
	r.updates++
	return nil
}

func newModerationAccount(t *testing.T, id, email string, role valueobject.Role) *entity.Account {
	t.Helper()
	now := time.Now().UTC()
	return entity.ReconstituteAccount(id, entity.AccountProps{
		DisplayName:   "Test " + id,
		Email:         email,
		EmailVerified: true,
		Role:          role,
	}, false, nil, nil, true, now, now)
}

func newTestAccountService(accounts *fakeAccountRepo) *AccountService {
	dispatcher := NewEventDispatcher(nil, nil)
	return NewAccountService(accounts, service.NewUserDomainService(), dispatcher, nil, quietLogger(), nil, "")
}

func TestAccountServiceBanUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin bans a client", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		banned, err := svc.BanUser(ctx, admin.ID, target.ID, "spam", nil)
		require.NoError(t, err)
		assert.True(t, banned.Banned)
		require.NotNil(t, banned.BanReason)
		assert.Equal(t, "spam", *banned.BanReason)
		assert.Equal(t, 1, accounts.updates)
	})

	t.Run("banned admin cannot ban", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		reason := "misconduct"
		require.NoError(t, admin.Ban(reason, nil, "admin-0"))
		admin.PullEvents()
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		_, err := svc.BanUser(ctx, admin.ID, target.ID, "retaliation", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.EqualError(t, err, "banned administrators cannot perform admin actions")
		assert.False(t, target.Banned)
		assert.Zero(t, accounts.updates)
	})

	t.Run("admin cannot ban another admin", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		other := newModerationAccount(t, "admin-2", "other@example.com", valueobject.RoleAdmin)
		accounts := newFakeAccountRepo(admin, other)
		svc := newTestAccountService(accounts)

		_, err := svc.BanUser(ctx, admin.ID, other.ID, "dispute", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.False(t, other.Banned)
	})

	t.Run("admin cannot ban themselves", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		accounts := newFakeAccountRepo(admin)
		svc := newTestAccountService(accounts)

		_, err := svc.BanUser(ctx, admin.ID, admin.ID, "oops", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("non-admin cannot ban", func(t *testing.T) {
		actor := newModerationAccount(t, "lawyer-1", "lawyer@example.com", valueobject.RoleLawyer)
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(actor, target)
		svc := newTestAccountService(accounts)

		_, err := svc.BanUser(ctx, actor.ID, target.ID, "grudge", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.Zero(t, accounts.updates)
	})
}

func TestAccountServiceUnbanUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin unbans a client", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		require.NoError(t, target.Ban("spam", nil, admin.ID))
		target.PullEvents()
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		unbanned, err := svc.UnbanUser(ctx, admin.ID, target.ID)
		require.NoError(t, err)
		assert.False(t, unbanned.Banned)
		assert.Nil(t, unbanned.BanReason)
	})

	t.Run("banned admin cannot unban", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		require.NoError(t, admin.Ban("misconduct", nil, "admin-0"))
		admin.PullEvents()
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		require.NoError(t, target.Ban("spam", nil, "admin-0"))
		target.PullEvents()
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		_, err := svc.UnbanUser(ctx, admin.ID, target.ID)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.True(t, target.Banned)
	})
}

func TestAccountServiceChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin promotes a client to lawyer", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		updated, err := svc.ChangeRole(ctx, admin.ID, target.ID, "lawyer")
		require.NoError(t, err)
		assert.Equal(t, valueobject.RoleLawyer, updated.Role)
		assert.Equal(t, 1, accounts.updates)
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		accounts := newFakeAccountRepo(admin)
		svc := newTestAccountService(accounts)

		_, err := svc.ChangeRole(ctx, admin.ID, admin.ID, "client")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("banned admin cannot change roles", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		require.NoError(t, admin.Ban("misconduct", nil, "admin-0"))
		admin.PullEvents()
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		_, err := svc.ChangeRole(ctx, admin.ID, target.ID, "lawyer")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		assert.Equal(t, valueobject.RoleClient, target.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		target := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(admin, target)
		svc := newTestAccountService(accounts)

		_, err := svc.ChangeRole(ctx, admin.ID, target.ID, "superuser")
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestAccountServiceListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("admin lists with role filter", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		client := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		lawyer := newModerationAccount(t, "lawyer-1", "lawyer@example.com", valueobject.RoleLawyer)
		accounts := newFakeAccountRepo(admin, client, lawyer)
		svc := newTestAccountService(accounts)

		role := "client"
		page, err := svc.ListUsers(ctx, ListUsersInput{ActorID: admin.ID, Role: &role, Page: 1, Limit: 20})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, client.ID, page.Items[0].ID)
	})

	t.Run("non-admin cannot list", func(t *testing.T) {
		client := newModerationAccount(t, "client-1", "client@example.com", valueobject.RoleClient)
		accounts := newFakeAccountRepo(client)
		svc := newTestAccountService(accounts)

		_, err := svc.ListUsers(ctx, ListUsersInput{ActorID: client.ID, Page: 1, Limit: 20})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("banned admin cannot list", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		require.NoError(t, admin.Ban("misconduct", nil, "admin-0"))
		admin.PullEvents()
		accounts := newFakeAccountRepo(admin)
		svc := newTestAccountService(accounts)

		_, err := svc.ListUsers(ctx, ListUsersInput{ActorID: admin.ID, Page: 1, Limit: 20})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("unknown role filter is rejected", func(t *testing.T) {
		admin := newModerationAccount(t, "admin-1", "admin@example.com", valueobject.RoleAdmin)
		accounts := newFakeAccountRepo(admin)
		svc := newTestAccountService(accounts)

		role := "superuser"
		_, err := svc.ListUsers(ctx, ListUsersInput{ActorID: admin.ID, Role: &role, Page: 1, Limit: 20})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}
