package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	repo "github.com/lawbridge/lawbridge-backend/internal/domain/repository"
	"github.com/lawbridge/lawbridge-backend/internal/domain/service"
	"github.com/lawbridge/lawbridge-backend/internal/domain/valueobject"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// AccountService orchestrates account profile updates and the
// administrative moderation operations.
type AccountService struct {
	Accounts        repo.AccountRepository
	Domain          *service.UserDomainService
	Dispatcher      *EventDispatcher
	Redis           *redis.Client
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESAccountsIndex string
}

func NewAccountService(accounts repo.AccountRepository, domain *service.UserDomainService, dispatcher *EventDispatcher, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esAccountsIndex string) *AccountService {
	return &AccountService{
		Accounts:        accounts,
		Domain:          domain,
		Dispatcher:      dispatcher,
		Redis:           rdb,
		Logger:          logger,
		ES:              es,
		ESAccountsIndex: esAccountsIndex,
	}
}

func sessionKey(accountID string) string {
	return "account:session:" + accountID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// GetAccount loads an account by id.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*entity.Account, error) {
	return s.Accounts.FindByID(ctx, accountID)
}

// UpdateProfileInput carries optional profile fields; nil means unchanged.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
}

// UpdateProfile applies a partial profile update, refreshes the session
// hash and re-indexes the account.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID string, in UpdateProfileInput) (*entity.Account, error) {
	account, err := s.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := account.UpdateProfile(entity.AccountProfileUpdate{
		DisplayName: in.DisplayName,
		AvatarURL:   in.AvatarURL,
	}); err != nil {
		return nil, err
	}
	if err := s.Accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(account.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"display_name": account.DisplayName,
			"avatar_url":   account.AvatarURL,
			"updated_at":   nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	_ = s.indexAccount(ctx, account)
	return account, nil
}

// ListUsersInput mirrors the admin listing filter.
type ListUsersInput struct {
	ActorID             string
	Role                *string
	Banned              *bool
	OnboardingCompleted *bool
	Page                int
	Limit               int
}

// ListUsers returns a filtered, paginated account listing for admins.
func (s *AccountService) ListUsers(ctx context.Context, in ListUsersInput) (*repo.AccountPage, error) {
	actor, err := s.Accounts.FindByID(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}
	if err := s.Domain.EnsureCanPerformAdminAction(actor); err != nil {
		return nil, err
	}
	if in.Role != nil {
		if _, err := valueobject.NewRole(*in.Role); err != nil {
			return nil, err
		}
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}
	return s.Accounts.List(ctx, repo.AccountFilter{
		Role:                in.Role,
		Banned:              in.Banned,
		OnboardingCompleted: in.OnboardingCompleted,
		Page:                in.Page,
		Limit:               in.Limit,
	})
}

// BanUser bans target on behalf of actor and dispatches the banned event
// after the write commits.
func (s *AccountService) BanUser(ctx context.Context, actorID, targetID, reason string, expiresAt *time.Time) (*entity.Account, error) {
	actor, target, err := s.loadActorAndTarget(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.Domain.EnsureCanPerformAdminAction(actor); err != nil {
		return nil, err
	}
	if !s.Domain.CanBanUser(target, actor) {
		return nil, apperrors.Forbidden("not allowed to ban this user")
	}
	if err := target.Ban(reason, expiresAt, actor.ID); err != nil {
		return nil, err
	}
	if err := s.Accounts.Update(ctx, target); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, target.PullEvents())
	s.invalidateSession(ctx, target.ID)
	_ = s.indexAccount(ctx, target)
	return target, nil
}

// UnbanUser clears target's ban state on behalf of actor.
func (s *AccountService) UnbanUser(ctx context.Context, actorID, targetID string) (*entity.Account, error) {
	actor, target, err := s.loadActorAndTarget(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.Domain.EnsureCanPerformAdminAction(actor); err != nil {
		return nil, err
	}
	if err := target.Unban(actor.ID); err != nil {
		return nil, err
	}
	if err := s.Accounts.Update(ctx, target); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, target.PullEvents())
	_ = s.indexAccount(ctx, target)
	return target, nil
}

// ChangeRole replaces target's role on behalf of actor.
func (s *AccountService) ChangeRole(ctx context.Context, actorID, targetID, newRole string) (*entity.Account, error) {
	actor, target, err := s.loadActorAndTarget(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.Domain.EnsureCanPerformAdminAction(actor); err != nil {
		return nil, err
	}
	if !s.Domain.CanChangeRole(target, actor) {
		return nil, apperrors.Forbidden("not allowed to change this user's role")
	}
	role, err := valueobject.NewRole(newRole)
	if err != nil {
		return nil, err
	}
	if err := target.ChangeRole(role, actor.ID); err != nil {
		return nil, err
	}
	if err := s.Accounts.Update(ctx, target); err != nil {
		return nil, err
	}
	s.Dispatcher.Dispatch(ctx, target.PullEvents())
	_ = s.indexAccount(ctx, target)
	return target, nil
}

func (s *AccountService) loadActorAndTarget(ctx context.Context, actorID, targetID string) (*entity.Account, *entity.Account, error) {
	actor, err := s.Accounts.FindByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.Accounts.FindByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return actor, target, nil
}

func (s *AccountService) invalidateSession(ctx context.Context, accountID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(accountID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("account_id", accountID).Warn("session invalidation failed")
	}
}

func (s *AccountService) indexAccount(ctx context.Context, a *entity.Account) error {
	if s.ES == nil || s.ESAccountsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":                   a.ID,
		"display_name":         a.DisplayName,
		"email":                a.Email,
		"role":                 a.Role.String(),
		"banned":               a.Banned,
		"onboarding_completed": a.OnboardingCompleted,
		"created_at":           a.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":           a.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESAccountsIndex, DocumentID: a.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("account_id", a.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("account_id", a.ID).Warn("es index response error")
	}
	return nil
}

// SearchUsers performs a multi_match search on display_name and email.
// Admin-only, same predicate as the listing.
func (s *AccountService) SearchUsers(ctx context.Context, actorID, q string, size int) ([]map[string]any, error) {
	actor, err := s.Accounts.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.Domain.EnsureCanPerformAdminAction(actor); err != nil {
		return nil, err
	}
	if s.ES == nil || s.ESAccountsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "display_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESAccountsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
