package service

import (
	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
	"github.com/lawbridge/lawbridge-backend/pkg/apperrors"
)

// UserDomainService holds cross-aggregate authorization predicates for
// administrative actions.
type UserDomainService struct{}

func NewUserDomainService() *UserDomainService { return &UserDomainService{} }

// EnsureCanPerformAdminAction fails unless the actor is a non-banned admin.
func (s *UserDomainService) EnsureCanPerformAdminAction(actor *entity.Account) error {
	if actor == nil {
		return apperrors.Unauthorized("authentication required")
	}
	if !actor.Role.IsAdmin() {
		return apperrors.Forbidden("admin privileges required")
	}
	if actor.Banned {
		return apperrors.Forbidden("banned administrators cannot perform admin actions")
	}
	return nil
}

// CanChangeRole reports whether actor may change target's role.
// Self-role-change is forbidden.
func (s *UserDomainService) CanChangeRole(target, actor *entity.Account) bool {
	if target == nil || actor == nil {
		return false
	}
	if !actor.Role.IsAdmin() {
		return false
	}
	return target.ID != actor.ID
}

// CanBanUser reports whether actor may ban target. Admins cannot ban
// themselves or other admins.
func (s *UserDomainService) CanBanUser(target, actor *entity.Account) bool {
	if target == nil || actor == nil {
		return false
	}
	if !actor.Role.IsAdmin() {
		return false
	}
	if target.ID == actor.ID {
		return false
	}
	return !target.Role.IsAdmin()
}
