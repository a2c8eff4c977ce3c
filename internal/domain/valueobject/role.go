package valueobject

import "github.com/lawbridge/lawbridge-backend/pkg/apperrors"

// Role is the account authorization role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLawyer Role = "lawyer"
	RoleClient Role = "client"
)

// NewRole parses a role string, rejecting anything outside the enum.
func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleLawyer, RoleClient:
		return Role(raw), nil
	default:
		return "", apperrors.Validation("role must be one of: admin, lawyer, client")
	}
}

func (r Role) String() string { return string(r) }

func (r Role) IsAdmin() bool { return r == RoleAdmin }
func (r Role) IsLawyer() bool { return r == RoleLawyer }
func (r Role) IsClient() bool { return r == RoleClient }
