package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Role validation errors.
var (
	ErrEmptyRoleID   = fmt.Errorf("%w: role ID cannot be empty", ErrValidation)
	ErrEmptyRoleName = fmt.Errorf("%w: role name cannot be empty", ErrValidation)
)

// Well-known role names, seeded by the schema migrations.
const (
	RoleNameAdministrator = "Administrator"
	RoleNameUser          = "User"
)

// Role represents an authorization role assigned to users. The Administrator
// flag grants the privileged operations (entity creation/deletion, direct
// edits of guarded fields). Default marks the role assigned to self-registered
// users.
type Role struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Administrator bool      `json:"administrator"`
	Default       bool      `json:"default"`
}

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoleID
	}
	if r.Name == "" {
		return ErrEmptyRoleName
	}
	return nil
}
