package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
)

// RoleStore defines the interface for role lookups. Roles are seeded by the
// schema migrations and never mutated at runtime, so the interface is
// read-only.
type RoleStore interface {
	// GetByID retrieves a role by its unique ID.
	// Returns ErrRoleNotFound if the role does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)

	// GetByName retrieves a role by its unique name.
	// Returns ErrRoleNotFound if the role does not exist.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// GetDefault retrieves the role assigned to self-registered users.
	// Returns ErrRoleNotFound if no default role is seeded.
	GetDefault(ctx context.Context) (*domain.Role, error)

	// List retrieves all roles.
	List(ctx context.Context) ([]*domain.Role, error)
}
