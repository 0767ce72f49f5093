package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
)

// TeamStore defines the interface for team data persistence.
type TeamStore interface {
	// Create saves a new team to the store.
	// Returns ErrOwnerHasTeam if the owner already has a team.
	// Returns ErrInvalidEntity wrapping the cause if the referenced owner
	// does not exist.
	Create(ctx context.Context, team *domain.Team) error

	// GetByID retrieves a team by its unique ID.
	// Returns ErrTeamNotFound if the team does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)

	// GetByOwner retrieves the team owned by the given user.
	// Returns ErrTeamNotFound if the user owns no team.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Team, error)

	// List retrieves all teams ordered by creation time.
	List(ctx context.Context) ([]*domain.Team, error)

	// Update modifies an existing team's details, including its wallet.
	// Returns ErrTeamNotFound if the team does not exist.
	// Returns ErrOwnerHasTeam if reassigning to an owner who has a team.
	Update(ctx context.Context, team *domain.Team) error

	// Delete removes a team from the store by its ID. Players owned by the
	// team become unassigned.
	// Returns ErrTeamNotFound if the team does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// TotalValue computes the sum of the values of all players owned by the
	// team. A team with no players has a total value of zero.
	TotalValue(ctx context.Context, id uuid.UUID) (int64, error)

	// WithTx returns a new TeamStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TeamStore
}
