package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
)

// MarketCriteria holds the optional filters of a market query. Zero values
// mean "no constraint"; all present criteria are combined with logical AND.
type MarketCriteria struct {
	// TeamName filters by exact owning-team name.
	TeamName string

	// Country filters by exact player country.
	Country string

	// Name matches case-insensitively as a substring of either the
	// player's name or lastname.
	Name string

	// MinPrice and MaxPrice are inclusive bounds on the asking price.
	MinPrice *int64
	MaxPrice *int64
}

// PlayerStore defines the interface for player data persistence.
type PlayerStore interface {
	// Create saves a new player to the store.
	// Returns ErrInvalidEntity wrapping the cause if the referenced team
	// does not exist.
	Create(ctx context.Context, player *domain.Player) error

	// GetByID retrieves a player by its unique ID.
	// Returns ErrPlayerNotFound if the player does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)

	// List retrieves all players ordered by creation time.
	List(ctx context.Context) ([]*domain.Player, error)

	// ListByTeam retrieves all players owned by the given team.
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error)

	// Update modifies an existing player's details, including listing state.
	// Returns ErrPlayerNotFound if the player does not exist.
	Update(ctx context.Context, player *domain.Player) error

	// Delete removes a player from the store by its ID.
	// Returns ErrPlayerNotFound if the player does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListMarket retrieves the listed players matching the given criteria,
	// ordered deterministically by ascending player ID.
	ListMarket(ctx context.Context, criteria MarketCriteria) ([]*domain.Player, error)

	// ClearListing atomically flips the player's listing flag from true to
	// false. Returns ErrPlayerNotListed if the player is not currently
	// listed (or does not exist): of two concurrent purchases of the same
	// player, exactly one sees a nil error here.
	ClearListing(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlayerStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PlayerStore
}
