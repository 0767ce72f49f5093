// Package transfer implements the transfer-market subsystem: offering a
// player for sale, withdrawing an offer, buying a listed player, and querying
// the market.
package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/store"
)

// Service errors, one per business-rule violation. All are detected before
// any mutation is applied; a purchase that passes its preconditions either
// commits every effect or none.
var (
	// ErrNotOwner indicates the caller does not control the player's team.
	ErrNotOwner = errors.New("caller does not control this player's team")

	// ErrPriceCap indicates the requested asking price exceeds twice the
	// player's current value.
	ErrPriceCap = errors.New("player's price cannot be more than 100% of current value")

	// ErrNotOnMarket indicates the player is not currently listed.
	ErrNotOnMarket = errors.New("player is not in market")

	// ErrAlreadyOwned indicates the buyer's team already owns the player.
	ErrAlreadyOwned = errors.New("this player is already yours")

	// ErrNoTeam indicates the buyer does not own a team.
	ErrNoTeam = errors.New("caller does not own a team")

	// ErrInsufficientFunds indicates the buyer's wallet cannot cover the
	// asking price.
	ErrInsufficientFunds = errors.New("not enough money to buy this player")

	// ErrPlayerNotFound indicates the player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
)

// Service defines the transfer-market operations.
type Service interface {
	// ListPlayer offers the player for sale at the given asking price.
	// The caller must control the owning team; listing always requires
	// ownership, even for administrators. Returns ErrPriceCap if the price
	// exceeds twice the player's value. Listing an already-listed player
	// updates the asking price; the operation is idempotent in effect.
	ListPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID, price int64) error

	// DelistPlayer withdraws the player from the market. The caller must
	// control the owning team. The stored price is left as-is; it is only
	// meaningful while the player is listed.
	DelistPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error

	// BuyPlayer purchases the listed player for the actor's team. On
	// success the asking price moves from the buyer's wallet to the
	// seller's (if any), the player joins the buyer's team with a
	// revalued worth, and the listing is cleared, all in one transaction.
	// Of two concurrent purchases of the same player exactly one succeeds;
	// the other observes ErrNotOnMarket.
	BuyPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error

	// Market returns the listed players matching the criteria, ordered by
	// ascending player ID.
	Market(ctx context.Context, criteria store.MarketCriteria) ([]*domain.Player, error)
}
