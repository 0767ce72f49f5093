package transfer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/domain/pricing"
	"github.com/socceronline/soccer-api/internal/platform/logger"
	"github.com/socceronline/soccer-api/internal/store"
)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	db      *sql.DB
	players store.PlayerStore
	teams   store.TeamStore
	policy  *pricing.Policy
	logger  *slog.Logger
}

// NewService creates a new transfer Service. The db handle is the
// transaction boundary for purchases; players and teams must be stores over
// the same database.
func NewService(
	db *sql.DB,
	players store.PlayerStore,
	teams store.TeamStore,
	policy *pricing.Policy,
	logger *slog.Logger,
) (Service, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if players == nil {
		return nil, domain.NewValidationError("players", "cannot be nil", domain.ErrValidation)
	}
	if teams == nil {
		return nil, domain.NewValidationError("teams", "cannot be nil", domain.ErrValidation)
	}
	if policy == nil {
		policy = pricing.NewPolicy(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		db:      db,
		players: players,
		teams:   teams,
		policy:  policy,
		logger:  logger.With(slog.String("component", "transfer_service")),
	}, nil
}

// ListPlayer implements Service.ListPlayer
func (s *serviceImpl) ListPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID, price int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	player, err := s.controlledPlayer(ctx, actor, playerID)
	if err != nil {
		return err
	}

	if price > player.MaxListingPrice() {
		log.Debug("listing rejected by price cap",
			slog.String("player_id", playerID.String()),
			slog.Int64("price", price),
			slog.Int64("value", player.Value))
		return ErrPriceCap
	}

	player.Listed = true
	player.Price = &price
	player.UpdatedAt = time.Now().UTC()

	if err := s.players.Update(ctx, player); err != nil {
		return fmt.Errorf("failed to list player: %w", err)
	}

	log.Info("player listed on market",
		slog.String("player_id", playerID.String()),
		slog.Int64("price", price))
	return nil
}

// DelistPlayer implements Service.DelistPlayer
func (s *serviceImpl) DelistPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	player, err := s.controlledPlayer(ctx, actor, playerID)
	if err != nil {
		return err
	}

	// Price is intentionally left stale; it is only meaningful while listed.
	player.Listed = false
	player.UpdatedAt = time.Now().UTC()

	if err := s.players.Update(ctx, player); err != nil {
		return fmt.Errorf("failed to delist player: %w", err)
	}

	log.Info("player withdrawn from market",
		slog.String("player_id", playerID.String()))
	return nil
}

// BuyPlayer implements Service.BuyPlayer
func (s *serviceImpl) BuyPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Fail-fast precondition pass before any mutation. Everything is
	// re-validated inside the transaction; this pass only gives concurrent
	// losers and plainly invalid requests a cheap early exit.
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}
	if !player.Listed {
		return ErrNotOnMarket
	}

	buyer, err := s.teams.GetByOwner(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return ErrNoTeam
		}
		return err
	}

	if player.TeamID != nil && *player.TeamID == buyer.ID {
		return ErrAlreadyOwned
	}

	price, ok := player.AskingPrice()
	if !ok {
		return ErrNotOnMarket
	}
	if price > buyer.Wallet {
		return ErrInsufficientFunds
	}

	// All effects are applied in a single transaction: the compare-and-swap
	// on the listing flag decides the winner between concurrent purchases,
	// and any later failure rolls the whole purchase back.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPlayers := s.players.WithTx(tx)
		txTeams := s.teams.WithTx(tx)

		if err := txPlayers.ClearListing(ctx, playerID); err != nil {
			if errors.Is(err, store.ErrPlayerNotListed) {
				return ErrNotOnMarket
			}
			return err
		}

		// Re-read current state now that this transaction holds the row.
		player, err := txPlayers.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		price := int64(0)
		if player.Price != nil {
			price = *player.Price
		}

		buyer, err := txTeams.GetByOwner(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, store.ErrTeamNotFound) {
				return ErrNoTeam
			}
			return err
		}
		if player.TeamID != nil && *player.TeamID == buyer.ID {
			return ErrAlreadyOwned
		}
		if price > buyer.Wallet {
			return ErrInsufficientFunds
		}

		now := time.Now().UTC()

		// Credit the seller when one exists. An unowned player has no
		// seller; the buyer is still debited.
		if player.TeamID != nil {
			seller, err := txTeams.GetByID(ctx, *player.TeamID)
			if err != nil {
				return err
			}
			seller.Wallet += price
			seller.UpdatedAt = now
			if err := txTeams.Update(ctx, seller); err != nil {
				return err
			}
		}

		buyer.Wallet -= price
		buyer.UpdatedAt = now
		if err := txTeams.Update(ctx, buyer); err != nil {
			return err
		}

		oldValue := player.Value
		player.TeamID = &buyer.ID
		player.Value = s.policy.Revalue(player.Value)
		player.Listed = false
		player.UpdatedAt = now
		if err := txPlayers.Update(ctx, player); err != nil {
			return err
		}

		log.Info("player purchased",
			slog.String("player_id", playerID.String()),
			slog.String("buyer_team_id", buyer.ID.String()),
			slog.Int64("price", price),
			slog.Int64("old_value", oldValue),
			slog.Int64("new_value", player.Value))
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Market implements Service.Market
func (s *serviceImpl) Market(ctx context.Context, criteria store.MarketCriteria) ([]*domain.Player, error) {
	players, err := s.players.ListMarket(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to query market: %w", err)
	}
	return players, nil
}

// controlledPlayer loads the player and verifies the actor controls its
// owning team. Listing and delisting always require ownership; the
// administrator capability does not bypass this check. A player without a
// team has no controller.
func (s *serviceImpl) controlledPlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) (*domain.Player, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if player.TeamID == nil {
		return nil, ErrNotOwner
	}

	team, err := s.teams.GetByID(ctx, *player.TeamID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return nil, ErrNotOwner
		}
		return nil, err
	}
	if !team.IsOwnedBy(actor.UserID) {
		return nil, ErrNotOwner
	}

	return player, nil
}
