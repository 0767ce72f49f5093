package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/store"
)

// UpdatePlayerParams holds the optional fields of a player edit. Nil fields
// are left unchanged. Only Name, LastName, and Country may be changed by the
// controlling owner; everything else requires an administrator.
type UpdatePlayerParams struct {
	Name     *string
	LastName *string
	Country  *string
	Position *domain.Position
	Age      *int
	Value    *int64
	TeamID   *uuid.UUID
	// ClearTeam detaches the player from its team. Mutually exclusive
	// with TeamID.
	ClearTeam bool
	Listed    *bool
	Price     *int64
}

// PlayerService provides player operations with ownership-based access control.
type PlayerService interface {
	// CreatePlayer creates a player. Administrators only. A nil teamID
	// creates an unassigned player.
	CreatePlayer(ctx context.Context, actor domain.Actor, name, lastName, country string, position domain.Position, age int, value int64, teamID *uuid.UUID) (*domain.Player, error)

	// GetPlayer retrieves a player by ID.
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)

	// ListPlayers retrieves all players.
	ListPlayers(ctx context.Context) ([]*domain.Player, error)

	// UpdatePlayer edits a player. The controlling team owner may change
	// name, lastname, and country; position, age, value, team, and the
	// listing state require an administrator.
	UpdatePlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID, params UpdatePlayerParams) (*domain.Player, error)

	// DeletePlayer removes a player. Administrators only.
	DeletePlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error
}

// PlayerServiceImpl implements the PlayerService interface
type PlayerServiceImpl struct {
	players store.PlayerStore
	teams   store.TeamStore
	logger  *slog.Logger
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(players store.PlayerStore, teams store.TeamStore, logger *slog.Logger) *PlayerServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerServiceImpl{
		players: players,
		teams:   teams,
		logger:  logger.With(slog.String("component", "player_service")),
	}
}

// Ensure PlayerServiceImpl implements PlayerService
var _ PlayerService = (*PlayerServiceImpl)(nil)

// CreatePlayer implements PlayerService.CreatePlayer
func (s *PlayerServiceImpl) CreatePlayer(
	ctx context.Context,
	actor domain.Actor,
	name, lastName, country string,
	position domain.Position,
	age int,
	value int64,
	teamID *uuid.UUID,
) (*domain.Player, error) {
	if !actor.Administrator {
		return nil, ErrPermissionDenied
	}

	player, err := domain.NewPlayer(name, lastName, country, position, age, value, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.players.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// GetPlayer implements PlayerService.GetPlayer
func (s *PlayerServiceImpl) GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return s.players.GetByID(ctx, playerID)
}

// ListPlayers implements PlayerService.ListPlayers
func (s *PlayerServiceImpl) ListPlayers(ctx context.Context) ([]*domain.Player, error) {
	return s.players.List(ctx)
}

// UpdatePlayer implements PlayerService.UpdatePlayer
func (s *PlayerServiceImpl) UpdatePlayer(
	ctx context.Context,
	actor domain.Actor,
	playerID uuid.UUID,
	params UpdatePlayerParams,
) (*domain.Player, error) {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !actor.Administrator {
		if err := s.checkController(ctx, actor, player); err != nil {
			return nil, err
		}
		if params.Position != nil || params.Age != nil || params.Value != nil ||
			params.TeamID != nil || params.ClearTeam ||
			params.Listed != nil || params.Price != nil {
			return nil, ErrPermissionDenied
		}
	}

	if params.Name != nil {
		player.Name = *params.Name
	}
	if params.LastName != nil {
		player.LastName = *params.LastName
	}
	if params.Country != nil {
		player.Country = *params.Country
	}
	if params.Position != nil {
		player.Position = *params.Position
	}
	if params.Age != nil {
		player.Age = *params.Age
	}
	if params.Value != nil {
		player.Value = *params.Value
	}
	if params.ClearTeam {
		player.TeamID = nil
	} else if params.TeamID != nil {
		player.TeamID = params.TeamID
	}
	if params.Listed != nil {
		player.Listed = *params.Listed
	}
	if params.Price != nil {
		player.Price = params.Price
	}

	if err := player.Validate(); err != nil {
		return nil, err
	}

	player.UpdatedAt = time.Now().UTC()
	if err := s.players.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer implements PlayerService.DeletePlayer
func (s *PlayerServiceImpl) DeletePlayer(ctx context.Context, actor domain.Actor, playerID uuid.UUID) error {
	if !actor.Administrator {
		return ErrPermissionDenied
	}
	return s.players.Delete(ctx, playerID)
}

// checkController verifies that the actor owns the team the player belongs to.
func (s *PlayerServiceImpl) checkController(ctx context.Context, actor domain.Actor, player *domain.Player) error {
	if player.TeamID == nil {
		return ErrPermissionDenied
	}
	team, err := s.teams.GetByID(ctx, *player.TeamID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return ErrPermissionDenied
		}
		return err
	}
	if !team.IsOwnedBy(actor.UserID) {
		return ErrPermissionDenied
	}
	return nil
}
