package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/store"
)

// UpdateTeamParams holds the optional fields of a team edit. Nil fields are
// left unchanged. Wallet and Owner changes are restricted to administrators.
type UpdateTeamParams struct {
	Name    *string
	Country *string
	Wallet  *int64
	OwnerID *uuid.UUID
}

// TeamView pairs a team with the derived total value of its squad.
type TeamView struct {
	Team       *domain.Team
	TotalValue int64
}

// TeamService provides team operations with ownership-based access control.
type TeamService interface {
	// CreateTeam creates a team. Administrators only. A nil ownerID
	// creates an unowned team.
	CreateTeam(ctx context.Context, actor domain.Actor, name, country string, wallet int64, ownerID *uuid.UUID) (*domain.Team, error)

	// GetTeam retrieves a team and its squad total value.
	GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamView, error)

	// ListTeams retrieves all teams with their squad total values.
	ListTeams(ctx context.Context) ([]*TeamView, error)

	// UpdateTeam edits a team. Owners may change name and country; wallet
	// and owner reassignment require an administrator.
	UpdateTeam(ctx context.Context, actor domain.Actor, teamID uuid.UUID, params UpdateTeamParams) (*domain.Team, error)

	// DeleteTeam removes a team, leaving its players unassigned.
	// Administrators only.
	DeleteTeam(ctx context.Context, actor domain.Actor, teamID uuid.UUID) error

	// ListTeamPlayers retrieves the players owned by the given team.
	ListTeamPlayers(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error)
}

// TeamServiceImpl implements the TeamService interface
type TeamServiceImpl struct {
	teams   store.TeamStore
	players store.PlayerStore
	logger  *slog.Logger
}

// NewTeamService creates a new TeamService.
func NewTeamService(teams store.TeamStore, players store.PlayerStore, logger *slog.Logger) *TeamServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamServiceImpl{
		teams:   teams,
		players: players,
		logger:  logger.With(slog.String("component", "team_service")),
	}
}

// Ensure TeamServiceImpl implements TeamService
var _ TeamService = (*TeamServiceImpl)(nil)

// CreateTeam implements TeamService.CreateTeam
func (s *TeamServiceImpl) CreateTeam(
	ctx context.Context,
	actor domain.Actor,
	name, country string,
	wallet int64,
	ownerID *uuid.UUID,
) (*domain.Team, error) {
	if !actor.Administrator {
		return nil, ErrPermissionDenied
	}

	team, err := domain.NewTeam(name, country, wallet, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// GetTeam implements TeamService.GetTeam
func (s *TeamServiceImpl) GetTeam(ctx context.Context, teamID uuid.UUID) (*TeamView, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	total, err := s.teams.TotalValue(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return &TeamView{Team: team, TotalValue: total}, nil
}

// ListTeams implements TeamService.ListTeams
func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]*TeamView, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*TeamView, 0, len(teams))
	for _, team := range teams {
		total, err := s.teams.TotalValue(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, &TeamView{Team: team, TotalValue: total})
	}
	return views, nil
}

// UpdateTeam implements TeamService.UpdateTeam
func (s *TeamServiceImpl) UpdateTeam(
	ctx context.Context,
	actor domain.Actor,
	teamID uuid.UUID,
	params UpdateTeamParams,
) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !team.IsOwnedBy(actor.UserID) && !actor.Administrator {
		return nil, ErrPermissionDenied
	}
	if (params.Wallet != nil || params.OwnerID != nil) && !actor.Administrator {
		return nil, ErrPermissionDenied
	}

	if params.Name != nil {
		team.Name = *params.Name
	}
	if params.Country != nil {
		team.Country = *params.Country
	}
	if params.Wallet != nil {
		team.Wallet = *params.Wallet
	}
	if params.OwnerID != nil {
		team.OwnerID = params.OwnerID
	}

	if err := team.Validate(); err != nil {
		return nil, err
	}

	team.UpdatedAt = time.Now().UTC()
	if err := s.teams.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam implements TeamService.DeleteTeam
func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, actor domain.Actor, teamID uuid.UUID) error {
	if !actor.Administrator {
		return ErrPermissionDenied
	}
	return s.teams.Delete(ctx, teamID)
}

// ListTeamPlayers implements TeamService.ListTeamPlayers
func (s *TeamServiceImpl) ListTeamPlayers(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.players.ListByTeam(ctx, teamID)
}
