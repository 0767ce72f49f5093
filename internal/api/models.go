package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// TeamID is the team created for the user during registration
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateUserRequest defines the payload for the administrative user creation
// endpoint. A missing role_id assigns the default role.
type CreateUserRequest struct {
	Email    string     `json:"email"    validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8,max=72"`
	RoleID   *uuid.UUID `json:"role_id"`
}

// UpdateUserRequest defines the payload for the user edit endpoint.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string    `json:"email"    validate:"omitempty,email"`
	Password *string    `json:"password" validate:"omitempty,min=8,max=72"`
	RoleID   *uuid.UUID `json:"role_id"`
}

// CreateTeamRequest defines the payload for the administrative team creation
// endpoint.
type CreateTeamRequest struct {
	Name    string     `json:"name"    validate:"required"`
	Country string     `json:"country" validate:"required"`
	Wallet  int64      `json:"wallet"  validate:"gte=0"`
	OwnerID *uuid.UUID `json:"owner_id"`
}

// UpdateTeamRequest defines the payload for the team edit endpoint.
// Absent fields are left unchanged; wallet and owner_id require an
// administrator.
type UpdateTeamRequest struct {
	Name    *string    `json:"name"    validate:"omitempty,min=1"`
	Country *string    `json:"country" validate:"omitempty,min=1"`
	Wallet  *int64     `json:"wallet"  validate:"omitempty,gte=0"`
	OwnerID *uuid.UUID `json:"owner_id"`
}

// TeamResponse defines the representation of a team, including the derived
// total value of its squad.
type TeamResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Country    string     `json:"country"`
	Wallet     int64      `json:"wallet"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	TotalValue int64      `json:"total_value"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewTeamResponse builds a TeamResponse from a team view.
func NewTeamResponse(view *service.TeamView) TeamResponse {
	return TeamResponse{
		ID:         view.Team.ID,
		Name:       view.Team.Name,
		Country:    view.Team.Country,
		Wallet:     view.Team.Wallet,
		OwnerID:    view.Team.OwnerID,
		TotalValue: view.TotalValue,
		CreatedAt:  view.Team.CreatedAt,
		UpdatedAt:  view.Team.UpdatedAt,
	}
}

// CreatePlayerRequest defines the payload for the administrative player
// creation endpoint.
type CreatePlayerRequest struct {
	Name     string     `json:"name"     validate:"required"`
	LastName string     `json:"lastname" validate:"required"`
	Country  string     `json:"country"  validate:"required"`
	Position string     `json:"position" validate:"required"`
	Age      int        `json:"age"      validate:"gte=0"`
	Value    int64      `json:"value"    validate:"gte=0"`
	TeamID   *uuid.UUID `json:"team_id"`
}

// UpdatePlayerRequest defines the payload for the player edit endpoint.
// Absent fields are left unchanged; everything beyond name, lastname, and
// country requires an administrator.
type UpdatePlayerRequest struct {
	Name      *string    `json:"name"      validate:"omitempty,min=1"`
	LastName  *string    `json:"lastname"  validate:"omitempty,min=1"`
	Country   *string    `json:"country"   validate:"omitempty,min=1"`
	Position  *string    `json:"position"`
	Age       *int       `json:"age"       validate:"omitempty,gte=0"`
	Value     *int64     `json:"value"     validate:"omitempty,gte=0"`
	TeamID    *uuid.UUID `json:"team_id"`
	ClearTeam bool       `json:"clear_team"`
	Listed    *bool      `json:"listed"`
	Price     *int64     `json:"price"     validate:"omitempty,gte=0"`
}

// OfferRequest defines the payload for listing a player on the transfer
// market. A zero asking price is a valid listing; the pointer distinguishes
// an explicit 0 from an absent field.
type OfferRequest struct {
	Price *int64 `json:"price" validate:"required,gte=0"`
}

// MarketPlayerResponse defines the representation of a player in market
// listings. Unlike the plain player representation it carries the asking
// price.
type MarketPlayerResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	LastName  string     `json:"lastname"`
	Country   string     `json:"country"`
	Position  string     `json:"position"`
	Age       int        `json:"age"`
	Value     int64      `json:"value"`
	Price     int64      `json:"price"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewMarketPlayerResponse builds a MarketPlayerResponse from a listed player.
func NewMarketPlayerResponse(player *domain.Player) MarketPlayerResponse {
	price, _ := player.AskingPrice()
	return MarketPlayerResponse{
		ID:        player.ID,
		Name:      player.Name,
		LastName:  player.LastName,
		Country:   player.Country,
		Position:  string(player.Position),
		Age:       player.Age,
		Value:     player.Value,
		Price:     price,
		TeamID:    player.TeamID,
		CreatedAt: player.CreatedAt,
		UpdatedAt: player.UpdatedAt,
	}
}
