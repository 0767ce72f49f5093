package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Player validation errors.
var (
	ErrEmptyPlayerID       = fmt.Errorf("%w: player ID cannot be empty", ErrValidation)
	ErrEmptyPlayerName     = fmt.Errorf("%w: player name cannot be empty", ErrValidation)
	ErrEmptyPlayerLastName = fmt.Errorf("%w: player lastname cannot be empty", ErrValidation)
	ErrEmptyPlayerCountry  = fmt.Errorf("%w: player country cannot be empty", ErrValidation)
	ErrInvalidPosition     = fmt.Errorf("%w: invalid player position", ErrValidation)
	ErrNegativeAge         = fmt.Errorf("%w: player age cannot be negative", ErrValidation)
	ErrNegativeValue       = fmt.Errorf("%w: player value cannot be negative", ErrValidation)
	ErrNegativePrice       = fmt.Errorf("%w: player price cannot be negative", ErrValidation)
	ErrListedWithoutPrice  = fmt.Errorf("%w: listed player must have a price", ErrValidation)
)

// Position is the field position a player occupies.
type Position string

// Valid player positions.
const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionAttacker   Position = "Attacker"
)

// IsValid reports whether p is one of the known positions.
func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionAttacker:
		return true
	}
	return false
}

// Player represents a footballer. Value is the player's intrinsic valuation.
// While Listed is true the player is offered on the transfer market at Price;
// Price is meaningful only during a listing and may hold a stale value after
// a delisting.
type Player struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	LastName  string     `json:"lastname"`
	Country   string     `json:"country"`
	Position  Position   `json:"position"`
	Age       int        `json:"age"`
	Value     int64      `json:"value"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"` // nil for an unassigned player
	Listed    bool       `json:"-"`
	Price     *int64     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewPlayer creates a new Player with the given attributes. TeamID may be nil
// for a player without a club.
func NewPlayer(
	name, lastName, country string,
	position Position,
	age int,
	value int64,
	teamID *uuid.UUID,
) (*Player, error) {
	player := &Player{
		ID:        uuid.New(),
		Name:      name,
		LastName:  lastName,
		Country:   country,
		Position:  position,
		Age:       age,
		Value:     value,
		TeamID:    teamID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := player.Validate(); err != nil {
		return nil, err
	}

	return player, nil
}

// Validate checks if the Player has valid data.
func (p *Player) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlayerID
	}
	if p.Name == "" {
		return ErrEmptyPlayerName
	}
	if p.LastName == "" {
		return ErrEmptyPlayerLastName
	}
	if p.Country == "" {
		return ErrEmptyPlayerCountry
	}
	if !p.Position.IsValid() {
		return ErrInvalidPosition
	}
	if p.Age < 0 {
		return ErrNegativeAge
	}
	if p.Value < 0 {
		return ErrNegativeValue
	}
	if p.Price != nil && *p.Price < 0 {
		return ErrNegativePrice
	}
	// price must be defined whenever a listing is active
	if p.Listed && p.Price == nil {
		return ErrListedWithoutPrice
	}
	return nil
}

// AskingPrice returns the current asking price of a listed player.
// The boolean is false when the player is not listed.
func (p *Player) AskingPrice() (int64, bool) {
	if !p.Listed || p.Price == nil {
		return 0, false
	}
	return *p.Price, true
}

// MaxListingPrice returns the highest asking price a listing may set,
// twice the player's current value.
func (p *Player) MaxListingPrice() int64 {
	return 2 * p.Value
}
