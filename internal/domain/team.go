package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Team validation errors.
var (
	ErrEmptyTeamID      = fmt.Errorf("%w: team ID cannot be empty", ErrValidation)
	ErrEmptyTeamName    = fmt.Errorf("%w: team name cannot be empty", ErrValidation)
	ErrEmptyTeamCountry = fmt.Errorf("%w: team country cannot be empty", ErrValidation)
	ErrNegativeWallet   = fmt.Errorf("%w: team wallet cannot be negative", ErrValidation)
)

// Team represents a club owned by at most one user. Wallet is the available
// funds balance, debited and credited only by purchase transactions or
// administrative edits.
type Team struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	Wallet    int64      `json:"wallet"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"` // at most one team per user
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTeam creates a new Team with the given name, country, and starting
// wallet. OwnerID may be nil for an ownerless team.
func NewTeam(name, country string, wallet int64, ownerID *uuid.UUID) (*Team, error) {
	team := &Team{
		ID:        uuid.New(),
		Name:      name,
		Country:   country,
		Wallet:    wallet,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := team.Validate(); err != nil {
		return nil, err
	}

	return team, nil
}

// Validate checks if the Team has valid data.
func (t *Team) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTeamID
	}
	if t.Name == "" {
		return ErrEmptyTeamName
	}
	if t.Country == "" {
		return ErrEmptyTeamCountry
	}
	if t.Wallet < 0 {
		return ErrNegativeWallet
	}
	return nil
}

// IsOwnedBy reports whether the given user controls this team.
func (t *Team) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID != nil && *t.OwnerID == userID
}
