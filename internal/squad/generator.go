// Package squad generates the starting squad handed to every newly
// registered user's team.
package squad

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
)

// formation describes how many players of each position a generated squad
// contains: 20 players in total.
var formation = []struct {
	count    int
	position domain.Position
}{
	{3, domain.PositionGoalkeeper},
	{6, domain.PositionDefender},
	{6, domain.PositionMidfielder},
	{5, domain.PositionAttacker},
}

// Generated players are between 18 and 40 years old.
const (
	minAge = 18
	maxAge = 40
)

// Generator produces randomized squads. The random source is injectable so
// tests can pin the output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng uses a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds the initial squad for the given team: 3 goalkeepers,
// 6 defenders, 6 midfielders, and 5 attackers, each with the given value,
// a random name, country, and age.
func (g *Generator) Generate(teamID uuid.UUID, playerValue int64) ([]*domain.Player, error) {
	var players []*domain.Player
	for _, slot := range formation {
		for i := 0; i < slot.count; i++ {
			player, err := domain.NewPlayer(
				g.pick(firstNames),
				g.pick(lastNames),
				g.RandomCountry(),
				slot.position,
				minAge+g.rng.Intn(maxAge-minAge+1),
				playerValue,
				&teamID,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to generate %s: %w", slot.position, err)
			}
			players = append(players, player)
		}
	}
	return players, nil
}

// RandomCountry returns a random country name from the pool. Also used for
// the generated team itself.
func (g *Generator) RandomCountry() string {
	return g.pick(countries)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
