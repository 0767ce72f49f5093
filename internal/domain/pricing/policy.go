// Package pricing implements the post-transfer revaluation policy.
//
// After a successful purchase a player's value is multiplied by a factor
// drawn uniformly from the configured band (by default [1.1, 2.0]). The draw
// comes from an injectable rand source so tests and simulations can pin the
// outcome; the externally observable contract is only the inclusive band.
package pricing

import (
	"math"
	"math/rand"
	"time"
)

// Policy computes a player's post-transfer valuation from its prior valuation.
type Policy struct {
	params *Params
	rng    *rand.Rand
}

// NewPolicy creates a Policy with the given parameters and random source.
// A nil params uses NewDefaultParams; a nil rng uses a time-seeded source.
func NewPolicy(params *Params, rng *rand.Rand) *Policy {
	if params == nil {
		params = NewDefaultParams()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Policy{
		params: params,
		rng:    rng,
	}
}

// Revalue returns the new valuation for a player whose prior valuation is
// oldValue. The result always satisfies
//
//	MinMultiplier*oldValue <= newValue <= MaxMultiplier*oldValue
//
// with both bounds inclusive after integer rounding. A non-positive oldValue
// is returned unchanged; there is nothing to appreciate.
func (p *Policy) Revalue(oldValue int64) int64 {
	if oldValue <= 0 {
		return oldValue
	}

	factor := p.params.MinMultiplier +
		p.rng.Float64()*(p.params.MaxMultiplier-p.params.MinMultiplier)
	newValue := int64(math.Round(float64(oldValue) * factor))

	// Rounding may nudge the result just outside the band; clamp it back.
	low := int64(math.Ceil(float64(oldValue) * p.params.MinMultiplier))
	high := int64(math.Floor(float64(oldValue) * p.params.MaxMultiplier))
	if newValue < low {
		newValue = low
	}
	if newValue > high {
		newValue = high
	}

	return newValue
}
