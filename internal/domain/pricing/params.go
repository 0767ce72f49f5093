package pricing

// Params defines the configurable parameters of the revaluation policy.
type Params struct {
	// MinMultiplier is the lowest factor applied to a player's value after
	// a purchase. Must be at least 1.0.
	MinMultiplier float64

	// MaxMultiplier is the highest factor applied to a player's value after
	// a purchase. Must be greater than or equal to MinMultiplier.
	MaxMultiplier float64
}

// NewDefaultParams creates a new Params instance with the standard market
// band: a purchased player appreciates by 10% to 100% of its prior value.
func NewDefaultParams() *Params {
	return &Params{
		MinMultiplier: 1.1,
		MaxMultiplier: 2.0,
	}
}
