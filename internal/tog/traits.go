package tog

import "math/rand"

// Traits are per-Tog behavioural constants rolled once at construction.
type Traits struct {
	// SkipChance is the probability of resting each time the gait
	// returns to phase zero.
	SkipChance float64
	// Inclination scales the x/y deltas independently.
	Inclination Vec
	// Pep scales both deltas after inclination.
	Pep float64
}

// NeutralTraits leaves movement unscaled and never rests.
func NeutralTraits() Traits {
	return Traits{SkipChance: 0, Inclination: Vec{X: 1, Y: 1}, Pep: 1}
}

// RollTraits draws traits for variant v. Only temperamental variants get
// non-unit inclination and pep.
func RollTraits(v Variant, rng *rand.Rand) Traits {
	t := NeutralTraits()
	t.SkipChance = rng.Float64()
	if v.Temperamental() {
		t.Inclination = Vec{X: uniform(rng, 0.9, 1.1), Y: uniform(rng, 0.9, 1.1)}
		t.Pep = uniform(rng, 0.75, 1.75)
	}
	return t
}
