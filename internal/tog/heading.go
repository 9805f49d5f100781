package tog

import "math/rand"

// proximityRange is the pointer distance under which a chasing variant
// steers toward the pointer.
const proximityRange = 100.0

// Heading is a per-frame movement vector. Chase is set while the pointer is
// within proximityRange.
type Heading struct {
	X, Y  float64
	Chase bool
}

// cardinalHeadings is the fixed set non-free variants pick from.
var cardinalHeadings = [4]Heading{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// CardinalHeading returns the i-th (mod 4) cardinal heading.
func CardinalHeading(i int) Heading {
	i %= len(cardinalHeadings)
	if i < 0 {
		i += len(cardinalHeadings)
	}
	return cardinalHeadings[i]
}

// rollHeading picks a new heading for variant v.
func rollHeading(v Variant, rng *rand.Rand) Heading {
	if v.FreeHeading() {
		return Heading{X: uniform(rng, -1, 1), Y: uniform(rng, -1, 1)}
	}
	return CardinalHeading(rng.Intn(len(cardinalHeadings)))
}

// steer applies the proximity reaction to h and returns the result.
//
// The ±1 thresholds are not zero-centred: an offset of exactly 1 on an axis
// leaves that component untouched. Tests pin this down as-is.
func steer(pos, pointer Vec, h Heading) Heading {
	if pos.Dist(pointer) >= proximityRange {
		h.Chase = false
		return h
	}
	dx := pos.X - pointer.X
	dy := pos.Y - pointer.Y
	if dx < 1 {
		h.X = 1
	} else if dx > 1 {
		h.X = -1
	}
	if dy < 1 {
		h.Y = 1
	} else if dy > 1 {
		h.Y = -1
	}
	h.Chase = true
	return h
}

// uniform returns a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// between returns an int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
