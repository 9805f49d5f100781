package tog

import "math/rand"

const (
	minFlight = 30
	maxFlight = 120

	// soarLift is how much the sprite grows at the peak of an arc.
	soarLift = 1.5
)

// Soaring is an in-flight arc toward a fixed destination. Remaining is the
// per-frame displacement.
type Soaring struct {
	RemainingX, RemainingY float64
	TimeInFlight           int
	TimeRemaining          int
}

// newSoaring plans an arc from pos to a random point inside w.
func newSoaring(pos Vec, w World, rng *rand.Rand) *Soaring {
	t := between(rng, minFlight, maxFlight)
	destX := float64(rng.Intn(int(w.Width) + 1))
	destY := float64(rng.Intn(int(w.Height) + 1))
	return &Soaring{
		RemainingX:    (destX - pos.X) / float64(t),
		RemainingY:    (destY - pos.Y) / float64(t),
		TimeInFlight:  t,
		TimeRemaining: t,
	}
}

// envelope is 0 at take-off and landing and 1 at the midpoint.
func (s *Soaring) envelope() float64 {
	t := float64(s.TimeInFlight)
	r := float64(s.TimeRemaining)
	if t/2 > r {
		return r * 2 / t
	}
	return (t - r) * 2 / t
}

// Scale is the sprite scale for the current frame of the arc.
func (s *Soaring) Scale() float64 {
	return 1 + s.envelope()*soarLift
}

// advance moves pos one frame along the arc and reports whether the arc
// has finished.
func (s *Soaring) advance(pos Vec) (Vec, bool) {
	next := Vec{X: pos.X + s.RemainingX, Y: pos.Y + s.RemainingY}
	s.TimeRemaining--
	return next, s.TimeRemaining <= 0
}
