package tog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorld = World{Width: 800, Height: 600}

func newTestTog(v Variant, pos Vec, h Heading, tr Traits, opts ...Option) *Tog {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	opts = append([]Option{WithHeading(h), WithTraits(tr)}, opts...)
	return New(0, pos, testWorld, v, rng, opts...)
}

func alwaysRest() Traits {
	tr := NeutralTraits()
	tr.SkipChance = 1
	return tr
}

func TestStep_FirstFrameMovesAlongHeading(t *testing.T) {
	tg := newTestTog(VariantChaser, Vec{X: 0, Y: 0}, Heading{X: 1, Y: 0}, NeutralTraits())
	tg.Step(FarPointer)

	assert.Equal(t, Vec{X: 1, Y: 0}, tg.Position())
	assert.Equal(t, Heading{X: 1, Y: 0}, tg.Heading())
	assert.Equal(t, 0, tg.Resting())
}

func TestStep_NoWrapAtWorldEdge(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 799, Y: 100}, Heading{X: 1, Y: 0}, NeutralTraits())
	tg.Step(FarPointer)
	assert.Equal(t, 800.0, tg.Position().X)

	tg = newTestTog(VariantWanderer, Vec{X: 804, Y: 100}, Heading{X: 1, Y: 0}, NeutralTraits())
	tg.Step(FarPointer)
	assert.Equal(t, 805.0, tg.Position().X, "805 is the last unwrapped column")
}

func TestStep_WrapsPastWorldPlusExtent(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 805, Y: 100}, Heading{X: 1, Y: 0}, NeutralTraits())
	tg.Step(FarPointer)
	assert.Equal(t, 0.0, tg.Position().X)

	tg = newTestTog(VariantWanderer, Vec{X: -5, Y: 100}, Heading{X: -1, Y: 0}, NeutralTraits())
	tg.Step(FarPointer)
	assert.Equal(t, 795.0, tg.Position().X)
}

func TestStep_GaitBobsVertically(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 0, Y: 0}, NeutralTraits())
	ys := []float64{}
	for i := 0; i < GaitPeriod; i++ {
		tg.Step(FarPointer)
		ys = append(ys, tg.Position().Y)
	}
	// Each frame subtracts the phase value: 0,1,1,2,-1,-2,-1,0.
	assert.Equal(t, []float64{100, 99, 98, 96, 97, 99, 100, 100}, ys)
}

func TestStep_RestFreezesPositionAndHeading(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 0}, alwaysRest())
	tg.Step(FarPointer)

	// The frame that starts a rest still moves on the old heading.
	assert.Equal(t, Vec{X: 101, Y: 100}, tg.Position())
	rest := tg.Resting()
	require.GreaterOrEqual(t, rest, minRest)
	require.LessOrEqual(t, rest, maxRest)

	pos, h, cursor := tg.Position(), tg.Heading(), tg.GaitCursor()
	for i := 1; i <= rest; i++ {
		tg.Step(FarPointer)
		assert.Equal(t, pos, tg.Position())
		assert.Equal(t, h, tg.Heading())
		assert.Equal(t, cursor, tg.GaitCursor())
		assert.Equal(t, rest-i, tg.Resting())
	}
	assert.Equal(t, 0, tg.Resting())
}

func TestStep_RerolledHeadingIsCardinalForWanderer(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 0.3, Y: 0.3}, alwaysRest())
	tg.Step(FarPointer)
	h := tg.Heading()
	found := false
	for i := 0; i < 4; i++ {
		if CardinalHeading(i) == h {
			found = true
		}
	}
	assert.True(t, found, "heading %+v is not cardinal", h)
}

func TestStep_RerolledHeadingIsFreeForSoarer(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test
	for i := 0; i < 50; i++ {
		tg := New(i, Vec{X: 100, Y: 100}, testWorld, VariantSoarer, rng, WithTraits(alwaysRest()))
		tg.Step(FarPointer)
		h := tg.Heading()
		assert.GreaterOrEqual(t, h.X, -1.0)
		assert.Less(t, h.X, 1.0)
		assert.GreaterOrEqual(t, h.Y, -1.0)
		assert.Less(t, h.Y, 1.0)
	}
}

func TestStep_TemperamentScalesDeltas(t *testing.T) {
	tr := Traits{SkipChance: 0, Inclination: Vec{X: 1.1, Y: 0.9}, Pep: 1.5}
	tg := newTestTog(VariantSoarer, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 1}, tr)

	tg.Step(FarPointer)
	assert.InDelta(t, 101.65, tg.Position().X, 1e-9)
	assert.InDelta(t, 101.35, tg.Position().Y, 1e-9)

	// Second gait phase is 1: dy = (0.9 - 1) * 1.5.
	tg.Step(FarPointer)
	assert.InDelta(t, 103.30, tg.Position().X, 1e-9)
	assert.InDelta(t, 101.20, tg.Position().Y, 1e-9)
}

func TestSteer_PointerInRangeSetsChase(t *testing.T) {
	tg := newTestTog(VariantChaser, Vec{X: 100, Y: 100}, Heading{X: 0, Y: -1}, NeutralTraits())
	tg.Step(Vec{X: 150, Y: 100})

	assert.Equal(t, Heading{X: 1, Y: 1, Chase: true}, tg.Heading())
	assert.Equal(t, Vec{X: 101, Y: 101}, tg.Position())

	tg.Step(Vec{X: 60, Y: 130})
	assert.Equal(t, Heading{X: -1, Y: 1, Chase: true}, tg.Heading())
}

func TestSteer_PointerOutOfRangeClearsChase(t *testing.T) {
	tg := newTestTog(VariantChaser, Vec{X: 100, Y: 100}, Heading{X: 0, Y: -1}, NeutralTraits())
	tg.Step(Vec{X: 120, Y: 120})
	require.True(t, tg.Heading().Chase)

	tg.Step(FarPointer)
	h := tg.Heading()
	assert.False(t, h.Chase)
	assert.Equal(t, 1.0, h.X, "steered components persist after the chase ends")
	assert.Equal(t, 1.0, h.Y)
}

func TestSteer_ExactlyHundredIsOutOfRange(t *testing.T) {
	h := steer(Vec{X: 200, Y: 100}, Vec{X: 100, Y: 100}, Heading{X: 0.5, Y: 0.5})
	assert.Equal(t, Heading{X: 0.5, Y: 0.5}, h)
}

// The steering thresholds are ±1 rather than 0. These cases replicate that
// behaviour; they do not claim it is correct.
func TestSteer_ReplicatedOffsetThresholds(t *testing.T) {
	cases := []struct {
		name    string
		pos     Vec
		pointer Vec
		in      Heading
		want    Heading
	}{
		{"x offset exactly 1 keeps x", Vec{X: 101, Y: 100}, Vec{X: 100, Y: 100}, Heading{X: 0, Y: -1}, Heading{X: 0, Y: 1, Chase: true}},
		{"y offset exactly 1 keeps y", Vec{X: 100, Y: 101}, Vec{X: 100, Y: 100}, Heading{X: 0, Y: -1}, Heading{X: 1, Y: -1, Chase: true}},
		{"zero offset steers positive", Vec{X: 100, Y: 100}, Vec{X: 100, Y: 100}, Heading{X: -1, Y: -1}, Heading{X: 1, Y: 1, Chase: true}},
		{"offset 0.5 still steers positive", Vec{X: 100.5, Y: 100.5}, Vec{X: 100, Y: 100}, Heading{X: -1, Y: -1}, Heading{X: 1, Y: 1, Chase: true}},
		{"offset 1.5 steers negative", Vec{X: 101.5, Y: 101.5}, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 1}, Heading{X: -1, Y: -1, Chase: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, steer(tc.pos, tc.pointer, tc.in))
		})
	}
}

func TestStep_ChasingNeverRests(t *testing.T) {
	tg := newTestTog(VariantChaser, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 0}, alwaysRest())
	for i := 0; i < 3*GaitPeriod; i++ {
		p := tg.Position()
		tg.Step(Vec{X: p.X + 20, Y: p.Y + 20})
		require.Equal(t, 0, tg.Resting(), "step %d", i)
	}
}

func TestStep_WandererIgnoresPointer(t *testing.T) {
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 0, Y: -1}, NeutralTraits())
	tg.Step(Vec{X: 100, Y: 100})
	assert.Equal(t, Heading{X: 0, Y: -1}, tg.Heading())
}

func TestSoar_ClearsAfterTimeInFlight(t *testing.T) {
	var events []Event
	tg := newTestTog(VariantSoarer, Vec{X: 400, Y: 300}, Heading{X: 1, Y: 0}, NeutralTraits(),
		WithObserver(func(e Event) { events = append(events, e) }))
	tg.Hover()
	arc := tg.Soaring()
	require.NotNil(t, arc)
	n := arc.TimeInFlight
	require.GreaterOrEqual(t, n, minFlight)
	require.LessOrEqual(t, n, maxFlight)

	maxScale := 0.0
	for i := 0; i < n; i++ {
		require.NotNil(t, tg.Soaring(), "arc cleared early at step %d", i)
		tg.Step(FarPointer)
		assert.GreaterOrEqual(t, tg.Scale(), 1.0)
		assert.LessOrEqual(t, tg.Scale(), 1+soarLift)
		if tg.Scale() > maxScale {
			maxScale = tg.Scale()
		}
	}
	assert.Nil(t, tg.Soaring())
	assert.InDelta(t, 1+soarLift, maxScale, 0.1)

	landed := tg.Position()
	assert.GreaterOrEqual(t, landed.X, -1e-6)
	assert.LessOrEqual(t, landed.X, testWorld.Width+1e-6)
	assert.GreaterOrEqual(t, landed.Y, -1e-6)
	assert.LessOrEqual(t, landed.Y, testWorld.Height+1e-6)

	// Heading movement resumes with the gait where it left off.
	tg.Step(FarPointer)
	assert.Equal(t, 1.0, tg.Scale())
	assert.InDelta(t, landed.X+1, tg.Position().X, 1e-9)

	require.Len(t, events, 2)
	assert.Equal(t, EventSoarStart, events[0].Kind)
	assert.Equal(t, n, events[0].Value)
	assert.Equal(t, EventSoarEnd, events[1].Kind)
}

func TestSoar_EnvelopeIsTriangular(t *testing.T) {
	s := &Soaring{TimeInFlight: 100, TimeRemaining: 100}
	assert.InDelta(t, 1.0, s.Scale(), 1e-9)
	s.TimeRemaining = 75
	assert.InDelta(t, 1.75, s.Scale(), 1e-9)
	s.TimeRemaining = 50
	assert.InDelta(t, 2.5, s.Scale(), 1e-9)
	s.TimeRemaining = 25
	assert.InDelta(t, 1.75, s.Scale(), 1e-9)
	s.TimeRemaining = 1
	assert.InDelta(t, 1.03, s.Scale(), 1e-9)
}

func TestSoar_HoverWhileSoaringIsIgnored(t *testing.T) {
	tg := newTestTog(VariantSoarer, Vec{X: 400, Y: 300}, Heading{X: 1, Y: 0}, NeutralTraits())
	tg.Hover()
	first := tg.Soaring()
	tg.Step(FarPointer)
	tg.Hover()
	second := tg.Soaring()
	require.NotNil(t, second)
	assert.Equal(t, first.TimeInFlight, second.TimeInFlight)
	assert.Equal(t, first.TimeInFlight-1, second.TimeRemaining)
}

func TestTeleport_HoverMovesWandererInBounds(t *testing.T) {
	var events []Event
	surf := &fakeSurface{}
	tg := newTestTog(VariantWanderer, Vec{X: -3, Y: -3}, Heading{X: 1, Y: 0}, NeutralTraits(),
		WithObserver(func(e Event) { events = append(events, e) }))
	tg.Attach(surf)

	id, ok := tg.Drawable()
	require.True(t, ok)
	surf.hover(id)

	p := tg.Position()
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, testWorld.Width)
	assert.GreaterOrEqual(t, p.Y, 0.0)
	assert.Less(t, p.Y, testWorld.Height)
	assert.Equal(t, float64(int(p.X)), p.X)
	assert.Equal(t, float64(int(p.Y)), p.Y)
	assert.Equal(t, p.X, surf.drawables[id].x)
	assert.Equal(t, p.Y, surf.drawables[id].y)

	require.Len(t, events, 1)
	assert.Equal(t, EventTeleport, events[0].Kind)
	assert.Equal(t, p, events[0].Pos)
}

func TestAttach_TransformTracksMovement(t *testing.T) {
	surf := &fakeSurface{}
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 0}, alwaysRest())
	tg.Attach(surf)
	id, _ := tg.Drawable()
	d := surf.drawables[id]
	assert.Equal(t, float64(SpriteWidth), d.w)
	assert.Equal(t, float64(SpriteHeight), d.h)
	assert.Equal(t, tg.Color(), d.c)

	tg.Step(FarPointer)
	assert.Equal(t, 1, d.transforms)
	assert.Equal(t, 101.0, d.x)
	assert.Equal(t, 1.0, d.sx)

	// Resting frames leave the drawable alone.
	tg.Step(FarPointer)
	assert.Equal(t, 1, d.transforms)
}

func TestReconsider_EmitsRest(t *testing.T) {
	var events []Event
	tg := newTestTog(VariantWanderer, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 0}, alwaysRest(),
		WithObserver(func(e Event) { events = append(events, e) }))
	tg.Step(FarPointer)
	require.Len(t, events, 1)
	assert.Equal(t, EventRest, events[0].Kind)
	assert.Equal(t, tg.Resting(), events[0].Value)
}

func TestChase_EmitsStartAndEnd(t *testing.T) {
	var kinds []EventKind
	tg := newTestTog(VariantChaser, Vec{X: 100, Y: 100}, Heading{X: 1, Y: 0}, NeutralTraits(),
		WithObserver(func(e Event) { kinds = append(kinds, e.Kind) }))
	tg.Step(Vec{X: 110, Y: 110})
	tg.Step(Vec{X: 110, Y: 110})
	tg.Step(FarPointer)
	assert.Equal(t, []EventKind{EventChaseStart, EventChaseEnd}, kinds)
}

func TestRollTraits_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	for i := 0; i < 200; i++ {
		tr := RollTraits(VariantSoarer, rng)
		assert.GreaterOrEqual(t, tr.SkipChance, 0.0)
		assert.Less(t, tr.SkipChance, 1.0)
		assert.GreaterOrEqual(t, tr.Inclination.X, 0.9)
		assert.Less(t, tr.Inclination.X, 1.1)
		assert.GreaterOrEqual(t, tr.Pep, 0.75)
		assert.Less(t, tr.Pep, 1.75)

		plain := RollTraits(VariantChaser, rng)
		assert.Equal(t, Vec{X: 1, Y: 1}, plain.Inclination)
		assert.Equal(t, 1.0, plain.Pep)
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := ParseVariant(" Soarer ")
	require.NoError(t, err)
	assert.Equal(t, VariantSoarer, got)

	_, err = ParseVariant("glider")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
