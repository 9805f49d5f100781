package game

import (
	"fmt"
	"math/rand"

	"github.com/Garsondee/Togs/internal/tog"
)

// TestSim is a headless population harness used by tests and the headless
// report. It mirrors Game.Update without a window and supports
// deterministic seeding and structured logging.
type TestSim struct {
	World    tog.World
	Variant  tog.Variant
	Pop      *tog.Population
	SimLog   *SimLog
	Reporter *PopulationReporter

	surface  *spriteSurface
	rng      *rand.Rand
	size     int
	traits   *tog.Traits
	explicit []placedTog
	tick     int
}

type placedTog struct {
	pos     tog.Vec
	heading tog.Heading
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // world, seed, variant, verbose: applied first
	simOptTog                          // explicit Togs: applied once infra is settled
	simOptPointer                      // pointer placement: applied after the population exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithWorldSize sets the wrap bounds.
func WithWorldSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World = tog.World{Width: w, Height: h}
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithVariant selects the behaviour variant for every Tog.
func WithVariant(v tog.Variant) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Variant = v
	}}
}

// WithPopulation sets the size of a randomly seeded population. Ignored when
// explicit Togs are added.
func WithPopulation(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.size = n
	}}
}

// WithTraits fixes the traits of explicitly added Togs. Without it they
// get tog.NeutralTraits.
func WithTraits(tr tog.Traits) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.traits = &tr
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTog adds a Tog at (x,y) heading (hx,hy). IDs follow the order of
// WithTog options.
func WithTog(x, y, hx, hy float64) SimOption {
	return SimOption{simOptTog, func(ts *TestSim) {
		ts.explicit = append(ts.explicit, placedTog{
			pos:     tog.Vec{X: x, Y: y},
			heading: tog.Heading{X: hx, Y: hy},
		})
	}}
}

// WithPointer places the pointer before the first tick.
func WithPointer(x, y float64) SimOption {
	return SimOption{simOptPointer, func(ts *TestSim) {
		ts.MovePointer(x, y)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (world, seed, variant, population size, verbose)
//  2. Explicit Togs
//  3. Build the population
//  4. Pointer
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		World:   tog.World{Width: 800, Height: 600},
		Variant: tog.VariantSoarer,
		SimLog:  NewSimLog(false),
		rng:     rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		size:    50,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptTog {
			o.fn(ts)
		}
	}
	ts.buildPopulation()
	for _, o := range opts {
		if o.kind == simOptPointer {
			o.fn(ts)
		}
	}
	return ts
}

func (ts *TestSim) buildPopulation() {
	ts.surface = newSpriteSurface(ts.World)
	ts.Reporter = NewPopulationReporter(reportWindowTicks)
	if len(ts.explicit) == 0 {
		ts.Pop = tog.NewPopulation(ts.size, ts.World, ts.Variant, ts.rng, ts.surface, ts.observe)
		return
	}
	tr := tog.NeutralTraits()
	if ts.traits != nil {
		tr = *ts.traits
	}
	togs := make([]*tog.Tog, 0, len(ts.explicit))
	for i, pt := range ts.explicit {
		togs = append(togs, tog.New(i, pt.pos, ts.World, ts.Variant, ts.rng,
			tog.WithHeading(pt.heading),
			tog.WithTraits(tr),
			tog.WithObserver(ts.observe)))
	}
	ts.Pop = tog.NewPopulationFrom(ts.World, ts.Variant, ts.surface, togs...)
}

func (ts *TestSim) observe(e tog.Event) {
	ts.SimLog.AddEvent(ts.tick, e)
	ts.Reporter.Observe(e)
}

// MovePointer places the pointer in world space. Hover is evaluated on the
// next tick, as in the windowed game.
func (ts *TestSim) MovePointer(x, y float64) {
	ts.surface.trackPointer(tog.Vec{X: x, Y: y})
}

// Pointer returns the pointer and whether one has been seen.
func (ts *TestSim) Pointer() (tog.Vec, bool) {
	return ts.surface.PointerPosition()
}

// Hover fires the hover handlers of the i-th Tog directly.
func (ts *TestSim) Hover(i int) {
	id, ok := ts.Pop.At(i).Drawable()
	if !ok {
		return
	}
	ts.SimLog.Add(ts.tick, ts.Pop.At(i).Label(), "hover", "forced", "", 0)
	ts.surface.fireHover(id)
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.tick
		}
	}
	return -1
}

// runOneTick mirrors Game.Update for the headless harness.
func (ts *TestSim) runOneTick() {
	ts.tick++

	for _, id := range ts.surface.pollHover() {
		ts.SimLog.Add(ts.tick, fmt.Sprintf("T%d", id), "hover", "enter", "", 0)
	}

	ts.Pop.Step()

	if ts.tick%reportInterval == 0 {
		ts.Reporter.Collect(ts.tick, ts.Pop)
	}

	if !ts.SimLog.Verbose() {
		return
	}
	for _, t := range ts.Pop.Togs() {
		p := t.Position()
		ts.SimLog.AddVerbose(ts.tick, t.Label(), "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y), 0)
	}
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.tick
}

// SimSnapshot captures a lightweight state summary.
type SimSnapshot struct {
	Tick int
	Togs []TogSnapshot
}

// TogSnapshot is a lightweight copy of one Tog's state at a tick.
type TogSnapshot struct {
	ID      int
	Label   string
	X, Y    float64
	Heading tog.Heading
	Resting int
	Soaring bool
	Scale   float64
}

// Snapshot returns the current state of every Tog.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.tick}
	for _, t := range ts.Pop.Togs() {
		p := t.Position()
		snap.Togs = append(snap.Togs, TogSnapshot{
			ID:      t.ID(),
			Label:   t.Label(),
			X:       p.X,
			Y:       p.Y,
			Heading: t.Heading(),
			Resting: t.Resting(),
			Soaring: t.Soaring() != nil,
			Scale:   t.Scale(),
		})
	}
	return snap
}
