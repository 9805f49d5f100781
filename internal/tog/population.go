package tog

import (
	"math/rand"
	"strconv"
)

// spawnInset shifts spawn points up and left so sprites can start partly
// off the top/left edge.
const spawnInset = 5

// Population is a fixed, insertion-ordered set of Togs sharing one world,
// surface and random source.
type Population struct {
	togs    []*Tog
	world   World
	variant Variant
	surface Surface
	tick    int
}

// NewPopulation seeds size Togs at random positions, attaches each to s
// and routes their events to obs (which may be nil).
func NewPopulation(size int, world World, v Variant, rng *rand.Rand, s Surface, obs Observer) *Population {
	p := &Population{
		togs:    make([]*Tog, 0, size),
		world:   world,
		variant: v,
		surface: s,
	}
	for i := 0; i < size; i++ {
		pos := Vec{
			X: float64(int(rng.Float64()*world.Width) - spawnInset),
			Y: float64(int(rng.Float64()*world.Height) - spawnInset),
		}
		t := New(i, pos, world, v, rng, WithObserver(obs))
		p.togs = append(p.togs, t)
	}
	for _, t := range p.togs {
		t.Attach(s)
	}
	return p
}

// NewPopulationFrom wraps already-built Togs, attaching each to s.
func NewPopulationFrom(world World, v Variant, s Surface, togs ...*Tog) *Population {
	p := &Population{
		togs:    append([]*Tog(nil), togs...),
		world:   world,
		variant: v,
		surface: s,
	}
	for _, t := range p.togs {
		t.Attach(s)
	}
	return p
}

// Step reads the pointer once and advances every Tog in order.
func (p *Population) Step() {
	p.tick++
	pointer, ok := p.surface.PointerPosition()
	if !ok {
		pointer = FarPointer
	}
	for _, t := range p.togs {
		t.Step(pointer)
	}
}

// Len returns the population size.
func (p *Population) Len() int { return len(p.togs) }

// At returns the i-th Tog.
func (p *Population) At(i int) *Tog { return p.togs[i] }

// Togs returns the Togs in population order. The slice must not be
// modified.
func (p *Population) Togs() []*Tog { return p.togs }

// Tick returns how many times Step has run.
func (p *Population) Tick() int { return p.tick }

// World returns the shared wrap bounds.
func (p *Population) World() World { return p.world }

// Variant returns the shared variant.
func (p *Population) Variant() Variant { return p.variant }

func label(id int) string {
	return "T" + strconv.Itoa(id)
}
