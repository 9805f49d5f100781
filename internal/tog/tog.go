package tog

import (
	"image/color"
	"math/rand"
)

const (
	minRest = 10
	maxRest = 40
)

// Tog is one wandering sprite.
type Tog struct {
	id      int
	pos     Vec
	heading Heading
	color   color.RGBA
	variant Variant
	traits  Traits
	world   World

	skip    int // frames left to rest
	gait    Gait
	soaring *Soaring
	scale   float64

	rng      *rand.Rand
	surface  Surface
	drawable DrawableID
	attached bool
	observer Observer
}

// Option customises a Tog at construction.
type Option func(*Tog)

// WithHeading overrides the rolled initial heading.
func WithHeading(h Heading) Option {
	return func(t *Tog) { t.heading = h }
}

// WithTraits overrides the rolled traits.
func WithTraits(tr Traits) Option {
	return func(t *Tog) { t.traits = tr }
}

// WithColor overrides the random fill colour.
func WithColor(c color.RGBA) Option {
	return func(t *Tog) { t.color = c }
}

// WithObserver routes the Tog's events to obs.
func WithObserver(obs Observer) Option {
	return func(t *Tog) { t.observer = obs }
}

// New creates a Tog at pos. Heading, colour and traits are drawn from rng
// unless overridden by opts; rng is kept for later rolls.
func New(id int, pos Vec, world World, v Variant, rng *rand.Rand, opts ...Option) *Tog {
	t := &Tog{
		id:      id,
		pos:     pos,
		world:   world,
		variant: v,
		rng:     rng,
		scale:   1,
	}
	t.heading = rollHeading(v, rng)
	t.color = randomColor(rng)
	t.traits = RollTraits(v, rng)
	for _, o := range opts {
		o(t)
	}
	return t
}

func randomColor(rng *rand.Rand) color.RGBA {
	c := rng.Intn(0xFFFFFF + 1)
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
}

// Attach creates the Tog's drawable on s and subscribes to hover.
func (t *Tog) Attach(s Surface) {
	t.surface = s
	t.drawable = s.CreateDrawable(t.pos.X, t.pos.Y, SpriteWidth, SpriteHeight, t.color)
	t.attached = true
	s.OnHover(t.drawable, t.Hover)
}

// Step advances the Tog by one frame. pointer is the current pointer
// position, or FarPointer when there is none.
func (t *Tog) Step(pointer Vec) {
	if t.skip > 0 {
		t.skip--
		return
	}
	t.move(t.nextPosition(pointer))
}

func (t *Tog) nextPosition(pointer Vec) Vec {
	if t.soaring != nil {
		t.scale = t.soaring.Scale()
		next, landed := t.soaring.advance(t.pos)
		if landed {
			t.soaring = nil
			t.emit(EventSoarEnd, next, 0)
		}
		return next
	}
	t.scale = 1

	if t.variant.Chases() {
		was := t.heading.Chase
		t.heading = steer(t.pos, pointer, t.heading)
		switch {
		case t.heading.Chase && !was:
			t.emit(EventChaseStart, t.pos, 0)
		case !t.heading.Chase && was:
			t.emit(EventChaseEnd, t.pos, 0)
		}
	}
	h := t.heading

	bob := t.gait.Next()
	if bob == 0 {
		t.reconsider()
	}

	dx := h.X * t.traits.Inclination.X * t.traits.Pep
	dy := (h.Y*t.traits.Inclination.Y - float64(bob)) * t.traits.Pep
	return t.world.Wrap(Vec{X: t.pos.X + dx, Y: t.pos.Y + dy})
}

// reconsider may start a rest with a fresh heading. A chasing Tog never
// rests.
func (t *Tog) reconsider() {
	if t.rng.Float64() >= t.traits.SkipChance || t.heading.Chase {
		return
	}
	t.skip = between(t.rng, minRest, maxRest)
	t.heading = rollHeading(t.variant, t.rng)
	t.emit(EventRest, t.pos, t.skip)
}

func (t *Tog) move(p Vec) {
	t.pos = p
	if t.attached {
		t.surface.SetTransform(t.drawable, p.X, p.Y, t.scale, t.scale)
	}
}

// Hover reacts to the pointer entering the Tog's hit area: soarers start
// an arc, other variants teleport.
func (t *Tog) Hover() {
	if t.variant.Soars() {
		t.Soar()
		return
	}
	t.Teleport()
}

// Teleport jumps to a random whole-pixel position inside the world.
func (t *Tog) Teleport() {
	p := Vec{
		X: float64(int(t.rng.Float64() * t.world.Width)),
		Y: float64(int(t.rng.Float64() * t.world.Height)),
	}
	t.move(p)
	t.emit(EventTeleport, p, 0)
}

// Soar starts an arc to a random destination. It does nothing while an arc
// is already in flight.
func (t *Tog) Soar() {
	if t.soaring != nil {
		return
	}
	t.soaring = newSoaring(t.pos, t.world, t.rng)
	t.emit(EventSoarStart, t.pos, t.soaring.TimeInFlight)
}

func (t *Tog) emit(k EventKind, p Vec, v int) {
	if t.observer == nil {
		return
	}
	t.observer(Event{Kind: k, TogID: t.id, Pos: p, Value: v})
}

// ID returns the Tog's population index.
func (t *Tog) ID() int { return t.id }

// Position returns the current position.
func (t *Tog) Position() Vec { return t.pos }

// Heading returns the current heading.
func (t *Tog) Heading() Heading { return t.heading }

// Color returns the fill colour.
func (t *Tog) Color() color.RGBA { return t.color }

// Variant returns the behavioural variant.
func (t *Tog) Variant() Variant { return t.variant }

// Traits returns the rolled traits.
func (t *Tog) Traits() Traits { return t.traits }

// Resting returns the number of frames left to rest.
func (t *Tog) Resting() int { return t.skip }

// Soaring returns a copy of the active arc, or nil.
func (t *Tog) Soaring() *Soaring {
	if t.soaring == nil {
		return nil
	}
	s := *t.soaring
	return &s
}

// Scale returns the sprite scale applied on the last move.
func (t *Tog) Scale() float64 { return t.scale }

// GaitCursor returns the gait's position in its cycle.
func (t *Tog) GaitCursor() int { return t.gait.Cursor() }

// Drawable returns the drawable ID and whether the Tog is attached.
func (t *Tog) Drawable() (DrawableID, bool) { return t.drawable, t.attached }

// Label is a short display name, e.g. "T42".
func (t *Tog) Label() string { return label(t.id) }
