package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Togs/internal/tog"
)

// sprite is one retained drawable.
type sprite struct {
	x, y    float64
	w, h    float64
	sx, sy  float64
	col     color.RGBA
	hover   []func()
	hovered bool // pointer was inside the hit area on the last poll
}

func (sp *sprite) contains(p tog.Vec) bool {
	x0, y0, x1, y1 := tog.HitArea(sp.x, sp.y, sp.sx, sp.sy)
	return p.X >= x0 && p.X < x1 && p.Y >= y0 && p.Y < y1
}

// spriteSurface is the retained scene the population draws into. It is
// usable headless: only draw touches ebiten.
type spriteSurface struct {
	world      tog.World
	sprites    []sprite
	pointer    tog.Vec
	hasPointer bool
}

func newSpriteSurface(world tog.World) *spriteSurface {
	return &spriteSurface{world: world}
}

func (s *spriteSurface) CreateDrawable(x, y, w, h float64, c color.RGBA) tog.DrawableID {
	s.sprites = append(s.sprites, sprite{x: x, y: y, w: w, h: h, sx: 1, sy: 1, col: c})
	return tog.DrawableID(len(s.sprites) - 1)
}

func (s *spriteSurface) SetTransform(id tog.DrawableID, x, y, sx, sy float64) {
	sp := &s.sprites[id]
	sp.x, sp.y, sp.sx, sp.sy = x, y, sx, sy
}

func (s *spriteSurface) OnHover(id tog.DrawableID, fn func()) {
	s.sprites[id].hover = append(s.sprites[id].hover, fn)
}

func (s *spriteSurface) PointerPosition() (tog.Vec, bool) {
	return s.pointer, s.hasPointer
}

// trackPointer records the cursor in world space. The pointer only becomes
// available once it has been inside the world; after that the last position
// sticks, even off-canvas.
func (s *spriteSurface) trackPointer(p tog.Vec) {
	inside := p.X >= 0 && p.Y >= 0 && p.X < s.world.Width && p.Y < s.world.Height
	if !s.hasPointer && !inside {
		return
	}
	s.pointer = p
	s.hasPointer = true
}

// pollHover fires hover handlers for sprites the pointer entered since the
// last poll and returns their IDs.
func (s *spriteSurface) pollHover() []tog.DrawableID {
	var entered []tog.DrawableID
	for i := range s.sprites {
		inside := s.hasPointer && s.sprites[i].contains(s.pointer)
		enter := inside && !s.sprites[i].hovered
		s.sprites[i].hovered = inside
		if !enter {
			continue
		}
		s.fireHover(tog.DrawableID(i))
		entered = append(entered, tog.DrawableID(i))
	}
	return entered
}

// fireHover runs the hover handlers of one sprite.
func (s *spriteSurface) fireHover(id tog.DrawableID) {
	for _, fn := range s.sprites[id].hover {
		fn()
	}
}

// reset drops every drawable. The pointer is kept.
func (s *spriteSurface) reset() {
	s.sprites = s.sprites[:0]
}

// draw fills each sprite rect, scaled around its origin, offset by (ox,oy).
func (s *spriteSurface) draw(dst *ebiten.Image, ox, oy float32) {
	for i := range s.sprites {
		sp := &s.sprites[i]
		vector.FillRect(dst,
			ox+float32(sp.x), oy+float32(sp.y),
			float32(sp.w*sp.sx), float32(sp.h*sp.sy),
			sp.col, false)
	}
}
