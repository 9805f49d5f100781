package tog

import "image/color"

// DrawableID identifies a drawable created on a Surface.
type DrawableID int

// Surface is the rendering and pointer capability Togs need.
type Surface interface {
	// CreateDrawable registers a w×h filled rect with its origin at (x,y).
	CreateDrawable(x, y, w, h float64, c color.RGBA) DrawableID
	// SetTransform moves and scales a drawable.
	SetTransform(id DrawableID, x, y, scaleX, scaleY float64)
	// OnHover subscribes fn to pointer-enter events on a drawable.
	OnHover(id DrawableID, fn func())
	// PointerPosition returns the current pointer in world space, or false
	// when no pointer has been seen.
	PointerPosition() (Vec, bool)
}
