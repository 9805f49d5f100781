package tog

import "math"

const (
	// SpriteWidth and SpriteHeight are the unscaled drawable extents.
	SpriteWidth  = 5
	SpriteHeight = 8

	// hitAreaScale enlarges the hover target slightly past the drawn rect.
	hitAreaScale = 1.2
)

// Vec is a point or direction in world space.
type Vec struct {
	X, Y float64
}

// FarPointer stands in for a pointer that has not been seen yet. It is far
// enough outside any world that proximity never triggers.
var FarPointer = Vec{X: -1e9, Y: -1e9}

// Dist returns the Euclidean distance between a and b.
func (a Vec) Dist(b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// World is the wrap-around area a population lives in.
type World struct {
	Width, Height float64
}

// HitArea returns the hover rect for a drawable at (x,y) drawn with the
// given scale.
func HitArea(x, y, scaleX, scaleY float64) (x0, y0, x1, y1 float64) {
	return x, y, x + SpriteWidth*hitAreaScale*scaleX, y + SpriteHeight*hitAreaScale*scaleY
}

// wrapAxis resets a coordinate that left [-extent, limit+extent] to the
// opposite edge.
func wrapAxis(v, limit, extent float64) float64 {
	if v > limit+extent {
		return 0
	}
	if v < -extent {
		return limit - extent
	}
	return v
}

// Wrap applies wrapAxis to both axes independently.
func (w World) Wrap(p Vec) Vec {
	return Vec{
		X: wrapAxis(p.X, w.Width, SpriteWidth),
		Y: wrapAxis(p.Y, w.Height, SpriteHeight),
	}
}
