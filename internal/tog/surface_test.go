package tog

import "image/color"

// fakeSurface records drawable state so motion can be tested without a
// renderer.
type fakeSurface struct {
	pointer      Vec
	hasPointer   bool
	pointerReads int
	drawables    []*fakeDrawable
}

type fakeDrawable struct {
	x, y       float64
	w, h       float64
	sx, sy     float64
	c          color.RGBA
	hover      []func()
	transforms int
}

func (f *fakeSurface) CreateDrawable(x, y, w, h float64, c color.RGBA) DrawableID {
	f.drawables = append(f.drawables, &fakeDrawable{x: x, y: y, w: w, h: h, sx: 1, sy: 1, c: c})
	return DrawableID(len(f.drawables) - 1)
}

func (f *fakeSurface) SetTransform(id DrawableID, x, y, sx, sy float64) {
	d := f.drawables[id]
	d.x, d.y, d.sx, d.sy = x, y, sx, sy
	d.transforms++
}

func (f *fakeSurface) OnHover(id DrawableID, fn func()) {
	f.drawables[id].hover = append(f.drawables[id].hover, fn)
}

func (f *fakeSurface) PointerPosition() (Vec, bool) {
	f.pointerReads++
	return f.pointer, f.hasPointer
}

func (f *fakeSurface) hover(id DrawableID) {
	for _, fn := range f.drawables[id].hover {
		fn()
	}
}
