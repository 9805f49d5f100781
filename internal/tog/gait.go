package tog

// gaitPhases is the bob sequence subtracted from the vertical delta.
var gaitPhases = [...]int{0, 1, 1, 2, -1, -2, -1, 0}

// GaitPeriod is the number of frames before the bob sequence repeats.
const GaitPeriod = len(gaitPhases)

// Gait is a cyclic cursor over gaitPhases. The zero value starts at the
// beginning of the cycle.
type Gait struct {
	cursor int
}

// Next returns the current phase and advances the cursor.
func (g *Gait) Next() int {
	v := gaitPhases[g.cursor]
	g.cursor = (g.cursor + 1) % GaitPeriod
	return v
}

// Cursor returns the index of the phase Next will return.
func (g *Gait) Cursor() int {
	return g.cursor
}

// Reset restarts the cycle.
func (g *Gait) Reset() {
	g.cursor = 0
}
