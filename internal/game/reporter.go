package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/Garsondee/Togs/internal/tog"
)

// reportWindowTicks is the default sliding window for summaries (~10s at 60TPS).
const reportWindowTicks = 600

// reportInterval is how often the game samples the population.
const reportInterval = 60

// PopulationReport is a snapshot of the population at one tick.
type PopulationReport struct {
	Tick     int
	Total    int
	Resting  int
	Chasing  int
	Soaring  int
	Moving   int     // neither resting nor soaring
	MeanPace float64 // mean displacement per tick since the previous sample
	Events   map[tog.EventKind]int
}

// PopulationReporter samples the population and tallies events between
// samples.
type PopulationReporter struct {
	history     []PopulationReport
	windowTicks int
	pending     map[tog.EventKind]int
	totals      map[tog.EventKind]int
	lastPos     []tog.Vec
	lastTick    int
}

// NewPopulationReporter creates a reporter with the given window size.
func NewPopulationReporter(windowTicks int) *PopulationReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &PopulationReporter{
		windowTicks: windowTicks,
		pending:     make(map[tog.EventKind]int),
		totals:      make(map[tog.EventKind]int),
	}
}

// Observe counts an event. It is meant to be chained into the population's
// observer.
func (r *PopulationReporter) Observe(e tog.Event) {
	r.pending[e.Kind]++
	r.totals[e.Kind]++
}

// Collect records a snapshot of pop at tick.
func (r *PopulationReporter) Collect(tick int, pop *tog.Population) {
	report := PopulationReport{
		Tick:   tick,
		Total:  pop.Len(),
		Events: r.pending,
	}
	r.pending = make(map[tog.EventKind]int)

	togs := pop.Togs()
	w := pop.World()
	trackPace := len(r.lastPos) == len(togs) && tick > r.lastTick
	paceSum := 0.0
	for i, t := range togs {
		switch {
		case t.Resting() > 0:
			report.Resting++
		case t.Soaring() != nil:
			report.Soaring++
		default:
			report.Moving++
		}
		if t.Heading().Chase {
			report.Chasing++
		}
		if trackPace {
			paceSum += wrappedDist(r.lastPos[i], t.Position(), w)
		}
	}
	if trackPace && len(togs) > 0 {
		report.MeanPace = paceSum / float64(len(togs)) / float64(tick-r.lastTick)
	}

	if cap(r.lastPos) < len(togs) {
		r.lastPos = make([]tog.Vec, len(togs))
	}
	r.lastPos = r.lastPos[:len(togs)]
	for i, t := range togs {
		r.lastPos[i] = t.Position()
	}
	r.lastTick = tick

	r.history = append(r.history, report)

	maxKeep := r.windowTicks / reportInterval * 2
	if maxKeep < 100 {
		maxKeep = 100
	}
	if len(r.history) > maxKeep {
		r.history = r.history[len(r.history)-maxKeep:]
	}
}

// wrappedDist measures movement ignoring jumps caused by wrapping.
func wrappedDist(a, b tog.Vec, w tog.World) float64 {
	dx := math.Abs(b.X - a.X)
	dy := math.Abs(b.Y - a.Y)
	if w.Width > 0 && dx > w.Width/2 {
		dx = w.Width - dx
	}
	if w.Height > 0 && dy > w.Height/2 {
		dy = w.Height - dy
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// Latest returns the most recent report, or nil.
func (r *PopulationReporter) Latest() *PopulationReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns every retained report, oldest first.
func (r *PopulationReporter) History() []PopulationReport {
	return r.history
}

// Totals returns cumulative event counts since the reporter was created.
func (r *PopulationReporter) Totals() map[tog.EventKind]int {
	out := make(map[tog.EventKind]int, len(r.totals))
	for k, v := range r.totals {
		out[k] = v
	}
	return out
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int
	Total            int

	AvgResting float64
	AvgChasing float64
	AvgSoaring float64
	AvgMoving  float64
	AvgPace    float64

	Events map[tog.EventKind]int
}

// WindowSummary averages the reports inside the window ending at the latest
// sample.
func (r *PopulationReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}
	latest := r.history[len(r.history)-1]
	cutoff := latest.Tick - r.windowTicks
	var window []PopulationReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	wr := &WindowReport{
		FromTick:    window[len(window)-1].Tick,
		ToTick:      window[0].Tick,
		SampleCount: len(window),
		Total:       latest.Total,
		Events:      make(map[tog.EventKind]int),
	}
	paceSamples := 0
	for _, rpt := range window {
		wr.AvgResting += float64(rpt.Resting)
		wr.AvgChasing += float64(rpt.Chasing)
		wr.AvgSoaring += float64(rpt.Soaring)
		wr.AvgMoving += float64(rpt.Moving)
		if rpt.MeanPace > 0 {
			wr.AvgPace += rpt.MeanPace
			paceSamples++
		}
		for k, v := range rpt.Events {
			wr.Events[k] += v
		}
	}
	wr.AvgResting /= n
	wr.AvgChasing /= n
	wr.AvgSoaring /= n
	wr.AvgMoving /= n
	if paceSamples > 0 {
		wr.AvgPace /= float64(paceSamples)
	}
	return wr
}

var reportKinds = []tog.EventKind{
	tog.EventRest, tog.EventChaseStart, tog.EventChaseEnd,
	tog.EventTeleport, tog.EventSoarStart, tog.EventSoarEnd,
}

// Format returns a human-readable multi-line summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Tog Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	pct := func(v float64) float64 {
		if wr.Total == 0 {
			return 0
		}
		return v / float64(wr.Total) * 100
	}
	fmt.Fprintf(&sb, "population   %d\n", wr.Total)
	fmt.Fprintf(&sb, "moving       %6.1f (%4.1f%%)\n", wr.AvgMoving, pct(wr.AvgMoving))
	fmt.Fprintf(&sb, "resting      %6.1f (%4.1f%%)\n", wr.AvgResting, pct(wr.AvgResting))
	fmt.Fprintf(&sb, "chasing      %6.1f (%4.1f%%)\n", wr.AvgChasing, pct(wr.AvgChasing))
	fmt.Fprintf(&sb, "soaring      %6.1f (%4.1f%%)\n", wr.AvgSoaring, pct(wr.AvgSoaring))
	fmt.Fprintf(&sb, "pace         %6.2f px/tick\n", wr.AvgPace)
	sb.WriteString("\n--- Events ---\n")
	for _, k := range reportKinds {
		fmt.Fprintf(&sb, "  %-12s %d\n", k, wr.Events[k])
	}
	return sb.String()
}

// FormatLatest returns a one-line summary of the latest sample.
func (r *PopulationReporter) FormatLatest() string {
	l := r.Latest()
	if l == nil {
		return "no samples"
	}
	return fmt.Sprintf("T=%d moving=%d resting=%d chasing=%d soaring=%d pace=%.2f",
		l.Tick, l.Moving, l.Resting, l.Chasing, l.Soaring, l.MeanPace)
}
