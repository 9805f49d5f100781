package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/Garsondee/Togs/internal/game"
	"github.com/Garsondee/Togs/internal/tog"
)

const (
	orbitPeriod = 600 // ticks per full orbit
	sweepSpeed  = 3.0 // px per tick
)

var errBadPointerMode = errors.New("unsupported pointer mode")

type pointerMode string

const (
	pointerNone  pointerMode = "none"
	pointerOrbit pointerMode = "orbit"
	pointerSweep pointerMode = "sweep"
)

func parsePointerMode(s string) (pointerMode, error) {
	switch m := pointerMode(strings.ToLower(strings.TrimSpace(s))); m {
	case pointerNone, pointerOrbit, pointerSweep:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (supported: none, orbit, sweep)", errBadPointerMode, s)
}

// pointerAt scripts the pointer for a tick. The orbit circles the world
// centre; the sweep crosses the middle row left to right and wraps.
func pointerAt(mode pointerMode, tick int, w tog.World) (tog.Vec, bool) {
	switch mode {
	case pointerOrbit:
		r := math.Min(w.Width, w.Height) / 4
		a := 2 * math.Pi * float64(tick%orbitPeriod) / orbitPeriod
		return tog.Vec{X: w.Width/2 + r*math.Cos(a), Y: w.Height/2 + r*math.Sin(a)}, true
	case pointerSweep:
		return tog.Vec{X: math.Mod(float64(tick)*sweepSpeed, w.Width), Y: w.Height / 2}, true
	}
	return tog.Vec{}, false
}

type runOptions struct {
	ticks     int
	variant   tog.Variant
	pop       int
	world     tog.World
	pointer   pointerMode
	hoverRate int
	verbose   bool
}

type runStats struct {
	runIndex int
	seed     int64

	events        map[tog.EventKind]int
	hoverEnters   int
	hoverForced   int
	firstChase    int
	firstSoar     int
	firstTeleport int

	final         game.SimSnapshot
	windowSummary *game.WindowReport
	log           *game.SimLog
}

func main() {
	var (
		runs       int
		ticks      int
		seedBase   int64
		seedStep   int64
		variant    string
		population int
		pointer    string
		hoverRate  int
		configPath string
		verbose    bool
	)
	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&variant, "variant", "soarer", "wanderer, chaser or soarer")
	flag.IntVar(&population, "population", 200, "Togs per run")
	flag.StringVar(&pointer, "pointer", "orbit", "scripted pointer: none, orbit or sweep")
	flag.IntVar(&hoverRate, "hover-rate", 0, "force a hover every N ticks (0 = off)")
	flag.StringVar(&configPath, "config", "", "optional YAML config; explicit flags win")
	flag.BoolVar(&verbose, "v", false, "dump the behaviour log of each run")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := game.DefaultConfig()
	cfg.Population = population
	cfg.Variant = variant
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			log.Fatal("load config", "err", err)
		}
		cfg = loaded
		if set["population"] {
			cfg.Population = population
		}
		if set["variant"] {
			cfg.Variant = variant
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("bad flags", "err", err)
	}
	if runs <= 0 || ticks <= 0 {
		log.Fatal("bad flags", "err", "-runs and -ticks must be > 0")
	}
	if hoverRate < 0 {
		log.Fatal("bad flags", "err", "-hover-rate must be >= 0")
	}
	mode, err := parsePointerMode(pointer)
	if err != nil {
		log.Fatal("bad flags", "err", err)
	}

	opts := runOptions{
		ticks:     ticks,
		variant:   cfg.VariantValue(),
		pop:       cfg.Population,
		world:     cfg.WorldSize(),
		pointer:   mode,
		hoverRate: hoverRate,
		verbose:   verbose,
	}

	fmt.Printf("=== Headless Tog Report ===\n")
	fmt.Printf("variant=%s population=%d world=%.0fx%.0f pointer=%s hover_rate=%d\n",
		opts.variant, opts.pop, opts.world.Width, opts.world.Height, opts.pointer, opts.hoverRate)
	fmt.Printf("runs=%d ticks=%d (%s at %d tps) seed_base=%d seed_step=%d\n\n",
		runs, ticks, game.SimDuration(ticks, cfg.TPS), cfg.TPS, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runOne(i+1, seed, opts)
		all = append(all, rs)
		printRun(rs, verbose)
	}
	printAggregate(all)
}

func runOne(runIndex int, seed int64, o runOptions) runStats {
	ts := game.NewTestSim(
		game.WithWorldSize(o.world.Width, o.world.Height),
		game.WithSeed(seed),
		game.WithVariant(o.variant),
		game.WithPopulation(o.pop),
		game.WithVerbose(o.verbose),
	)
	for t := 0; t < o.ticks; t++ {
		if p, ok := pointerAt(o.pointer, t, o.world); ok {
			ts.MovePointer(p.X, p.Y)
		}
		if o.hoverRate > 0 && t%o.hoverRate == 0 {
			ts.Hover((t / o.hoverRate) % ts.Pop.Len())
		}
		ts.RunTicks(1)
	}

	rs := runStats{
		runIndex:      runIndex,
		seed:          seed,
		events:        ts.Reporter.Totals(),
		hoverEnters:   ts.SimLog.CountCategory("hover", "enter"),
		hoverForced:   ts.SimLog.CountCategory("hover", "forced"),
		firstChase:    firstTick(ts.SimLog, tog.EventChaseStart),
		firstSoar:     firstTick(ts.SimLog, tog.EventSoarStart),
		firstTeleport: firstTick(ts.SimLog, tog.EventTeleport),
		final:         ts.Snapshot(),
		windowSummary: ts.Reporter.WindowSummary(),
	}
	if o.verbose {
		rs.log = ts.SimLog
	}
	return rs
}

func firstTick(sl *game.SimLog, kind tog.EventKind) int {
	entries := sl.Filter("behaviour", kind.String())
	if len(entries) == 0 {
		return -1
	}
	return entries[0].Tick
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("first: chase=%s soar=%s teleport=%s\n",
		tickText(rs.firstChase), tickText(rs.firstSoar), tickText(rs.firstTeleport))
	fmt.Printf("hovers: enter=%d forced=%d\n", rs.hoverEnters, rs.hoverForced)

	resting, soaring, chasing := 0, 0, 0
	for _, t := range rs.final.Togs {
		if t.Resting > 0 {
			resting++
		}
		if t.Soaring {
			soaring++
		}
		if t.Heading.Chase {
			chasing++
		}
	}
	fmt.Printf("final T=%d: resting=%d soaring=%d chasing=%d\n",
		rs.final.Tick, resting, soaring, chasing)
	fmt.Print(rs.windowSummary.Format())
	if verbose && rs.log != nil {
		fmt.Print(rs.log.Format())
	}
	fmt.Println()
}

func tickText(t int) string {
	if t < 0 {
		return "never"
	}
	return fmt.Sprintf("T%d", t)
}

type aggregate struct {
	runs          int
	totals        map[tog.EventKind]int
	hoverEnters   int
	hoverForced   int
	runsWithSoar  int
	meanFirstSoar float64
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), totals: make(map[tog.EventKind]int)}
	soarSum := 0
	for _, rs := range all {
		for k, v := range rs.events {
			agg.totals[k] += v
		}
		agg.hoverEnters += rs.hoverEnters
		agg.hoverForced += rs.hoverForced
		if rs.firstSoar >= 0 {
			agg.runsWithSoar++
			soarSum += rs.firstSoar
		}
	}
	if agg.runsWithSoar > 0 {
		agg.meanFirstSoar = float64(soarSum) / float64(agg.runsWithSoar)
	}
	return agg
}

// perRun averages a total over the number of runs.
func (a aggregate) perRun(k tog.EventKind) float64 {
	if a.runs == 0 {
		return 0
	}
	return float64(a.totals[k]) / float64(a.runs)
}

var eventOrder = []tog.EventKind{
	tog.EventRest, tog.EventChaseStart, tog.EventChaseEnd,
	tog.EventTeleport, tog.EventSoarStart, tog.EventSoarEnd,
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Printf("=== Aggregate (%d runs) ===\n", agg.runs)
	for _, k := range eventOrder {
		fmt.Printf("  %-12s total=%-9s per_run=%.1f\n", k, humanize.Comma(int64(agg.totals[k])), agg.perRun(k))
	}
	fmt.Printf("hovers: enter=%s forced=%s\n",
		humanize.Comma(int64(agg.hoverEnters)), humanize.Comma(int64(agg.hoverForced)))
	if agg.runsWithSoar > 0 {
		fmt.Printf("soaring in %d/%d runs, mean first take-off T%.0f\n",
			agg.runsWithSoar, agg.runs, agg.meanFirstSoar)
	} else {
		fmt.Printf("no take-offs in any run\n")
	}
	if agg.totals[tog.EventSoarStart] < agg.totals[tog.EventSoarEnd] {
		log.Warn("more landings than take-offs", "starts", agg.totals[tog.EventSoarStart],
			"ends", agg.totals[tog.EventSoarEnd])
	}
}
