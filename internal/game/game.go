package game

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/time/rate"

	"github.com/Garsondee/Togs/internal/tog"
)

// borderWidth is the pixel gap between the window edge and the playfield.
const borderWidth = windowMargin / 2

// statusTicks is how long a status line stays on the HUD.
const statusTicks = 180

// simSpeeds are the selectable speed multipliers; 0 is paused.
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

// Game drives the population inside an ebiten window.
type Game struct {
	cfg    Config
	width  int // window width including the log panel
	height int
	world  tog.World
	offX   int // playfield offset inside the window
	offY   int

	seed     int64
	surface  *spriteSurface
	pop      *tog.Population
	activity *ActivityLog
	reporter *PopulationReporter
	tick     int

	showHUD   bool
	simSpeed  float64
	tickAccum float64

	status      string
	statusUntil int

	debugLimiter *rate.Limiter // throttles per-event debug logging
}

// New builds a game from a validated config.
func New(cfg Config) *Game {
	world := cfg.WorldSize()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:      cfg,
		world:    world,
		width:    borderWidth + int(world.Width) + borderWidth + logPanelWidth,
		height:   borderWidth + int(world.Height) + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		seed:     seed,
		surface:  newSpriteSurface(world),
		activity: NewActivityLog(),
		showHUD:  cfg.ShowHUD,
		simSpeed: 1.0,

		debugLimiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
	g.spawn()
	return g
}

// spawn (re)creates the population from the current seed.
func (g *Game) spawn() {
	g.surface.reset()
	g.reporter = NewPopulationReporter(reportWindowTicks)
	g.tick = 0
	rng := rand.New(rand.NewSource(g.seed)) // #nosec G404 -- cosmetic simulation
	g.pop = tog.NewPopulation(g.cfg.Population, g.world, g.cfg.VariantValue(), rng, g.surface, g.observe)
	log.Info("population spawned",
		"size", g.pop.Len(),
		"variant", g.pop.Variant(),
		"world", g.world,
		"seed", g.seed)
}

// observe fans Tog events out to the reporter and the activity panel.
func (g *Game) observe(e tog.Event) {
	g.reporter.Observe(e)
	lbl := g.pop.At(e.TogID).Label()
	switch e.Kind {
	case tog.EventRest, tog.EventChaseEnd:
		return
	case tog.EventTeleport:
		if g.debugLimiter.Allow() {
			log.Debug("teleport", "tog", lbl, "x", e.Pos.X, "y", e.Pos.Y)
		}
	}
	g.activity.Add(g.tick, lbl, e.Kind, describeEvent(e))
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.simSpeed <= 0 {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	g.surface.trackPointer(tog.Vec{X: float64(mx - g.offX), Y: float64(my - g.offY)})
	g.surface.pollHover()

	// Speeds above 1 run several ticks per frame; below 1 they accumulate.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.simTick()
	}
	return nil
}

// simTick advances the population one frame and samples it periodically.
func (g *Game) simTick() {
	g.tick++
	g.pop.Step()
	if g.tick%reportInterval == 0 {
		g.reporter.Collect(g.tick, g.pop)
	}
}

// handleInput processes edge-triggered key presses.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.simSpeed = stepSpeed(g.simSpeed, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.simSpeed = stepSpeed(g.simSpeed, +1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		g.spawn()
		g.setStatus("reseeded")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.copyReport(); err != nil {
			log.Warn("clipboard unavailable", "err", err)
			g.setStatus("clipboard unavailable")
		} else {
			g.setStatus("report copied")
		}
	}
	return nil
}

// stepSpeed moves one notch through simSpeeds in direction dir.
func stepSpeed(cur float64, dir int) float64 {
	idx := 0
	for i, s := range simSpeeds {
		if s <= cur {
			idx = i
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(simSpeeds) {
		idx = len(simSpeeds) - 1
	}
	return simSpeeds[idx]
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.tick + statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})

	ox, oy := float32(g.offX), float32(g.offY)
	gw, gh := float32(g.world.Width), float32(g.world.Height)
	vector.FillRect(screen, ox, oy, gw, gh, color.RGBA{R: 245, G: 243, B: 236, A: 255}, false)

	g.surface.draw(screen, ox, oy)

	// Sprites may hang past the playfield; repaint the border over them.
	border := color.RGBA{R: 10, G: 10, B: 14, A: 255}
	vector.FillRect(screen, 0, 0, float32(g.width-logPanelWidth), oy, border, false)
	vector.FillRect(screen, 0, oy+gh, float32(g.width-logPanelWidth), float32(borderWidth), border, false)
	vector.FillRect(screen, 0, 0, ox, float32(g.height), border, false)
	vector.FillRect(screen, ox+gw, 0, float32(borderWidth), float32(g.height), border, false)
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 1.0, color.RGBA{R: 70, G: 60, B: 90, A: 255}, false)

	g.activity.Draw(screen, g.width-logPanelWidth, g.height)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the window size the game lays out to.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

// TPS returns the configured tick rate.
func (g *Game) TPS() int {
	return g.cfg.TPS
}
