package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the fixed 7x13 bitmap font used for HUD text.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

const (
	hudLineH = 14
	hudCharW = 7
	hudPad   = 6
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// SimDuration renders ticks of simulated time at tps as a short duration.
func SimDuration(ticks, tps int) string {
	if tps <= 0 {
		tps = defaultTPS
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tps)
	if d < time.Second {
		return "0 s"
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// speedLabel names the current sim speed.
func speedLabel(s float64) string {
	switch s {
	case 0:
		return "PAUSED"
	case 1, 2, 4:
		return fmt.Sprintf("%.0fx", s)
	default:
		return fmt.Sprintf("%.1fx", s)
	}
}

// hudLines builds the HUD text for the current frame.
func (g *Game) hudLines() []string {
	lines := []string{
		fmt.Sprintf("TOGS %d  [%s]  T=%d (%s)", g.pop.Len(), g.pop.Variant(), g.tick, SimDuration(g.tick, g.cfg.TPS)),
		fmt.Sprintf("SIM: %s  P=pause  ,/. speed", speedLabel(g.simSpeed)),
		g.reporter.FormatLatest(),
		"R=reseed  C=copy report  H=hide  Q=quit",
	}
	if g.status != "" && g.tick < g.statusUntil {
		lines = append(lines, "> "+g.status)
	}
	return lines
}

// drawHUD renders the status box in the bottom-left of the playfield.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*hudCharW + hudPad*2)
	boxH := float32(len(lines)*hudLineH + hudPad*2)
	bx := float32(g.offX + 6)
	by := float32(g.offY) + float32(g.world.Height) - boxH - 6

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 16, G: 14, B: 22, A: 200}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 90, G: 80, B: 120, A: 200}, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(bx)+hudPad, float64(by)+hudPad+float64(i*hudLineH))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 230, G: 228, B: 240, A: 255})
		text.Draw(screen, line, hudFace, op)
	}
}
