package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Togs/internal/tog"
)

const (
	logPanelWidth = 260
	logMaxEntries = 60
	logLineHeight = 11
)

// ActivityEntry is a single line in the activity log.
type ActivityEntry struct {
	Tick    int
	Label   string // e.g. "T12"
	Kind    tog.EventKind
	Message string
}

// ActivityLog is a ring buffer of Tog events rendered on-screen.
type ActivityLog struct {
	entries []ActivityEntry
	head    int
	count   int
}

// NewActivityLog creates an activity log with a fixed capacity.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{
		entries: make([]ActivityEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (al *ActivityLog) Add(tick int, label string, kind tog.EventKind, msg string) {
	al.entries[al.head] = ActivityEntry{
		Tick:    tick,
		Label:   label,
		Kind:    kind,
		Message: msg,
	}
	al.head = (al.head + 1) % logMaxEntries
	if al.count < logMaxEntries {
		al.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (al *ActivityLog) Recent() []ActivityEntry {
	result := make([]ActivityEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + logMaxEntries) % logMaxEntries
		result[i] = al.entries[idx]
	}
	return result
}

// Len returns the number of stored entries.
func (al *ActivityLog) Len() int {
	return al.count
}

// describeEvent renders an event as a short log message.
func describeEvent(e tog.Event) string {
	switch e.Kind {
	case tog.EventRest:
		return fmt.Sprintf("rests %d frames", e.Value)
	case tog.EventChaseStart:
		return fmt.Sprintf("chasing at (%.0f,%.0f)", e.Pos.X, e.Pos.Y)
	case tog.EventChaseEnd:
		return "lost interest"
	case tog.EventTeleport:
		return fmt.Sprintf("teleport to (%.0f,%.0f)", e.Pos.X, e.Pos.Y)
	case tog.EventSoarStart:
		return fmt.Sprintf("takes off for %d frames", e.Value)
	case tog.EventSoarEnd:
		return fmt.Sprintf("lands at (%.0f,%.0f)", e.Pos.X, e.Pos.Y)
	default:
		return e.Kind.String()
	}
}

// kindColor tints the marker beside each entry.
func kindColor(k tog.EventKind) color.RGBA {
	switch k {
	case tog.EventRest:
		return color.RGBA{R: 120, G: 120, B: 140, A: 255}
	case tog.EventChaseStart, tog.EventChaseEnd:
		return color.RGBA{R: 230, G: 90, B: 70, A: 255}
	case tog.EventTeleport:
		return color.RGBA{R: 160, G: 90, B: 230, A: 255}
	default:
		return color.RGBA{R: 80, G: 180, B: 230, A: 255}
	}
}

// Draw renders the log panel at panelX, full height.
func (al *ActivityLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 14, G: 12, B: 18, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 28, G: 22, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ACTIVITY", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 70, G: 60, B: 90, A: 200}, false)

	entries := al.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 36, G: 30, B: 46, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, kindColor(e.Kind), false)

		line := fmt.Sprintf("%5d [%s] %s", e.Tick, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
