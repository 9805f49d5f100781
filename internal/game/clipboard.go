package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyReport puts the current window summary on the system clipboard.
func (g *Game) copyReport() error {
	text := g.reporter.WindowSummary().Format()
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	return nil
}
