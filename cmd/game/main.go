package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Togs/internal/game"
)

func main() {
	var (
		configPath string
		variant    string
		population int
		seed       int64
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.StringVar(&variant, "variant", "", "wanderer, chaser or soarer (overrides config)")
	flag.IntVar(&population, "population", 0, "number of Togs (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed, 0 = time based (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			log.Fatal("load config", "err", err)
		}
		cfg = loaded
	}
	if variant != "" {
		cfg.Variant = variant
	}
	if population > 0 {
		cfg.Population = population
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("bad flags", "err", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	g := game.New(cfg)
	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Togs")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(g.TPS())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game exited", "err", err)
	}
}
