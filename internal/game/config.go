package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Togs/internal/tog"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// Default window inset: the canvas is the window minus this margin.
	windowMargin = 20

	defaultWindowW    = 1280
	defaultWindowH    = 720
	defaultPopulation = 500
	defaultTPS        = 60
)

// Config controls the windowed simulation. Zero world dimensions mean "fit
// the window".
type Config struct {
	Population int    `yaml:"population"`
	Variant    string `yaml:"variant"`
	Seed       int64  `yaml:"seed"` // 0 = time based
	TPS        int    `yaml:"tps"`
	ShowHUD    bool   `yaml:"show_hud"`
	LogLevel   string `yaml:"log_level"`

	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	World struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"world"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var c Config
	c.Population = defaultPopulation
	c.Variant = tog.VariantSoarer.String()
	c.TPS = defaultTPS
	c.ShowHUD = true
	c.LogLevel = "info"
	c.Window.Width = defaultWindowW
	c.Window.Height = defaultWindowH
	return c
}

// LoadConfig reads a YAML file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and the variant name.
func (c Config) Validate() error {
	if c.Population < 1 {
		return fmt.Errorf("%w: population must be >= 1, got %d", ErrInvalidConfig, c.Population)
	}
	if c.TPS < 1 {
		return fmt.Errorf("%w: tps must be >= 1, got %d", ErrInvalidConfig, c.TPS)
	}
	if c.Window.Width <= windowMargin || c.Window.Height <= windowMargin {
		return fmt.Errorf("%w: window %dx%d is smaller than the %dpx margin",
			ErrInvalidConfig, c.Window.Width, c.Window.Height, windowMargin)
	}
	if c.World.Width < 0 || c.World.Height < 0 {
		return fmt.Errorf("%w: world size must not be negative", ErrInvalidConfig)
	}
	if _, err := tog.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// VariantValue returns the parsed variant. Call Validate first.
func (c Config) VariantValue() tog.Variant {
	v, _ := tog.ParseVariant(c.Variant)
	return v
}

// WorldSize resolves the wrap bounds, falling back to the window minus its
// margin.
func (c Config) WorldSize() tog.World {
	w, h := c.World.Width, c.World.Height
	if w == 0 {
		w = c.Window.Width - windowMargin
	}
	if h == 0 {
		h = c.Window.Height - windowMargin
	}
	return tog.World{Width: float64(w), Height: float64(h)}
}
