package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seed patterns understood by the driver.
const (
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
)

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Seed                int64         `json:"seed"` // 0 picks the wall clock
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"` // 0 runs until interrupted
	Workers             int           `json:"workers"`         // <= 1 advances sequentially
	Render              bool          `json:"render"`
	Pattern             string        `json:"pattern"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Seed:                0,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Workers:             1,
		Render:              true,
		Pattern:             PatternRandom,
		AutoRestart:         true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so command-line
// values override whatever was loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population (0 uses the clock)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to scan each generation")
	fs.BoolVar(&c.Render, "render", c.Render, "draw the grid in the terminal")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: random, glider, blinker or block")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed when the grid stagnates")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "repeated generations before a restart")
}

// Validate rejects configurations the grid cannot be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	switch c.Pattern {
	case PatternRandom, PatternGlider, PatternBlinker, PatternBlock:
	default:
		return errors.Errorf("[Config.Validate] unknown pattern %q", c.Pattern)
	}
	if c.StagnationThreshold < 1 {
		return errors.Errorf("[Config.Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}
