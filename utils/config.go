package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Config holds the configuration for the game
type Config struct {
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	CellSize         int    `json:"cell_size"`
	InitialLiveCells int    `json:"initial_live_cells"`
	TPS              int    `json:"tps"`
	Renderer         string `json:"renderer"`
	Title            string `json:"title"`
	Seed             uint64 `json:"seed"`
	MaxGenerations   int    `json:"max_generations"`
	Debug            bool   `json:"debug"`
}

// DefaultConfig returns a 640x480 window of 8 pixel cells seeded with 300 live cells
func DefaultConfig() Config {
	return Config{
		Width:            640,
		Height:           480,
		CellSize:         8,
		InitialLiveCells: 300,
		TPS:              60,
		Renderer:         RendererWindow,
		Title:            "Game Of Life",
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

// Validate checks that the configuration describes a usable grid and renderer
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.Width < c.CellSize || c.Height < c.CellSize:
		return errors.Errorf("[Validate] %dx%d pixels cannot hold a single %d pixel cell", c.Width, c.Height, c.CellSize)
	case c.TPS <= 0:
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	case c.InitialLiveCells < 0:
		return errors.Errorf("[Validate] initial_live_cells must not be negative, got %d", c.InitialLiveCells)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Renderer != RendererWindow && c.Renderer != RendererTerminal:
		return errors.Errorf("[Validate] unknown renderer %q", c.Renderer)
	}
	return nil
}

// Rows returns the number of grid rows that fit in the window height
func (c Config) Rows() int {
	return c.Height / c.CellSize
}

// Columns returns the number of grid columns that fit in the window width
func (c Config) Columns() int {
	return c.Width / c.CellSize
}

// FrameInterval returns the time between two simulation ticks
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// ResolveSeed returns the configured seed, or a time-based one when unset
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
