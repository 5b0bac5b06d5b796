package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iburimskiy/perlin-terrain/internal/noise"
	"github.com/iburimskiy/perlin-terrain/internal/terrain"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Button stack
	StackX       = 5
	StackY       = 5
	StackSpacing = 5
	ButtonPad    = 4
	TinyButton   = 18

	FontSize = 12

	// Number of recent render timings kept for the status line.
	RenderHistory = 32
)

// Config is the startup configuration. Fields missing from a loaded file
// keep their defaults.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Frequency   int     `json:"frequency"`
	Depth       int     `json:"depth"`
	Scale       float64 `json:"scale"`
	Seed        int64   `json:"seed,omitempty"` // 0 picks one at startup
	Lacunarity  float64 `json:"lacunarity,omitempty"`
	Persistence float64 `json:"persistence,omitempty"`
	Source      string  `json:"source,omitempty"`
	Palette     string  `json:"palette,omitempty"`
	FontPath    string  `json:"fontPath,omitempty"`
	Mute        bool    `json:"mute,omitempty"`
}

func Default() Config {
	p := terrain.DefaultParams()
	return Config{
		Width:       WindowWidth,
		Height:      WindowHeight,
		Frequency:   p.Frequency,
		Depth:       p.Depth,
		Scale:       p.Scale,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
		Source:      noise.KindPerlin,
		Palette:     terrain.PaletteTerrain.String(),
	}
}

// Load reads a JSON config file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive", c.Width, c.Height)
	}
	if err := c.TerrainParams().Validate(); err != nil {
		return err
	}
	if _, err := noise.NewSource(c.Source, 0); err != nil {
		return err
	}
	if _, err := terrain.ParsePalette(c.Palette); err != nil {
		return err
	}
	return nil
}

func (c Config) TerrainParams() terrain.Params {
	return terrain.Params{
		Frequency:   c.Frequency,
		Depth:       c.Depth,
		Scale:       c.Scale,
		Seed:        c.Seed,
		Lacunarity:  c.Lacunarity,
		Persistence: c.Persistence,
	}
}

// IsNotExist reports whether err came from a missing config file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
