package terrain

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/perlin-terrain/internal/noise"
)

const (
	DefaultFrequency = 7
	DefaultDepth     = 7
	DefaultScale     = 0.001

	// MinScale replaces a scale that halving drove to zero.
	MinScale = 0.002
)

var ErrInvalidParams = errors.New("invalid terrain parameters")

// Params are the user-tunable inputs of one heightmap.
type Params struct {
	Frequency   int
	Depth       int
	Scale       float64
	Seed        int64
	Lacunarity  float64
	Persistence float64
}

func DefaultParams() Params {
	return Params{
		Frequency:   DefaultFrequency,
		Depth:       DefaultDepth,
		Scale:       DefaultScale,
		Lacunarity:  noise.DefaultLacunarity,
		Persistence: noise.DefaultPersistence,
	}
}

func (p *Params) IncFrequency() { p.Frequency++ }

func (p *Params) DecFrequency() {
	p.Frequency--
	if p.Frequency < 1 {
		p.Frequency = 1
	}
}

func (p *Params) IncDepth() { p.Depth++ }

func (p *Params) DecDepth() {
	p.Depth--
	if p.Depth < 1 {
		p.Depth = 1
	}
}

// ScaleUp doubles the pixel-to-noise scale, showing a wider area.
func (p *Params) ScaleUp() { p.Scale *= 2 }

// ScaleDown halves the scale. Underflow to zero falls back to MinScale.
func (p *Params) ScaleDown() {
	p.Scale *= 0.5
	if p.Scale <= 0 {
		p.Scale = MinScale
	}
}

// Clamp forces every field into its valid range.
func (p *Params) Clamp() {
	if p.Frequency < 1 {
		p.Frequency = 1
	}
	if p.Depth < 1 {
		p.Depth = 1
	}
	if !(p.Scale > 0) {
		p.Scale = MinScale
	}
	if !(p.Lacunarity > 0) {
		p.Lacunarity = noise.DefaultLacunarity
	}
	if !(p.Persistence > 0) {
		p.Persistence = noise.DefaultPersistence
	}
}

// Validate reports the first out-of-range field without modifying p.
func (p Params) Validate() error {
	switch {
	case p.Frequency < 1:
		return fmt.Errorf("%w: frequency %d < 1", ErrInvalidParams, p.Frequency)
	case p.Depth < 1:
		return fmt.Errorf("%w: depth %d < 1", ErrInvalidParams, p.Depth)
	case !(p.Scale > 0):
		return fmt.Errorf("%w: scale %v must be > 0", ErrInvalidParams, p.Scale)
	case p.Lacunarity < 0:
		return fmt.Errorf("%w: lacunarity %v < 0", ErrInvalidParams, p.Lacunarity)
	case p.Persistence < 0:
		return fmt.Errorf("%w: persistence %v < 0", ErrInvalidParams, p.Persistence)
	}
	return nil
}

func (p Params) octaves() noise.Octaves {
	return noise.Octaves{
		Frequency:   float64(p.Frequency),
		Depth:       p.Depth,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
	}
}
