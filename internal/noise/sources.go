package noise

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownSource is returned by NewSource for an unregistered backend name.
var ErrUnknownSource = errors.New("unknown noise source")

const (
	KindPerlin   = "perlin"
	KindGoPerlin = "go-perlin"
	KindSimplex  = "simplex"
)

var factories = map[string]func(seed int64) Source{
	KindPerlin: func(seed int64) Source { return NewPerlin(seed) },
	KindGoPerlin: func(seed int64) Source {
		// single octave, Fractal2D does the layering
		return &goPerlin{p: perlin.NewPerlin(2, 2, 1, seed)}
	},
	KindSimplex: func(seed int64) Source {
		return &simplex{n: opensimplex.NewNormalized(seed)}
	},
}

// NewSource returns the backend registered under kind, seeded with seed.
func NewSource(kind string, seed int64) (Source, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
	return f(seed), nil
}

// Kinds lists the registered backend names in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type goPerlin struct {
	p *perlin.Perlin
}

func (g *goPerlin) Noise2D(x, y float64) float64 {
	return clamp01((g.p.Noise2D(x, y) + 1) / 2)
}

type simplex struct {
	n opensimplex.Noise
}

func (s *simplex) Noise2D(x, y float64) float64 {
	return clamp01(s.n.Eval2(x, y))
}
