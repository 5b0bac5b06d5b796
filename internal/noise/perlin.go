package noise

import (
	"math"
	"math/rand"
)

// Source is a 2D noise function. Implementations return values in [0, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// gradients are the eight lattice directions used by the 2D gradient noise.
var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Perlin is classic gradient noise over a seeded permutation table.
type Perlin struct {
	perm [512]int // doubled so corner lookups never wrap
}

// NewPerlin builds a Perlin source whose lattice hashing is derived from seed.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 256; i++ {
		p.perm[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}
	for i := 0; i < 256; i++ {
		p.perm[256+i] = p.perm[i]
	}
	return p
}

// Noise2D returns the gradient noise at (x, y) remapped from [-1, 1] to [0, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	return clamp01((p.raw(x, y) + 1) / 2)
}

func (p *Perlin) raw(x, y float64) float64 {
	xf, yf := math.Floor(x), math.Floor(y)
	xi, yi := int(xf)&255, int(yf)&255
	x -= xf
	y -= yf

	u, v := fade(x), fade(y)

	a := p.perm[xi] + yi
	b := p.perm[xi+1] + yi

	return lerp(v,
		lerp(u, grad(p.perm[a], x, y), grad(p.perm[b], x-1, y)),
		lerp(u, grad(p.perm[a+1], x, y-1), grad(p.perm[b+1], x-1, y-1)),
	)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 easing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	g := gradients[hash&7]
	return g[0]*x + g[1]*y
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
