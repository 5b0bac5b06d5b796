package noise

const (
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// Octaves describes a fractal sum of noise layers.
type Octaves struct {
	Frequency   float64 // base coordinate multiplier
	Depth       int     // number of layers, at least one is always sampled
	Lacunarity  float64 // coordinate multiplier between layers
	Persistence float64 // amplitude multiplier between layers
}

// Fractal2D sums Depth layers of src and normalizes by the total amplitude,
// so the result stays in the range of src.
func Fractal2D(src Source, x, y float64, o Octaves) float64 {
	lacunarity := o.Lacunarity
	if lacunarity <= 0 {
		lacunarity = DefaultLacunarity
	}
	persistence := o.Persistence
	if persistence <= 0 {
		persistence = DefaultPersistence
	}
	depth := o.Depth
	if depth < 1 {
		depth = 1
	}

	xa, ya := x*o.Frequency, y*o.Frequency
	amp := 1.0
	var sum, div float64
	for i := 0; i < depth; i++ {
		sum += src.Noise2D(xa, ya) * amp
		div += amp
		amp *= persistence
		xa *= lacunarity
		ya *= lacunarity
	}
	return sum / div
}
