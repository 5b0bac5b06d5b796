package terrain

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/perlin-terrain/internal/noise"
)

// rowsPerBand is the unit of work handed to one render goroutine.
const rowsPerBand = 16

// Render fills dst with the colorized fractal noise for p. Each pixel (x, y)
// samples the noise at (x*Scale, y*Scale) in dst's local coordinates.
// Bands of rows are rendered concurrently; pixels do not depend on each
// other so the result matches a sequential pass.
func Render(ctx context.Context, dst *image.RGBA, src noise.Source, p Params, pal Palette) error {
	p.Clamp()
	o := p.octaves()
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y0 := y0
		y1 := min(y0+rowsPerBand, h)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
				for x := 0; x < w; x++ {
					v := noise.Fractal2D(src, float64(x)*p.Scale, float64(y)*p.Scale, o)
					c := pal.Color(v)
					i := x * 4
					row[i+0] = c.R
					row[i+1] = c.G
					row[i+2] = c.B
					row[i+3] = c.A
				}
			}
			return nil
		})
	}
	return g.Wait()
}
