package terrain

import (
	"fmt"
	"image/color"
	"math"
)

// Palette maps a noise value to a pixel color.
type Palette int

const (
	PaletteTerrain Palette = iota
	PaletteGrayscale
	PaletteHeat
	paletteCount
)

var paletteNames = [...]string{"terrain", "grayscale", "heat"}

func (p Palette) String() string {
	if p < 0 || p >= paletteCount {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteNames[p]
}

// Next cycles to the following palette, wrapping around.
func (p Palette) Next() Palette {
	return (p + 1) % paletteCount
}

func ParsePalette(s string) (Palette, error) {
	for i, n := range paletteNames {
		if n == s {
			return Palette(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette %q", s)
}

var (
	darkGreen  = color.RGBA{R: 32, G: 71, B: 40, A: 255}
	green      = color.RGBA{R: 52, G: 91, B: 60, A: 255}
	lightTan   = color.RGBA{R: 196, G: 194, B: 179, A: 255}
	darkBlue   = color.RGBA{R: 34, G: 85, B: 134, A: 255}
	lightBlue  = color.RGBA{R: 69, G: 120, B: 139, A: 255}
	purple     = color.RGBA{R: 68, G: 60, B: 106, A: 255}
	belowFloor = color.RGBA{A: 255}
)

// Color returns the opaque color for noise value v.
func (p Palette) Color(v float64) color.RGBA {
	switch p {
	case PaletteGrayscale:
		c := uint8(clamp01(v) * 255)
		return color.RGBA{R: c, G: c, B: c, A: 255}
	case PaletteHeat:
		// blue (240) at the bottom through to red (0) at the top
		r, g, b := hsvToRgb(240*(1-clamp01(v)), 0.85, 0.9)
		return color.RGBA{R: r, G: g, B: b, A: 255}
	default:
		return terrainColor(v)
	}
}

func terrainColor(v float64) color.RGBA {
	switch {
	case v > 0.8:
		return darkGreen
	case v > 0.55:
		return green
	case v > 0.50:
		return lightTan
	case v > 0.48:
		return darkBlue
	case v > 0.15:
		return lightBlue
	case v >= 0:
		return purple
	default:
		return belowFloor
	}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
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
