package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/iburimskiy/perlin-terrain/internal/config"
	"github.com/iburimskiy/perlin-terrain/internal/noise"
	"github.com/iburimskiy/perlin-terrain/internal/terrain"
)

// Command-line flags. Any flag set explicitly overrides the config file.
var (
	// configFlag points at an optional JSON config file.
	configFlag = flag.String("config", "", "path to a JSON config file")

	frequencyFlag = flag.Int("frequency", terrain.DefaultFrequency, "base noise frequency (>= 1)")
	depthFlag     = flag.Int("depth", terrain.DefaultDepth, "number of octaves (>= 1)")
	scaleFlag     = flag.Float64("scale", terrain.DefaultScale, "pixel to noise coordinate scale (> 0)")

	// seedFlag fixes the noise seed; 0 picks a random one at startup.
	seedFlag = flag.Int64("seed", 0, "noise seed, 0 for random")

	sourceFlag  = flag.String("source", noise.KindPerlin, "noise backend: "+strings.Join(noise.Kinds(), ", "))
	paletteFlag = flag.String("palette", terrain.PaletteTerrain.String(), "color palette: terrain, grayscale, heat")

	// fontFlag loads a TrueType font instead of the embedded one.
	fontFlag = flag.String("font", "", "path to a .ttf font for button labels")

	muteFlag = flag.Bool("mute", false, "start with the click sound muted")
)

// loadConfig builds the startup configuration from the config file and the
// flags that were set on the command line.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frequency":
			cfg.Frequency = *frequencyFlag
		case "depth":
			cfg.Depth = *depthFlag
		case "scale":
			cfg.Scale = *scaleFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "source":
			cfg.Source = *sourceFlag
		case "palette":
			cfg.Palette = *paletteFlag
		case "font":
			cfg.FontPath = *fontFlag
		case "mute":
			cfg.Mute = *muteFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
