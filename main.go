package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/perlin-terrain/internal/config"
	"github.com/iburimskiy/perlin-terrain/internal/game"
	"github.com/iburimskiy/perlin-terrain/internal/sound"
)

// fatalDialog shows err in a native message box and exits.
func fatalDialog(title string, err error) {
	log.Printf("%s: %v", title, err)
	if derr := zenity.Error(err.Error(), zenity.Title(title), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	os.Exit(1)
}

func main() {
	flag.Parse()
	log.SetPrefix("perlin: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	face, err := game.LoadFace(cfg.FontPath, config.FontSize)
	if err != nil {
		fatalDialog("Error: Font", err)
	}

	clicker, err := sound.NewClicker(cfg.Mute)
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}

	g, err := game.NewGame(cfg, face, clicker)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Perlin - ?: menu, Space: new seed, P: palette, M: mute, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
