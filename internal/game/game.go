package game

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/perlin-terrain/internal/config"
	"github.com/iburimskiy/perlin-terrain/internal/gui"
	"github.com/iburimskiy/perlin-terrain/internal/noise"
	"github.com/iburimskiy/perlin-terrain/internal/terrain"
)

// Clicker gives audible feedback when a new image is generated.
type Clicker interface {
	Click()
	ToggleMute() bool
	Muted() bool
}

type silent struct{}

func (silent) Click()           {}
func (silent) ToggleMute() bool { return true }
func (silent) Muted() bool      { return true }

// input is everything Update reads from ebiten in one frame.
type input struct {
	mouse       gui.Mouse
	reseed      bool
	quit        bool
	nextPalette bool
	toggleMute  bool
}

// Game is the ebiten.Game driving the heightmap viewer.
type Game struct {
	width, height int

	// noise
	params  terrain.Params
	palette terrain.Palette
	kind    string
	src     noise.Source
	rng     *rand.Rand

	// image
	pixels   *image.RGBA
	canvas   *ebiten.Image
	uploaded bool

	// ui
	ui    *gui.Context
	face  text.Face
	sound Clicker

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	showMenu bool
	dirty    bool
	timings  *renderHistory
	lastErr  error
}

// NewGame builds a Game from cfg. Labels are drawn and measured with face.
func NewGame(cfg config.Config, face text.Face, sound Clicker) (*Game, error) {
	measure := func(label string) (int, int) {
		w, h := text.Measure(label, face, 0)
		return ceilInt(w), ceilInt(h)
	}
	g, err := newGame(cfg, measure, sound, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}
	g.face = face
	return g, nil
}

func newGame(cfg config.Config, measure gui.MeasureFunc, sound Clicker, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := terrain.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	if sound == nil {
		sound = silent{}
	}

	params := cfg.TerrainParams()
	if params.Seed == 0 {
		params.Seed = rng.Int63()
	}
	src, err := noise.NewSource(cfg.Source, params.Seed)
	if err != nil {
		return nil, err
	}

	return &Game{
		width:   cfg.Width,
		height:  cfg.Height,
		params:  params,
		palette: palette,
		kind:    cfg.Source,
		src:     src,
		rng:     rng,
		pixels:  image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		ui: gui.New(measure, gui.Options{
			Padding:  config.ButtonPad,
			TinySize: config.TinyButton,
		}),
		sound:   sound,
		prevKey: map[ebiten.Key]bool{},
		dirty:   true,
		timings: newRenderHistory(config.RenderHistory),
	}, nil
}

func (g *Game) Update() error {
	return g.step(g.readInput())
}

func (g *Game) readInput() input {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	esc := justPressed(ebiten.KeyEscape)
	q := justPressed(ebiten.KeyQ)

	return input{
		mouse: gui.Mouse{
			X:       mouseX,
			Y:       mouseY,
			Down:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		},
		reseed:      justPressed(ebiten.KeySpace),
		quit:        esc || q,
		nextPalette: justPressed(ebiten.KeyP),
		toggleMute:  justPressed(ebiten.KeyM),
	}
}

func (g *Game) step(in input) error {
	if in.quit {
		return ebiten.Termination
	}

	if in.reseed {
		if err := g.reseed(g.rng.Int63()); err != nil {
			g.lastErr = err
		}
	}
	if in.nextPalette {
		g.palette = g.palette.Next()
		g.dirty = true
	}
	if in.toggleMute {
		log.Printf("sound muted=%v", g.sound.ToggleMute())
	}

	if g.menu(in.mouse) {
		g.dirty = true
	}

	if g.dirty {
		g.regenerate()
	}
	return nil
}

func (g *Game) reseed(seed int64) error {
	src, err := noise.NewSource(g.kind, seed)
	if err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	g.params.Seed = seed
	g.src = src
	g.dirty = true
	return nil
}

func (g *Game) regenerate() {
	g.dirty = false

	start := time.Now()
	if err := terrain.Render(context.Background(), g.pixels, g.src, g.params, g.palette); err != nil {
		g.lastErr = fmt.Errorf("render: %w", err)
		return
	}
	elapsed := time.Since(start)

	g.timings.add(elapsed)
	g.uploaded = false
	g.lastErr = nil
	g.sound.Click()

	log.Printf("rendered seed=%d freq=%d depth=%d scale=%g palette=%s in %s",
		g.params.Seed, g.params.Frequency, g.params.Depth, g.params.Scale, g.palette, formatElapsed(elapsed))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
