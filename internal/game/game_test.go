package game

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/perlin-terrain/internal/config"
	"github.com/iburimskiy/perlin-terrain/internal/gui"
	"github.com/iburimskiy/perlin-terrain/internal/terrain"
)

type countingClicker struct {
	clicks int
	muted  bool
}

func (c *countingClicker) Click()           { c.clicks++ }
func (c *countingClicker) ToggleMute() bool { c.muted = !c.muted; return c.muted }
func (c *countingClicker) Muted() bool      { return c.muted }

func fixedMeasure(label string) (int, int) {
	return 8 * len(label), 12
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 32, 18
	cfg.Seed = 99
	cfg.Scale = 0.05
	return cfg
}

func newTestGame(t *testing.T) (*Game, *countingClicker) {
	t.Helper()
	c := &countingClicker{}
	g, err := newGame(testConfig(), fixedMeasure, c, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g, c
}

var idle = gui.Mouse{X: -1, Y: -1}

// click presses the idx-th widget laid out by the previous frame.
func click(t *testing.T, g *Game, idx int) {
	t.Helper()
	ws := g.ui.Widgets()
	if idx >= len(ws) {
		t.Fatalf("no widget %d, have %d", idx, len(ws))
	}
	r := ws[idx].Rect
	m := gui.Mouse{X: r.X + r.W/2, Y: r.Y + r.H/2, Down: true, Clicked: true}
	if err := g.step(input{mouse: m}); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func openMenu(t *testing.T, g *Game) {
	t.Helper()
	if err := g.step(input{mouse: idle}); err != nil {
		t.Fatal(err)
	}
	click(t, g, 0)
	if err := g.step(input{mouse: idle}); err != nil {
		t.Fatal(err)
	}
	if !g.showMenu {
		t.Fatal("menu did not open")
	}
}

// widget indexes with the menu open
const (
	wToggle = iota
	wFreqLabel
	wFreqInc
	wFreqDec
	wDepthLabel
	wDepthInc
	wDepthDec
	wScaleLabel
	wScaleInc
	wScaleDec
)

func TestFirstStepRenders(t *testing.T) {
	g, c := newTestGame(t)
	if err := g.step(input{mouse: idle}); err != nil {
		t.Fatal(err)
	}
	if c.clicks != 1 || g.dirty || g.uploaded {
		t.Fatalf("clicks=%d dirty=%v uploaded=%v", c.clicks, g.dirty, g.uploaded)
	}
	if len(g.timings.snapshot(10)) != 1 {
		t.Fatal("render timing not recorded")
	}

	if err := g.step(input{mouse: idle}); err != nil {
		t.Fatal(err)
	}
	if c.clicks != 1 {
		t.Fatal("idle frame regenerated")
	}
}

func TestMenuToggle(t *testing.T) {
	g, _ := newTestGame(t)
	g.step(input{mouse: idle})
	if n := len(g.ui.Widgets()); n != 1 {
		t.Fatalf("closed menu shows %d widgets", n)
	}
	openMenu(t, g)
	if n := len(g.ui.Widgets()); n != 10 {
		t.Fatalf("open menu shows %d widgets, want 10", n)
	}
	if got := g.ui.Widgets()[wFreqLabel].Label; got != "freq=7" {
		t.Fatalf("frequency readout %q", got)
	}
	if got := g.ui.Widgets()[wScaleLabel].Label; got != "scale=0.0500" {
		t.Fatalf("scale readout %q", got)
	}
	click(t, g, wToggle)
	if g.showMenu {
		t.Fatal("menu did not close")
	}
}

func TestButtonsAdjustParams(t *testing.T) {
	g, c := newTestGame(t)
	openMenu(t, g)
	before := c.clicks

	click(t, g, wFreqInc)
	if g.params.Frequency != 8 {
		t.Fatalf("frequency %d, want 8", g.params.Frequency)
	}
	click(t, g, wDepthDec)
	if g.params.Depth != 6 {
		t.Fatalf("depth %d, want 6", g.params.Depth)
	}
	click(t, g, wScaleInc)
	if g.params.Scale != 0.1 {
		t.Fatalf("scale %v, want 0.1", g.params.Scale)
	}
	click(t, g, wScaleDec)
	if g.params.Scale != 0.05 {
		t.Fatalf("scale %v, want 0.05", g.params.Scale)
	}
	if c.clicks != before+4 {
		t.Fatalf("expected 4 regenerations, got %d", c.clicks-before)
	}
}

func TestClickOnLabelDoesNothing(t *testing.T) {
	g, c := newTestGame(t)
	openMenu(t, g)
	before := c.clicks
	click(t, g, wFreqLabel)
	if c.clicks != before || g.params.Frequency != 7 {
		t.Fatal("label click changed state")
	}
}

func TestDecrementFloors(t *testing.T) {
	g, _ := newTestGame(t)
	openMenu(t, g)
	for i := 0; i < 10; i++ {
		click(t, g, wFreqDec)
		click(t, g, wDepthDec)
	}
	if g.params.Frequency != 1 || g.params.Depth != 1 {
		t.Fatalf("floors broken: %+v", g.params)
	}
}

func TestReseed(t *testing.T) {
	g, c := newTestGame(t)
	g.step(input{mouse: idle})
	first := append([]byte(nil), g.pixels.Pix...)
	seed := g.params.Seed

	if err := g.step(input{mouse: idle, reseed: true}); err != nil {
		t.Fatal(err)
	}
	if g.params.Seed == seed {
		t.Fatal("seed unchanged")
	}
	if c.clicks != 2 {
		t.Fatalf("reseed did not regenerate, clicks=%d", c.clicks)
	}
	if bytes.Equal(first, g.pixels.Pix) {
		t.Fatal("new seed produced identical image")
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a, _ := newTestGame(t)
	b, _ := newTestGame(t)
	a.step(input{mouse: idle})
	b.step(input{mouse: idle})
	if !bytes.Equal(a.pixels.Pix, b.pixels.Pix) {
		t.Fatal("same config rendered differently")
	}
}

func TestZeroSeedPicksRandom(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	g, err := newGame(cfg, fixedMeasure, nil, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if g.params.Seed == 0 {
		t.Fatal("seed not assigned")
	}
	if err := g.step(input{mouse: idle}); err != nil {
		t.Fatal(err)
	}
}

func TestPaletteAndMute(t *testing.T) {
	g, c := newTestGame(t)
	g.step(input{mouse: idle})
	g.step(input{mouse: idle, nextPalette: true, toggleMute: true})
	if g.palette != terrain.PaletteGrayscale {
		t.Fatalf("palette %v", g.palette)
	}
	if !c.muted {
		t.Fatal("mute not toggled")
	}
	if c.clicks != 2 {
		t.Fatal("palette change did not regenerate")
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.step(input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Source = "worley"
	if _, err := newGame(cfg, fixedMeasure, nil, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 32 || h != 18 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
}
