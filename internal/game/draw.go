package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/perlin-terrain/internal/gui"
)

var (
	buttonNormal  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHovered = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressed = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	labelFill     = color.RGBA{R: 25, G: 30, B: 40, A: 220}
	borderColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.width, g.height)
	}
	if !g.uploaded {
		g.canvas.WritePixels(g.pixels.Pix)
		g.uploaded = true
	}

	screen.Fill(color.Black)
	screen.DrawImage(g.canvas, nil)

	for _, w := range g.ui.Widgets() {
		g.drawWidget(screen, w)
	}

	g.drawStatus(screen)
}

func (g *Game) drawWidget(screen *ebiten.Image, w gui.Widget) {
	var bg color.Color
	switch {
	case !w.Interactive:
		bg = labelFill
	case w.Pressed:
		bg = buttonPressed
	case w.Hovered:
		bg = buttonHovered
	default:
		bg = buttonNormal
	}

	x, y := float32(w.Rect.X), float32(w.Rect.Y)
	rw, rh := float32(w.Rect.W), float32(w.Rect.H)
	vector.DrawFilledRect(screen, x, y, rw, rh, bg, false)
	vector.StrokeRect(screen, x, y, rw, rh, 1, borderColor, false)

	if g.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w.Rect.X)+float64(w.Rect.W)/2, float64(w.Rect.Y)+float64(w.Rect.H)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, w.Label, g.face, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	sound := "on"
	if g.sound.Muted() {
		sound = "off"
	}
	status := fmt.Sprintf("seed=%d  source=%s  palette=%s  render %s (avg %s)  sound %s",
		g.params.Seed, g.kind, g.palette,
		formatElapsed(g.timings.last()), formatElapsed(g.timings.average()), sound)
	help := "Space: new seed  P: palette  M: mute  Esc/Q: quit"
	if g.lastErr != nil {
		help += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, g.height-36)
	ebitenutil.DebugPrintAt(screen, help, 8, g.height-20)
}
