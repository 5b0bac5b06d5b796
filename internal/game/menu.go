package game

import (
	"fmt"

	"github.com/iburimskiy/perlin-terrain/internal/config"
	"github.com/iburimskiy/perlin-terrain/internal/gui"
)

// menu declares this frame's buttons and applies their clicks to g.params.
// It reports whether any parameter changed.
func (g *Game) menu(m gui.Mouse) bool {
	ui := g.ui
	ui.Begin(m)
	ui.Stack(config.StackX, config.StackY, config.StackSpacing)

	if ui.TinyButton("?") {
		g.showMenu = !g.showMenu
	}
	if !g.showMenu {
		return false
	}

	changed := false

	ui.Label(fmt.Sprintf("freq=%d", g.params.Frequency))
	if ui.Button("+") {
		g.params.IncFrequency()
		changed = true
	}
	if ui.Button("-") {
		g.params.DecFrequency()
		changed = true
	}

	ui.Label(fmt.Sprintf("depth=%d", g.params.Depth))
	if ui.Button("+") {
		g.params.IncDepth()
		changed = true
	}
	if ui.Button("-") {
		g.params.DecDepth()
		changed = true
	}

	ui.Label(fmt.Sprintf("scale=%0.4f", g.params.Scale))
	if ui.Button("+") {
		g.params.ScaleUp()
		changed = true
	}
	if ui.Button("-") {
		g.params.ScaleDown()
		changed = true
	}

	return changed
}
