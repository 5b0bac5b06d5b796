// Package gui is a minimal immediate-mode button layer. Widgets are declared
// every frame; a declaration returns whether it was clicked in this frame and
// records a Widget for the renderer to draw.
package gui

// Mouse is the pointer state sampled once per frame.
type Mouse struct {
	X, Y    int
	Down    bool // left button held
	Clicked bool // left button went down this frame
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Widget is one declared element, in declaration order.
type Widget struct {
	Label       string
	Rect        Rect
	Interactive bool
	Hovered     bool
	Pressed     bool
}

// MeasureFunc returns the pixel size of a rendered label.
type MeasureFunc func(label string) (w, h int)

type Options struct {
	Padding  int // space between label and button edge
	TinySize int // side of a TinyButton
}

// Context holds the layout cursor and the widgets of the current frame.
type Context struct {
	measure MeasureFunc
	opts    Options

	mouse   Mouse
	widgets []Widget

	// vertical stack cursor
	x, y    int
	spacing int
}

func New(measure MeasureFunc, opts Options) *Context {
	return &Context{measure: measure, opts: opts}
}

// Begin starts a new frame with the given pointer state.
func (c *Context) Begin(m Mouse) {
	c.mouse = m
	c.widgets = c.widgets[:0]
	c.x, c.y, c.spacing = 0, 0, 0
}

// Stack moves the layout cursor. Following widgets are placed top to bottom
// starting at (x, y), separated by spacing pixels.
func (c *Context) Stack(x, y, spacing int) {
	c.x, c.y, c.spacing = x, y, spacing
}

// Button declares a button sized to its label and reports a click on it.
func (c *Context) Button(label string) bool {
	w, h := c.measure(label)
	pad := c.opts.Padding
	return c.place(label, w+2*pad, h+2*pad, true)
}

// TinyButton declares a fixed-size square button.
func (c *Context) TinyButton(label string) bool {
	return c.place(label, c.opts.TinySize, c.opts.TinySize, true)
}

// Label declares a button-shaped readout that never reports clicks.
func (c *Context) Label(label string) {
	w, h := c.measure(label)
	pad := c.opts.Padding
	c.place(label, w+2*pad, h+2*pad, false)
}

// Widgets returns the widgets declared since Begin. The slice is reused by
// the next frame.
func (c *Context) Widgets() []Widget {
	return c.widgets
}

func (c *Context) place(label string, w, h int, interactive bool) bool {
	r := Rect{X: c.x, Y: c.y, W: w, H: h}
	c.y += h + c.spacing

	hovered := r.Contains(c.mouse.X, c.mouse.Y)
	c.widgets = append(c.widgets, Widget{
		Label:       label,
		Rect:        r,
		Interactive: interactive,
		Hovered:     interactive && hovered,
		Pressed:     interactive && hovered && c.mouse.Down,
	})
	return interactive && hovered && c.mouse.Clicked
}
