// Package input turns keyboard, mouse and touch state into game controls.
package input

import (
	"image"

	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/render"
)

// Layout places the on-screen d-pad and buttons
type Layout struct {
	Up, Down, Left, Right image.Rectangle
	A, B                  image.Rectangle
}

// DefaultLayout puts the d-pad bottom-left and the buttons bottom-right
func DefaultLayout(screenW, screenH int) Layout {
	const size = 44
	cx, cy := 24+size+size/2, screenH-24-size-size/2
	ax, ay := screenW-24-size, screenH-24-2*size
	return Layout{
		Up:    image.Rect(cx-size/2, cy-size/2-size, cx+size/2, cy-size/2),
		Down:  image.Rect(cx-size/2, cy+size/2, cx+size/2, cy+size/2+size),
		Left:  image.Rect(cx-size/2-size, cy-size/2, cx-size/2, cy+size/2),
		Right: image.Rect(cx+size/2, cy-size/2, cx+size/2+size, cy+size/2),
		A:     image.Rect(ax, ay, ax+size, ay+size),
		B:     image.Rect(ax-size-12, ay+size/2, ax-12, ay+size/2+size),
	}
}

var directionKeys = map[entity.Direction][]render.Key{
	entity.DirUp:    {render.KeyW, render.KeyUp},
	entity.DirDown:  {render.KeyS, render.KeyDown},
	entity.DirLeft:  {render.KeyA, render.KeyLeft},
	entity.DirRight: {render.KeyD, render.KeyRight},
}

var (
	buttonAKeys = []render.Key{render.KeyE, render.KeyEnter, render.KeySpace}
	buttonBKeys = []render.Key{render.KeyB, render.KeyBackspace}
)

// Controls tracks held directions and edge-triggered buttons. Every source
// feeds the same pressed flags. While suppressed, new direction presses are
// ignored but releases still clear the flag.
type Controls struct {
	input      render.InputManager
	layout     Layout
	pressed    map[entity.Direction]bool
	down       map[entity.Direction]bool
	suppressed bool

	buttonA bool
	buttonB bool
	menu    bool
	mute    bool
}

// NewControls creates controls reading from in
func NewControls(in render.InputManager, layout Layout) *Controls {
	return &Controls{
		input:   in,
		layout:  layout,
		pressed: make(map[entity.Direction]bool),
		down:    make(map[entity.Direction]bool),
	}
}

// Layout returns where the on-screen controls are
func (c *Controls) Layout() Layout { return c.layout }

// SetSuppressed blocks new direction presses, typically while an overlay is open
func (c *Controls) SetSuppressed(suppressed bool) { c.suppressed = suppressed }

// Update polls the input devices. Call once per tick.
func (c *Controls) Update() {
	pointers := c.pointers()
	for dir, keys := range directionKeys {
		down := c.anyKey(keys) || anyIn(pointers, c.directionRect(dir))
		wasDown := c.down[dir]
		c.down[dir] = down

		switch {
		case down && !wasDown:
			if !c.suppressed {
				c.pressed[dir] = true
			}
		case !down && wasDown:
			c.pressed[dir] = false
		}
	}

	taps := c.taps()
	c.buttonA = c.anyKeyJust(buttonAKeys) || anyIn(taps, c.layout.A)
	c.buttonB = c.anyKeyJust(buttonBKeys) || anyIn(taps, c.layout.B)
	c.menu = c.input.IsKeyJustPressed(render.KeyEscape)
	c.mute = c.input.IsKeyJustPressed(render.KeyM)
}

// Pressed reports whether a direction is held
func (c *Controls) Pressed(dir entity.Direction) bool { return c.pressed[dir] }

// ButtonA reports whether A was pressed this tick
func (c *Controls) ButtonA() bool { return c.buttonA }

// ButtonB reports whether B was pressed this tick
func (c *Controls) ButtonB() bool { return c.buttonB }

// Menu reports whether the player asked to go back to the menu
func (c *Controls) Menu() bool { return c.menu }

// Mute reports whether the player toggled the sound
func (c *Controls) Mute() bool { return c.mute }

// Clear releases every held direction. Sources still held must be pressed
// again before they count.
func (c *Controls) Clear() {
	for dir := range c.pressed {
		c.pressed[dir] = false
	}
	c.buttonA, c.buttonB, c.menu, c.mute = false, false, false, false
}

func (c *Controls) directionRect(dir entity.Direction) image.Rectangle {
	switch dir {
	case entity.DirUp:
		return c.layout.Up
	case entity.DirDown:
		return c.layout.Down
	case entity.DirLeft:
		return c.layout.Left
	case entity.DirRight:
		return c.layout.Right
	}
	return image.Rectangle{}
}

func (c *Controls) anyKey(keys []render.Key) bool {
	for _, k := range keys {
		if c.input.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (c *Controls) anyKeyJust(keys []render.Key) bool {
	for _, k := range keys {
		if c.input.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pointers returns every held mouse or touch position
func (c *Controls) pointers() []image.Point {
	points := append([]image.Point(nil), c.input.TouchPositions()...)
	if c.input.IsMouseButtonPressed(render.MouseButtonLeft) {
		x, y := c.input.GetCursorPosition()
		points = append(points, image.Pt(x, y))
	}
	return points
}

// taps returns pointer presses that started this tick
func (c *Controls) taps() []image.Point {
	points := append([]image.Point(nil), c.input.JustTouched()...)
	if c.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := c.input.GetCursorPosition()
		points = append(points, image.Pt(x, y))
	}
	return points
}

// Taps exposes this tick's pointer presses for menus and screens
func (c *Controls) Taps() []image.Point { return c.taps() }

func anyIn(points []image.Point, r image.Rectangle) bool {
	for _, p := range points {
		if p.In(r) {
			return true
		}
	}
	return false
}
