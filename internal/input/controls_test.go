package input

import (
	"image"
	"testing"

	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/render/rendertest"
)

func newControls() (*Controls, *rendertest.Input) {
	in := rendertest.NewInput()
	return NewControls(in, DefaultLayout(1024, 576)), in
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestKeyboardDirections(t *testing.T) {
	c, in := newControls()

	in.Press(render.KeyUp)
	in.Press(render.KeyD)
	c.Update()
	if !c.Pressed(entity.DirUp) || !c.Pressed(entity.DirRight) {
		t.Fatal("Expected up and right held")
	}
	if c.Pressed(entity.DirDown) || c.Pressed(entity.DirLeft) {
		t.Error("Unexpected direction held")
	}

	in.EndTick()
	in.Release(render.KeyUp)
	c.Update()
	if c.Pressed(entity.DirUp) {
		t.Error("Release should clear up")
	}
	if !c.Pressed(entity.DirRight) {
		t.Error("Right should still be held")
	}
}

func TestSuppressedIgnoresPressesButHonoursReleases(t *testing.T) {
	c, in := newControls()

	in.Press(render.KeyLeft)
	c.Update()
	in.EndTick()

	c.SetSuppressed(true)
	in.Press(render.KeyDown)
	c.Update()
	if c.Pressed(entity.DirDown) {
		t.Error("Press while suppressed should be ignored")
	}
	if !c.Pressed(entity.DirLeft) {
		t.Error("A direction held before suppression stays held")
	}

	in.Release(render.KeyLeft)
	c.Update()
	if c.Pressed(entity.DirLeft) {
		t.Error("Release while suppressed should be honoured")
	}

	// Still holding down after the overlay closes does not count as a press
	c.SetSuppressed(false)
	c.Update()
	if c.Pressed(entity.DirDown) {
		t.Error("Held key should need a fresh press")
	}
	in.Release(render.KeyDown)
	c.Update()
	in.Press(render.KeyDown)
	c.Update()
	if !c.Pressed(entity.DirDown) {
		t.Error("Fresh press should count")
	}
}

func TestOnScreenPad(t *testing.T) {
	c, in := newControls()
	layout := c.Layout()

	in.Touches = []image.Point{center(layout.Left)}
	c.Update()
	if !c.Pressed(entity.DirLeft) {
		t.Error("Touching the left pad should press left")
	}

	in.Touches = nil
	in.Cursor = center(layout.Up)
	in.Mouse = true
	c.Update()
	if c.Pressed(entity.DirLeft) || !c.Pressed(entity.DirUp) {
		t.Error("Mouse on the up pad should press only up")
	}
}

func TestButtonsAreEdgeTriggered(t *testing.T) {
	c, in := newControls()

	in.Press(render.KeySpace)
	c.Update()
	if !c.ButtonA() {
		t.Fatal("Space should press A")
	}
	in.EndTick()
	c.Update()
	if c.ButtonA() {
		t.Error("A should only fire on the tick it was pressed")
	}

	in.Click(center(c.Layout().B))
	c.Update()
	if !c.ButtonB() || c.ButtonA() {
		t.Error("Clicking B should press only B")
	}
	in.EndTick()

	in.Press(render.KeyEscape)
	in.Press(render.KeyM)
	c.Update()
	if !c.Menu() || !c.Mute() {
		t.Error("Expected menu and mute")
	}
}

func TestClear(t *testing.T) {
	c, in := newControls()
	in.Press(render.KeyS)
	c.Update()
	c.Clear()
	if c.Pressed(entity.DirDown) {
		t.Fatal("Clear should release every direction")
	}
	in.EndTick()
	c.Update()
	if c.Pressed(entity.DirDown) {
		t.Error("A key held through Clear must be pressed again")
	}
}

func TestLayoutDoesNotOverlap(t *testing.T) {
	l := DefaultLayout(1024, 576)
	rects := []image.Rectangle{l.Up, l.Down, l.Left, l.Right, l.A, l.B}
	for i := range rects {
		if !rects[i].In(image.Rect(0, 0, 1024, 576)) {
			t.Errorf("Control %d is off screen: %v", i, rects[i])
		}
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				t.Errorf("Controls %d and %d overlap", i, j)
			}
		}
	}
}
