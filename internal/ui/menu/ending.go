package menu

import (
	"image/color"

	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/ui/hud"
)

// Ending actions
const (
	EndingReplay  = "replay"
	EndingResume  = "resume"
	EndingPhone   = "phone"
	EndingContact = "contact"
)

// EndingScreen is the curtain drawn once the game is over. Each button
// yields its action string.
type EndingScreen struct {
	renderer     render.Renderer
	input        render.InputManager
	ending       content.Ending
	screenWidth  int
	screenHeight int
	selected     int
	curtain      int // Frames of the closing curtain still to draw
}

const curtainFrames = 45

// NewEndingScreen creates the ending screen for the given text and buttons
func NewEndingScreen(r render.Renderer, input render.InputManager, ending content.Ending, width, height int) *EndingScreen {
	return &EndingScreen{
		renderer:     r,
		input:        input,
		ending:       ending,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Reset restarts the curtain animation and selects the first button
func (e *EndingScreen) Reset() {
	e.selected = 0
	e.curtain = curtainFrames
}

// Selected returns the highlighted button index
func (e *EndingScreen) Selected() int { return e.selected }

// Update returns the action of a pressed button, or "" when none was
func (e *EndingScreen) Update() string {
	if e.curtain > 0 {
		e.curtain--
		return ""
	}
	buttons := e.ending.Buttons
	if len(buttons) == 0 {
		return ""
	}

	for _, p := range justPressed(e.input) {
		for i, b := range buttons {
			if pointInRect(p.X, p.Y, e.buttonRect(i, len(buttons))) {
				e.selected = i
				return b.Action
			}
		}
	}

	switch {
	case e.input.IsKeyJustPressed(render.KeyLeft), e.input.IsKeyJustPressed(render.KeyUp):
		e.selected = (e.selected + len(buttons) - 1) % len(buttons)
	case e.input.IsKeyJustPressed(render.KeyRight), e.input.IsKeyJustPressed(render.KeyDown):
		e.selected = (e.selected + 1) % len(buttons)
	case e.input.IsKeyJustPressed(render.KeyEnter), e.input.IsKeyJustPressed(render.KeySpace),
		e.input.IsKeyJustPressed(render.KeyE):
		return buttons[e.selected].Action
	}
	return ""
}

// buttonRect lays the buttons out in a row near the bottom
func (e *EndingScreen) buttonRect(i, n int) rect {
	const w, h, gap = 200, 44, 16
	total := n*w + (n-1)*gap
	x := (e.screenWidth - total) / 2
	return rect{x: x + i*(w+gap), y: e.screenHeight - 140, w: w, h: h}
}

// Draw renders the curtain, the closing text and the buttons
func (e *EndingScreen) Draw(screen render.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	// Red curtains drawing apart
	open := float32(curtainFrames-e.curtain) / curtainFrames
	half := float32(e.screenWidth) / 2
	drape := half * (1 - open*0.85)
	red := color.RGBA{150, 20, 30, 255}
	e.renderer.FillRect(screen, 0, 0, drape, float32(e.screenHeight), red)
	e.renderer.FillRect(screen, float32(e.screenWidth)-drape, 0, drape, float32(e.screenHeight), red)
	if e.curtain > 0 {
		return
	}

	titleColor := color.RGBA{255, 230, 150, 255}
	w, _ := e.renderer.MeasureText(e.ending.Title, 2.5)
	e.renderer.DrawText(screen, e.ending.Title, (e.screenWidth-w)/2, 80, titleColor, 2.5)

	y := 160
	for _, line := range hud.WrapText(e.ending.Message, e.screenWidth/2) {
		lw, _ := e.renderer.MeasureText(line, 1.0)
		e.renderer.DrawText(screen, line, (e.screenWidth-lw)/2, y, color.RGBA{230, 230, 230, 255}, 1.0)
		y += 18
	}

	for i, b := range e.ending.Buttons {
		r := e.buttonRect(i, len(e.ending.Buttons))
		bg := color.RGBA{60, 40, 50, 255}
		if i == e.selected {
			bg = color.RGBA{180, 120, 40, 255}
		}
		e.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg)
		tw, th := e.renderer.MeasureText(b.Label, 1.2)
		e.renderer.DrawText(screen, b.Label, r.x+(r.w-tw)/2, r.y+(r.h-th)/2, color.White, 1.2)
	}
}
