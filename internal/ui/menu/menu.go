// Package menu draws the title menu, the character choice, the text pages
// and the ending curtain, and turns clicks, taps and keys into selections.
package menu

import (
	"image"
	"image/color"

	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/ui/hud"
)

// Screen is the menu page being shown
type Screen int

const (
	ScreenMain Screen = iota
	ScreenCharacter
	ScreenPage
)

// Page names understood by the main screen
const (
	PageAbout    = "about"
	PageMakingOf = "making_of"
)

// Selection represents what the player chose to start with.
type Selection struct {
	Character entity.Character
}

// PageSource provides the text of the about and making-of pages
type PageSource interface {
	Page(name string) (overlay.Content, bool)
}

type entry struct {
	label  string
	action func() (bool, Selection)
}

// MainMenu represents the main menu screen.
type MainMenu struct {
	renderer     render.Renderer
	input        render.InputManager
	pages        PageSource
	screenWidth  int
	screenHeight int

	screen   Screen
	page     overlay.Content
	selected int
}

// NewMainMenu creates a new main menu.
func NewMainMenu(r render.Renderer, input render.InputManager, pages PageSource, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        input,
		pages:        pages,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Screen returns the page being shown
func (m *MainMenu) Screen() Screen { return m.screen }

// Selected returns the highlighted entry index
func (m *MainMenu) Selected() int { return m.selected }

// Reset goes back to the main screen
func (m *MainMenu) Reset() {
	m.show(ScreenMain)
}

func (m *MainMenu) show(s Screen) {
	m.screen = s
	m.selected = 0
}

func (m *MainMenu) entries() []entry {
	switch m.screen {
	case ScreenCharacter:
		return []entry{
			{"Féminin", m.start(entity.CharacterFeminine)},
			{"Masculin", m.start(entity.CharacterMasculine)},
			{"Retour", m.goTo(ScreenMain)},
		}
	case ScreenPage:
		return []entry{{"Retour", m.goTo(ScreenMain)}}
	default:
		return []entry{
			{"JOUER", m.goTo(ScreenCharacter)},
			{"À PROPOS", m.openPage(PageAbout)},
			{"MAKING OF", m.openPage(PageMakingOf)},
		}
	}
}

func (m *MainMenu) start(c entity.Character) func() (bool, Selection) {
	return func() (bool, Selection) {
		m.show(ScreenMain)
		return true, Selection{Character: c}
	}
}

func (m *MainMenu) goTo(s Screen) func() (bool, Selection) {
	return func() (bool, Selection) {
		m.show(s)
		return false, Selection{}
	}
}

func (m *MainMenu) openPage(name string) func() (bool, Selection) {
	return func() (bool, Selection) {
		if m.pages == nil {
			return false, Selection{}
		}
		content, ok := m.pages.Page(name)
		if !ok {
			return false, Selection{}
		}
		m.page = content
		m.show(ScreenPage)
		return false, Selection{}
	}
}

// Update updates the menu state based on user input.
// Returns true once a character was picked.
func (m *MainMenu) Update() (selected bool, selection Selection) {
	entries := m.entries()

	for _, p := range justPressed(m.input) {
		for i := range entries {
			if pointInRect(p.X, p.Y, m.entryRect(i, len(entries))) {
				m.selected = i
				return entries[i].action()
			}
		}
	}

	switch {
	case m.input.IsKeyJustPressed(render.KeyUp), m.input.IsKeyJustPressed(render.KeyW):
		m.selected = (m.selected + len(entries) - 1) % len(entries)
	case m.input.IsKeyJustPressed(render.KeyDown), m.input.IsKeyJustPressed(render.KeyS):
		m.selected = (m.selected + 1) % len(entries)
	case m.input.IsKeyJustPressed(render.KeyEnter), m.input.IsKeyJustPressed(render.KeySpace),
		m.input.IsKeyJustPressed(render.KeyE):
		return entries[m.selected].action()
	case m.input.IsKeyJustPressed(render.KeyEscape), m.input.IsKeyJustPressed(render.KeyBackspace):
		if m.screen != ScreenMain {
			m.show(ScreenMain)
		}
	}

	return false, Selection{}
}

// entryRect places entry i of n; entries sit in the lower half of the screen
func (m *MainMenu) entryRect(i, n int) rect {
	const w, h, gap = 300, 40, 12
	top := m.screenHeight - n*(h+gap) - 60
	if m.screen != ScreenPage {
		top = m.screenHeight/2 - 20
	}
	return rect{x: (m.screenWidth - w) / 2, y: top + i*(h+gap), w: w, h: h}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	// Clear screen with a night-sky background
	screen.Fill(color.RGBA{20, 20, 30, 255})

	titleColor := color.RGBA{255, 255, 255, 255}
	switch m.screen {
	case ScreenCharacter:
		m.drawCentered(screen, "Choisis ton personnage", 90, titleColor, 2.0)
	case ScreenPage:
		m.drawCentered(screen, m.page.Title, 50, titleColor, 2.0)
		y := 100
		for _, line := range hud.WrapText(m.page.Message, m.screenWidth-160) {
			m.renderer.DrawText(screen, line, 80, y, color.RGBA{200, 200, 200, 255}, 1.0)
			y += 18
		}
	default:
		m.drawCentered(screen, "DÉCOUVRE-MOI", 90, titleColor, 3.0)
		m.drawCentered(screen, "Un petit jeu d'exploration", 150, color.RGBA{200, 200, 255, 255}, 1.2)
	}

	entries := m.entries()
	for i, e := range entries {
		r := m.entryRect(i, len(entries))
		bg := color.RGBA{50, 60, 90, 255}
		textColor := color.RGBA{200, 200, 255, 255}
		if i == m.selected {
			bg = color.RGBA{80, 130, 80, 255}
			textColor = color.RGBA{255, 255, 100, 255}
		}
		m.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg)
		tw, th := m.renderer.MeasureText(e.label, 1.5)
		m.renderer.DrawText(screen, e.label, r.x+(r.w-tw)/2, r.y+(r.h-th)/2, textColor, 1.5)
	}

	// Draw instructions
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "Flèches pour choisir, Entrée ou clic pour valider.", 20, m.screenHeight-24, instructionColor, 1.0)
}

func (m *MainMenu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, (m.screenWidth-w)/2, y, clr, scale)
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

// justPressed returns mouse clicks and touches that began this tick
func justPressed(in render.InputManager) []image.Point {
	points := append([]image.Point(nil), in.JustTouched()...)
	if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := in.GetCursorPosition()
		points = append(points, image.Pt(x, y))
	}
	return points
}
