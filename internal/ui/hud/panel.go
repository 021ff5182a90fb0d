package hud

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/render"
)

// Panel draws the overlay: a framed box with an icon, a title, the wrapped
// message and the A/B choices
type Panel struct {
	// Dimensions
	X, Y          int
	Width, Height int

	renderer render.Renderer
	sprites  Sprites

	// Visual settings
	bgColor     color.RGBA
	borderColor color.RGBA
	textColor   color.RGBA
	titleColor  color.RGBA
	buttonA     color.RGBA
	buttonB     color.RGBA
	lineHeight  int
	padding     int
}

// NewPanel creates a panel centred on a screen of the given size
func NewPanel(r render.Renderer, sprites Sprites, screenWidth, screenHeight int) *Panel {
	width := screenWidth * 3 / 5
	height := screenHeight * 3 / 5
	return &Panel{
		X:           (screenWidth - width) / 2,
		Y:           (screenHeight - height) / 2,
		Width:       width,
		Height:      height,
		renderer:    r,
		sprites:     sprites,
		bgColor:     color.RGBA{250, 240, 215, 240},
		borderColor: color.RGBA{110, 70, 40, 255},
		textColor:   color.RGBA{60, 40, 30, 255},
		titleColor:  color.RGBA{140, 60, 30, 255},
		buttonA:     color.RGBA{70, 160, 90, 255},
		buttonB:     color.RGBA{190, 70, 70, 255},
		lineHeight:  18,
		padding:     20,
	}
}

// Draw renders the overlay state. Nothing is drawn while closed.
func (p *Panel) Draw(screen render.Image, state overlay.State) {
	if !state.IsOpen {
		return
	}

	x, y := float32(p.X), float32(p.Y)
	p.renderer.FillRect(screen, x, y, float32(p.Width), float32(p.Height), p.bgColor)
	p.renderer.StrokeRect(screen, x, y, float32(p.Width), float32(p.Height), 3, p.borderColor)

	textX := p.X + p.padding
	currentY := p.Y + p.padding
	if state.Content.Icon != "" && p.sprites != nil {
		if p.sprites.DrawFrame(screen, "icon_"+state.Content.Icon, 0, float64(textX), float64(currentY), 1) {
			textX += 40
		}
	}
	if state.Content.Title != "" {
		p.renderer.DrawText(screen, state.Content.Title, textX, currentY+4, p.titleColor, 1.5)
		currentY += 40
	}

	maxLines := (p.Height - p.padding*2 - 40 - 50) / p.lineHeight
	for i, line := range WrapText(state.Content.Message, p.Width-p.padding*2) {
		if i >= maxLines {
			break
		}
		p.renderer.DrawText(screen, line, p.X+p.padding, currentY, p.textColor, 1.0)
		currentY += p.lineHeight
	}

	p.drawChoices(screen, state)
}

// drawChoices lays the buttons along the bottom edge, B on the left
func (p *Panel) drawChoices(screen render.Image, state overlay.State) {
	bottom := p.Y + p.Height - p.padding - 30
	if state.Variant == overlay.Simple || len(state.Choices) == 0 {
		hint := "A : Fermer"
		w, _ := p.renderer.MeasureText(hint, 1.0)
		p.renderer.DrawText(screen, hint, p.X+p.Width-p.padding-w, bottom+8, p.textColor, 1.0)
		return
	}

	right := p.X + p.Width - p.padding
	left := p.X + p.padding
	for _, c := range state.Choices {
		label := c.Key + " : " + c.Label
		w, _ := p.renderer.MeasureText(label, 1.0)
		btnColor := p.buttonA
		bx := right - w - 16
		if c.Key == overlay.ButtonB {
			btnColor = p.buttonB
			bx = left
		}
		p.renderer.FillRect(screen, float32(bx), float32(bottom), float32(w+16), 30, btnColor)
		p.renderer.DrawText(screen, label, bx+8, bottom+8, color.White, 1.0)
	}
}

// WrapText splits text into lines at most maxWidth pixels wide with the
// debug font. Newlines are kept; blank lines separate paragraphs.
func WrapText(text string, maxWidth int) []string {
	// Rough approximation: 6 pixels per character
	charsPerLine := maxWidth / 6
	if charsPerLine < 20 {
		charsPerLine = 20
	}

	var lines []string
	for _, paragraph := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var currentLine string
		for _, word := range words {
			if currentLine != "" && utf8.RuneCountInString(currentLine)+utf8.RuneCountInString(word)+1 > charsPerLine {
				lines = append(lines, currentLine)
				currentLine = word
				continue
			}
			if currentLine != "" {
				currentLine += " "
			}
			currentLine += word
		}
		lines = append(lines, currentLine)
	}
	return lines
}
