// Package hud draws the heads-up display over the world: hearts, the
// inventory strip, the interaction prompt, the on-screen controls and the
// overlay panel.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/discoverme/internal/input"
	"chosenoffset.com/discoverme/internal/inventory"
	"chosenoffset.com/discoverme/internal/render"
)

// Sprites draws named atlas frames. atlas.Manager implements it.
type Sprites interface {
	DrawFrame(dst render.Image, sprite string, frame int, x, y, scale float64) bool
}

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowHearts    bool    `json:"show_hearts"`
	Hearts        int     `json:"hearts"`
	ShowInventory bool    `json:"show_inventory"`
	ShowControls  bool    `json:"show_controls"` // On-screen d-pad and A/B buttons
	Opacity       float64 `json:"opacity"`       // Background opacity (0-1)
}

// DefaultConfig returns the HUD shown in game
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowHearts:    true,
		Hearts:        3,
		ShowInventory: true,
		ShowControls:  true,
		Opacity:       0.7,
	}
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	sprites      Sprites
	screenWidth  int
	screenHeight int

	panel *Panel
	strip []*inventory.Item // Held items listed in the inventory strip
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, sprites Sprites, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		sprites:      sprites,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panel:        NewPanel(r, sprites, screenWidth, screenHeight),
	}
}

// Panel returns the overlay panel
func (h *HUD) Panel() *Panel { return h.panel }

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
	h.panel = NewPanel(h.renderer, h.sprites, width, height)
}

// SetInventory rebuilds the inventory strip from the current slots
func (h *HUD) SetInventory(slots []inventory.Slot) {
	h.strip = h.strip[:0]
	for _, s := range slots {
		if s.Held && s.Item.Shown {
			h.strip = append(h.strip, s.Item)
		}
	}
}

// Draw renders hearts, inventory and the mute indicator along the top edge
func (h *HUD) Draw(screen render.Image, muted bool) {
	if h.config.ShowHearts {
		h.drawHearts(screen)
	}
	if h.config.ShowInventory {
		h.drawInventory(screen)
	}
	h.drawMute(screen, muted)
}

func (h *HUD) drawHearts(screen render.Image) {
	for i := 0; i < h.config.Hearts; i++ {
		x := float64(12 + i*36)
		if !h.sprites.DrawFrame(screen, "heart", 0, x, 12, 1) {
			h.renderer.FillCircle(screen, float32(x)+16, 28, 12, color.RGBA{220, 50, 70, 255})
		}
	}
}

// drawInventory lists the strip items, right aligned
func (h *HUD) drawInventory(screen render.Image) {
	held := h.strip
	if len(held) == 0 {
		return
	}

	const cell = 40
	width := len(held)*cell + 8
	x := h.screenWidth - width - 12
	h.drawPanel(screen, x, 8, width, cell+8)
	for i, item := range held {
		ix := float64(x + 8 + i*cell)
		if !h.sprites.DrawFrame(screen, "icon_"+item.Icon, 0, ix, 12, 1) {
			h.renderer.FillRect(screen, float32(ix), 12, 32, 32, color.RGBA{230, 190, 80, 255})
		}
	}
}

func (h *HUD) drawMute(screen render.Image, muted bool) {
	label := "M : Son"
	if muted {
		label = "M : Muet"
	}
	w, _ := h.renderer.MeasureText(label, 1.0)
	h.renderer.DrawText(screen, label, h.screenWidth-w-12, h.screenHeight-20, color.RGBA{255, 255, 255, 200}, 1.0)
}

// DrawPrompt shows the banner inviting the player to interact with name
func (h *HUD) DrawPrompt(screen render.Image, name string) {
	if name == "" {
		return
	}
	text := fmt.Sprintf("Appuyez sur A pour interagir avec %s", name)
	w, th := h.renderer.MeasureText(text, 1.0)
	x := (h.screenWidth - w) / 2
	y := h.screenHeight - 90
	h.drawPanel(screen, x-12, y-8, w+24, th+16)
	h.renderer.DrawText(screen, text, x, y, color.RGBA{255, 255, 200, 255}, 1.0)
}

// DrawControls outlines the on-screen d-pad and buttons
func (h *HUD) DrawControls(screen render.Image, layout input.Layout) {
	if !h.config.ShowControls {
		return
	}
	pad := color.RGBA{255, 255, 255, 60}
	edge := color.RGBA{255, 255, 255, 140}
	for _, r := range []image.Rectangle{layout.Up, layout.Down, layout.Left, layout.Right} {
		h.renderer.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), pad)
		h.renderer.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, edge)
	}
	h.drawButton(screen, layout.A, "A", color.RGBA{70, 160, 90, 160})
	h.drawButton(screen, layout.B, "B", color.RGBA{190, 70, 70, 160})
}

func (h *HUD) drawButton(screen render.Image, r image.Rectangle, label string, clr color.RGBA) {
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	h.renderer.FillCircle(screen, cx, cy, float32(r.Dx())/2, clr)
	w, th := h.renderer.MeasureText(label, 1.5)
	h.renderer.DrawText(screen, label, int(cx)-w/2, int(cy)-th/2, color.White, 1.5)
}

func (h *HUD) drawPanel(screen render.Image, x, y, w, height int) {
	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(height), color.RGBA{20, 20, 30, alpha})
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(height), 1, color.RGBA{100, 100, 120, 255})
}
