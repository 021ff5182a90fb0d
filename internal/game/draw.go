package game

import (
	"image/color"

	"chosenoffset.com/discoverme/internal/core/collision"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/movement"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/render/atlas"
)

// Draw renders the world: ground, entities, the player, then the foreground
// that the player walks under.
func (g *Game) Draw(screen render.Image, r render.Renderer, assets *Assets) {
	w, h := screen.Size()
	view := collision.NewRect(0, 0, float64(w), float64(h))

	screen.Fill(color.RGBA{60, 110, 60, 255})
	if assets != nil {
		drawLayer(screen, assets.Background, g.Background)
	}

	for _, e := range g.Population.Interactive {
		d, ok := e.(entity.Drawable)
		if !ok || !d.Visible() || !collision.Overlaps(d.DrawRect(), view) {
			continue
		}
		if assets == nil || !drawSprite(screen, assets.Sprites, d.SpriteName(), d.Frame(), d.DrawRect()) {
			fillRect(r, screen, d.DrawRect(), color.RGBA{230, 190, 80, 255})
		}
	}

	g.drawPlayer(screen, r, assets)

	if assets != nil {
		drawLayer(screen, assets.Foreground, g.Foreground)
	}
}

func (g *Game) drawPlayer(screen render.Image, r render.Renderer, assets *Assets) {
	rect := g.Player.Bounds()
	if assets != nil && drawSprite(screen, assets.Sprites, g.Player.SpriteName(), g.Player.Frame(), rect) {
		return
	}
	fillRect(r, screen, rect, color.RGBA{200, 90, 120, 255})
}

func drawLayer(screen, img render.Image, layer *movement.Layer) {
	if img == nil {
		return
	}
	geoM := render.NewGeoM()
	geoM.Translate(layer.X, layer.Y)
	screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
}

// drawSprite stretches a sprite frame over rect
func drawSprite(screen render.Image, sprites *atlas.Manager, sprite string, frame int, rect collision.Rect) bool {
	if sprites == nil {
		return false
	}
	img, ok := sprites.Frame(sprite, frame)
	if !ok {
		return false
	}
	fw, fh := img.Size()
	if fw == 0 || fh == 0 {
		return false
	}
	geoM := render.NewGeoM()
	geoM.Scale(rect.Width/float64(fw), rect.Height/float64(fh))
	geoM.Translate(rect.X, rect.Y)
	screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
	return true
}

func fillRect(r render.Renderer, screen render.Image, rect collision.Rect, clr color.Color) {
	r.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), clr)
}
