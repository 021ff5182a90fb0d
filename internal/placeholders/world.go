package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/discoverme/internal/world/maploader"
)

// Background paints the map: grass for open cells, walls for solid ones
func Background(layout *maploader.Map, tileWidth, tileHeight int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.Width()*tileWidth, layout.Height()*tileHeight))

	for row := 0; row < layout.Height(); row++ {
		for col := 0; col < layout.Width(); col++ {
			cell := image.Rect(col*tileWidth, row*tileHeight, (col+1)*tileWidth, (row+1)*tileHeight)
			if layout.IsSolid(col, row) {
				fillRect(img, cell, ColorPalette.Solid)
				fillRect(img, image.Rect(cell.Min.X, cell.Max.Y-4, cell.Max.X, cell.Max.Y), Darken(ColorPalette.Solid, 0.6))
				continue
			}
			grass := ColorPalette.Grass
			if (row+col)%2 == 1 {
				grass = ColorPalette.GrassAlt
			}
			fillRect(img, cell, grass)
		}
	}
	return img
}

// Foreground paints canopies over the top edge of solid areas. The layer is
// drawn above the player, shifted by (offsetX, offsetY) from the background,
// so cells are painted shifted back by the same amount.
func Foreground(layout *maploader.Map, tileWidth, tileHeight, offsetX, offsetY int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.Width()*tileWidth, layout.Height()*tileHeight))

	for row := 1; row < layout.Height()-1; row++ {
		for col := 1; col < layout.Width()-1; col++ {
			if !layout.IsSolid(col, row) || layout.IsSolid(col, row-1) {
				continue
			}
			x := col*tileWidth - offsetX
			y := row*tileHeight - offsetY - tileHeight/2
			fillRect(img, image.Rect(x-4, y, x+tileWidth+4, y+tileHeight/2+6), ColorPalette.Canopy)
		}
	}
	return img
}

// GenerateAndSave writes every sprite sheet with its atlas config, plus the
// map layers, into dir
func GenerateAndSave(dir string, layout *maploader.Map, sheets []Sheet, tileWidth, tileHeight, fgX, fgY int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	for _, sheet := range sheets {
		pngPath := filepath.Join(dir, sheet.Config.ImagePath)
		if err := SavePNG(sheet.Image, pngPath); err != nil {
			return fmt.Errorf("failed to save %s: %w", pngPath, err)
		}

		data, err := json.MarshalIndent(sheet.Config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode atlas %s: %w", sheet.Config.Name, err)
		}
		jsonPath := filepath.Join(dir, sheet.Config.Name+".json")
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("failed to save %s: %w", jsonPath, err)
		}
		fmt.Printf("✓ Generated %s (%d sprites)\n", pngPath, len(sheet.Config.Sprites))
	}

	layers := map[string]*image.RGBA{
		"background.png": Background(layout, tileWidth, tileHeight),
		"foreground.png": Foreground(layout, tileWidth, tileHeight, fgX, fgY),
	}
	for name, img := range layers {
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		fmt.Printf("✓ Generated %s\n", path)
	}
	return nil
}
