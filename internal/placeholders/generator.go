// Package placeholders draws the sprite sheets and map layers used when no
// artwork is installed. Everything is painted into image.RGBA in memory.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// ColorPalette defines colours for the meadow theme
var ColorPalette = struct {
	// Ground
	Grass    color.RGBA
	GrassAlt color.RGBA
	Path     color.RGBA
	Solid    color.RGBA // Houses, fences and rocks
	Canopy   color.RGBA

	// Characters
	Feminine  color.RGBA
	Masculine color.RGBA
	Skin      color.RGBA
	Rabbit    color.RGBA
	Sage      color.RGBA

	// Props
	ChestWood color.RGBA
	Gold      color.RGBA
	Paper     color.RGBA
	Heart     color.RGBA

	Outline color.RGBA
}{
	Grass:    color.RGBA{96, 160, 72, 255},
	GrassAlt: color.RGBA{88, 150, 66, 255},
	Path:     color.RGBA{196, 170, 120, 255},
	Solid:    color.RGBA{120, 96, 80, 255},
	Canopy:   color.RGBA{40, 110, 50, 200},

	Feminine:  color.RGBA{200, 80, 150, 255},
	Masculine: color.RGBA{60, 110, 200, 255},
	Skin:      color.RGBA{240, 200, 170, 255},
	Rabbit:    color.RGBA{245, 245, 245, 255},
	Sage:      color.RGBA{150, 140, 200, 255},

	ChestWood: color.RGBA{120, 80, 40, 255},
	Gold:      color.RGBA{255, 200, 50, 255},
	Paper:     color.RGBA{235, 225, 190, 255},
	Heart:     color.RGBA{220, 40, 60, 255},

	Outline: color.RGBA{30, 28, 25, 255},
}

// CreateSolidTile creates a solid-coloured tile of the given size
func CreateSolidTile(width, height int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(width, height int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(width, height, fillColor)
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < width; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, height-1-i, borderColor)
		}
		for y := 0; y < height; y++ {
			img.Set(i, y, borderColor)
			img.Set(width-1-i, y, borderColor)
		}
	}
	return img
}

// fillRect paints r onto img, clipped to its bounds
func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
}

// fillCircle paints a filled disc with a one pixel outline
func fillCircle(img *image.RGBA, cx, cy, radius int, fill, outline color.RGBA) {
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			dx, dy := x-cx, y-cy
			distSq := dx*dx + dy*dy
			if distSq <= radius*radius {
				img.Set(x, y, fill)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outline)
			}
		}
	}
}

// ComposeSheet lays out rows of equally sized cells into one image. Nil
// cells stay transparent.
func ComposeSheet(rows [][]*image.RGBA, cellWidth, cellHeight int) *image.RGBA {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	sheet := image.NewRGBA(image.Rect(0, 0, columns*cellWidth, len(rows)*cellHeight))
	for r, row := range rows {
		for c, cell := range row {
			if cell == nil {
				continue
			}
			x := c * cellWidth
			y := r * cellHeight
			destRect := image.Rect(x, y, x+cellWidth, y+cellHeight)
			draw.Draw(sheet, destRect, cell, cell.Bounds().Min, draw.Src)
		}
	}
	return sheet
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
