package placeholders

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/render/atlas"
)

// Cell sizes of the generated sheets
const (
	CharacterWidth  = 48
	CharacterHeight = 68
	CreatureWidth   = 170
	CreatureHeight  = 148
	PropSize        = 64
	IconSize        = 32

	// CreatureFrames is the walk cycle length of the rabbit sheet
	CreatureFrames = 4
)

// Facings in sheet row order
var Facings = []entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}

// Sheet is a generated image and the atlas config describing it
type Sheet struct {
	Config *atlas.AtlasConfig
	Image  *image.RGBA
}

type strip struct {
	name  string
	cells []*image.RGBA
}

func buildSheet(name string, cellWidth, cellHeight int, strips []strip) Sheet {
	config := &atlas.AtlasConfig{
		Name:        name,
		ImagePath:   name + ".png",
		FrameWidth:  cellWidth,
		FrameHeight: cellHeight,
	}
	rows := make([][]*image.RGBA, 0, len(strips))
	for i, s := range strips {
		rows = append(rows, s.cells)
		config.Sprites = append(config.Sprites, atlas.SpriteDefinition{
			Name:   s.name,
			AtlasY: i,
			Frames: len(s.cells),
		})
	}
	return Sheet{Config: config, Image: ComposeSheet(rows, cellWidth, cellHeight)}
}

// Characters builds the walk cycles of both player characters
func Characters(frames int) Sheet {
	var strips []strip
	for _, c := range []entity.Character{entity.CharacterFeminine, entity.CharacterMasculine} {
		body := ColorPalette.Feminine
		if c == entity.CharacterMasculine {
			body = ColorPalette.Masculine
		}
		for _, dir := range Facings {
			s := strip{name: fmt.Sprintf("player_%s_%s", c, dir)}
			for f := 0; f < frames; f++ {
				s.cells = append(s.cells, CreateWalker(body, dir, f))
			}
			strips = append(strips, s)
		}
	}
	return buildSheet("characters", CharacterWidth, CharacterHeight, strips)
}

// CreateWalker draws one frame of a walking character
func CreateWalker(body color.RGBA, facing entity.Direction, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CharacterWidth, CharacterHeight))
	outline := Darken(body, 0.5)

	// Legs alternate with the frame
	stride := []int{0, 3, 0, -3}[frame%4]
	fillRect(img, image.Rect(15+stride, 48, 22+stride, 66), outline)
	fillRect(img, image.Rect(26-stride, 48, 33-stride, 66), outline)

	fillRect(img, image.Rect(10, 24, 38, 50), body)
	fillCircle(img, 24, 14, 11, ColorPalette.Skin, outline)

	// Eyes show the facing
	eye := ColorPalette.Outline
	switch facing {
	case entity.DirDown:
		fillRect(img, image.Rect(18, 12, 21, 15), eye)
		fillRect(img, image.Rect(27, 12, 30, 15), eye)
	case entity.DirLeft:
		fillRect(img, image.Rect(15, 12, 18, 15), eye)
	case entity.DirRight:
		fillRect(img, image.Rect(30, 12, 33, 15), eye)
	case entity.DirUp:
		fillRect(img, image.Rect(14, 4, 34, 12), Darken(body, 0.7))
	}
	return img
}

// Creatures builds the rabbit's patrol animation in every facing
func Creatures(frames int) Sheet {
	var strips []strip
	for _, dir := range Facings {
		s := strip{name: "lapin_" + dir.String()}
		for f := 0; f < frames; f++ {
			s.cells = append(s.cells, CreateRabbit(dir, f))
		}
		strips = append(strips, s)
	}
	return buildSheet("creatures", CreatureWidth, CreatureHeight, strips)
}

// CreateRabbit draws one hop of the white rabbit
func CreateRabbit(facing entity.Direction, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CreatureWidth, CreatureHeight))
	fur := ColorPalette.Rabbit
	outline := Darken(fur, 0.6)
	hop := []int{0, -10, -16, -10}[frame%4]

	fillCircle(img, 85, 100+hop, 40, fur, outline)
	headX := 85
	switch facing {
	case entity.DirLeft:
		headX = 55
	case entity.DirRight:
		headX = 115
	}
	fillCircle(img, headX, 60+hop, 26, fur, outline)
	fillRect(img, image.Rect(headX-18, 8+hop, headX-8, 44+hop), fur)
	fillRect(img, image.Rect(headX+8, 8+hop, headX+18, 44+hop), fur)
	if facing != entity.DirUp {
		fillCircle(img, headX-9, 58+hop, 3, ColorPalette.Heart, ColorPalette.Outline)
		fillCircle(img, headX+9, 58+hop, 3, ColorPalette.Heart, ColorPalette.Outline)
	}
	return img
}

// Props builds the chest animation, the collectible items and the old man
func Props(chestFrames int) Sheet {
	chest := strip{name: "coffre"}
	for f := 0; f < chestFrames; f++ {
		chest.cells = append(chest.cells, CreateChest(f, chestFrames))
	}
	return buildSheet("props", PropSize, PropSize, []strip{
		chest,
		{name: "cle", cells: []*image.RGBA{CreateKey(PropSize)}},
		{name: "parchemin", cells: []*image.RGBA{CreateScroll(PropSize)}},
		{name: "oldman", cells: []*image.RGBA{CreateSage(PropSize)}},
	})
}

// CreateChest draws the chest with its lid raised frame/frames of the way
func CreateChest(frame, frames int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PropSize, PropSize))
	wood := ColorPalette.ChestWood
	trim := ColorPalette.Gold

	fillRect(img, image.Rect(6, 30, 58, 60), wood)
	fillRect(img, image.Rect(6, 42, 58, 45), trim)

	lift := 0
	if frames > 1 {
		lift = frame * 20 / (frames - 1)
	}
	fillRect(img, image.Rect(6, 16-lift, 58, 30-lift), Darken(wood, 0.8))
	fillRect(img, image.Rect(6, 28-lift, 58, 30-lift), trim)
	if lift > 0 {
		fillRect(img, image.Rect(12, 30, 52, 34), trim)
	} else {
		fillRect(img, image.Rect(29, 36, 35, 42), trim)
	}
	return img
}

// CreateKey draws a golden key
func CreateKey(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	gold := ColorPalette.Gold
	fillCircle(img, size/3, size/2, size/6, gold, Darken(gold, 0.6))
	fillCircle(img, size/3, size/2, size/14, color.RGBA{}, color.RGBA{})
	fillRect(img, image.Rect(size/2, size/2-size/20, size-size/8, size/2+size/20), gold)
	fillRect(img, image.Rect(size-size/4, size/2, size-size/6, size/2+size/8), gold)
	return img
}

// CreateScroll draws a rolled letter
func CreateScroll(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	paper := ColorPalette.Paper
	fillRect(img, image.Rect(size/5, size/6, size-size/5, size-size/6), paper)
	fillRect(img, image.Rect(size/6, size/8, size-size/6, size/5), Darken(paper, 0.8))
	fillRect(img, image.Rect(size/6, size-size/5, size-size/6, size-size/8), Darken(paper, 0.8))
	for y := size / 3; y < size-size/4; y += size / 8 {
		fillRect(img, image.Rect(size/4+2, y, size-size/4-2, y+1), ColorPalette.Outline)
	}
	return img
}

// CreateSage draws the old man
func CreateSage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	robe := ColorPalette.Sage
	fillRect(img, image.Rect(size/4, size/3, size-size/4, size), robe)
	fillCircle(img, size/2, size/4, size/6, ColorPalette.Skin, Darken(robe, 0.5))
	fillRect(img, image.Rect(size/2-size/10, size/3, size/2+size/10, size/2+size/10), ColorPalette.Rabbit)
	return img
}

// Icons builds the small pictures used by the HUD and dialogue panels
func Icons() Sheet {
	heart := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	fillCircle(heart, 10, 11, 7, ColorPalette.Heart, Darken(ColorPalette.Heart, 0.6))
	fillCircle(heart, 22, 11, 7, ColorPalette.Heart, Darken(ColorPalette.Heart, 0.6))
	for y := 14; y < 28; y++ {
		inset := y - 14
		fillRect(heart, image.Rect(3+inset, y, 29-inset, y+1), ColorPalette.Heart)
	}

	chest := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	fillRect(chest, image.Rect(3, 10, 29, 28), ColorPalette.ChestWood)
	fillRect(chest, image.Rect(3, 17, 29, 19), ColorPalette.Gold)

	rabbit := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	fillCircle(rabbit, 16, 20, 9, ColorPalette.Rabbit, Darken(ColorPalette.Rabbit, 0.6))
	fillRect(rabbit, image.Rect(10, 2, 14, 14), ColorPalette.Rabbit)
	fillRect(rabbit, image.Rect(18, 2, 22, 14), ColorPalette.Rabbit)

	return buildSheet("icons", IconSize, IconSize, []strip{
		{name: "heart", cells: []*image.RGBA{heart}},
		{name: "icon_coffre", cells: []*image.RGBA{chest}},
		{name: "icon_cle", cells: []*image.RGBA{CreateKey(IconSize)}},
		{name: "icon_parchemin", cells: []*image.RGBA{CreateScroll(IconSize)}},
		{name: "icon_lapin", cells: []*image.RGBA{rabbit}},
		{name: "icon_oldman", cells: []*image.RGBA{CreateSage(IconSize)}},
	})
}

// Sheets returns every generated sprite sheet
func Sheets(playerFrames, creatureFrames, chestFrames int) []Sheet {
	return []Sheet{
		Characters(max(playerFrames, 1)),
		Creatures(max(creatureFrames, 1)),
		Props(max(chestFrames, 1)),
		Icons(),
	}
}
