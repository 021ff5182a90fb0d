package main

import (
	"fmt"
	"math"

	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/game"
)

// Cell glyphs
const (
	glyphFloor  = '.'
	glyphSolid  = '#'
	glyphPlayer = '@'
)

// Marker is a spawn placed on the tile grid
type Marker struct {
	ID    string
	Kind  string
	Col   int
	Row   int
	Glyph rune
}

// View is the collision map rendered as runes
type View struct {
	Name    string
	Cells   [][]rune
	Markers []Marker
	Solid   int
}

// BuildView rasterises the layout and drops a glyph on every spawn tile.
// Spawns outside the map are kept in Markers but not drawn.
func BuildView(cfg *config.Config, world *game.World) *View {
	layout := world.Layout
	v := &View{Name: layout.Data.Name, Solid: layout.SolidCount()}

	v.Cells = make([][]rune, layout.Height())
	for row := range v.Cells {
		v.Cells[row] = make([]rune, layout.Width())
		for col := range v.Cells[row] {
			if layout.IsSolid(col, row) {
				v.Cells[row][col] = glyphSolid
			} else {
				v.Cells[row][col] = glyphFloor
			}
		}
	}

	place := func(d content.SpawnDef, kind entity.Kind) {
		col, row := tileAt(cfg, d.X+d.Width/2, d.Y+d.Height/2)
		v.Markers = append(v.Markers, Marker{ID: d.ID, Kind: string(kind), Col: col, Row: row, Glyph: glyphFor(kind)})
	}
	for _, d := range world.Spawns.Items {
		place(d, entity.Kind(d.Kind))
	}
	for _, d := range world.Spawns.NPCs {
		place(d, entity.KindNPC)
	}

	px := float64(cfg.Display.Width) / 2
	py := float64(cfg.Display.Height) / 2
	col, row := tileAt(cfg, px, py)
	v.Markers = append(v.Markers, Marker{ID: "player", Kind: "player", Col: col, Row: row, Glyph: glyphPlayer})

	for _, m := range v.Markers {
		if m.Row >= 0 && m.Row < len(v.Cells) && m.Col >= 0 && m.Col < len(v.Cells[m.Row]) {
			v.Cells[m.Row][m.Col] = m.Glyph
		}
	}
	return v
}

// tileAt converts a spawn-time screen position to a map tile
func tileAt(cfg *config.Config, x, y float64) (int, int) {
	col := math.Floor((x - cfg.Map.OffsetX) / cfg.Map.TileWidth)
	row := math.Floor((y - cfg.Map.OffsetY) / cfg.Map.TileHeight)
	return int(col), int(row)
}

func glyphFor(kind entity.Kind) rune {
	switch kind {
	case entity.KindChest:
		return '$'
	case entity.KindNPC:
		return 'N'
	}
	return '*'
}

// Status is the one-line summary shown under the map
func (v *View) Status(scrollX, scrollY int) string {
	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}
	return fmt.Sprintf("%s %dx%d solid:%d spawns:%d [%d,%d] arrows scroll, q quits",
		v.Name, cols, rows, v.Solid, len(v.Markers)-1, scrollX, scrollY)
}

// Clamp keeps a scroll position inside the map for a viewport of w x h
func (v *View) Clamp(x, y, w, h int) (int, int) {
	rows := len(v.Cells)
	cols := 0
	if rows > 0 {
		cols = len(v.Cells[0])
	}
	return clamp(x, 0, cols-w), clamp(y, 0, rows-h)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
