// Package boundary turns the static collision layout into obstacles
// positioned in screen space.
package boundary

import (
	"fmt"

	"chosenoffset.com/discoverme/internal/core/collision"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/world/maploader"
)

// Spec describes the geometry of one tile and where the map starts on screen
type Spec struct {
	OffsetX    float64
	OffsetY    float64
	TileWidth  float64
	TileHeight float64
	BoxWidth   float64
	BoxHeight  float64
}

// Obstacle is one solid tile. Its collision box is smaller than the tile
// and anchored at the tile's top-left corner.
type Obstacle struct {
	rect     collision.Rect
	Col, Row int
}

func (o *Obstacle) Bounds() collision.Rect { return o.rect }
func (o *Obstacle) Blocking() bool         { return true }

// Translate shifts the obstacle by (dx, dy)
func (o *Obstacle) Translate(dx, dy float64) {
	o.rect = o.rect.Translate(dx, dy)
}

// Grid holds every obstacle in row-major order
type Grid struct {
	layout    *maploader.Map
	spec      Spec
	obstacles []*Obstacle
}

// Build emits one obstacle per solid cell, scanning rows top to bottom
func Build(layout *maploader.Map, spec Spec) (*Grid, error) {
	if layout == nil {
		return nil, fmt.Errorf("boundary: nil layout")
	}
	if spec.TileWidth <= 0 || spec.TileHeight <= 0 {
		return nil, fmt.Errorf("boundary: invalid tile size %vx%v", spec.TileWidth, spec.TileHeight)
	}

	g := &Grid{layout: layout, spec: spec}
	g.eachSolid(func(col, row int) {
		g.obstacles = append(g.obstacles, &Obstacle{
			rect: g.cellRect(col, row, spec.OffsetX, spec.OffsetY),
			Col:  col,
			Row:  row,
		})
	})
	return g, nil
}

// Reset repositions obstacle i from the layout against a new offset.
// The walk order is the same as Build, so indices line up.
func (g *Grid) Reset(offsetX, offsetY float64) error {
	i := 0
	var mismatch bool
	g.eachSolid(func(col, row int) {
		if i >= len(g.obstacles) {
			mismatch = true
			return
		}
		o := g.obstacles[i]
		o.rect = g.cellRect(col, row, offsetX, offsetY)
		o.Col, o.Row = col, row
		i++
	})
	if mismatch || i != len(g.obstacles) {
		return fmt.Errorf("boundary: layout has changed, %d obstacles but %d solid cells",
			len(g.obstacles), g.layout.SolidCount())
	}
	return nil
}

func (g *Grid) eachSolid(fn func(col, row int)) {
	solid := g.layout.Data.SolidSymbol
	for row, tiles := range g.layout.Rows() {
		for col, symbol := range tiles {
			if symbol == solid {
				fn(col, row)
			}
		}
	}
}

func (g *Grid) cellRect(col, row int, offsetX, offsetY float64) collision.Rect {
	return collision.NewRect(
		float64(col)*g.spec.TileWidth+offsetX,
		float64(row)*g.spec.TileHeight+offsetY,
		g.spec.BoxWidth,
		g.spec.BoxHeight,
	)
}

// Obstacles returns the obstacles in row-major order
func (g *Grid) Obstacles() []*Obstacle { return g.obstacles }

// Len returns the number of obstacles
func (g *Grid) Len() int { return len(g.obstacles) }

// Movables returns the obstacles for the camera to pan, in the same order
func (g *Grid) Movables() []entity.Movable {
	out := make([]entity.Movable, len(g.obstacles))
	for i, o := range g.obstacles {
		out[i] = o
	}
	return out
}
