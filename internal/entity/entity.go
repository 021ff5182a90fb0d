// Package entity provides the things that live on the map: collectible items,
// the chest, NPCs and the player. Entities are never destroyed; items that have
// been collected simply stop blocking, scanning and drawing.
package entity

import (
	"math"

	"chosenoffset.com/discoverme/internal/core/collision"
)

// Kind identifies how an entity reacts to an interaction
type Kind string

const (
	KindItem  Kind = "item"
	KindChest Kind = "chest"
	KindNPC   Kind = "npc"
)

// Movable is anything the camera shifts when the world scrolls
type Movable interface {
	Translate(dx, dy float64)
}

// Blocker is anything the player cannot walk through
type Blocker interface {
	Bounds() collision.Rect
	Blocking() bool
}

// Interactive is anything the interaction scanner considers
type Interactive interface {
	Movable
	ID() string
	DisplayName() string
	Kind() Kind
	DialogueKey() string
	Scannable() bool
	Near(player collision.Rect) bool
}

// Collectible is an interactive entity that can be picked up once
type Collectible interface {
	Interactive
	Collect() bool
	Collected() bool
	Grants() string
}

// Animator is advanced once per tick
type Animator interface {
	Tick()
}

// Drawable describes how a sprite is rendered
type Drawable interface {
	Visible() bool
	SpriteName() string
	Frame() int
	DrawRect() collision.Rect
}

// Proximity configures the interaction range test
type Proximity struct {
	Threshold float64
	Centered  bool // Compare centres instead of top-left corners
}

// Base holds the state shared by every placed entity
type Base struct {
	id        string
	name      string
	kind      Kind
	rect      collision.Rect
	scale     float64
	sprite    string
	dialogue  string
	proximity Proximity
}

// Spawn describes where and how an entity is placed
type Spawn struct {
	ID        string
	Name      string
	Kind      Kind
	X, Y      float64
	Width     float64
	Height    float64
	Scale     float64 // Zero means 1
	Sprite    string
	Dialogue  string
	Proximity Proximity
}

// NewBase creates the shared entity state from a spawn description
func NewBase(s Spawn) Base {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	sprite := s.Sprite
	if sprite == "" {
		sprite = s.ID
	}
	return Base{
		id:        s.ID,
		name:      s.Name,
		kind:      s.Kind,
		rect:      collision.NewRect(s.X, s.Y, s.Width, s.Height),
		scale:     scale,
		sprite:    sprite,
		dialogue:  s.Dialogue,
		proximity: s.Proximity,
	}
}

func (b *Base) ID() string          { return b.id }
func (b *Base) DisplayName() string { return b.name }
func (b *Base) Kind() Kind          { return b.kind }
func (b *Base) DialogueKey() string { return b.dialogue }
func (b *Base) SpriteName() string  { return b.sprite }
func (b *Base) Scale() float64      { return b.scale }

// Rect returns the unscaled placement rectangle
func (b *Base) Rect() collision.Rect { return b.rect }

// Bounds returns the rectangle used for collision, scaled
func (b *Base) Bounds() collision.Rect { return b.rect.Scaled(b.scale) }

// DrawRect returns where the sprite is drawn
func (b *Base) DrawRect() collision.Rect { return b.Bounds() }

// Position returns the top-left corner
func (b *Base) Position() (float64, float64) { return b.rect.X, b.rect.Y }

// Translate shifts the entity by (dx, dy)
func (b *Base) Translate(dx, dy float64) {
	b.rect = b.rect.Translate(dx, dy)
}

// Near reports whether the player is within interaction range
func (b *Base) Near(player collision.Rect) bool {
	t := b.proximity.Threshold
	if t <= 0 {
		return false
	}

	if b.proximity.Centered {
		ex, ey := b.Bounds().Center()
		px, py := player.Center()
		return math.Abs(ex-px) < t && math.Abs(ey-py) < t
	}

	return math.Abs(b.rect.X-player.X) < t && math.Abs(b.rect.Y-player.Y) < t
}

// Frame is zero for single-image sprites
func (b *Base) Frame() int { return 0 }
