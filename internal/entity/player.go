package entity

import (
	"fmt"

	"chosenoffset.com/discoverme/internal/core/collision"
)

// Character is the sprite set chosen on the menu
type Character string

const (
	CharacterFeminine  Character = "feminin"
	CharacterMasculine Character = "masculin"
)

// Player is anchored at the centre of the viewport. The world scrolls around it.
type Player struct {
	rect      collision.Rect
	Facing    Direction
	Moving    bool
	Character Character

	frame     int
	elapsed   int
	frames    int
	walkTicks int
}

// NewPlayer creates a player centred in a screen of the given size
func NewPlayer(screenW, screenH int, width, height float64, frames, walkTicks int) *Player {
	if frames < 1 {
		frames = 1
	}
	if walkTicks < 1 {
		walkTicks = 1
	}
	x := float64(screenW)/2 - width/2
	y := float64(screenH)/2 - height/2
	return &Player{
		rect:      collision.NewRect(x, y, width, height),
		Facing:    DirDown,
		Character: CharacterFeminine,
		frames:    frames,
		walkTicks: walkTicks,
	}
}

// Bounds returns the player's screen rectangle
func (p *Player) Bounds() collision.Rect { return p.rect }

// Tick advances the walk cycle while the player is moving
func (p *Player) Tick() {
	if !p.Moving {
		return
	}
	p.elapsed++
	if p.elapsed%p.walkTicks == 0 {
		p.frame = (p.frame + 1) % p.frames
	}
}

// Frame returns the current walk-cycle frame
func (p *Player) Frame() int { return p.frame }

// SpriteName returns the sprite sheet for the character and facing
func (p *Player) SpriteName() string {
	facing := p.Facing
	if facing == DirNone {
		facing = DirDown
	}
	return fmt.Sprintf("player_%s_%s", p.Character, facing)
}

// Reset puts the player back in its spawn pose
func (p *Player) Reset() {
	p.Facing = DirDown
	p.Moving = false
	p.frame = 0
	p.elapsed = 0
}
