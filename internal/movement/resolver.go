// Package movement resolves the player's movement against the world.
// The player never moves on screen; a clear step pans the camera instead.
package movement

import (
	"chosenoffset.com/discoverme/internal/core/collision"
	"chosenoffset.com/discoverme/internal/entity"
)

// DefaultPriority is used when several directions are held at once
var DefaultPriority = []entity.Direction{entity.DirUp, entity.DirDown, entity.DirLeft, entity.DirRight}

// Held reports which directions are currently pressed
type Held interface {
	Pressed(dir entity.Direction) bool
}

// Resolver moves the player one step per tick
type Resolver struct {
	speed    float64
	priority []entity.Direction
	camera   *Camera
}

// NewResolver creates a resolver. An empty priority uses DefaultPriority.
func NewResolver(speed float64, priority []entity.Direction, camera *Camera) *Resolver {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	return &Resolver{speed: speed, priority: priority, camera: camera}
}

// Pick returns the highest-priority held direction, or DirNone
func (r *Resolver) Pick(held Held) entity.Direction {
	if held == nil {
		return entity.DirNone
	}
	for _, d := range r.priority {
		if held.Pressed(d) {
			return d
		}
	}
	return entity.DirNone
}

// Step tries to move the player in dir. Obstacles are tested first, then
// blocking entities; the first hit vetoes the move. A vetoed step still
// turns the player to face dir. It returns whether the world moved.
func (r *Resolver) Step(p *entity.Player, dir entity.Direction, obstacles, entities []entity.Blocker) bool {
	if p == nil {
		return false
	}
	if dir == entity.DirNone {
		p.Moving = false
		return false
	}

	p.Facing = dir

	dx, dy := dir.Delta()
	dx *= r.speed
	dy *= r.speed

	next := p.Bounds().Translate(dx, dy)
	if Blocked(next, obstacles) || Blocked(next, entities) {
		p.Moving = false
		return false
	}

	r.camera.Pan(-dx, -dy)
	p.Moving = true
	return true
}

// Blocked reports whether rect overlaps any blocking entry of blockers
func Blocked(rect collision.Rect, blockers []entity.Blocker) bool {
	for _, b := range blockers {
		if !b.Blocking() {
			continue
		}
		if collision.Overlaps(rect, b.Bounds()) {
			return true
		}
	}
	return false
}

// Camera returns the camera the resolver pans
func (r *Resolver) Camera() *Camera { return r.camera }
