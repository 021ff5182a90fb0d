package entity

import (
	"fmt"

	"chosenoffset.com/discoverme/internal/core/collision"
)

// Behaviour selects how an NPC animates
type Behaviour string

const (
	BehaviourStatic    Behaviour = "static"
	BehaviourBreathing Behaviour = "breathing"
	BehaviourPatrol    Behaviour = "patrol"
)

const maxBreathingOffset = 3

// NPCOptions configures the animation of an NPC
type NPCOptions struct {
	Behaviour        Behaviour
	AnimationSpeed   int // Ticks between animation steps
	Frames           int // Walk-cycle frames, patrol only
	Pattern          []Direction
	StepsBetweenMove int     // Ticks between patrol steps
	Step             float64 // Pixels per patrol step
}

// NPC is a character the player can talk to
type NPC struct {
	Base
	opts NPCOptions

	counter int

	breathOffset float64
	breathDir    float64

	frame        int
	facing       Direction
	patternIndex int
	moveCounter  int
}

// NewNPC creates an NPC. Invalid options fall back to a static NPC.
func NewNPC(s Spawn, opts NPCOptions) *NPC {
	s.Kind = KindNPC
	if opts.AnimationSpeed < 1 {
		opts.AnimationSpeed = 1
	}
	if opts.Frames < 1 {
		opts.Frames = 1
	}
	if opts.Behaviour == BehaviourPatrol && (len(opts.Pattern) == 0 || opts.StepsBetweenMove < 1) {
		opts.Behaviour = BehaviourStatic
	}
	if opts.Behaviour == "" {
		opts.Behaviour = BehaviourStatic
	}

	return &NPC{
		Base:      NewBase(s),
		opts:      opts,
		breathDir: 1,
		facing:    DirDown,
	}
}

// Tick advances the NPC's animation and, for patrolling NPCs, its position
func (n *NPC) Tick() {
	switch n.opts.Behaviour {
	case BehaviourBreathing:
		n.breathe()
	case BehaviourPatrol:
		n.patrol()
		n.animate()
	}
}

func (n *NPC) breathe() {
	n.counter++
	if n.counter%n.opts.AnimationSpeed != 0 {
		return
	}
	n.breathOffset += n.breathDir
	if n.breathOffset >= maxBreathingOffset {
		n.breathDir = -1
	} else if n.breathOffset <= 0 {
		n.breathDir = 1
	}
}

func (n *NPC) patrol() {
	n.moveCounter++
	if n.moveCounter < n.opts.StepsBetweenMove {
		return
	}
	n.moveCounter = 0

	dir := n.opts.Pattern[n.patternIndex]
	n.facing = dir
	n.frame = 0

	dx, dy := dir.Delta()
	n.Translate(dx*n.opts.Step, dy*n.opts.Step)

	n.patternIndex = (n.patternIndex + 1) % len(n.opts.Pattern)
}

func (n *NPC) animate() {
	n.counter++
	if n.counter%n.opts.AnimationSpeed == 0 {
		n.frame = (n.frame + 1) % n.opts.Frames
	}
}

func (n *NPC) Behaviour() Behaviour     { return n.opts.Behaviour }
func (n *NPC) Facing() Direction        { return n.facing }
func (n *NPC) BreathingOffset() float64 { return n.breathOffset }

func (n *NPC) Frame() int      { return n.frame }
func (n *NPC) Scannable() bool { return true }
func (n *NPC) Blocking() bool  { return true }
func (n *NPC) Visible() bool   { return true }

// DrawRect offsets the sprite by the breathing motion. Collision is unaffected.
func (n *NPC) DrawRect() collision.Rect {
	return n.Bounds().Translate(0, n.breathOffset)
}

// SpriteName returns the directional sprite for patrolling NPCs
func (n *NPC) SpriteName() string {
	if n.opts.Behaviour == BehaviourPatrol {
		return fmt.Sprintf("%s_%s", n.sprite, n.facing)
	}
	return n.sprite
}
