package game

import (
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/movement"
)

// State is the top-level screen the game is on
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateEnd
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateEnd:
		return "end"
	default:
		return "menu"
	}
}

// Controls is the input a session reads each tick
type Controls interface {
	movement.Held
	ButtonA() bool
	ButtonB() bool
}

// DocumentOpener hands a document path or URL to the platform
type DocumentOpener func(target string)

// Document names referenced by dialogues and the ending screen
const (
	DocumentLetter  = "letter"
	DocumentResume  = "resume"
	DocumentPhone   = "phone"
	DocumentContact = "contact"
)

// blockers adapts any slice of blocking things to the resolver's input
func blockers[T entity.Blocker](items []T) []entity.Blocker {
	out := make([]entity.Blocker, len(items))
	for i, b := range items {
		out[i] = b
	}
	return out
}
