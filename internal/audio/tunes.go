package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Tune identifies a piece of music or a jingle
type Tune int

const (
	TuneNone Tune = iota
	TuneMenu
	TuneGame
	TuneEnd
	TuneItem
	TuneOutro
)

func (t Tune) String() string {
	switch t {
	case TuneMenu:
		return "menu"
	case TuneGame:
		return "game"
	case TuneEnd:
		return "end"
	case TuneItem:
		return "item"
	case TuneOutro:
		return "outro"
	default:
		return "none"
	}
}

var menuTheme = []Note{
	{72, 1}, {76, 1}, {79, 1}, {76, 1},
	{74, 1}, {77, 1}, {81, 2},
	{79, 1}, {76, 1}, {72, 1}, {74, 1},
	{76, 3}, {Rest, 1},
}

var gameTheme = []Note{
	{60, 1}, {64, 0.5}, {67, 0.5}, {69, 1}, {67, 1},
	{65, 1}, {64, 1}, {62, 2},
	{60, 1}, {62, 0.5}, {64, 0.5}, {67, 1}, {64, 1},
	{62, 2}, {Rest, 2},
}

var endTheme = []Note{
	{67, 0.5}, {72, 0.5}, {76, 0.5}, {79, 1.5},
	{77, 0.5}, {76, 0.5}, {74, 0.5}, {72, 2},
	{Rest, 1},
}

var itemJingle = []Note{{84, 0.25}, {88, 0.25}, {91, 0.5}}

var outroJingle = []Note{{72, 0.5}, {67, 0.5}, {64, 0.5}, {60, 1.5}}

// NewTune builds the streamer for a tune. Music loops forever; jingles end.
func NewTune(t Tune, rate beep.SampleRate) beep.Streamer {
	switch t {
	case TuneMenu:
		return NewRepeat(func() beep.Streamer { return NewMelody(menuTheme, 96, WaveTriangle, rate) })
	case TuneGame:
		return NewRepeat(func() beep.Streamer {
			lead := NewMelody(gameTheme, 110, WaveSquare, rate)
			return beep.Mix(newVolume(lead, 0.5), newVolume(bassLine(rate), 0.5))
		})
	case TuneEnd:
		return NewRepeat(func() beep.Streamer { return NewMelody(endTheme, 120, WaveTriangle, rate) })
	case TuneItem:
		return NewMelody(itemJingle, 180, WaveSine, rate)
	case TuneOutro:
		return NewMelody(outroJingle, 100, WaveTriangle, rate)
	default:
		return beep.Silence(rate.N(10 * time.Millisecond))
	}
}

// bassLine follows the game theme's sixteen beats on the root
func bassLine(rate beep.SampleRate) beep.Streamer {
	notes := make([]Note, 0, 8)
	for _, root := range []int{36, 41, 43, 36} {
		notes = append(notes, Note{root, 2}, Note{root + 7, 2})
	}
	return NewMelody(notes, 110, WaveSine, rate)
}
