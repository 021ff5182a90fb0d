package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation. A zero
// frequency produces silence, except for noise.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch {
		case o.wave == WaveNoise:
			val = rand.Float64()*2 - 1
		case o.freq <= 0:
			val = 0
		case o.wave == WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case o.wave == WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case o.wave == WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// handled with the silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// clamp limits a sample to [-1, 1]
func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// NoteFreq returns frequency in Hz for a MIDI note number. Negative notes
// are rests.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, (float64(midi)-69.0)/12.0)
}

// Note is one step of a melody
type Note struct {
	Midi  int     // -1 for a rest
	Beats float64 // Length in beats
}

// Rest is a silent note
const Rest = -1

// NewMelody renders notes one after another at the given tempo
func NewMelody(notes []Note, bpm float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	beat := time.Duration(float64(time.Minute) / bpm)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.Beats * float64(beat))
		osc := NewOscillator(NoteFreq(n.Midi), d, wave, rate)
		parts = append(parts, NewEnvelope(osc, d, 10*time.Millisecond, d/3, rate))
	}
	return beep.Seq(parts...)
}

// repeater restarts a tune each time it ends
type repeater struct {
	build   func() beep.Streamer
	current beep.Streamer
}

// NewRepeat plays the streamers returned by build back to back, forever
func NewRepeat(build func() beep.Streamer) beep.Streamer {
	return &repeater{build: build, current: build()}
}

func (r *repeater) Stream(samples [][2]float64) (n int, ok bool) {
	restarts := 0
	for n < len(samples) {
		m, more := r.current.Stream(samples[n:])
		n += m
		if m > 0 {
			restarts = 0
		}
		if more && m > 0 {
			continue
		}
		// A fresh tune that yields nothing would spin forever
		if restarts++; restarts > 1 {
			return n, n > 0
		}
		r.current = r.build()
	}
	return n, true
}

func (r *repeater) Err() error { return r.current.Err() }
