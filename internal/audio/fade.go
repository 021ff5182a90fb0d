package audio

// Fader moves a volume linearly towards a target, one step per frame
type Fader struct {
	volume float64
	from   float64
	to     float64
	frames int
	step   int
	done   func()
}

// NewFader creates a fader resting at volume
func NewFader(volume float64) *Fader {
	return &Fader{volume: volume, to: volume}
}

// Start begins a fade to target over frames. done runs once the target is
// reached; a new Start drops the previous callback.
func (f *Fader) Start(target float64, frames int, done func()) {
	f.from = f.volume
	f.to = target
	f.frames = frames
	f.step = 0
	f.done = done
	if frames <= 0 {
		f.finish()
	}
}

// Set jumps to volume and cancels any fade
func (f *Fader) Set(volume float64) {
	f.volume = volume
	f.to = volume
	f.frames = 0
	f.done = nil
}

// Step advances the fade by one frame and returns the volume
func (f *Fader) Step() float64 {
	if !f.Active() {
		return f.volume
	}
	f.step++
	if f.step >= f.frames {
		f.finish()
		return f.volume
	}
	t := float64(f.step) / float64(f.frames)
	f.volume = f.from + (f.to-f.from)*t
	return f.volume
}

func (f *Fader) finish() {
	f.volume = f.to
	f.frames = 0
	if done := f.done; done != nil {
		f.done = nil
		done()
	}
}

// Active reports whether a fade is in progress
func (f *Fader) Active() bool { return f.frames > 0 }

// Volume returns the current volume
func (f *Fader) Volume() float64 { return f.volume }

// Target returns the volume being faded to
func (f *Fader) Target() float64 { return f.to }
