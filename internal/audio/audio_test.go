package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"chosenoffset.com/discoverme/internal/config"
)

type fakeOutput struct {
	playing bool
	volume  float64
}

func (f *fakeOutput) Play()               { f.playing = true }
func (f *fakeOutput) SetVolume(v float64) { f.volume = v }

func newTestManager() (*Manager, *fakeOutput, *fakeOutput) {
	cfg := config.DefaultConfig().Audio
	m := newManager(cfg, 60)
	music, sfx := &fakeOutput{}, &fakeOutput{}
	m.attach(music, sfx)
	return m, music, sfx
}

func checkRange(t *testing.T, name string, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("%s: sample %d out of range: %v", name, i, s)
		}
	}
}

func TestTunesStayInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, tune := range []Tune{TuneMenu, TuneGame, TuneEnd, TuneItem, TuneOutro} {
		s := NewTune(tune, rate)
		buf := make([][2]float64, 4096)
		for i := 0; i < 20; i++ {
			n, ok := s.Stream(buf)
			checkRange(t, tune.String(), buf[:n])
			if !ok {
				break
			}
		}
	}
}

func TestMusicLoopsAndJinglesEnd(t *testing.T) {
	rate := beep.SampleRate(8000)
	buf := make([][2]float64, rate.N(time.Second))

	menu := NewTune(TuneMenu, rate)
	// The menu theme is about ten seconds long; stream well past it
	for i := 0; i < 30; i++ {
		if n, ok := menu.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("Menu music stopped after %d seconds", i)
		}
	}

	item := NewTune(TuneItem, rate)
	total := 0
	for i := 0; i < 10; i++ {
		n, ok := item.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total == 0 || total >= 10*len(buf) {
		t.Errorf("Item jingle should be short, streamed %d samples", total)
	}
}

func TestRepeatGivesUpOnEmptyTunes(t *testing.T) {
	r := NewRepeat(func() beep.Streamer { return beep.Silence(0) })
	if n, ok := r.Stream(make([][2]float64, 16)); ok || n != 0 {
		t.Errorf("Expected an empty repeat to end, got n=%d ok=%v", n, ok)
	}
}

func TestChannelReadEncodesFloat32(t *testing.T) {
	m, _, _ := newTestManager()
	m.PlayOutroSound()

	p := make([]byte, 1024*bytesPerFrame+3)
	n, err := m.sfx.Read(p)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != 1024*bytesPerFrame {
		t.Fatalf("Expected whole frames, got %d bytes", n)
	}
	nonZero := false
	for off := 0; off < n; off += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(p[off:]))
		if v < -1 || v > 1 {
			t.Fatalf("Sample at %d out of range: %v", off, v)
		}
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("Expected the outro jingle to be audible")
	}

	// An empty mixer still yields silence
	empty := newChannel(&m.mu)
	if n, _ := empty.Read(make([]byte, 64)); n != 64 {
		t.Errorf("Expected 64 bytes of silence, got %d", n)
	}
}

func TestFaderReachesTarget(t *testing.T) {
	f := NewFader(0)
	done := 0
	f.Start(0.7, 30, func() { done++ })

	for i := 0; i < 29; i++ {
		v := f.Step()
		if v <= 0 || v >= 0.7 {
			t.Fatalf("Frame %d volume %v outside the fade", i, v)
		}
	}
	if got := f.Step(); got != 0.7 {
		t.Errorf("Expected 0.7 after 30 frames, got %v", got)
	}
	if done != 1 || f.Active() {
		t.Errorf("Fade should be finished once, done=%d", done)
	}
	f.Step()
	if done != 1 {
		t.Error("Callback ran twice")
	}

	f.Start(0.2, 0, nil)
	if f.Volume() != 0.2 {
		t.Errorf("Zero-length fade should jump, got %v", f.Volume())
	}
}

func TestManagerCrossFades(t *testing.T) {
	m, music, _ := newTestManager()
	if !music.playing {
		t.Fatal("Music output should be playing")
	}

	m.PlayMenuMusic()
	for i := 0; i < m.fadeFrames; i++ {
		m.Update()
	}
	if music.volume != m.cfg.MenuVolume {
		t.Fatalf("Expected menu volume %v, got %v", m.cfg.MenuVolume, music.volume)
	}

	m.PlayGameMusic()
	if m.Current() != TuneGame {
		t.Errorf("Expected game tune, got %s", m.Current())
	}
	for i := 0; i < m.fadeFrames; i++ {
		m.Update()
	}
	if music.volume != 0 {
		t.Errorf("Expected silence between tunes, got %v", music.volume)
	}
	for i := 0; i < m.fadeFrames; i++ {
		m.Update()
	}
	if music.volume != m.cfg.GameVolume {
		t.Errorf("Expected game volume %v, got %v", m.cfg.GameVolume, music.volume)
	}
}

func TestManagerMuteAndStop(t *testing.T) {
	m, music, sfx := newTestManager()
	m.PlayMenuMusic()
	m.Update()

	if !m.ToggleMute() || !m.Muted() {
		t.Fatal("Expected muted")
	}
	m.Update()
	if music.volume != 0 || sfx.volume != 0 {
		t.Error("Muted outputs should be silent")
	}
	if m.ToggleMute() {
		t.Fatal("Expected unmuted")
	}
	if sfx.volume != 1 || music.volume == 0 {
		t.Error("Unmuting should restore the volumes")
	}

	m.PlayItemSound()
	m.StopAll()
	if m.Current() != TuneNone || m.MusicVolume() != 0 {
		t.Error("StopAll should clear the music")
	}
	if m.music.mixer.Len() != 0 || m.sfx.mixer.Len() != 0 {
		t.Error("StopAll should empty both mixers")
	}
}

func TestNopSatisfiesPlayer(t *testing.T) {
	var p Player = &Nop{}
	p.PlayMenuMusic()
	if !p.ToggleMute() || !p.Muted() {
		t.Error("Nop should still track mute")
	}
}
