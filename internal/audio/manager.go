// Package audio synthesizes the game's music and jingles with beep and plays
// them through ebiten's audio context.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"chosenoffset.com/discoverme/internal/config"
)

// Player is everything the game asks of the sound system
type Player interface {
	PlayMenuMusic()
	PlayGameMusic()
	PlayEndMusic()
	BackToMenu()
	PlayItemSound()
	PlayOutroSound()
	StopAll()
	ToggleMute() bool
	Muted() bool
	Update()
}

// output is the playback device of one channel
type output interface {
	Play()
	SetVolume(volume float64)
}

// Manager plays one music track at a time, cross-faded, plus one-shot
// jingles on a separate channel
type Manager struct {
	mu         sync.Mutex // Guards both mixers
	cfg        config.AudioConfig
	rate       beep.SampleRate
	fadeFrames int

	music    *channel
	sfx      *channel
	musicOut output
	sfxOut   output

	current Tune
	fader   *Fader
	muted   bool
}

// New opens the ebiten audio context and starts both channels
func New(cfg config.AudioConfig, tps int) (*Manager, error) {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(cfg.SampleRate)
	}

	m := newManager(cfg, tps)
	musicPlayer, err := ctx.NewPlayerF32(m.music)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	sfxPlayer, err := ctx.NewPlayerF32(m.sfx)
	if err != nil {
		return nil, fmt.Errorf("failed to create effects player: %w", err)
	}

	m.attach(musicPlayer, sfxPlayer)
	return m, nil
}

func newManager(cfg config.AudioConfig, tps int) *Manager {
	m := &Manager{
		cfg:        cfg,
		rate:       beep.SampleRate(cfg.SampleRate),
		fadeFrames: cfg.FadeMillis * tps / 1000,
		fader:      NewFader(0),
		muted:      cfg.StartMuted,
	}
	m.music = newChannel(&m.mu)
	m.sfx = newChannel(&m.mu)
	return m
}

func (m *Manager) attach(music, sfx output) {
	m.musicOut = music
	m.sfxOut = sfx
	m.applyVolume()
	music.Play()
	sfx.Play()
}

// PlayMenuMusic starts the menu theme
func (m *Manager) PlayMenuMusic() { m.switchMusic(TuneMenu, m.cfg.MenuVolume) }

// PlayGameMusic fades the current music into the in-game theme
func (m *Manager) PlayGameMusic() { m.switchMusic(TuneGame, m.cfg.GameVolume) }

// PlayEndMusic fades into the ending theme
func (m *Manager) PlayEndMusic() { m.switchMusic(TuneEnd, m.cfg.EndVolume) }

// BackToMenu drops pending jingles and fades back to the menu theme
func (m *Manager) BackToMenu() {
	m.mu.Lock()
	m.sfx.mixer.Clear()
	m.mu.Unlock()
	m.switchMusic(TuneMenu, m.cfg.MenuVolume)
}

// PlayItemSound plays the pickup jingle over the music
func (m *Manager) PlayItemSound() { m.playJingle(TuneItem, m.cfg.ItemVolume) }

// PlayOutroSound plays the closing jingle over the music
func (m *Manager) PlayOutroSound() { m.playJingle(TuneOutro, m.cfg.OutroVolume) }

// StopAll silences both channels at once
func (m *Manager) StopAll() {
	m.mu.Lock()
	m.music.mixer.Clear()
	m.sfx.mixer.Clear()
	m.mu.Unlock()

	m.current = TuneNone
	m.fader.Set(0)
	m.applyVolume()
}

// ToggleMute flips the mute state and returns it
func (m *Manager) ToggleMute() bool {
	m.muted = !m.muted
	m.applyVolume()
	return m.muted
}

// Muted reports whether sound is muted
func (m *Manager) Muted() bool { return m.muted }

// Update advances the music fade. Call once per tick.
func (m *Manager) Update() {
	m.fader.Step()
	m.applyVolume()
}

// Current returns the tune playing or fading in
func (m *Manager) Current() Tune { return m.current }

// MusicVolume returns the music volume before muting
func (m *Manager) MusicVolume() float64 { return m.fader.Volume() }

func (m *Manager) switchMusic(t Tune, volume float64) {
	if m.current == t {
		m.fader.Start(volume, m.fadeFrames, nil)
		return
	}

	previous := m.current
	m.current = t
	if previous == TuneNone {
		m.startTune(t)
		m.fader.Set(0)
		m.fader.Start(volume, m.fadeFrames, nil)
		return
	}

	m.fader.Start(0, m.fadeFrames, func() {
		m.startTune(t)
		m.fader.Start(volume, m.fadeFrames, nil)
	})
}

func (m *Manager) startTune(t Tune) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.music.mixer.Clear()
	m.music.mixer.Add(&beep.Ctrl{Streamer: NewTune(t, m.rate)})
}

func (m *Manager) playJingle(t Tune, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfx.mixer.Add(newVolume(NewTune(t, m.rate), volume))
}

func (m *Manager) applyVolume() {
	if m.musicOut == nil || m.sfxOut == nil {
		return
	}
	if m.muted {
		m.musicOut.SetVolume(0)
		m.sfxOut.SetVolume(0)
		return
	}
	m.musicOut.SetVolume(m.fader.Volume())
	m.sfxOut.SetVolume(1)
}

// Nop is a Player that makes no sound
type Nop struct {
	muted bool
}

func (n *Nop) PlayMenuMusic()   {}
func (n *Nop) PlayGameMusic()   {}
func (n *Nop) PlayEndMusic()    {}
func (n *Nop) BackToMenu()      {}
func (n *Nop) PlayItemSound()   {}
func (n *Nop) PlayOutroSound()  {}
func (n *Nop) StopAll()         {}
func (n *Nop) Update()          {}
func (n *Nop) Muted() bool      { return n.muted }
func (n *Nop) ToggleMute() bool { n.muted = !n.muted; return n.muted }
