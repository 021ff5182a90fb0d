package main

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with the calls the viewer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

func (s *Screen) PollEvent() tcell.Event { return s.screen.PollEvent() }
func (s *Screen) Clear()                 { s.screen.Clear() }
func (s *Screen) Show()                  { s.screen.Show() }
func (s *Screen) Sync()                  { s.screen.Sync() }

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) { return s.screen.Size() }
