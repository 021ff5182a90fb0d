package game

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/discoverme/internal/audio"
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/input"
	"chosenoffset.com/discoverme/internal/interaction"
	"chosenoffset.com/discoverme/internal/inventory"
	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/telemetry"
	"chosenoffset.com/discoverme/internal/ui/hud"
	"chosenoffset.com/discoverme/internal/ui/menu"
	"chosenoffset.com/discoverme/internal/world/boundary"
)

// Deps are the services the manager is built from
type Deps struct {
	Config   *config.Config
	World    *World
	Renderer render.Renderer
	Input    render.InputManager
	Assets   *Assets // Nil draws plain shapes

	Audio        audio.Player         // Nil means no sound
	Tracer       trace.Tracer         // Nil means no tracing
	Inventory    *inventory.Inventory // Nil registers the world items
	Overlay      *overlay.Manager     // Nil creates a closed overlay
	OpenDocument DocumentOpener       // Nil logs the request
}

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	MainMenu     *menu.MainMenu
	Ending       *menu.EndingScreen
	Game         *Game
	HUD          *hud.HUD
	Controls     *input.Controls
	Overlay      *overlay.Manager
	Inventory    *inventory.Inventory
	Audio        audio.Player

	cfg      *config.Config
	world    *World
	grid     *boundary.Grid
	renderer render.Renderer
	assets   *Assets
	tracer   trace.Tracer
	openDoc  DocumentOpener

	sessionCtx  context.Context
	sessionSpan trace.Span
}

// NewManager creates a new game manager showing the main menu.
func NewManager(deps Deps) (*Manager, error) {
	if deps.Config == nil || deps.World == nil {
		return nil, fmt.Errorf("game: config and world are required")
	}
	cfg := deps.Config

	grid, err := boundary.Build(deps.World.Layout, boundary.Spec{
		OffsetX:    cfg.Map.OffsetX,
		OffsetY:    cfg.Map.OffsetY,
		TileWidth:  cfg.Map.TileWidth,
		TileHeight: cfg.Map.TileHeight,
		BoxWidth:   cfg.Map.BoxWidth,
		BoxHeight:  cfg.Map.BoxHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build obstacles: %w", err)
	}
	log.Printf("Generated %d obstacles", grid.Len())

	m := &Manager{
		ScreenWidth:  cfg.Display.Width,
		ScreenHeight: cfg.Display.Height,
		State:        StateMenu,
		Overlay:      deps.Overlay,
		Inventory:    deps.Inventory,
		Audio:        deps.Audio,
		cfg:          cfg,
		world:        deps.World,
		grid:         grid,
		renderer:     deps.Renderer,
		assets:       deps.Assets,
		tracer:       deps.Tracer,
		openDoc:      deps.OpenDocument,
		sessionCtx:   context.Background(),
	}
	if m.Overlay == nil {
		m.Overlay = overlay.NewManager()
	}
	if m.Inventory == nil {
		m.Inventory = inventory.New(deps.World.Items...)
	}
	if m.Audio == nil {
		m.Audio = &audio.Nop{}
	}
	if m.tracer == nil {
		m.tracer = telemetry.NoopTracer()
	}
	if m.openDoc == nil {
		m.openDoc = func(target string) { log.Printf("Open document: %s", target) }
	}

	w, h := m.ScreenWidth, m.ScreenHeight
	m.Controls = input.NewControls(deps.Input, input.DefaultLayout(w, h))
	m.MainMenu = menu.NewMainMenu(deps.Renderer, deps.Input, deps.World.Dialogues, w, h)
	m.Ending = menu.NewEndingScreen(deps.Renderer, deps.Input, deps.World.Dialogues.Ending, w, h)

	var sprites hud.Sprites = noSprites{}
	if m.assets != nil && m.assets.Sprites != nil {
		sprites = m.assets.Sprites
	}
	m.HUD = hud.New(nil, deps.Renderer, sprites, w, h)
	m.Inventory.OnChange = func() { m.HUD.SetInventory(m.Inventory.Items()) }
	m.HUD.SetInventory(m.Inventory.Items())

	m.Overlay.OnChange = func(s overlay.State) {
		if s.IsOpen {
			// A key held when a panel opens must be pressed again to move
			m.Controls.Clear()
		}
	}
	m.Overlay.Handle(overlay.ActionContinue, func(overlay.Content) {})
	m.Overlay.Handle(overlay.ActionCurtain, func(overlay.Content) {
		m.Audio.PlayEndMusic()
		m.enterEnd(string(overlay.ActionCurtain))
	})
	m.Overlay.Handle(overlay.ActionCurtainEnd, func(overlay.Content) {
		m.enterEnd(string(overlay.ActionCurtainEnd))
	})
	m.Overlay.Handle(overlay.ActionOpenDocument, func(c overlay.Content) {
		m.OpenDocument(c.Document)
	})

	m.Audio.PlayMenuMusic()
	return m, nil
}

// Update updates the game state.
func (m *Manager) Update() error {
	m.Audio.Update()

	m.Controls.SetSuppressed(m.State == StatePlaying && m.Overlay.IsOpen())
	m.Controls.Update()
	if m.Controls.Mute() {
		muted := m.Audio.ToggleMute()
		log.Printf("Sound muted: %v", muted)
	}

	switch m.State {
	case StateMenu:
		if selected, selection := m.MainMenu.Update(); selected {
			if err := m.StartSession(selection); err != nil {
				log.Printf("Failed to start game: %v", err)
			}
		}
	case StatePlaying:
		if m.Controls.Menu() {
			m.ResetToMenu()
			return nil
		}
		m.Game.Update(m.Controls)
	case StateEnd:
		if m.Controls.Menu() {
			m.ResetToMenu()
			return nil
		}
		m.handleEnding(m.Ending.Update())
	}
	return nil
}

// StartSession builds fresh entities and starts playing with the chosen character
func (m *Manager) StartSession(selection menu.Selection) error {
	pop, err := m.world.Spawns.Build(content.Defaults{
		Threshold:       m.cfg.Interaction.Threshold,
		ChestThreshold:  m.cfg.Interaction.ChestThreshold,
		ChestFrames:     m.cfg.Chest.Frames,
		ChestFrameDelay: m.cfg.Chest.FrameDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to spawn entities: %w", err)
	}
	if err := m.grid.Reset(m.cfg.Map.OffsetX, m.cfg.Map.OffsetY); err != nil {
		return err
	}

	m.Overlay.CloseAll()
	m.Inventory.Clear()
	m.Controls.Clear()

	character := selection.Character
	if character == "" {
		character = entity.CharacterFeminine
	}
	m.endSession()
	sessionID := telemetry.NewSessionID()
	m.sessionCtx, m.sessionSpan = m.tracer.Start(context.Background(), "game.session",
		trace.WithAttributes(
			telemetry.AttrSessionID.String(sessionID),
			telemetry.AttrCharacter.String(string(character)),
		),
	)

	player := entity.NewPlayer(m.ScreenWidth, m.ScreenHeight,
		m.cfg.Player.Width, m.cfg.Player.Height, m.cfg.Player.Frames, m.cfg.Movement.WalkFrameTicks)
	player.Character = character

	handler := interaction.NewHandler(interaction.Options{
		Overlay:     m.Overlay,
		Inventory:   m.Inventory,
		Dialogues:   m.world.Dialogues,
		Sounds:      m.Audio,
		Tracer:      m.tracer,
		Context:     m.sessionCtx,
		DelayFrames: m.cfg.Interaction.DialogueDelayFrames,
	})

	m.Game = newGame(m.cfg, m.grid, pop, player, m.Overlay, handler)
	m.State = StatePlaying
	m.Audio.PlayGameMusic()
	log.Printf("Session %s started as %s", sessionID, character)
	return nil
}

// ResetToMenu abandons the session: held keys are released, the world is
// scrolled back, the inventory is emptied and the menu music resumes.
func (m *Manager) ResetToMenu() {
	_, span := m.tracer.Start(m.sessionCtx, "game.reset",
		trace.WithAttributes(attribute.String("game.state", m.State.String())))
	defer span.End()

	m.Controls.Clear()
	m.Overlay.CloseAll()
	if m.Game != nil {
		m.Game.Camera.Reset()
		m.Game.Handler.Reset()
		m.Game.Player.Reset()
		m.Game.Nearby = nil
	}
	if err := m.grid.Reset(m.cfg.Map.OffsetX, m.cfg.Map.OffsetY); err != nil {
		log.Printf("Warning: failed to reset obstacles: %v", err)
	}
	m.Inventory.Clear()
	m.Audio.BackToMenu()
	m.MainMenu.Reset()
	m.endSession()
	m.State = StateMenu
}

func (m *Manager) enterEnd(reason string) {
	_, span := m.tracer.Start(m.sessionCtx, "game.end",
		trace.WithAttributes(telemetry.AttrOutcome.String(reason)))
	span.End()

	m.Controls.Clear()
	if m.Game != nil {
		m.Game.Handler.Reset()
	}
	m.Ending.Reset()
	m.State = StateEnd
	log.Printf("Game over (%s)", reason)
}

func (m *Manager) handleEnding(action string) {
	switch action {
	case "":
	case menu.EndingReplay:
		m.Audio.PlayOutroSound()
		m.ResetToMenu()
	case menu.EndingResume:
		m.OpenDocument(DocumentResume)
	case menu.EndingPhone:
		m.OpenDocument(DocumentPhone)
	case menu.EndingContact:
		m.OpenDocument(DocumentContact)
	default:
		log.Printf("Warning: unknown ending action %q", action)
	}
}

// OpenDocument resolves a document name from the config and opens it
func (m *Manager) OpenDocument(name string) {
	var target string
	switch name {
	case DocumentLetter:
		target = m.cfg.Documents.Letter
	case DocumentResume:
		target = m.cfg.Documents.Resume
	case DocumentPhone:
		target = m.cfg.Documents.Phone
	case DocumentContact:
		target = m.cfg.Documents.Contact
	}
	if target == "" {
		log.Printf("Warning: no document configured for %q", name)
		return
	}
	m.openDoc(target)
}

func (m *Manager) endSession() {
	if m.sessionSpan != nil {
		m.sessionSpan.End()
		m.sessionSpan = nil
	}
	m.sessionCtx = context.Background()
}

// Shutdown ends the open session span and silences the audio
func (m *Manager) Shutdown() {
	m.endSession()
	m.Audio.StopAll()
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateMenu:
		m.MainMenu.Draw(screen)
	case StatePlaying:
		m.Game.Draw(screen, m.renderer, m.assets)
		m.HUD.Draw(screen, m.Audio.Muted())
		if !m.Overlay.IsOpen() && m.Game.Nearby != nil {
			m.HUD.DrawPrompt(screen, m.Game.Nearby.DisplayName())
		}
		m.HUD.DrawControls(screen, m.Controls.Layout())
		m.HUD.Panel().Draw(screen, m.Overlay.State())
	case StateEnd:
		m.Ending.Draw(screen)
	}
}

// Layout keeps the logical screen at the configured size; ebiten scales it
// to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

// noSprites draws nothing so the HUD falls back to shapes
type noSprites struct{}

func (noSprites) DrawFrame(render.Image, string, int, float64, float64, float64) bool { return false }
