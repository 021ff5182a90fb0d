package game

import (
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/interaction"
	"chosenoffset.com/discoverme/internal/movement"
	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/world/boundary"
)

// Game holds the state of one play session: the player, the live entities
// and the camera that scrolls them.
type Game struct {
	Player     *entity.Player
	Population *content.Population
	Grid       *boundary.Grid
	Camera     *movement.Camera
	Resolver   *movement.Resolver
	Background *movement.Layer
	Foreground *movement.Layer

	Overlay *overlay.Manager
	Handler *interaction.Handler

	// Nearby is what the A button would interact with, nil when nothing is in range
	Nearby entity.Interactive

	obstacles []entity.Blocker
	entities  []entity.Blocker
	animators []entity.Animator
}

// newGame lays out a fresh session. The grid must already be at its spawn
// offset; the population is expected to be freshly built.
func newGame(cfg *config.Config, grid *boundary.Grid, pop *content.Population, player *entity.Player,
	ov *overlay.Manager, handler *interaction.Handler) *Game {

	g := &Game{
		Player:     player,
		Population: pop,
		Grid:       grid,
		Overlay:    ov,
		Handler:    handler,
		Background: &movement.Layer{Name: "background", X: cfg.Map.OffsetX, Y: cfg.Map.OffsetY},
		Foreground: &movement.Layer{
			Name: "foreground",
			X:    cfg.Map.OffsetX + cfg.Map.ForegroundOffset.X,
			Y:    cfg.Map.OffsetY + cfg.Map.ForegroundOffset.Y,
		},
		obstacles: blockers(grid.Obstacles()),
		entities:  pop.Blockers(),
		animators: pop.Animators(),
	}

	g.Camera = movement.NewCamera(pop.Movables()...)
	g.Camera.Add(grid.Movables()...)
	g.Camera.Add(g.Background, g.Foreground)

	priority, err := entity.ParseDirections(cfg.Movement.DirectionPriority)
	if err != nil {
		priority = nil
	}
	g.Resolver = movement.NewResolver(cfg.Movement.Speed, priority, g.Camera)
	return g
}

// Update advances the session by one tick. While the overlay is open the
// world is frozen and the buttons drive the overlay instead.
func (g *Game) Update(c Controls) {
	if g.Overlay.IsOpen() {
		g.Player.Moving = false
		g.Nearby = nil
		switch {
		case c.ButtonA():
			g.Overlay.PressButton(overlay.ButtonA)
		case c.ButtonB():
			g.Overlay.PressButton(overlay.ButtonB)
		}
	} else {
		dir := g.Resolver.Pick(c)
		g.Resolver.Step(g.Player, dir, g.obstacles, g.entities)

		g.Nearby = interaction.FindNearby(g.Player, g.Population.Interactive)
		if c.ButtonA() && g.Nearby != nil {
			g.Handler.Interact(g.Nearby)
		}
	}

	g.Player.Tick()
	for _, a := range g.animators {
		a.Tick()
	}
	g.Handler.Update()
}

// Obstacles returns the static obstacles as resolver input
func (g *Game) Obstacles() []entity.Blocker { return g.obstacles }
