package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/audio"
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/game"
	"chosenoffset.com/discoverme/internal/opener"
	"chosenoffset.com/discoverme/internal/render/ebiten"
	"chosenoffset.com/discoverme/internal/telemetry"
)

func main() {
	// Env vars may also be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadConfig(config.Path("config.json"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if config.TelemetryEnabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
			tracer = telemetry.Tracer("discoverme")
		}
	}

	world, err := game.LoadWorld(ctx, tracer, cfg, data.FS())
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	// Create the render backend
	renderer := ebiten.NewRenderer()
	inputMgr := ebiten.NewInputManager()
	loader := ebiten.NewResourceLoader()
	engine := ebiten.NewEngine()

	assets, err := game.GenerateAssets(renderer, cfg, world.Layout)
	if err != nil {
		log.Fatalf("Failed to generate assets: %v", err)
	}
	if err := assets.LoadLayers(loader, cfg.Map.LayerDir); err != nil {
		log.Printf("Warning: %v", err)
	}

	var player audio.Player = &audio.Nop{}
	if cfg.Audio.Enabled {
		m, err := audio.New(cfg.Audio, cfg.Display.TPS)
		if err != nil {
			log.Printf("Warning: audio unavailable: %v", err)
		} else {
			player = m
		}
	}

	docs := opener.New()
	mgr, err := game.NewManager(game.Deps{
		Config:   cfg,
		World:    world,
		Renderer: renderer,
		Input:    inputMgr,
		Assets:   assets,
		Audio:    player,
		Tracer:   tracer,
		OpenDocument: func(target string) {
			if err := docs.Open(target); err != nil {
				log.Printf("Warning: %v", err)
			}
		},
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer mgr.Shutdown()

	engine.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	engine.SetWindowTitle(cfg.Display.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Display.TPS)

	if err := engine.RunGame(mgr); err != nil {
		log.Printf("Game error: %v", err)
	}
}
