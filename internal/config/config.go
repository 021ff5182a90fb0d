// Package config provides the tunable constants of the game.
// Values are loaded from an optional JSON file layered over the defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Environment variables read by the binaries
const (
	EnvConfigPath = "DISCOVERME_CONFIG"
	EnvTelemetry  = "DISCOVERME_TELEMETRY"
)

// Config holds every tunable of the game
type Config struct {
	Display     DisplayConfig     `json:"display"`
	Movement    MovementConfig    `json:"movement"`
	Map         MapConfig         `json:"map"`
	Player      PlayerConfig      `json:"player"`
	Interaction InteractionConfig `json:"interaction"`
	Chest       ChestConfig       `json:"chest"`
	Audio       AudioConfig       `json:"audio"`
	Documents   DocumentConfig    `json:"documents"`
}

// DisplayConfig defines the window and logical screen
type DisplayConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"` // Update ticks per second
}

// MovementConfig defines how the player moves
type MovementConfig struct {
	Speed             float64  `json:"speed"`              // Pixels per tick
	DirectionPriority []string `json:"direction_priority"` // Highest first, when several directions are held
	WalkFrameTicks    int      `json:"walk_frame_ticks"`   // Ticks between walk-cycle frames
}

// MapConfig defines how the collision layout is turned into obstacles
type MapConfig struct {
	Path             string  `json:"path"`      // Empty means the embedded map
	LayerDir         string  `json:"layer_dir"` // Painted background.png and foreground.png, empty means generated
	OffsetX          float64 `json:"offset_x"`
	OffsetY          float64 `json:"offset_y"`
	TileWidth        float64 `json:"tile_width"`
	TileHeight       float64 `json:"tile_height"`
	BoxWidth         float64 `json:"box_width"`  // Collision box inside a tile
	BoxHeight        float64 `json:"box_height"` // Collision box inside a tile
	ForegroundOffset Point   `json:"foreground_offset"`
}

// Point is a plain 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerConfig defines the player sprite
type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Frames int     `json:"frames"`
}

// InteractionConfig defines proximity and dialogue timing
type InteractionConfig struct {
	Threshold           float64 `json:"threshold"`             // Corner distance for items and NPCs
	ChestThreshold      float64 `json:"chest_threshold"`       // Centre distance for the chest
	DialogueDelayFrames int     `json:"dialogue_delay_frames"` // Delay before an item dialogue opens
}

// ChestConfig defines the chest opening animation
type ChestConfig struct {
	Frames     int `json:"frames"`
	FrameDelay int `json:"frame_delay"`
}

// AudioConfig defines music and sound levels
type AudioConfig struct {
	Enabled     bool    `json:"enabled"`
	SampleRate  int     `json:"sample_rate"`
	FadeMillis  int     `json:"fade_millis"`
	MenuVolume  float64 `json:"menu_volume"`
	GameVolume  float64 `json:"game_volume"`
	EndVolume   float64 `json:"end_volume"`
	ItemVolume  float64 `json:"item_volume"`
	OutroVolume float64 `json:"outro_volume"`
	StartMuted  bool    `json:"start_muted"`
}

// DocumentConfig lists the external documents the ending screen links to
type DocumentConfig struct {
	Letter  string `json:"letter"`
	Resume  string `json:"resume"`
	Phone   string `json:"phone"`
	Contact string `json:"contact"`
}

// DefaultConfig returns the values the game ships with
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  1024,
			Height: 576,
			Title:  "Découvre-moi",
			TPS:    60,
		},
		Movement: MovementConfig{
			Speed:             4,
			DirectionPriority: []string{"up", "down", "left", "right"},
			WalkFrameTicks:    9,
		},
		Map: MapConfig{
			OffsetX:          -748,
			OffsetY:          -650,
			TileWidth:        48,
			TileHeight:       48,
			BoxWidth:         34,
			BoxHeight:        28,
			ForegroundOffset: Point{X: 432, Y: 147},
		},
		Player: PlayerConfig{
			Width:  48,
			Height: 68,
			Frames: 4,
		},
		Interaction: InteractionConfig{
			Threshold:           80,
			ChestThreshold:      100,
			DialogueDelayFrames: 90,
		},
		Chest: ChestConfig{
			Frames:     8,
			FrameDelay: 6,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  48000,
			FadeMillis:  500,
			MenuVolume:  0.7,
			GameVolume:  0.02,
			EndVolume:   0.2,
			ItemVolume:  0.1,
			OutroVolume: 0.2,
		},
		Documents: DocumentConfig{
			Letter:  "files/lettre-motivation.pdf",
			Resume:  "files/cv.pdf",
			Phone:   "tel:+33000000000",
			Contact: "mailto:contact@example.com",
		},
	}
}

// LoadConfig loads config from a JSON file.
// A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the values can drive a running game
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid display size: %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Display.TPS)
	}
	if c.Movement.Speed <= 0 {
		return fmt.Errorf("invalid speed: %v", c.Movement.Speed)
	}
	if err := validatePriority(c.Movement.DirectionPriority); err != nil {
		return err
	}
	if c.Map.TileWidth <= 0 || c.Map.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %vx%v", c.Map.TileWidth, c.Map.TileHeight)
	}
	if c.Map.BoxWidth <= 0 || c.Map.BoxHeight <= 0 ||
		c.Map.BoxWidth > c.Map.TileWidth || c.Map.BoxHeight > c.Map.TileHeight {
		return fmt.Errorf("collision box %vx%v does not fit tile %vx%v",
			c.Map.BoxWidth, c.Map.BoxHeight, c.Map.TileWidth, c.Map.TileHeight)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Frames <= 0 {
		return fmt.Errorf("invalid player sprite: %vx%v, %d frames", c.Player.Width, c.Player.Height, c.Player.Frames)
	}
	if c.Interaction.Threshold <= 0 || c.Interaction.ChestThreshold <= 0 {
		return fmt.Errorf("interaction thresholds must be positive")
	}
	if c.Interaction.DialogueDelayFrames < 0 {
		return fmt.Errorf("invalid dialogue delay: %d", c.Interaction.DialogueDelayFrames)
	}
	if c.Chest.Frames <= 0 || c.Chest.FrameDelay <= 0 {
		return fmt.Errorf("invalid chest animation: %d frames, delay %d", c.Chest.Frames, c.Chest.FrameDelay)
	}
	return nil
}

func validatePriority(order []string) error {
	if len(order) != 4 {
		return fmt.Errorf("direction priority needs 4 entries, got %d", len(order))
	}
	seen := make(map[string]bool, 4)
	for _, d := range order {
		switch d {
		case "up", "down", "left", "right":
		default:
			return fmt.Errorf("unknown direction in priority: %q", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate direction in priority: %q", d)
		}
		seen[d] = true
	}
	return nil
}

// Path returns the config path from the environment, or the fallback
func Path(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}

// TelemetryEnabled reports whether the environment asks for trace export
func TelemetryEnabled() bool {
	switch os.Getenv(EnvTelemetry) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
