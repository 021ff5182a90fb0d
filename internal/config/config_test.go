package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Movement.Speed != def.Movement.Speed {
		t.Errorf("Expected speed %v, got %v", def.Movement.Speed, cfg.Movement.Speed)
	}
	if cfg.Display.Width != 1024 || cfg.Display.Height != 576 {
		t.Errorf("Expected 1024x576, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"movement": {"speed": 6}, "interaction": {"threshold": 64}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Movement.Speed != 6 {
		t.Errorf("Expected speed 6, got %v", cfg.Movement.Speed)
	}
	if cfg.Interaction.Threshold != 64 {
		t.Errorf("Expected threshold 64, got %v", cfg.Interaction.Threshold)
	}
	// Untouched fields keep their defaults
	if cfg.Interaction.ChestThreshold != 100 {
		t.Errorf("Expected chest threshold 100, got %v", cfg.Interaction.ChestThreshold)
	}
	if len(cfg.Movement.DirectionPriority) != 4 {
		t.Errorf("Expected default priority, got %v", cfg.Movement.DirectionPriority)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"movement":`},
		{"zero speed", `{"movement": {"speed": 0}}`},
		{"duplicate priority", `{"movement": {"direction_priority": ["up", "up", "left", "right"]}}`},
		{"unknown priority", `{"movement": {"direction_priority": ["up", "down", "left", "north"]}}`},
		{"box larger than tile", `{"map": {"box_width": 60}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv(EnvConfigPath, "custom.json")
	if got := Path("config.json"); got != "custom.json" {
		t.Errorf("Expected custom.json, got %s", got)
	}

	t.Setenv(EnvConfigPath, "")
	if got := Path("config.json"); got != "config.json" {
		t.Errorf("Expected fallback, got %s", got)
	}

	t.Setenv(EnvTelemetry, "1")
	if !TelemetryEnabled() {
		t.Error("Expected telemetry enabled")
	}
	t.Setenv(EnvTelemetry, "")
	if TelemetryEnabled() {
		t.Error("Expected telemetry disabled")
	}
}
