package atlas

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/render/rendertest"
)

const sheetJSON = `{
	"name": "characters",
	"image_path": "characters.png",
	"frame_width": 48,
	"frame_height": 68,
	"sprites": [
		{"name": "player_feminin_down", "atlas_x": 0, "atlas_y": 0, "frames": 4},
		{"name": "player_feminin_up", "atlas_x": 0, "atlas_y": 1, "frames": 4},
		{"name": "oldman", "atlas_x": 0, "atlas_y": 2}
	]
}`

type fakeLoader struct {
	path string
	img  render.Image
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.path = path
	return l.img, nil
}

func newTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	config, err := ParseConfig([]byte(sheetJSON), "inline")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	a, err := New(config, rendertest.NewImage(4*48, 3*68))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return a
}

func TestFrameRects(t *testing.T) {
	a := newTestAtlas(t)

	tests := []struct {
		sprite string
		frame  int
		want   image.Rectangle
	}{
		{"player_feminin_down", 0, image.Rect(0, 0, 48, 68)},
		{"player_feminin_down", 3, image.Rect(144, 0, 192, 68)},
		{"player_feminin_down", 5, image.Rect(48, 0, 96, 68)},    // wraps
		{"player_feminin_down", -1, image.Rect(144, 0, 192, 68)}, // wraps backwards
		{"player_feminin_up", 1, image.Rect(48, 68, 96, 136)},
		{"oldman", 7, image.Rect(0, 136, 48, 204)}, // single frame
	}

	for _, tt := range tests {
		img, ok := a.Frame(tt.sprite, tt.frame)
		if !ok {
			t.Fatalf("Frame(%s, %d) not found", tt.sprite, tt.frame)
		}
		if got := img.Bounds(); got != tt.want {
			t.Errorf("Frame(%s, %d) = %v, want %v", tt.sprite, tt.frame, got, tt.want)
		}
	}

	if _, ok := a.Frame("missing", 0); ok {
		t.Error("Unknown sprite should not be found")
	}
	if a.FrameCount("oldman") != 1 || a.FrameCount("missing") != 0 {
		t.Error("Unexpected frame counts")
	}
}

func TestFramesAreCached(t *testing.T) {
	a := newTestAtlas(t)
	first, _ := a.Frame("player_feminin_up", 2)
	second, _ := a.Frame("player_feminin_up", 2)
	if first != second {
		t.Error("Expected the same sub-image for repeated lookups")
	}
}

func TestNewRejectsSpritesOutsideImage(t *testing.T) {
	config, err := ParseConfig([]byte(sheetJSON), "inline")
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if _, err := New(config, rendertest.NewImage(3*48, 3*68)); err == nil {
		t.Error("Expected error when a strip overflows the sheet")
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"no name", `{"frame_width": 1, "frame_height": 1}`},
		{"zero frame", `{"name": "x", "frame_width": 0, "frame_height": 1}`},
		{"duplicate", `{"name": "x", "frame_width": 1, "frame_height": 1, "sprites": [{"name": "a"}, {"name": "a"}]}`},
		{"negative", `{"name": "x", "frame_width": 1, "frame_height": 1, "sprites": [{"name": "a", "atlas_x": -1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.body), tt.name); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadAtlasResolvesImageRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.json")
	if err := os.WriteFile(path, []byte(sheetJSON), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loader := &fakeLoader{img: rendertest.NewImage(4*48, 3*68)}
	a, err := LoadAtlas(path, loader)
	if err != nil {
		t.Fatalf("LoadAtlas returned error: %v", err)
	}
	if loader.path != filepath.Join(dir, "characters.png") {
		t.Errorf("Image loaded from %s", loader.path)
	}
	if len(a.Names()) != 3 {
		t.Errorf("Expected 3 sprites, got %v", a.Names())
	}
}

func TestManagerRegistration(t *testing.T) {
	rendertest.Install()
	m := NewManager()
	a := newTestAtlas(t)

	if err := m.RegisterAtlas(a); err != nil {
		t.Fatalf("RegisterAtlas returned error: %v", err)
	}
	if err := m.RegisterAtlas(a); err == nil {
		t.Error("Expected error for duplicate atlas")
	}

	clash := &AtlasConfig{Name: "other", FrameWidth: 48, FrameHeight: 68,
		Sprites: []SpriteDefinition{{Name: "oldman"}}}
	other, err := New(clash, rendertest.NewImage(48, 68))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := m.RegisterAtlas(other); err == nil {
		t.Error("Expected error for sprite provided twice")
	}

	if !m.Has("oldman") || m.Has("missing") {
		t.Error("Has reported the wrong sprites")
	}
	if names := m.GetAtlasNames(); len(names) != 1 || names[0] != "characters" {
		t.Errorf("Unexpected atlas names %v", names)
	}

	screen := rendertest.NewImage(100, 100)
	if !m.DrawFrame(screen, "player_feminin_down", 1, 10, 20, 0.5) {
		t.Fatal("DrawFrame should draw a known sprite")
	}
	if m.DrawFrame(screen, "missing", 0, 0, 0, 1) {
		t.Error("DrawFrame should skip unknown sprites")
	}
	if len(screen.Draws) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(screen.Draws))
	}
	d := screen.Draws[0]
	if d.GeoM.TX != 10 || d.GeoM.TY != 20 || d.GeoM.SX != 0.5 {
		t.Errorf("Unexpected transform %+v", d.GeoM)
	}
	if d.Src.Bounds() != image.Rect(48, 0, 96, 68) {
		t.Errorf("Drew the wrong frame %v", d.Src.Bounds())
	}
}
