package placeholders

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/render/atlas"
	"chosenoffset.com/discoverme/internal/render/rendertest"
	"chosenoffset.com/discoverme/internal/world/maploader"
)

func TestSheetsMatchTheirAtlasConfig(t *testing.T) {
	m := atlas.NewManager()
	for _, sheet := range Sheets(4, 4, 8) {
		b := sheet.Image.Bounds()
		a, err := atlas.New(sheet.Config, rendertest.NewImage(b.Dx(), b.Dy()))
		if err != nil {
			t.Fatalf("Sheet %s does not match its config: %v", sheet.Config.Name, err)
		}
		if err := m.RegisterAtlas(a); err != nil {
			t.Fatalf("RegisterAtlas(%s) returned error: %v", sheet.Config.Name, err)
		}
	}

	want := map[string]int{
		"player_feminin_up":    4,
		"player_masculin_left": 4,
		"lapin_down":           4,
		"coffre":               8,
		"cle":                  1,
		"parchemin":            1,
		"oldman":               1,
		"heart":                1,
		"icon_cle":             1,
		"icon_lapin":           1,
	}
	for name, frames := range want {
		if !m.Has(name) {
			t.Errorf("Missing sprite %s", name)
			continue
		}
		if _, ok := m.Frame(name, frames-1); !ok {
			t.Errorf("Sprite %s has no frame %d", name, frames-1)
		}
	}
}

func TestSheetsClampFrameCounts(t *testing.T) {
	for _, sheet := range Sheets(0, -1, 0) {
		for _, s := range sheet.Config.Sprites {
			if s.Frames < 1 {
				t.Errorf("Sprite %s has %d frames", s.Name, s.Frames)
			}
		}
	}
}

func TestChestLidRises(t *testing.T) {
	closed := CreateChest(0, 8)
	open := CreateChest(7, 8)
	// Above the closed lid nothing is painted; the open lid reaches it
	if _, _, _, a := closed.At(30, 0).RGBA(); a != 0 {
		t.Error("Closed chest should leave the top rows empty")
	}
	if _, _, _, a := open.At(30, 0).RGBA(); a == 0 {
		t.Error("Open chest should raise its lid to the top")
	}
}

func TestMapLayers(t *testing.T) {
	layout, err := maploader.LoadMapFS(data.FS(), data.MapFile)
	if err != nil {
		t.Fatalf("Failed to load map: %v", err)
	}

	bg := Background(layout, 48, 48)
	if bg.Bounds().Dx() != 70*48 || bg.Bounds().Dy() != 40*48 {
		t.Errorf("Unexpected background size %v", bg.Bounds())
	}
	// The border row is solid
	if bg.At(10, 10) != ColorPalette.Solid {
		t.Errorf("Expected solid colour at the corner, got %v", bg.At(10, 10))
	}

	fg := Foreground(layout, 48, 48, 432, 147)
	if fg.Bounds() != bg.Bounds() {
		t.Errorf("Foreground %v should match background %v", fg.Bounds(), bg.Bounds())
	}
}

func TestGenerateAndSave(t *testing.T) {
	layout, err := maploader.New(&maploader.MapData{Columns: 3, SolidSymbol: 1025, Tiles: []int{1025, 0, 1025, 0, 0, 0}})
	if err != nil {
		t.Fatalf("maploader.New returned error: %v", err)
	}

	dir := t.TempDir()
	if err := GenerateAndSave(dir, layout, []Sheet{Icons()}, 8, 8, 0, 0); err != nil {
		t.Fatalf("GenerateAndSave returned error: %v", err)
	}
	for _, name := range []string{"icons.png", "icons.json", "background.png", "foreground.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "icons.json"))
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if _, err := atlas.ParseConfig(raw, "icons.json"); err != nil {
		t.Errorf("Saved config does not parse: %v", err)
	}
}
