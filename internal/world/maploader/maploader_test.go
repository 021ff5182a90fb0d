package maploader

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestParseChunksRows(t *testing.T) {
	body := `{"name": "test", "columns": 3, "solid_symbol": 9, "tiles": [0,9,0, 0,0,9]}`
	m, err := Parse([]byte(body), "test.json")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", m.Width(), m.Height())
	}

	if !m.IsSolid(1, 0) {
		t.Error("Expected (1, 0) to be solid")
	}
	if !m.IsSolid(2, 1) {
		t.Error("Expected (2, 1) to be solid")
	}
	if m.IsSolid(0, 0) {
		t.Error("Expected (0, 0) to be open")
	}
	if m.IsSolid(5, 5) {
		t.Error("Out of bounds cells must not be solid")
	}
	if m.SolidCount() != 2 {
		t.Errorf("Expected 2 solid cells, got %d", m.SolidCount())
	}
}

func TestParseDefaultsSolidSymbol(t *testing.T) {
	m, err := Parse([]byte(`{"columns": 2, "tiles": [1025, 0]}`), "inline")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if m.Data.SolidSymbol != DefaultSolidSymbol {
		t.Errorf("Expected solid symbol %d, got %d", DefaultSolidSymbol, m.Data.SolidSymbol)
	}
	if !m.IsSolid(0, 0) {
		t.Error("Expected (0, 0) to be solid")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"columns":`},
		{"zero columns", `{"columns": 0, "tiles": [0]}`},
		{"empty", `{"columns": 2, "tiles": []}`},
		{"ragged", `{"columns": 2, "tiles": [0, 0, 0]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body), tt.name); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadMapFromDiskAndFS(t *testing.T) {
	body := []byte(`{"columns": 2, "tiles": [0, 1025, 1025, 0]}`)

	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}
	if _, err := LoadMap(path); err != nil {
		t.Fatalf("LoadMap returned error: %v", err)
	}

	fsys := fstest.MapFS{"map.json": &fstest.MapFile{Data: body}}
	m, err := LoadMapFS(fsys, "map.json")
	if err != nil {
		t.Fatalf("LoadMapFS returned error: %v", err)
	}
	if m.SolidCount() != 2 {
		t.Errorf("Expected 2 solid cells, got %d", m.SolidCount())
	}

	if _, err := LoadMap(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
