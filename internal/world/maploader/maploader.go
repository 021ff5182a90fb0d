// Package maploader reads the static collision layout of the world.
// The layout is a flat list of tile symbols, chunked into rows of a fixed width.
package maploader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// DefaultSolidSymbol marks a blocking tile in layouts exported from the map editor
const DefaultSolidSymbol = 1025

// MapData represents the map file as stored on disk
type MapData struct {
	Name        string `json:"name"`
	Columns     int    `json:"columns"`      // Row width in tiles
	SolidSymbol int    `json:"solid_symbol"` // Tile value that blocks movement
	Tiles       []int  `json:"tiles"`        // Row-major, len must be a multiple of Columns
}

// Map is a validated layout ready to be chunked into rows
type Map struct {
	Data *MapData
	rows [][]int
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}
	return Parse(data, mapPath)
}

// LoadMapFS loads a map from a file system, typically the embedded data directory
func LoadMapFS(fsys fs.FS, name string) (*Map, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes and validates map JSON. source is only used in error messages.
func Parse(data []byte, source string) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", source, err)
	}

	if mapData.SolidSymbol == 0 {
		mapData.SolidSymbol = DefaultSolidSymbol
	}

	m, err := New(&mapData)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", source, err)
	}
	return m, nil
}

// New validates map data and chunks it into rows
func New(data *MapData) (*Map, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	rows := make([][]int, 0, len(data.Tiles)/data.Columns)
	for i := 0; i < len(data.Tiles); i += data.Columns {
		rows = append(rows, data.Tiles[i:i+data.Columns])
	}

	return &Map{Data: data, rows: rows}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Columns <= 0 {
		return fmt.Errorf("invalid column count: %d", data.Columns)
	}

	if len(data.Tiles) == 0 {
		return fmt.Errorf("map has no tiles")
	}

	if len(data.Tiles)%data.Columns != 0 {
		return fmt.Errorf("tile count %d is not a multiple of %d columns", len(data.Tiles), data.Columns)
	}

	return nil
}

// Width returns the number of columns
func (m *Map) Width() int { return m.Data.Columns }

// Height returns the number of rows
func (m *Map) Height() int { return len(m.rows) }

// Rows returns the layout chunked into rows. The slices alias the map data.
func (m *Map) Rows() [][]int { return m.rows }

// GetTileAt returns the tile symbol at the given grid coordinates
func (m *Map) GetTileAt(col, row int) (int, error) {
	if col < 0 || col >= m.Width() || row < 0 || row >= m.Height() {
		return 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", col, row)
	}
	return m.rows[row][col], nil
}

// IsSolid returns whether the tile at the given coordinates blocks movement.
// Out-of-bounds cells are not solid.
func (m *Map) IsSolid(col, row int) bool {
	tile, err := m.GetTileAt(col, row)
	if err != nil {
		return false
	}
	return tile == m.Data.SolidSymbol
}

// SolidCount returns how many cells block movement
func (m *Map) SolidCount() int {
	n := 0
	for _, t := range m.Data.Tiles {
		if t == m.Data.SolidSymbol {
			n++
		}
	}
	return n
}
