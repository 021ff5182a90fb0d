package atlas

import (
	"fmt"
	"sort"

	"chosenoffset.com/discoverme/internal/render"
)

// Manager manages several atlases and resolves sprites across them
type Manager struct {
	atlasesByName map[string]*Atlas
	spriteOwner   map[string]*Atlas
}

// NewManager creates a new atlas manager
func NewManager() *Manager {
	return &Manager{
		atlasesByName: make(map[string]*Atlas),
		spriteOwner:   make(map[string]*Atlas),
	}
}

// LoadAtlasConfig loads an atlas from a config file and registers it
func (m *Manager) LoadAtlasConfig(configPath string, loader render.ResourceLoader) error {
	atlas, err := LoadAtlas(configPath, loader)
	if err != nil {
		return err
	}
	return m.RegisterAtlas(atlas)
}

// RegisterAtlas registers a loaded atlas with the manager. Sprite names
// must be unique across all atlases.
func (m *Manager) RegisterAtlas(atlas *Atlas) error {
	name := atlas.Config.Name
	if name == "" {
		return fmt.Errorf("atlas name cannot be empty")
	}
	if _, exists := m.atlasesByName[name]; exists {
		return fmt.Errorf("atlas %s already registered", name)
	}
	for _, sprite := range atlas.Names() {
		if owner, exists := m.spriteOwner[sprite]; exists {
			return fmt.Errorf("sprite %s already provided by atlas %s", sprite, owner.Config.Name)
		}
	}

	m.atlasesByName[name] = atlas
	for _, sprite := range atlas.Names() {
		m.spriteOwner[sprite] = atlas
	}
	return nil
}

// GetAtlasByName returns an atlas by its name
func (m *Manager) GetAtlasByName(name string) (*Atlas, bool) {
	atlas, ok := m.atlasesByName[name]
	return atlas, ok
}

// Has reports whether any atlas provides the sprite
func (m *Manager) Has(sprite string) bool {
	_, ok := m.spriteOwner[sprite]
	return ok
}

// Frame returns a frame of a sprite from whichever atlas owns it
func (m *Manager) Frame(sprite string, frame int) (render.Image, bool) {
	atlas, ok := m.spriteOwner[sprite]
	if !ok {
		return nil, false
	}
	return atlas.Frame(sprite, frame)
}

// DrawFrame draws a sprite frame at (x, y) scaled by scale. It returns false
// and draws nothing when the sprite is unknown.
func (m *Manager) DrawFrame(dst render.Image, sprite string, frame int, x, y, scale float64) bool {
	img, ok := m.Frame(sprite, frame)
	if !ok {
		return false
	}
	geoM := render.NewGeoM()
	if scale > 0 && scale != 1 {
		geoM.Scale(scale, scale)
	}
	geoM.Translate(x, y)
	dst.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
	return true
}

// GetAtlasNames returns all registered atlas names, sorted
func (m *Manager) GetAtlasNames() []string {
	names := make([]string, 0, len(m.atlasesByName))
	for name := range m.atlasesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
