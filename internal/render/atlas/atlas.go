// Package atlas slices sprite sheets into named animation frames.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/discoverme/internal/render"
)

// SpriteDefinition defines one named strip of frames within an atlas
type SpriteDefinition struct {
	Name   string `json:"name"`    // Semantic name (e.g., "player_feminin_down")
	AtlasX int    `json:"atlas_x"` // Column of the first frame (in cells)
	AtlasY int    `json:"atlas_y"` // Row of the strip (in cells)
	Frames int    `json:"frames"`  // Frames laid out left to right, at least 1
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name        string             `json:"name"`
	ImagePath   string             `json:"image_path"`   // Relative to the config file
	FrameWidth  int                `json:"frame_width"`  // Width of each cell in pixels
	FrameHeight int                `json:"frame_height"` // Height of each cell in pixels
	Sprites     []SpriteDefinition `json:"sprites"`
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config        *AtlasConfig
	Image         render.Image
	spritesByName map[string]*SpriteDefinition
	frames        map[string][]render.Image
}

// ParseConfig decodes and validates an atlas configuration
func ParseConfig(data []byte, source string) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", source, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid atlas config %s: %w", source, err)
	}
	return &config, nil
}

// Validate checks frame dimensions and sprite names
func (c *AtlasConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("atlas name cannot be empty")
	}
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", c.FrameWidth, c.FrameHeight)
	}
	seen := make(map[string]bool, len(c.Sprites))
	for _, s := range c.Sprites {
		if s.Name == "" {
			return fmt.Errorf("sprite without name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate sprite %q", s.Name)
		}
		seen[s.Name] = true
		if s.AtlasX < 0 || s.AtlasY < 0 {
			return fmt.Errorf("sprite %s: negative position", s.Name)
		}
	}
	return nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data, configPath)
	if err != nil {
		return nil, err
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img)
}

// New builds an atlas over an already loaded sheet. Every sprite strip must
// fit inside the image.
func New(config *AtlasConfig, img render.Image) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	a := &Atlas{
		Config:        config,
		Image:         img,
		spritesByName: make(map[string]*SpriteDefinition, len(config.Sprites)),
		frames:        make(map[string][]render.Image, len(config.Sprites)),
	}
	for i := range config.Sprites {
		s := &config.Sprites[i]
		if s.Frames < 1 {
			s.Frames = 1
		}
		last := a.frameRect(s, s.Frames-1)
		if !last.In(bounds) || !a.frameRect(s, 0).In(bounds) {
			return nil, fmt.Errorf("sprite %s does not fit in atlas %s (%v)", s.Name, config.Name, bounds)
		}
		a.spritesByName[s.Name] = s
	}
	return a, nil
}

func (a *Atlas) frameRect(s *SpriteDefinition, frame int) image.Rectangle {
	x := (s.AtlasX + frame) * a.Config.FrameWidth
	y := s.AtlasY * a.Config.FrameHeight
	return image.Rect(x, y, x+a.Config.FrameWidth, y+a.Config.FrameHeight)
}

// Sprite returns a sprite definition by name
func (a *Atlas) Sprite(name string) (*SpriteDefinition, bool) {
	s, ok := a.spritesByName[name]
	return s, ok
}

// FrameCount returns how many frames a sprite has, or 0 if it is unknown
func (a *Atlas) FrameCount(name string) int {
	if s, ok := a.spritesByName[name]; ok {
		return s.Frames
	}
	return 0
}

// Frame returns the sub-image for a frame of a sprite. Frame numbers wrap
// around the strip length.
func (a *Atlas) Frame(name string, frame int) (render.Image, bool) {
	s, ok := a.spritesByName[name]
	if !ok {
		return nil, false
	}

	frames, ok := a.frames[name]
	if !ok {
		frames = make([]render.Image, s.Frames)
		for i := range frames {
			frames[i] = a.Image.SubImage(a.frameRect(s, i))
		}
		a.frames[name] = frames
	}

	frame %= s.Frames
	if frame < 0 {
		frame += s.Frames
	}
	return frames[frame], true
}

// Names returns the sprite names in declared order
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.Config.Sprites))
	for _, s := range a.Config.Sprites {
		names = append(names, s.Name)
	}
	return names
}
