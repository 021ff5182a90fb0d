package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/placeholders"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/render/atlas"
	"chosenoffset.com/discoverme/internal/world/maploader"
)

// Assets holds every image the game draws
type Assets struct {
	Sprites    *atlas.Manager
	Background render.Image
	Foreground render.Image
}

// GenerateAssets paints the placeholder art for the layout and uploads it
// through the renderer
func GenerateAssets(r render.Renderer, cfg *config.Config, layout *maploader.Map) (*Assets, error) {
	sprites := atlas.NewManager()
	for _, sheet := range placeholders.Sheets(cfg.Player.Frames, placeholders.CreatureFrames, cfg.Chest.Frames) {
		a, err := atlas.New(sheet.Config, r.NewImageFromImage(sheet.Image))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s sheet: %w", sheet.Config.Name, err)
		}
		if err := sprites.RegisterAtlas(a); err != nil {
			return nil, err
		}
	}

	tw, th := int(cfg.Map.TileWidth), int(cfg.Map.TileHeight)
	fg := cfg.Map.ForegroundOffset
	return &Assets{
		Sprites:    sprites,
		Background: r.NewImageFromImage(placeholders.Background(layout, tw, th)),
		Foreground: r.NewImageFromImage(placeholders.Foreground(layout, tw, th, int(fg.X), int(fg.Y))),
	}, nil
}

// Layer file names, as written by genplaceholders
const (
	BackgroundFile = "background.png"
	ForegroundFile = "foreground.png"
)

// LoadLayers replaces the generated map layers with the images found in dir.
// A missing file keeps the generated layer.
func (a *Assets) LoadLayers(loader render.ResourceLoader, dir string) error {
	if dir == "" {
		return nil
	}
	layers := []struct {
		name string
		dst  *render.Image
	}{
		{BackgroundFile, &a.Background},
		{ForegroundFile, &a.Foreground},
	}
	for _, l := range layers {
		path := filepath.Join(dir, l.name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		img, err := loader.LoadImage(path)
		if err != nil {
			return fmt.Errorf("failed to load layer %s: %w", path, err)
		}
		*l.dst = img
		log.Printf("Loaded layer: %s", path)
	}
	return nil
}
