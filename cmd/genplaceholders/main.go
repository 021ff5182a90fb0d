package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/placeholders"
	"chosenoffset.com/discoverme/internal/world/maploader"
)

func main() {
	dir := flag.String("out", "assets", "output directory")
	flag.Parse()

	fmt.Println("Découvre-moi Placeholder Graphics Generator")
	fmt.Println("===========================================")
	fmt.Println()

	if err := generate(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
	fmt.Printf("Sheets and map layers were written to %s/\n", *dir)
}

func generate(dir string) error {
	cfg, err := config.LoadConfig(config.Path("config.json"))
	if err != nil {
		return err
	}

	var layout *maploader.Map
	if cfg.Map.Path != "" {
		layout, err = maploader.LoadMap(cfg.Map.Path)
	} else {
		layout, err = maploader.LoadMapFS(data.FS(), data.MapFile)
	}
	if err != nil {
		return err
	}

	sheets := placeholders.Sheets(cfg.Player.Frames, placeholders.CreatureFrames, cfg.Chest.Frames)
	return placeholders.GenerateAndSave(dir, layout, sheets,
		int(cfg.Map.TileWidth), int(cfg.Map.TileHeight),
		int(cfg.Map.ForegroundOffset.X), int(cfg.Map.ForegroundOffset.Y))
}
