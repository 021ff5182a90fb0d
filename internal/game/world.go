package game

import (
	"context"
	"fmt"
	"io/fs"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/inventory"
	"chosenoffset.com/discoverme/internal/telemetry"
	"chosenoffset.com/discoverme/internal/world/maploader"
)

// World is the static content a session is built from
type World struct {
	Layout    *maploader.Map
	Spawns    *content.SpawnTable
	Dialogues *content.Dialogues
	Items     []*inventory.Item
}

// LoadWorld reads the collision map, spawn table, dialogues and key items. The map comes
// from cfg.Map.Path when set, otherwise from fsys.
func LoadWorld(ctx context.Context, tracer trace.Tracer, cfg *config.Config, fsys fs.FS) (*World, error) {
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	_, span := tracer.Start(ctx, "world.load")
	defer span.End()

	var (
		layout *maploader.Map
		err    error
	)
	if cfg.Map.Path != "" {
		log.Printf("Loading map: %s", cfg.Map.Path)
		layout, err = maploader.LoadMap(cfg.Map.Path)
	} else {
		layout, err = maploader.LoadMapFS(fsys, data.MapFile)
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to load map: %w", err)
	}

	dialogues, err := content.LoadDialogues(fsys, data.DialoguesFile)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	spawns, err := content.LoadSpawns(fsys, data.EntitiesFile)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := spawns.Validate(dialogues); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("spawn table does not match dialogues: %w", err)
	}

	items, err := inventory.LoadItems(fsys, data.ItemsFile)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := checkItems(spawns, items); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("map.columns", layout.Width()),
		attribute.Int("map.rows", layout.Height()),
		attribute.Int("map.solid", layout.SolidCount()),
		attribute.Int("spawns", len(spawns.Items)+len(spawns.NPCs)),
	)
	log.Printf("Loaded map %s (%dx%d, %d solid cells)", layout.Data.Name, layout.Width(), layout.Height(), layout.SolidCount())
	return &World{Layout: layout, Spawns: spawns, Dialogues: dialogues, Items: items}, nil
}

// checkItems makes sure every item a spawn grants or requires is registered
func checkItems(spawns *content.SpawnTable, items []*inventory.Item) error {
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.Name] = true
	}
	for _, def := range spawns.Items {
		for _, name := range []string{def.Grants, def.Requires} {
			if name != "" && !known[name] {
				return fmt.Errorf("spawn %s: unknown item %q", def.ID, name)
			}
		}
	}
	return nil
}
