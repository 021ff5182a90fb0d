package content

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/discoverme/internal/entity"
)

// ProximityDef overrides the interaction range of one entity
type ProximityDef struct {
	Threshold float64 `yaml:"threshold"`
	Centered  bool    `yaml:"centered"`
}

// SpawnDef describes one entity in the spawn table
type SpawnDef struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Kind      string       `yaml:"kind"`
	X         float64      `yaml:"x"`
	Y         float64      `yaml:"y"`
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	Scale     float64      `yaml:"scale"`
	Sprite    string       `yaml:"sprite"`
	Dialogue  string       `yaml:"dialogue"`
	Grants    string       `yaml:"grants"`
	Requires  string       `yaml:"requires"`
	Proximity ProximityDef `yaml:"proximity"`

	// NPC animation
	Behaviour         string   `yaml:"behaviour"`
	AnimationSpeed    int      `yaml:"animation_speed"`
	Frames            int      `yaml:"frames"`
	StepsBetweenMoves int      `yaml:"steps_between_moves"`
	Step              float64  `yaml:"step"`
	Pattern           []string `yaml:"pattern"`
}

// SpawnTable lists the items and NPCs of the world in scan order
type SpawnTable struct {
	Items []SpawnDef `yaml:"items"`
	NPCs  []SpawnDef `yaml:"npcs"`
}

// Defaults fills in what the spawn table leaves out
type Defaults struct {
	Threshold       float64
	ChestThreshold  float64
	ChestFrames     int
	ChestFrameDelay int
}

// Population is the set of live entities built from a spawn table
type Population struct {
	Items       []*entity.Item
	Chests      []*entity.Chest
	NPCs        []*entity.NPC
	Interactive []entity.Interactive // Declared order: items then NPCs
}

// LoadSpawns reads a spawn table from a file system
func LoadSpawns(fsys fs.FS, name string) (*SpawnTable, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn table %s: %w", name, err)
	}
	return ParseSpawns(data, name)
}

// ParseSpawns decodes and validates spawn YAML
func ParseSpawns(data []byte, source string) (*SpawnTable, error) {
	var t SpawnTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse spawn table %s: %w", source, err)
	}
	if err := t.Validate(nil); err != nil {
		return nil, fmt.Errorf("invalid spawn table in %s: %w", source, err)
	}
	return &t, nil
}

// Validate checks ids, kinds and patterns. When dialogues is non-nil it also
// checks every referenced dialogue exists.
func (t *SpawnTable) Validate(dialogues *Dialogues) error {
	seen := make(map[string]bool)
	check := func(def SpawnDef) error {
		if def.ID == "" {
			return fmt.Errorf("spawn without id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate spawn id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Width < 0 || def.Height < 0 || def.Scale < 0 {
			return fmt.Errorf("spawn %s: negative size", def.ID)
		}
		if dialogues != nil && def.Dialogue != "" && !dialogues.Has(def.Dialogue) {
			return fmt.Errorf("spawn %s: unknown dialogue %q", def.ID, def.Dialogue)
		}
		return nil
	}

	for _, def := range t.Items {
		if err := check(def); err != nil {
			return err
		}
		switch entity.Kind(def.Kind) {
		case entity.KindItem, entity.KindChest:
		default:
			return fmt.Errorf("spawn %s: unknown item kind %q", def.ID, def.Kind)
		}
	}

	for _, def := range t.NPCs {
		if err := check(def); err != nil {
			return err
		}
		switch entity.Behaviour(def.Behaviour) {
		case "", entity.BehaviourStatic, entity.BehaviourBreathing:
		case entity.BehaviourPatrol:
			if len(def.Pattern) == 0 {
				return fmt.Errorf("spawn %s: patrol without pattern", def.ID)
			}
			if _, err := entity.ParseDirections(def.Pattern); err != nil {
				return fmt.Errorf("spawn %s: %w", def.ID, err)
			}
		default:
			return fmt.Errorf("spawn %s: unknown behaviour %q", def.ID, def.Behaviour)
		}
	}
	return nil
}

// Build creates fresh entities from the table. Every call returns new
// instances, so a new session starts from the spawn positions.
func (t *SpawnTable) Build(def Defaults) (*Population, error) {
	pop := &Population{}

	for _, d := range t.Items {
		switch entity.Kind(d.Kind) {
		case entity.KindChest:
			spawn := d.spawn(entity.KindChest, def.ChestThreshold)
			chest := entity.NewChest(spawn, d.Requires, d.Grants, def.ChestFrames, def.ChestFrameDelay)
			pop.Chests = append(pop.Chests, chest)
			pop.Interactive = append(pop.Interactive, chest)
		case entity.KindItem:
			item := entity.NewItem(d.spawn(entity.KindItem, def.Threshold), d.Grants)
			pop.Items = append(pop.Items, item)
			pop.Interactive = append(pop.Interactive, item)
		default:
			return nil, fmt.Errorf("spawn %s: unknown item kind %q", d.ID, d.Kind)
		}
	}

	for _, d := range t.NPCs {
		pattern, err := entity.ParseDirections(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("spawn %s: %w", d.ID, err)
		}
		npc := entity.NewNPC(d.spawn(entity.KindNPC, def.Threshold), entity.NPCOptions{
			Behaviour:        entity.Behaviour(d.Behaviour),
			AnimationSpeed:   d.AnimationSpeed,
			Frames:           d.Frames,
			Pattern:          pattern,
			StepsBetweenMove: d.StepsBetweenMoves,
			Step:             d.Step,
		})
		pop.NPCs = append(pop.NPCs, npc)
		pop.Interactive = append(pop.Interactive, npc)
	}

	return pop, nil
}

func (d SpawnDef) spawn(kind entity.Kind, threshold float64) entity.Spawn {
	prox := entity.Proximity{Threshold: d.Proximity.Threshold, Centered: d.Proximity.Centered}
	if prox.Threshold <= 0 {
		prox.Threshold = threshold
	}
	return entity.Spawn{
		ID:        d.ID,
		Name:      d.Name,
		Kind:      kind,
		X:         d.X,
		Y:         d.Y,
		Width:     d.Width,
		Height:    d.Height,
		Scale:     d.Scale,
		Sprite:    d.Sprite,
		Dialogue:  d.Dialogue,
		Proximity: prox,
	}
}

// Blockers returns every entity that can stop the player, in declared order
func (p *Population) Blockers() []entity.Blocker {
	out := make([]entity.Blocker, 0, len(p.Interactive))
	for _, e := range p.Interactive {
		if b, ok := e.(entity.Blocker); ok {
			out = append(out, b)
		}
	}
	return out
}

// Movables returns every entity the camera must shift
func (p *Population) Movables() []entity.Movable {
	out := make([]entity.Movable, 0, len(p.Interactive))
	for _, e := range p.Interactive {
		out = append(out, e)
	}
	return out
}

// Animators returns every entity with per-tick animation
func (p *Population) Animators() []entity.Animator {
	var out []entity.Animator
	for _, e := range p.Interactive {
		if a, ok := e.(entity.Animator); ok {
			out = append(out, a)
		}
	}
	return out
}

// Find returns the entity with the given id
func (p *Population) Find(id string) entity.Interactive {
	for _, e := range p.Interactive {
		if e.ID() == id {
			return e
		}
	}
	return nil
}
