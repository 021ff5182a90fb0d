// Package inventory tracks which key items the player holds.
// Only registered items can be held; each is either possessed or not.
package inventory

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Default item keys
const (
	ItemKey    = "cle"
	ItemLetter = "parchemin"
	ItemChest  = "coffre"
)

// Item describes a key item
type Item struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Icon        string `yaml:"icon"`
	Shown       bool   `yaml:"shown"` // Listed in the HUD strip
}

// Slot is one registered item and whether it is held
type Slot struct {
	Item *Item
	Held bool
}

// Inventory holds the flags for every registered item. It is only touched
// from the game loop.
type Inventory struct {
	held  map[string]bool
	defs  map[string]*Item
	order []string

	// OnChange is called after the held set changes (for UI updates)
	OnChange func()
}

// New creates an inventory with the given items registered
func New(items ...*Item) *Inventory {
	inv := &Inventory{
		held: make(map[string]bool),
		defs: make(map[string]*Item),
	}
	for _, item := range items {
		inv.RegisterItem(item)
	}
	return inv
}

// NewDefault creates an inventory with the three items the game knows about
func NewDefault() *Inventory {
	return New(
		&Item{Name: ItemKey, DisplayName: "Clé mystérieuse", Icon: "cle", Shown: true},
		&Item{Name: ItemLetter, DisplayName: "Lettre de motivation", Icon: "parchemin", Shown: true},
		&Item{Name: ItemChest, DisplayName: "Coffre magique", Icon: "coffre"},
	)
}

// LoadItems reads item definitions from a file system
func LoadItems(fsys fs.FS, name string) ([]*Item, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read items %s: %w", name, err)
	}
	return ParseItems(data, name)
}

// ParseItems decodes an `items:` list. Names must be set and unique.
func ParseItems(data []byte, source string) ([]*Item, error) {
	var file struct {
		Items []*Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse items %s: %w", source, err)
	}

	seen := make(map[string]bool)
	for i, item := range file.Items {
		if item == nil || item.Name == "" {
			return nil, fmt.Errorf("item %d in %s has no name", i, source)
		}
		if seen[item.Name] {
			return nil, fmt.Errorf("duplicate item %q in %s", item.Name, source)
		}
		seen[item.Name] = true
	}
	return file.Items, nil
}

// RegisterItem adds an item definition. Registering a name twice replaces
// the definition and keeps the possession flag.
func (inv *Inventory) RegisterItem(item *Item) {
	if item == nil || item.Name == "" {
		return
	}
	if _, ok := inv.defs[item.Name]; !ok {
		inv.order = append(inv.order, item.Name)
		inv.held[item.Name] = false
	}
	inv.defs[item.Name] = item
}

// HasItem checks if the item is held
func (inv *Inventory) HasItem(name string) bool {
	return inv.held[name]
}

// AddItem marks a registered item as held. Unknown items are refused.
func (inv *Inventory) AddItem(name string) bool {
	if _, ok := inv.defs[name]; !ok {
		return false
	}
	if !inv.held[name] {
		inv.held[name] = true
		inv.notifyChange()
	}
	return true
}

// Clear drops every item
func (inv *Inventory) Clear() {
	for name := range inv.held {
		inv.held[name] = false
	}
	inv.notifyChange()
}

// Items returns every registered item in registration order
func (inv *Inventory) Items() []Slot {
	result := make([]Slot, 0, len(inv.order))
	for _, name := range inv.order {
		result = append(result, Slot{Item: inv.defs[name], Held: inv.held[name]})
	}
	return result
}

// IsEmpty returns true if nothing is held
func (inv *Inventory) IsEmpty() bool {
	for _, held := range inv.held {
		if held {
			return false
		}
	}
	return true
}

func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}
