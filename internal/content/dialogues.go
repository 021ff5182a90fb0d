// Package content loads the game's text and spawn tables from YAML.
package content

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/discoverme/internal/overlay"
)

// Dialogue is the text shown when interacting with an entity. Keyed variants
// override the message and choices for entities with several states.
type Dialogue struct {
	Title    string              `yaml:"title"`
	Icon     string              `yaml:"icon"`
	Message  string              `yaml:"message"`
	Document string              `yaml:"document"`
	Choices  []overlay.Choice    `yaml:"choices"`
	Variants map[string]Dialogue `yaml:"variants"`
}

// Page is a static text screen reachable from the menu
type Page struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

// EndingButton is one link on the ending screen
type EndingButton struct {
	Label  string `yaml:"label"`
	Action string `yaml:"action"`
}

// Ending is the curtain shown when the game is over
type Ending struct {
	Title   string         `yaml:"title"`
	Message string         `yaml:"message"`
	Buttons []EndingButton `yaml:"buttons"`
}

// Dialogues holds every piece of text in the game
type Dialogues struct {
	Dialogues map[string]Dialogue `yaml:"dialogues"`
	Pages     map[string]Page     `yaml:"pages"`
	Ending    Ending              `yaml:"ending"`
}

// LoadDialogues reads dialogue content from a file system
func LoadDialogues(fsys fs.FS, name string) (*Dialogues, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogues %s: %w", name, err)
	}
	return ParseDialogues(data, name)
}

// ParseDialogues decodes and validates dialogue YAML
func ParseDialogues(data []byte, source string) (*Dialogues, error) {
	var d Dialogues
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dialogues %s: %w", source, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dialogues in %s: %w", source, err)
	}
	return &d, nil
}

// Validate checks every choice is bound to a known button and action
func (d *Dialogues) Validate() error {
	if len(d.Dialogues) == 0 {
		return fmt.Errorf("no dialogues defined")
	}
	for key, dlg := range d.Dialogues {
		if err := validateChoices(key, dlg.Choices); err != nil {
			return err
		}
		for name, v := range dlg.Variants {
			if err := validateChoices(key+"."+name, v.Choices); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateChoices(key string, choices []overlay.Choice) error {
	if len(choices) > 2 {
		return fmt.Errorf("dialogue %s: at most 2 choices, got %d", key, len(choices))
	}
	seen := make(map[string]bool)
	for _, c := range choices {
		if c.Key != overlay.ButtonA && c.Key != overlay.ButtonB {
			return fmt.Errorf("dialogue %s: choice bound to unknown button %q", key, c.Key)
		}
		if seen[c.Key] {
			return fmt.Errorf("dialogue %s: button %s bound twice", key, c.Key)
		}
		seen[c.Key] = true
		switch c.Action {
		case overlay.ActionContinue, overlay.ActionCurtain, overlay.ActionCurtainEnd, overlay.ActionOpenDocument:
		default:
			return fmt.Errorf("dialogue %s: unknown action %q", key, c.Action)
		}
	}
	return nil
}

// Has reports whether a dialogue key exists
func (d *Dialogues) Has(key string) bool {
	_, ok := d.Dialogues[key]
	return ok
}

// Dialogue returns the overlay content for a key. A variant replaces the
// message, and its choices when it defines any.
func (d *Dialogues) Dialogue(key, variant string) (overlay.Content, []overlay.Choice, bool) {
	dlg, ok := d.Dialogues[key]
	if !ok {
		return overlay.Content{}, nil, false
	}

	message := dlg.Message
	choices := dlg.Choices
	document := dlg.Document
	if variant != "" {
		v, ok := dlg.Variants[variant]
		if !ok {
			return overlay.Content{}, nil, false
		}
		message = v.Message
		choices = v.Choices
		if v.Document != "" {
			document = v.Document
		}
	}

	return overlay.Content{
		Title:    dlg.Title,
		Icon:     dlg.Icon,
		Message:  message,
		Document: document,
	}, choices, true
}

// Page returns a menu page as overlay content
func (d *Dialogues) Page(name string) (overlay.Content, bool) {
	p, ok := d.Pages[name]
	if !ok {
		return overlay.Content{}, false
	}
	return overlay.Content{Title: p.Title, Message: p.Message}, true
}
