// Package interaction finds what the player can interact with and carries
// out the interaction: talking to NPCs, picking up items, and opening the chest.
package interaction

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/telemetry"
)

// Chest dialogue variants
const (
	VariantLocked = "locked"
	VariantOpened = "opened"
)

// Outcome describes what an interaction did
type Outcome string

const (
	OutcomeNone        Outcome = "none"
	OutcomeBusy        Outcome = "busy" // An overlay was already open
	OutcomeDialogue    Outcome = "dialogue"
	OutcomeCollected   Outcome = "collected"
	OutcomeLocked      Outcome = "locked"
	OutcomeOpened      Outcome = "opened"
	OutcomeAlreadyOpen Outcome = "already-open"
)

// DefaultChoices are offered by dialogues that define none
var DefaultChoices = []overlay.Choice{
	{Key: overlay.ButtonA, Label: "Continuer", Action: overlay.ActionContinue},
}

// DialogueSource looks up dialogue content. Variant is empty for plain dialogues.
type DialogueSource interface {
	Dialogue(key, variant string) (overlay.Content, []overlay.Choice, bool)
}

// Inventory is the part of the inventory interactions need
type Inventory interface {
	HasItem(name string) bool
	AddItem(name string) bool
}

// Sounds is the part of the audio player interactions need
type Sounds interface {
	PlayItemSound()
	PlayEndMusic()
}

type pending struct {
	framesLeft int
	entityID   string
	content    overlay.Content
	choices    []overlay.Choice
}

// Handler dispatches interactions by entity kind
type Handler struct {
	overlay   *overlay.Manager
	inventory Inventory
	dialogues DialogueSource
	sounds    Sounds
	tracer    trace.Tracer
	ctx       context.Context

	delay   int
	pending []pending
}

// Options holds the collaborators of a Handler
type Options struct {
	Overlay     *overlay.Manager
	Inventory   Inventory
	Dialogues   DialogueSource
	Sounds      Sounds
	Tracer      trace.Tracer    // Nil means no tracing
	Context     context.Context // Parent of interaction spans
	DelayFrames int             // Frames before an item dialogue opens
}

// NewHandler creates an interaction handler
func NewHandler(opts Options) *Handler {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.DelayFrames < 0 {
		opts.DelayFrames = 0
	}
	return &Handler{
		overlay:   opts.Overlay,
		inventory: opts.Inventory,
		dialogues: opts.Dialogues,
		sounds:    opts.Sounds,
		tracer:    tracer,
		ctx:       ctx,
		delay:     opts.DelayFrames,
	}
}

// Interact performs the interaction with target
func (h *Handler) Interact(target entity.Interactive) Outcome {
	if target == nil {
		return OutcomeNone
	}
	if h.overlay.IsOpen() {
		return OutcomeBusy
	}

	_, span := h.tracer.Start(h.ctx, "interaction."+string(target.Kind()))
	defer span.End()

	var outcome Outcome
	switch t := target.(type) {
	case *entity.Chest:
		outcome = h.openChest(t)
	case entity.Collectible:
		outcome = h.collect(t)
	default:
		outcome = h.talk(target)
	}

	span.SetAttributes(
		telemetry.AttrEntityID.String(target.ID()),
		telemetry.AttrKind.String(string(target.Kind())),
		telemetry.AttrOutcome.String(string(outcome)),
	)
	return outcome
}

func (h *Handler) talk(target entity.Interactive) Outcome {
	content, choices := h.lookup(target, "")
	h.overlay.Open(content, choices)
	return OutcomeDialogue
}

func (h *Handler) collect(item entity.Collectible) Outcome {
	if !item.Collect() {
		return OutcomeNone
	}
	if grant := item.Grants(); grant != "" && !h.inventory.AddItem(grant) {
		log.Printf("Warning: item %s grants unknown inventory key %q", item.ID(), grant)
	}
	h.sounds.PlayItemSound()

	content, choices := h.lookup(item, "")
	h.schedule(item.ID(), content, choices)
	return OutcomeCollected
}

// openChest branches on the inventory. The overlay variant shown is decided
// from the same Open call that flips the chest, so the two cannot disagree.
func (h *Handler) openChest(chest *entity.Chest) Outcome {
	if chest.Opened() {
		return OutcomeAlreadyOpen
	}

	if req := chest.Requires(); req != "" && !h.inventory.HasItem(req) {
		content, choices := h.lookup(chest, VariantLocked)
		h.overlay.Open(content, choices)
		return OutcomeLocked
	}

	if !chest.Open() {
		return OutcomeAlreadyOpen
	}
	if grant := chest.Grants(); grant != "" {
		h.inventory.AddItem(grant)
	}
	h.sounds.PlayEndMusic()
	h.sounds.PlayItemSound()

	content, choices := h.lookup(chest, VariantOpened)
	h.schedule(chest.ID(), content, choices)
	return OutcomeOpened
}

func (h *Handler) lookup(target entity.Interactive, variant string) (overlay.Content, []overlay.Choice) {
	var (
		content overlay.Content
		choices []overlay.Choice
		ok      bool
	)
	if h.dialogues != nil {
		content, choices, ok = h.dialogues.Dialogue(target.DialogueKey(), variant)
	}
	if !ok {
		log.Printf("Warning: no dialogue %q (variant %q) for %s", target.DialogueKey(), variant, target.ID())
		content = overlay.Content{Title: target.DisplayName()}
	}
	if len(choices) == 0 {
		choices = DefaultChoices
	}
	return content, choices
}

func (h *Handler) schedule(id string, content overlay.Content, choices []overlay.Choice) {
	if h.delay == 0 && !h.overlay.IsOpen() {
		h.overlay.Open(content, choices)
		return
	}
	h.pending = append(h.pending, pending{
		framesLeft: h.delay,
		entityID:   id,
		content:    content,
		choices:    choices,
	})
}

// Update counts down scheduled dialogues. A due dialogue opens only once no
// other overlay is showing; at most one opens per frame.
func (h *Handler) Update() {
	if len(h.pending) == 0 {
		return
	}
	for i := range h.pending {
		if h.pending[i].framesLeft > 0 {
			h.pending[i].framesLeft--
		}
	}
	if h.overlay.IsOpen() {
		return
	}
	for i, p := range h.pending {
		if p.framesLeft == 0 {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			h.overlay.Open(p.content, p.choices)
			return
		}
	}
}

// Pending returns the number of dialogues waiting to open
func (h *Handler) Pending() int { return len(h.pending) }

// Reset drops every scheduled dialogue
func (h *Handler) Reset() { h.pending = nil }
