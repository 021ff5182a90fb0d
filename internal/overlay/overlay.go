// Package overlay tracks the modal panel shown over the world: whether it is
// open, what it says, which choices it offers, and what each choice does.
// Only one overlay is open at a time. Movement is suppressed while it is.
package overlay

import "log"

// Variant is the kind of panel currently shown
type Variant int

const (
	// Closed shows nothing
	Closed Variant = iota
	// Simple is text only, A closes it
	Simple
	// Dialogue is text with choices bound to the A and B buttons
	Dialogue
)

func (v Variant) String() string {
	switch v {
	case Simple:
		return "simple"
	case Dialogue:
		return "dialogue"
	default:
		return "closed"
	}
}

// Action is what selecting a choice does
type Action string

const (
	ActionContinue     Action = "continue"
	ActionCurtain      Action = "curtain"
	ActionCurtainEnd   Action = "curtain-end"
	ActionOpenDocument Action = "open-document"
)

// Closes reports whether the overlay closes before the action's effect runs
func (a Action) Closes() bool {
	switch a {
	case ActionContinue, ActionCurtain, ActionCurtainEnd:
		return true
	}
	return false
}

// Button keys
const (
	ButtonA = "A"
	ButtonB = "B"
)

// Choice is one button offered by a dialogue
type Choice struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Action Action `yaml:"action"`
}

// Content is the text shown in the panel
type Content struct {
	Title    string
	Icon     string
	Message  string
	Document string // Target of open-document choices
}

// State is a snapshot of the overlay
type State struct {
	IsOpen  bool
	Variant Variant
	Content Content
	Choices []Choice
}

// Manager is the overlay state machine
type Manager struct {
	variant Variant
	content Content
	choices []Choice

	handlers map[Action]func(Content)

	// OnChange is called after every open and close
	OnChange func(State)
}

// NewManager creates a closed overlay
func NewManager() *Manager {
	return &Manager{handlers: make(map[Action]func(Content))}
}

// Handle registers the side effect of an action. Effects for closing actions
// run after the overlay has closed.
func (m *Manager) Handle(action Action, fn func(Content)) {
	m.handlers[action] = fn
}

// Open shows content. Nil or empty choices open the Simple variant.
// Opening while already open replaces what is shown.
func (m *Manager) Open(content Content, choices []Choice) {
	m.content = content
	if len(choices) == 0 {
		m.variant = Simple
		m.choices = nil
	} else {
		m.variant = Dialogue
		m.choices = append([]Choice(nil), choices...)
	}
	m.notifyChange()
}

// IsOpen reports whether any panel is shown
func (m *Manager) IsOpen() bool { return m.variant != Closed }

// Variant returns the current variant
func (m *Manager) Variant() Variant { return m.variant }

// Content returns what is shown. It is empty while closed.
func (m *Manager) Content() Content { return m.content }

// Choices returns the active choices, nil when closed or simple
func (m *Manager) Choices() []Choice { return m.choices }

// State returns a snapshot
func (m *Manager) State() State {
	return State{
		IsOpen:  m.IsOpen(),
		Variant: m.variant,
		Content: m.content,
		Choices: m.choices,
	}
}

// CloseAll forces the overlay closed and drops its choices
func (m *Manager) CloseAll() {
	if m.variant == Closed && m.choices == nil {
		return
	}
	m.variant = Closed
	m.content = Content{}
	m.choices = nil
	m.notifyChange()
}

// SelectChoice runs the action if it is one of the active choices.
// It is a no-op returning false while closed or for an action not on offer.
func (m *Manager) SelectChoice(action Action) bool {
	if !m.IsOpen() || !m.offers(action) {
		return false
	}

	content := m.content
	if action.Closes() {
		m.CloseAll()
	}

	if fn, ok := m.handlers[action]; ok && fn != nil {
		fn(content)
	} else if !action.Closes() {
		log.Printf("Warning: no handler for overlay action %q", action)
	}
	return true
}

// PressButton maps the A and B buttons onto the active choices.
// With no choices, A closes everything. B only counts when two or more
// choices are offered. It returns whether anything happened.
func (m *Manager) PressButton(key string) bool {
	if !m.IsOpen() {
		return false
	}

	if len(m.choices) == 0 {
		if key == ButtonA {
			m.CloseAll()
			return true
		}
		return false
	}

	if key == ButtonB && len(m.choices) < 2 {
		return false
	}

	for _, c := range m.choices {
		if c.Key == key {
			return m.SelectChoice(c.Action)
		}
	}
	return false
}

// ChoiceFor returns the choice bound to a button, if any
func (m *Manager) ChoiceFor(key string) (Choice, bool) {
	for _, c := range m.choices {
		if c.Key == key {
			return c, true
		}
	}
	return Choice{}, false
}

func (m *Manager) offers(action Action) bool {
	for _, c := range m.choices {
		if c.Action == action {
			return true
		}
	}
	return false
}

func (m *Manager) notifyChange() {
	if m.OnChange != nil {
		m.OnChange(m.State())
	}
}
