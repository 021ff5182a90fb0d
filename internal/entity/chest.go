package entity

// ChestState is the lifecycle of the chest
type ChestState int

const (
	ChestClosed ChestState = iota
	ChestOpening
	ChestOpen
)

func (s ChestState) String() string {
	switch s {
	case ChestOpening:
		return "opening"
	case ChestOpen:
		return "open"
	default:
		return "closed"
	}
}

// Chest is locked until the player brings the required item.
// Opening plays a short animation, after which the chest is hidden from view
// and stops blocking. It stays scannable after opening.
type Chest struct {
	Base
	requires string
	grants   string

	state      ChestState
	frame      int
	counter    int
	frames     int
	frameDelay int
	hidden     bool
}

// NewChest creates a closed chest
func NewChest(s Spawn, requires, grants string, frames, frameDelay int) *Chest {
	s.Kind = KindChest
	if frames < 1 {
		frames = 1
	}
	if frameDelay < 1 {
		frameDelay = 1
	}
	return &Chest{
		Base:       NewBase(s),
		requires:   requires,
		grants:     grants,
		frames:     frames,
		frameDelay: frameDelay,
	}
}

// Open starts the opening animation. It returns false if the chest was
// already opened.
func (c *Chest) Open() bool {
	if c.state != ChestClosed {
		return false
	}
	c.state = ChestOpening
	c.frame = 0
	c.counter = 0
	return true
}

// Tick advances the opening animation
func (c *Chest) Tick() {
	if c.state != ChestOpening {
		return
	}
	c.counter++
	if c.counter < c.frameDelay {
		return
	}
	c.counter = 0
	c.frame++
	if c.frame >= c.frames {
		c.frame = c.frames - 1
		c.state = ChestOpen
		c.hidden = true
	}
}

func (c *Chest) State() ChestState { return c.state }
func (c *Chest) Opened() bool      { return c.state != ChestClosed }
func (c *Chest) Hidden() bool      { return c.hidden }
func (c *Chest) Requires() string  { return c.requires }
func (c *Chest) Grants() string    { return c.grants }
func (c *Chest) Frame() int        { return c.frame }
func (c *Chest) Scannable() bool   { return true }
func (c *Chest) Blocking() bool    { return !c.hidden }
func (c *Chest) Visible() bool     { return !c.hidden }
