package movement

import "chosenoffset.com/discoverme/internal/entity"

// Layer is a full-map backdrop image (ground or foreground) that scrolls with the world
type Layer struct {
	Name string
	X, Y float64
}

// Translate shifts the layer by (dx, dy)
func (l *Layer) Translate(dx, dy float64) {
	l.X += dx
	l.Y += dy
}

// Camera owns every movable in the world. The player stays centred on screen,
// so panning the camera means shifting everything else the opposite way.
// The cumulative pan is recorded so the world can be put back.
type Camera struct {
	movables []entity.Movable
	offsetX  float64
	offsetY  float64
}

// NewCamera creates a camera over the given movables
func NewCamera(movables ...entity.Movable) *Camera {
	return &Camera{movables: movables}
}

// Add registers more movables. They are assumed to be at zero offset.
func (c *Camera) Add(movables ...entity.Movable) {
	c.movables = append(c.movables, movables...)
}

// Pan translates every movable by (dx, dy)
func (c *Camera) Pan(dx, dy float64) {
	for _, m := range c.movables {
		m.Translate(dx, dy)
	}
	c.offsetX += dx
	c.offsetY += dy
}

// Offset returns the cumulative pan since creation or the last Reset
func (c *Camera) Offset() (float64, float64) {
	return c.offsetX, c.offsetY
}

// Reset pans back by the cumulative offset
func (c *Camera) Reset() {
	if c.offsetX == 0 && c.offsetY == 0 {
		return
	}
	c.Pan(-c.offsetX, -c.offsetY)
	c.offsetX, c.offsetY = 0, 0
}

// Len returns the number of movables
func (c *Camera) Len() int { return len(c.movables) }
