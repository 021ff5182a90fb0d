// Package rendertest provides in-memory render fakes for tests.
package rendertest

import (
	"image"
	"image/color"
	"unicode/utf8"

	"chosenoffset.com/discoverme/internal/render"
)

// Install points render.NewGeoM at the fake matrix
func Install() {
	render.NewGeoM = func() render.GeoM { return &GeoM{SX: 1, SY: 1} }
}

// GeoM records translation and scale
type GeoM struct {
	TX, TY float64
	SX, SY float64
	Angle  float64
}

func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Rotate(angle float64) { g.Angle += angle }
func (g *GeoM) Reset()               { *g = GeoM{SX: 1, SY: 1} }

// Draw is one recorded DrawImage call
type Draw struct {
	Src  *Image
	GeoM GeoM
}

// Image is a fake surface that records what is drawn on it
type Image struct {
	Rect     image.Rectangle
	Parent   *Image
	Draws    []Draw
	Fills    []color.Color
	Disposed bool
}

// NewImage creates a fake image of the given size
func NewImage(width, height int) *Image {
	return &Image{Rect: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }
func (i *Image) Size() (int, int)        { return i.Rect.Dx(), i.Rect.Dy() }
func (i *Image) Fill(clr color.Color)    { i.Fills = append(i.Fills, clr) }
func (i *Image) Clear()                  { i.Fills = append(i.Fills, color.Transparent) }
func (i *Image) Dispose()                { i.Disposed = true }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect), Parent: i}
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	d := Draw{Src: src.(*Image), GeoM: GeoM{SX: 1, SY: 1}}
	if opts != nil && opts.GeoM != nil {
		d.GeoM = *opts.GeoM.(*GeoM)
	}
	i.Draws = append(i.Draws, d)
}

// Renderer records text and shape calls
type Renderer struct {
	Texts   []string
	Rects   int
	Circles int
}

func (r *Renderer) NewImage(width, height int) render.Image { return NewImage(width, height) }

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(utf8.RuneCountInString(text)*6) * scale), int(16 * scale)
}

// Input is a scriptable InputManager. Just* fields should be cleared by the
// test between ticks.
type Input struct {
	Keys        map[render.Key]bool
	JustKeys    map[render.Key]bool
	Cursor      image.Point
	Mouse       bool
	MouseJust   bool
	Touches     []image.Point
	JustTouches []image.Point
}

// NewInput creates an Input with nothing pressed
func NewInput() *Input {
	return &Input{Keys: make(map[render.Key]bool), JustKeys: make(map[render.Key]bool)}
}

// Press holds a key and marks it just pressed
func (in *Input) Press(k render.Key) {
	in.Keys[k] = true
	in.JustKeys[k] = true
}

// Release lets go of a key
func (in *Input) Release(k render.Key) {
	delete(in.Keys, k)
	delete(in.JustKeys, k)
}

// Click presses the left mouse button at p for one tick
func (in *Input) Click(p image.Point) {
	in.Cursor = p
	in.Mouse = true
	in.MouseJust = true
}

// EndTick clears the edge-triggered state
func (in *Input) EndTick() {
	in.JustKeys = make(map[render.Key]bool)
	in.MouseJust = false
	in.JustTouches = nil
}

func (in *Input) IsKeyPressed(k render.Key) bool     { return in.Keys[k] }
func (in *Input) IsKeyJustPressed(k render.Key) bool { return in.JustKeys[k] }
func (in *Input) GetCursorPosition() (int, int)      { return in.Cursor.X, in.Cursor.Y }

func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.Mouse
}

func (in *Input) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.MouseJust
}

func (in *Input) TouchPositions() []image.Point { return in.Touches }
func (in *Input) JustTouched() []image.Point    { return in.JustTouches }
