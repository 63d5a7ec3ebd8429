package teacanvas

import (
	"image/color"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// Canvas rasterizes the renderer contract into a cell buffer. It tracks
// the background color laid under each cell so later text and strokes
// keep it instead of punching through to the terminal default.
type Canvas struct {
	buf    *Buffer
	styles *Styles
	bg     [][]color.Color
	clips  []geometry.Rectangle
}

var _ widget.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas of the given cell size filled with the
// background color.
func NewCanvas(w, h int, background color.Color) *Canvas {
	styles := NewStyles()
	c := &Canvas{
		buf:    NewBuffer(w, h, styles.Key(nil, background)),
		styles: styles,
		bg:     make([][]color.Color, h),
		clips:  []geometry.Rectangle{geometry.Rect(0, 0, float64(w), float64(h))},
	}
	for y := range c.bg {
		row := make([]color.Color, w)
		for x := range row {
			row[x] = background
		}
		c.bg[y] = row
	}
	return c
}

// View renders the canvas into a styled string for a Bubble Tea view.
func (c *Canvas) View() string {
	return c.buf.Render(c.styles)
}

// Buffer exposes the underlying cell grid, mainly for composition and
// tests.
func (c *Canvas) Buffer() *Buffer { return c.buf }

func (c *Canvas) clip() geometry.Rectangle {
	return c.clips[len(c.clips)-1]
}

func (c *Canvas) visible(x, y int) bool {
	return c.buf.InBounds(x, y) && c.clip().Contains(geometry.Pt(float64(x), float64(y)))
}

func (c *Canvas) set(x, y int, ch rune, fg color.Color) {
	if !c.visible(x, y) {
		return
	}
	c.buf.Set(x, y, ch, c.styles.Key(fg, c.bg[y][x]))
}

func (c *Canvas) paint(x, y int, fill color.Color) {
	if !c.visible(x, y) {
		return
	}
	c.bg[y][x] = fill
	c.buf.Set(x, y, ' ', c.styles.Key(nil, fill))
}

// FillQuad fills a rectangle with the background color and, when a
// border is configured, traces its edges with box-drawing characters. A
// positive corner radius selects the rounded corner runes; cells cannot
// approximate it any closer.
func (c *Canvas) FillQuad(q widget.Quad, bg widget.Background) {
	if q.Bounds.Width <= 0 || q.Bounds.Height <= 0 {
		return
	}
	x0 := cell(q.Bounds.X)
	y0 := cell(q.Bounds.Y)
	x1 := cell(q.Bounds.X + q.Bounds.Width - 1)
	y1 := cell(q.Bounds.Y + q.Bounds.Height - 1)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.paint(x, y, bg.Color)
		}
	}

	if q.Border.Width <= 0 || q.Border.Color == nil || x1 == x0 || y1 == y0 {
		return
	}

	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if q.Border.Radius > 0 {
		tl, tr, bl, br = '╭', '╮', '╰', '╯'
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', q.Border.Color)
		c.set(x, y1, '─', q.Border.Color)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', q.Border.Color)
		c.set(x1, y, '│', q.Border.Color)
	}
	c.set(x0, y0, tl, q.Border.Color)
	c.set(x1, y0, tr, q.Border.Color)
	c.set(x0, y1, bl, q.Border.Color)
	c.set(x1, y1, br, q.Border.Color)
}

// Text writes a string starting at the given position, clipped to the
// current layer.
func (c *Canvas) Text(s string, p geometry.Point, col color.Color) {
	x := cell(p.X)
	y := cell(p.Y)
	for i, ch := range s {
		c.set(x+i, y, ch, col)
	}
}

// StrokeBezier flattens the curve into a polyline and traces each
// segment cell-by-cell with directional line characters. Stroke width
// is ignored; a cell is the thinnest and thickest line a terminal has.
func (c *Canvas) StrokeBezier(b widget.Bezier, _ float64, col color.Color) {
	pts := flattenBezier(b)
	prevX, prevY := cell(pts[0].X), cell(pts[0].Y)

	for _, p := range pts[1:] {
		x, y := cell(p.X), cell(p.Y)
		if x == prevX && y == prevY {
			continue
		}
		ch := lineChar(x-prevX, y-prevY)
		for _, cellPt := range bresenham(prevX, prevY, x, y) {
			c.set(cellPt.X, cellPt.Y, ch, col)
		}
		prevX, prevY = x, y
	}
}

// WithLayer clips all drawing inside f to the intersection of bounds
// with the current layer.
func (c *Canvas) WithLayer(bounds geometry.Rectangle, f func()) {
	next, ok := bounds.Intersection(c.clip())
	if !ok {
		next = geometry.Rectangle{}
	}
	c.clips = append(c.clips, next)
	f()
	c.clips = c.clips[:len(c.clips)-1]
}
