package widget

import (
	"image/color"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

// Border describes the outline of a quad. Radius is a uniform corner
// radius applied to all four corners.
type Border struct {
	Color  color.Color
	Width  float64
	Radius float64
}

// Quad is a filled rectangle with an optional border.
type Quad struct {
	Bounds geometry.Rectangle
	Border Border
}

// Background fills a quad. Solid colors only.
type Background struct {
	Color color.Color
}

// Bg wraps a color as a Background.
func Bg(c color.Color) Background { return Background{Color: c} }

// Bezier is a cubic Bézier curve.
type Bezier struct {
	From     geometry.Point
	Control1 geometry.Point
	Control2 geometry.Point
	To       geometry.Point
}

// Renderer is the set of drawing primitives a backend must provide.
// Any toolkit offering filled quads, text, layered (clipped) drawing
// and curve strokes can back the graph editor.
type Renderer interface {
	// FillQuad paints a filled, optionally bordered rectangle.
	FillQuad(q Quad, bg Background)
	// Text draws a single line of text anchored at its top-left corner.
	Text(s string, pos geometry.Point, c color.Color)
	// StrokeBezier strokes a cubic curve with the given width.
	StrokeBezier(b Bezier, width float64, c color.Color)
	// WithLayer runs f with drawing clipped to bounds.
	WithLayer(bounds geometry.Rectangle, f func())
}
