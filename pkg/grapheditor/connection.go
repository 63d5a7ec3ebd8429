package grapheditor

import (
	"image/color"
	"math"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// Connection draws a curve between two endpoints. It occupies no layout
// space; the container paints it in an overlay pass where socket
// geometry and the viewport translation are available.
type Connection struct {
	widget.Base

	from  Endpoint
	to    Endpoint
	color color.Color
	width float64
}

// NewConnection creates a connection between two endpoints.
func NewConnection(from, to Endpoint) *Connection {
	return &Connection{from: from, to: to, color: DefaultLinkColor, width: 1}
}

// Color overrides the stroke color.
func (c *Connection) Color(col color.Color) *Connection {
	c.color = col
	return c
}

// StrokeWidth overrides the stroke width.
func (c *Connection) StrokeWidth(w float64) *Connection {
	c.width = w
	return c
}

func (c *Connection) Size() (widget.Length, widget.Length) {
	return widget.Shrink(), widget.Shrink()
}

func (c *Connection) Layout(_ *widget.Tree, _ widget.Limits) *widget.LayoutNode {
	return widget.NewLayoutNode(geometry.Size{})
}

// GraphLayout contributes a zero-size placeholder and keeps the socket
// buffer's indices aligned with the container's content vector.
func (c *Connection) GraphLayout(_ *widget.Tree, _ widget.Limits, _ float64, state *SocketLayoutState) *widget.LayoutNode {
	state.Inputs = append(state.Inputs, nil)
	state.Outputs = append(state.Outputs, nil)
	return widget.NewLayoutNode(geometry.Size{})
}

// Draw without socket geometry cannot resolve logical endpoints; the
// container always paints connections through GraphDraw.
func (c *Connection) Draw(*widget.Tree, widget.Renderer, *widget.LayoutNode, geometry.Point, geometry.Rectangle) {
}

// GraphDraw resolves both endpoints to screen points and strokes a
// cubic Bézier whose control tangents are horizontal, half the
// horizontal distance long. Unresolvable endpoints skip the connection
// for this frame.
func (c *Connection) GraphDraw(_ *widget.Tree, r widget.Renderer, _ *widget.LayoutNode,
	_ geometry.Point, _ geometry.Rectangle,
	state *SocketLayoutState, translation geometry.Vector) {

	from, ok := resolveEndpoint(c.from, state, translation)
	if !ok {
		return
	}
	to, ok := resolveEndpoint(c.to, state, translation)
	if !ok {
		return
	}

	tangent := math.Abs(to.X-from.X) / 2
	r.StrokeBezier(widget.Bezier{
		From:     from,
		Control1: geometry.Pt(from.X+tangent, from.Y),
		Control2: geometry.Pt(to.X-tangent, to.Y),
		To:       to,
	}, c.width, c.color)
}

// resolveEndpoint maps an endpoint to screen coordinates. Socket
// endpoints read the blob center from the buffer; absolute endpoints
// are already in pre-translation coordinates. Both then gain the
// viewport translation.
func resolveEndpoint(e Endpoint, state *SocketLayoutState, translation geometry.Vector) (geometry.Point, bool) {
	switch ep := e.(type) {
	case SocketEndpoint:
		center, ok := state.blobCenter(ep.Socket)
		if !ok {
			return geometry.Point{}, false
		}
		return center.Add(translation), true
	case AbsoluteEndpoint:
		return ep.Point.Add(translation), true
	default:
		return geometry.Point{}, false
	}
}
