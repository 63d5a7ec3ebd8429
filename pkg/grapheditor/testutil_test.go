package grapheditor

import (
	"image/color"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// recordRenderer captures draw calls for assertions.
type recordRenderer struct {
	quads   []recordedQuad
	beziers []recordedBezier
	texts   []string
	layers  []geometry.Rectangle
}

type recordedQuad struct {
	quad widget.Quad
	bg   widget.Background
}

type recordedBezier struct {
	bezier widget.Bezier
	width  float64
	color  color.Color
}

func (r *recordRenderer) FillQuad(q widget.Quad, bg widget.Background) {
	r.quads = append(r.quads, recordedQuad{quad: q, bg: bg})
}

func (r *recordRenderer) Text(s string, _ geometry.Point, _ color.Color) {
	r.texts = append(r.texts, s)
}

func (r *recordRenderer) StrokeBezier(b widget.Bezier, width float64, c color.Color) {
	r.beziers = append(r.beziers, recordedBezier{bezier: b, width: width, color: c})
}

func (r *recordRenderer) WithLayer(bounds geometry.Rectangle, f func()) {
	r.layers = append(r.layers, bounds)
	f()
}

// Messages used by the intent-handler closures under test.
type translateMsg struct{ dx, dy float64 }

type scaleMsg struct{ x, y, delta float64 }

type connectMsg struct{ link Link }

type disconnectMsg struct {
	endpoint LogicalEndpoint
	point    geometry.Point
}

type danglingMsg struct{ state *Dangling }

type nodeMoveMsg struct {
	index  int
	dx, dy float64
}

// wireIntents attaches recording handlers for all five intents.
func wireIntents(g *GraphContainer) *GraphContainer {
	return g.
		OnTranslate(func(dx, dy float64) tea.Msg { return translateMsg{dx, dy} }).
		OnScale(func(x, y, delta float64) tea.Msg { return scaleMsg{x, y, delta} }).
		OnConnect(func(l Link) tea.Msg { return connectMsg{l} }).
		OnDisconnect(func(le LogicalEndpoint, p geometry.Point) tea.Msg { return disconnectMsg{le, p} }).
		OnDangling(func(d *Dangling) tea.Msg { return danglingMsg{d} })
}

// layoutContainer runs a full layout pass the way a host frame would.
func layoutContainer(g *GraphContainer) (*widget.Tree, *widget.LayoutNode) {
	tree := widget.NewTree(g)
	limits := widget.NewLimits(geometry.Size{}, geometry.Size{Width: 800, Height: 600})
	return tree, g.Layout(tree, limits)
}

// simpleSocket builds a socket with the conventional side for its role.
func simpleSocket(role SocketRole, radius float64) Socket {
	side := SideLeft
	if role == RoleOut {
		side = SideRight
	}
	return Socket{
		Role:       role,
		BlobSide:   side,
		BlobRadius: radius,
		BlobColor:  color.White,
		Content:    widget.NewLabel(""),
	}
}

// testNode builds a fixed-size node at a world position.
func testNode(pos geometry.Point, w, h float64, sockets []Socket) *Node {
	return NewNode(widget.NewLabel("n")).
		Width(widget.Fixed(w)).
		Height(widget.Fixed(h)).
		Position(pos).
		Sockets(sockets)
}
