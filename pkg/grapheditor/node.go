package grapheditor

import (
	"image/color"
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

const nodeTag widget.Tag = "grapheditor.node"

// Node is a draggable rectangle carrying a content element and a list
// of sockets. Position and size are in world units; the scalable layout
// pass multiplies them by the viewport scale and publishes each
// socket's blob rectangle into the container's shared buffer.
type Node struct {
	content  widget.Widget
	sockets  []Socket
	position geometry.Point
	width    widget.Length
	height   widget.Length
	padding  float64
	centerX  bool
	centerY  bool

	background   color.Color
	borderColor  color.Color
	borderWidth  float64
	borderRadius float64

	onTranslate func(dx, dy float64) tea.Msg

	// Layout artifacts consumed by Draw within the same frame. Widgets
	// are rebuilt every view pass, so these never leak across frames.
	blobs        []blobLayout
	scaledOrigin geometry.Point
	layoutScale  float64
}

type blobLayout struct {
	rect         geometry.Rectangle // pre-translation
	fill         color.Color
	border       color.Color
	borderRadius float64
}

type nodeState struct {
	dragging bool
	last     geometry.Point
}

// NewNode creates a node around a content element.
func NewNode(content widget.Widget) *Node {
	return &Node{
		content:      content,
		width:        widget.Shrink(),
		height:       widget.Shrink(),
		background:   defaultNodeBackground,
		borderColor:  defaultNodeBorderColor,
		borderWidth:  1,
		borderRadius: 4,
		layoutScale:  1,
	}
}

// Padding sets a uniform interior padding in world units.
func (n *Node) Padding(p float64) *Node {
	n.padding = p
	return n
}

// Sockets sets the node's pins. Nil socket content is replaced with an
// empty label so row layout stays uniform.
func (n *Node) Sockets(sockets []Socket) *Node {
	for i := range sockets {
		if sockets[i].Content == nil {
			sockets[i].Content = widget.NewLabel("")
		}
	}
	n.sockets = sockets
	return n
}

// CenterX centers the content horizontally in the padded interior.
func (n *Node) CenterX() *Node {
	n.centerX = true
	return n
}

// CenterY centers the content vertically in the padded interior.
func (n *Node) CenterY() *Node {
	n.centerY = true
	return n
}

// Width sets the node's width strategy (world units for Fixed).
func (n *Node) Width(l widget.Length) *Node {
	n.width = l
	return n
}

// Height sets the node's height strategy (world units for Fixed).
func (n *Node) Height(l widget.Length) *Node {
	n.height = l
	return n
}

// Position places the node in world coordinates.
func (n *Node) Position(p geometry.Point) *Node {
	n.position = p
	return n
}

// Background overrides the node's fill color.
func (n *Node) Background(c color.Color) *Node {
	n.background = c
	return n
}

// Border overrides the node's outline.
func (n *Node) Border(c color.Color, width, radius float64) *Node {
	n.borderColor = c
	n.borderWidth = width
	n.borderRadius = radius
	return n
}

// OnTranslate sets the drag intent. The deltas are screen units; the
// host divides by the current scale before updating the world position.
func (n *Node) OnTranslate(f func(dx, dy float64) tea.Msg) *Node {
	n.onTranslate = f
	return n
}

func (n *Node) childWidgets() []widget.Widget {
	ws := make([]widget.Widget, 0, 1+len(n.sockets))
	ws = append(ws, n.content)
	for _, s := range n.sockets {
		ws = append(ws, s.Content)
	}
	return ws
}

func (n *Node) Children() []*widget.Tree {
	ws := n.childWidgets()
	trees := make([]*widget.Tree, len(ws))
	for i, w := range ws {
		trees[i] = widget.NewTree(w)
	}
	return trees
}

func (n *Node) Diff(t *widget.Tree) {
	t.DiffChildren(n.childWidgets())
}

func (n *Node) Size() (widget.Length, widget.Length) {
	return n.width, n.height
}

func (n *Node) Tag() widget.Tag { return nodeTag }

func (n *Node) State() any { return &nodeState{} }

// Layout satisfies the plain widget protocol by laying out at scale 1
// into a throwaway buffer. The container always goes through
// GraphLayout instead.
func (n *Node) Layout(t *widget.Tree, limits widget.Limits) *widget.LayoutNode {
	var state SocketLayoutState
	return n.GraphLayout(t, limits, 1, &state)
}

// GraphLayout implements the scalable layout protocol of spec'd nodes:
// outer rectangle at position*scale, content in the padded interior,
// socket rows stacked per side with blob squares centered on the node
// edge, all in container-local pre-translation coordinates.
func (n *Node) GraphLayout(t *widget.Tree, limits widget.Limits, scale float64, state *SocketLayoutState) *widget.LayoutNode {
	resolved := limits.Loose().Resolve(n.width, n.height, geometry.Size{})
	w := resolved.Width * scale
	h := resolved.Height * scale
	origin := n.position.Mul(scale)
	pad := n.padding * scale

	interior := geometry.Rect(
		origin.X+pad,
		origin.Y+pad,
		math.Max(w-2*pad, 0),
		math.Max(h-2*pad, 0),
	)

	children := make([]*widget.LayoutNode, 0, 1+len(n.sockets))

	contentLimits := widget.NewLimits(geometry.Size{}, interior.Size())
	contentNode := n.content.Layout(t.Children[0], contentLimits)
	cpos := interior.Position()
	if n.centerX {
		cpos.X = interior.X + (interior.Width-contentNode.Bounds().Width)/2
	}
	if n.centerY {
		cpos.Y = interior.Y + (interior.Height-contentNode.Bounds().Height)/2
	}
	children = append(children, contentNode.Move(cpos))

	// Socket rows stack from the node's top edge, one column per side.
	var sideCount [2]int
	for _, s := range n.sockets {
		sideCount[s.BlobSide]++
	}
	sideOffset := [2]float64{origin.Y, origin.Y}

	var inputs, outputs []geometry.Rectangle
	n.blobs = n.blobs[:0]

	for i, s := range n.sockets {
		maxHeight := s.MaxHeight
		if maxHeight <= 0 {
			maxHeight = math.Inf(1)
		}
		rowHeight := clampRow(h/float64(sideCount[s.BlobSide]), s.MinHeight*scale, maxHeight*scale)
		rowTop := sideOffset[s.BlobSide]
		sideOffset[s.BlobSide] += rowHeight

		radius := s.BlobRadius * scale
		blobX := origin.X
		if s.BlobSide == SideRight {
			blobX = origin.X + w
		}
		blobRect := geometry.Rect(blobX-radius, rowTop+rowHeight/2-radius, 2*radius, 2*radius)

		if s.Role == RoleIn {
			inputs = append(inputs, blobRect)
		} else {
			outputs = append(outputs, blobRect)
		}
		n.blobs = append(n.blobs, blobLayout{
			rect:         blobRect,
			fill:         s.BlobColor,
			border:       s.BlobBorderColor,
			borderRadius: s.BlobBorderRadius * scale,
		})

		rowLimits := widget.NewLimits(geometry.Size{}, geometry.Size{Width: interior.Width, Height: rowHeight})
		rowNode := s.Content.Layout(t.Children[1+i], rowLimits)
		rowX := interior.X
		if s.ContentAlignment == AlignRight {
			rowX = interior.X + interior.Width - rowNode.Bounds().Width
		}
		rowY := rowTop + (rowHeight-rowNode.Bounds().Height)/2
		children = append(children, rowNode.Move(geometry.Pt(rowX, rowY)))
	}

	state.Inputs = append(state.Inputs, inputs)
	state.Outputs = append(state.Outputs, outputs)

	n.scaledOrigin = origin
	n.layoutScale = scale

	return widget.LayoutNodeAt(geometry.Rect(origin.X, origin.Y, w, h), children)
}

func clampRow(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (n *Node) Operate(t *widget.Tree, layout *widget.LayoutNode, op widget.Operation) {
	op.Container(layout.Bounds(), func(op widget.Operation) {
		ws := n.childWidgets()
		for i, child := range layout.Children() {
			ws[i].Operate(t.Children[i], child, op)
		}
	})
}

// OnEvent starts a drag on a press inside the node's bounds (socket
// blob presses never reach the node; the container captures them
// first), publishes OnTranslate deltas in screen units on every move,
// and ends the drag on release.
func (n *Node) OnEvent(t *widget.Tree, ev widget.Event, layout *widget.LayoutNode, shell *widget.Shell) widget.Status {
	st := t.State.(*nodeState)

	switch e := ev.(type) {
	case widget.MousePressed:
		if e.Button == widget.ButtonLeft && layout.Bounds().Contains(e.Position) {
			st.dragging = true
			st.last = e.Position
			return widget.Captured
		}
	case widget.MouseMoved:
		if st.dragging {
			delta := e.Position.Sub(st.last)
			st.last = e.Position
			if n.onTranslate != nil {
				shell.Publish(n.onTranslate(delta.X, delta.Y))
			}
			return widget.Captured
		}
	case widget.MouseReleased:
		if e.Button == widget.ButtonLeft && st.dragging {
			st.dragging = false
			return widget.Captured
		}
	}
	return widget.Ignored
}

func (n *Node) MouseInteraction(t *widget.Tree, layout *widget.LayoutNode, cursor geometry.Point) widget.Interaction {
	if st, ok := t.State.(*nodeState); ok && st.dragging {
		return widget.InteractionGrabbing
	}
	if layout.Bounds().Contains(cursor) {
		return widget.InteractionGrab
	}
	return widget.InteractionNone
}

func (n *Node) Draw(t *widget.Tree, r widget.Renderer, layout *widget.LayoutNode, cursor geometry.Point, viewport geometry.Rectangle) {
	bounds := layout.Bounds()

	r.FillQuad(widget.Quad{
		Bounds: bounds,
		Border: widget.Border{
			Color:  n.borderColor,
			Width:  n.borderWidth,
			Radius: n.borderRadius * n.layoutScale,
		},
	}, widget.Bg(n.background))

	ws := n.childWidgets()
	for i, child := range layout.Children() {
		ws[i].Draw(t.Children[i], r, child, cursor, viewport)
	}

	// Blob rectangles were recorded pre-translation; the difference
	// between the laid-out bounds and the scaled origin is exactly the
	// viewport translation.
	offset := bounds.Position().Sub(n.scaledOrigin)
	for _, b := range n.blobs {
		border := widget.Border{Radius: b.borderRadius}
		if b.border != nil {
			border.Color = b.border
			border.Width = 1
		}
		r.FillQuad(widget.Quad{Bounds: b.rect.Translate(offset), Border: border}, widget.Bg(b.fill))
	}
}

// GraphDraw defers to the regular draw; nodes need neither the socket
// buffer nor the translation at paint time.
func (n *Node) GraphDraw(t *widget.Tree, r widget.Renderer, layout *widget.LayoutNode,
	cursor geometry.Point, viewport geometry.Rectangle,
	_ *SocketLayoutState, _ geometry.Vector) {
	n.Draw(t, r, layout, cursor, viewport)
}
