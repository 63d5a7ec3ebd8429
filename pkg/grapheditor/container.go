package grapheditor

import (
	"math"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

const containerTag widget.Tag = "grapheditor.graph-container"

// Dangling carries the drafting state of a connection in flight: its
// originating socket and a preview link ending at the cursor.
type Dangling struct {
	Source  LogicalEndpoint
	Preview Link
}

// GraphContainer owns the viewport transform, hit-tests sockets,
// arbitrates pointer events between panning, node dragging and
// connection drafting, and paints background, guidelines and children.
//
// Event priority per pointer event: socket interactions, then a
// viewport drag already in progress, then children topmost-first, then
// viewport gesture initiation.
type GraphContainer struct {
	width     widget.Length
	height    widget.Length
	maxWidth  float64
	maxHeight float64
	style     *Appearance
	content   []Element
	matrix    geometry.Matrix

	onTranslate  func(dx, dy float64) tea.Msg
	onScale      func(x, y, delta float64) tea.Msg
	onConnect    func(Link) tea.Msg
	onDisconnect func(LogicalEndpoint, geometry.Point) tea.Msg
	onDangling   func(*Dangling) tea.Msg

	danglingSource *LogicalEndpoint

	// The socket buffer is shared between the layout pass (nodes write)
	// and event/draw (container reads) within one frame. The mutex only
	// satisfies the shared-ownership shape of the widget protocol;
	// everything runs on the host's event-loop thread.
	mu          sync.Mutex
	socketState SocketLayoutState
}

type containerState struct {
	dragStartPosition *geometry.Point
}

// NewGraphContainer creates a container over the given elements. The
// order of content is paint order (connections first, then nodes
// back-to-front, by convention) and defines the node indices logical
// endpoints refer to.
func NewGraphContainer(content []Element) *GraphContainer {
	return &GraphContainer{
		width:     widget.Shrink(),
		height:    widget.Shrink(),
		maxWidth:  math.MaxFloat64,
		maxHeight: math.MaxFloat64,
		content:   content,
		matrix:    geometry.Identity(),
	}
}

// Width sets the container's width strategy.
func (g *GraphContainer) Width(l widget.Length) *GraphContainer {
	g.width = l
	return g
}

// Height sets the container's height strategy.
func (g *GraphContainer) Height(l widget.Length) *GraphContainer {
	g.height = l
	return g
}

// MaxWidth caps the resolved width.
func (g *GraphContainer) MaxWidth(w float64) *GraphContainer {
	g.maxWidth = w
	return g
}

// MaxHeight caps the resolved height.
func (g *GraphContainer) MaxHeight(h float64) *GraphContainer {
	g.maxHeight = h
	return g
}

// Matrix sets the viewport transform for this frame. The container
// never mutates it; it only publishes OnTranslate/OnScale intents.
func (g *GraphContainer) Matrix(m geometry.Matrix) *GraphContainer {
	g.matrix = m
	return g
}

// Style sets a custom appearance. All guideline fields must be present.
func (g *GraphContainer) Style(a Appearance) *GraphContainer {
	g.style = &a
	return g
}

// DanglingSource feeds back the draft connection's origin, as last
// published through OnDangling, so drafting survives across frames.
func (g *GraphContainer) DanglingSource(le *LogicalEndpoint) *GraphContainer {
	g.danglingSource = le
	return g
}

// OnTranslate sets the pan intent. Positive deltas shift content
// rightward/downward, in screen units.
func (g *GraphContainer) OnTranslate(f func(dx, dy float64) tea.Msg) *GraphContainer {
	g.onTranslate = f
	return g
}

// OnScale sets the zoom intent: cursor position in container
// coordinates plus the raw wheel delta.
func (g *GraphContainer) OnScale(f func(x, y, delta float64) tea.Msg) *GraphContainer {
	g.onScale = f
	return g
}

// OnConnect sets the intent published when a draft is released over a
// compatible socket.
func (g *GraphContainer) OnConnect(f func(Link) tea.Msg) *GraphContainer {
	g.onConnect = f
	return g
}

// OnDisconnect sets the intent published when an input socket is
// grabbed; the point is the cursor in world coordinates.
func (g *GraphContainer) OnDisconnect(f func(LogicalEndpoint, geometry.Point) tea.Msg) *GraphContainer {
	g.onDisconnect = f
	return g
}

// OnDangling sets the draft-progress intent. A nil argument cancels the
// draft.
func (g *GraphContainer) OnDangling(f func(*Dangling) tea.Msg) *GraphContainer {
	g.onDangling = f
	return g
}

func (g *GraphContainer) childWidgets() []widget.Widget {
	ws := make([]widget.Widget, len(g.content))
	for i, el := range g.content {
		ws[i] = el
	}
	return ws
}

func (g *GraphContainer) Children() []*widget.Tree {
	trees := make([]*widget.Tree, len(g.content))
	for i, el := range g.content {
		trees[i] = widget.NewTree(el)
	}
	return trees
}

func (g *GraphContainer) Diff(t *widget.Tree) {
	t.DiffChildren(g.childWidgets())
}

func (g *GraphContainer) Size() (widget.Length, widget.Length) {
	return g.width, g.height
}

func (g *GraphContainer) Tag() widget.Tag { return containerTag }

func (g *GraphContainer) State() any { return &containerState{} }

// Layout clears the socket buffer, runs every child's scalable layout
// at the current scale (nodes contribute blob geometry), translates the
// results by the viewport translation and marks the buffer populated.
func (g *GraphContainer) Layout(t *widget.Tree, limits widget.Limits) *widget.LayoutNode {
	limits = limits.Loose().MaxWidth(g.maxWidth).MaxHeight(g.maxHeight)

	scale := g.matrix.GetScale()
	tx, ty := g.matrix.GetTranslation()

	g.mu.Lock()
	g.socketState.Clear()
	children := make([]*widget.LayoutNode, len(g.content))
	for i, el := range g.content {
		node := el.GraphLayout(t.Children[i], limits, scale, &g.socketState)
		children[i] = node.Translate(geometry.Vec(tx, ty))
	}
	g.socketState.Done = true
	g.mu.Unlock()

	size := limits.Resolve(g.width, g.height, geometry.Size{})
	return widget.LayoutNodeWithChildren(size, children)
}

func (g *GraphContainer) Operate(t *widget.Tree, layout *widget.LayoutNode, op widget.Operation) {
	op.Container(layout.Bounds(), func(op widget.Operation) {
		for i, el := range g.content {
			el.Operate(t.Children[i], layout.Children()[i], op)
		}
	})
}

// OnEvent arbitrates a pointer event. See the type comment for the
// priority order; socket handling short-circuits everything else.
func (g *GraphContainer) OnEvent(t *widget.Tree, ev widget.Event, layout *widget.LayoutNode, shell *widget.Shell) widget.Status {
	status := widget.Ignored
	st := t.State.(*containerState)
	bounds := layout.Bounds()
	inBounds := bounds.Contains(ev.Pos())

	g.mu.Lock()

	if inBounds {
		d := ev.Pos().Sub(bounds.Position())
		cursor := geometry.Pt(d.X, d.Y)

		tx, ty := g.matrix.GetTranslation()
		preTranslation := geometry.Pt(cursor.X-tx, cursor.Y-ty)
		world := preTranslation.Div(g.matrix.GetScale())

		hovered := g.hitTestSockets(preTranslation)

		switch e := ev.(type) {
		case widget.MousePressed:
			if e.Button == widget.ButtonLeft && hovered != nil {
				switch hovered.Role {
				case RoleIn:
					// Grabbing an input tears off the existing inbound
					// link and lets it follow the cursor.
					if g.onDisconnect != nil {
						shell.Publish(g.onDisconnect(*hovered, world))
					}
				case RoleOut:
					g.emitDangling(shell, world, *hovered)
				}
				status = widget.Captured
			}
		case widget.MouseMoved:
			if g.danglingSource != nil {
				g.emitDangling(shell, world, *g.danglingSource)
				status = widget.Captured
			}
		case widget.MouseReleased:
			if e.Button == widget.ButtonLeft && g.danglingSource != nil {
				// The draft ends on release no matter what.
				if g.onDangling != nil {
					shell.Publish(g.onDangling(nil))
				}
				// Same-role and same-node targets are rejected without
				// being an error; the draft was already cancelled.
				if hovered != nil &&
					g.danglingSource.Role != hovered.Role &&
					g.danglingSource.NodeIndex != hovered.NodeIndex {
					if g.onConnect != nil {
						link := LinkFromUnordered(
							SocketEndpoint{Socket: *g.danglingSource},
							SocketEndpoint{Socket: *hovered},
						)
						shell.Publish(g.onConnect(link))
					}
				}
				status = widget.Captured
			}
		}
	}

	g.mu.Unlock()

	if status == widget.Captured {
		return status
	}

	if st.dragStartPosition != nil {
		// A viewport pan is in progress.
		if inBounds {
			d := ev.Pos().Sub(bounds.Position())
			cursor := geometry.Pt(d.X, d.Y)
			switch e := ev.(type) {
			case widget.MouseReleased:
				if e.Button == widget.ButtonLeft {
					st.dragStartPosition = nil
				}
			case widget.MouseMoved:
				delta := cursor.Sub(*st.dragStartPosition)
				st.dragStartPosition = &cursor
				if g.onTranslate != nil {
					shell.Publish(g.onTranslate(delta.X, delta.Y))
				}
				status = widget.Captured
			}
		}
	} else {
		// Children are stored in paint order; the last element draws on
		// top, so it gets first pick of the event.
		for i := len(g.content) - 1; i >= 0; i-- {
			childStatus := g.content[i].OnEvent(t.Children[i], ev, layout.Children()[i], shell)
			status = status.Merge(childStatus)
			if status == widget.Captured {
				break
			}
		}
	}

	if status == widget.Ignored && inBounds {
		d := ev.Pos().Sub(bounds.Position())
		cursor := geometry.Pt(d.X, d.Y)
		switch e := ev.(type) {
		case widget.MousePressed:
			if e.Button == widget.ButtonLeft {
				st.dragStartPosition = &cursor
				status = widget.Captured
			}
		case widget.WheelScrolled:
			if g.onScale != nil {
				shell.Publish(g.onScale(cursor.X, cursor.Y, e.DeltaY))
				status = widget.Captured
			}
		}
	}

	return status
}

// hitTestSockets scans the socket buffer in a fixed order — inputs
// before outputs, node index ascending, socket index ascending — and
// returns the last rectangle containing p. Overlap resolution is
// arbitrary but deterministic.
func (g *GraphContainer) hitTestSockets(p geometry.Point) *LogicalEndpoint {
	var hovered *LogicalEndpoint
	for _, side := range []struct {
		role  SocketRole
		lists [][]geometry.Rectangle
	}{
		{RoleIn, g.socketState.Inputs},
		{RoleOut, g.socketState.Outputs},
	} {
		for nodeIndex, sockets := range side.lists {
			for socketIndex, rect := range sockets {
				if rect.Contains(p) {
					hovered = &LogicalEndpoint{
						NodeIndex:   nodeIndex,
						Role:        side.role,
						SocketIndex: socketIndex,
					}
				}
			}
		}
	}
	return hovered
}

func (g *GraphContainer) emitDangling(shell *widget.Shell, world geometry.Point, source LogicalEndpoint) {
	if g.onDangling == nil {
		return
	}
	shell.Publish(g.onDangling(&Dangling{
		Source: source,
		Preview: LinkFromUnordered(
			SocketEndpoint{Socket: source},
			AbsoluteEndpoint{Point: world},
		),
	}))
}

func (g *GraphContainer) MouseInteraction(t *widget.Tree, layout *widget.LayoutNode, cursor geometry.Point) widget.Interaction {
	interaction := widget.InteractionNone
	for i, el := range g.content {
		interaction = interaction.Merge(el.MouseInteraction(t.Children[i], layout.Children()[i], cursor))
	}
	return interaction
}

// Draw paints the background, the three guideline series and then the
// children, clipped to the container's bounds. Children with an empty
// or sub-pixel intersection are skipped; zero-size children
// (connections) are painted unconditionally in the overlay pass.
func (g *GraphContainer) Draw(t *widget.Tree, r widget.Renderer, layout *widget.LayoutNode, cursor geometry.Point, _ geometry.Rectangle) {
	style := g.appearance()
	bounds := layout.Bounds()

	r.WithLayer(bounds, func() {
		background := widget.Bg(lipglossFallbackBackground)
		if style.Background != nil {
			background = *style.Background
		}
		r.FillQuad(widget.Quad{Bounds: bounds}, background)

		tx, ty := g.matrix.GetTranslation()
		normalized := normalizeScale(g.matrix.GetScale())

		minor := mustSpacing("MinorGuidelinesSpacing", style.MinorGuidelinesSpacing)
		mid := mustSpacing("MidGuidelinesSpacing", style.MidGuidelinesSpacing)
		major := mustSpacing("MajorGuidelinesSpacing", style.MajorGuidelinesSpacing)
		biggest := math.Max(minor, math.Max(mid, major))

		drawGuidelines(r, bounds, tx, ty, normalized, minor, biggest,
			mustColor("MinorGuidelinesColor", style.MinorGuidelinesColor))
		drawGuidelines(r, bounds, tx, ty, normalized, mid, biggest,
			mustColor("MidGuidelinesColor", style.MidGuidelinesColor))
		drawGuidelines(r, bounds, tx, ty, normalized, major, biggest,
			mustColor("MajorGuidelinesColor", style.MajorGuidelinesColor))

		g.mu.Lock()
		defer g.mu.Unlock()

		for i, el := range g.content {
			childLayout := layout.Children()[i]
			childBounds := childLayout.Bounds()

			if childBounds.Width > 0 || childBounds.Height > 0 {
				intersect, ok := childBounds.Intersection(bounds)
				if !ok || intersect.Width < 1 || intersect.Height < 1 {
					continue
				}
			}

			el.GraphDraw(t.Children[i], r, childLayout, cursor, bounds,
				&g.socketState, geometry.Vec(tx, ty))
		}
	})
}

func (g *GraphContainer) appearance() Appearance {
	if g.style != nil {
		return *g.style
	}
	return DefaultAppearance()
}
