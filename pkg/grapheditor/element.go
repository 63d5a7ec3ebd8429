package grapheditor

import (
	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// Element is the uniform child contract of the GraphContainer. Both
// nodes and connections satisfy it: a regular widget extended with the
// scalable layout pass (which receives the viewport scale and the
// shared socket buffer) and an overlay draw pass (which receives the
// resolved socket geometry and the viewport translation).
type Element interface {
	widget.Widget

	// GraphLayout lays the element out at the given viewport scale in
	// container-local pre-translation coordinates, appending exactly one
	// entry to state.Inputs and state.Outputs.
	GraphLayout(t *widget.Tree, limits widget.Limits, scale float64, state *SocketLayoutState) *widget.LayoutNode

	// GraphDraw paints the element. Connections resolve their endpoints
	// through state and translation; nodes ignore both and defer to
	// their regular Draw.
	GraphDraw(t *widget.Tree, r widget.Renderer, layout *widget.LayoutNode,
		cursor geometry.Point, viewport geometry.Rectangle,
		state *SocketLayoutState, translation geometry.Vector)
}
