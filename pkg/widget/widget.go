// Package widget defines the host-toolkit contract the graph editor is
// written against: a retained-mode widget protocol (layout, events,
// draw, per-widget state trees), pointer events, and the renderer
// primitives a backend must provide.
//
// Messages published by widgets are bubbletea messages (tea.Msg), so a
// charm-ecosystem host can drain them straight into its update loop.
package widget

import (
	"github.com/wesen/nodecanvas/pkg/geometry"
)

// Tag identifies the state type a widget keeps in its Tree slot. Widgets
// without persistent state use the zero Tag.
type Tag string

// Widget is the protocol every element of the widget tree implements.
type Widget interface {
	// Children returns fresh state trees for the widget's children.
	Children() []*Tree
	// Diff reconciles an existing tree against this widget.
	Diff(t *Tree)
	// Size returns the widget's width and height strategies.
	Size() (Length, Length)
	// Tag identifies the widget's persistent state type.
	Tag() Tag
	// State returns a fresh persistent state value for this widget.
	State() any
	// Layout computes the widget's layout node within the given limits.
	Layout(t *Tree, limits Limits) *LayoutNode
	// Operate applies a tree-wide operation (focus queries and the like).
	Operate(t *Tree, layout *LayoutNode, op Operation)
	// OnEvent processes a pointer event, publishing messages to shell.
	OnEvent(t *Tree, ev Event, layout *LayoutNode, shell *Shell) Status
	// MouseInteraction reports the cursor hint for the current position.
	MouseInteraction(t *Tree, layout *LayoutNode, cursor geometry.Point) Interaction
	// Draw paints the widget within the viewport.
	Draw(t *Tree, r Renderer, layout *LayoutNode, cursor geometry.Point, viewport geometry.Rectangle)
}

// Operation visits containers during an Operate pass.
type Operation interface {
	Container(bounds geometry.Rectangle, operate func(Operation))
}

// Tree is the persistent state slot for one widget, kept across view
// passes while the widgets themselves are rebuilt every frame.
type Tree struct {
	Tag      Tag
	State    any
	Children []*Tree
}

// NewTree builds a state tree for a widget and its children.
func NewTree(w Widget) *Tree {
	return &Tree{
		Tag:      w.Tag(),
		State:    w.State(),
		Children: w.Children(),
	}
}

// DiffChildren reconciles t.Children against a new list of child
// widgets. Children are matched by position; a tag mismatch resets the
// slot to the new widget's fresh state.
func (t *Tree) DiffChildren(ws []Widget) {
	if len(t.Children) > len(ws) {
		t.Children = t.Children[:len(ws)]
	}
	for i, w := range ws {
		if i < len(t.Children) {
			if t.Children[i].Tag == w.Tag() {
				w.Diff(t.Children[i])
				continue
			}
			t.Children[i] = NewTree(w)
			continue
		}
		t.Children = append(t.Children, NewTree(w))
	}
}

// Base provides no-op defaults for the protocol methods a leaf widget
// without children or persistent state does not care about.
type Base struct{}

func (Base) Children() []*Tree { return nil }
func (Base) Diff(*Tree)        {}
func (Base) Tag() Tag          { return "" }
func (Base) State() any        { return nil }
func (Base) Operate(*Tree, *LayoutNode, Operation) {}
func (Base) OnEvent(*Tree, Event, *LayoutNode, *Shell) Status {
	return Ignored
}
func (Base) MouseInteraction(*Tree, *LayoutNode, geometry.Point) Interaction {
	return InteractionNone
}
