// Package grapheditor implements the node-graph editor widgets: nodes
// with labeled sockets, connections between them, and the graph
// container that owns the viewport transform and arbitrates pointer
// events between panning, node dragging and connection drafting.
//
// The widgets hold no graph state. The host application owns node
// positions, socket lists and connections, rebuilds the widget tree
// every frame, and reacts to the intents the container publishes
// (translate, scale, connect, disconnect, dangling).
package grapheditor

import (
	"image/color"

	"github.com/wesen/nodecanvas/pkg/widget"
)

// SocketRole distinguishes input pins from output pins.
type SocketRole int

const (
	RoleIn SocketRole = iota
	RoleOut
)

// SocketSide selects which node edge carries the socket's blob.
type SocketSide int

const (
	SideLeft SocketSide = iota
	SideRight
)

// Alignment positions a socket's content inside its row.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Socket describes one pin of a node. Sockets are value-copied into the
// node during view construction and discarded each frame; identity is
// positional (node index, role, index within role).
type Socket struct {
	Role SocketRole

	// MinHeight and MaxHeight bound the socket row's vertical extent in
	// world units. A MaxHeight of +Inf or zero leaves the row unbounded.
	MinHeight float64
	MaxHeight float64

	// BlobSide is the node edge the blob sits on. Convention: In→Left,
	// Out→Right.
	BlobSide SocketSide

	// BlobRadius is the blob circle's radius in world units.
	BlobRadius float64
	// BlobBorderRadius is the corner radius of the blob quad; equal to
	// BlobRadius it yields a circle, zero a square.
	BlobBorderRadius float64

	BlobColor color.Color
	// BlobBorderColor is optional; nil draws no border.
	BlobBorderColor color.Color

	// Content is rendered inside the socket row.
	Content widget.Widget

	ContentAlignment Alignment
}
