package widget

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a pointer event delivered to the widget tree. All events
// carry an absolute position in the top-level container's frame.
type Event interface {
	Pos() geometry.Point
}

// MousePressed reports a button press.
type MousePressed struct {
	Button   Button
	Position geometry.Point
}

func (e MousePressed) Pos() geometry.Point { return e.Position }

// MouseReleased reports a button release.
type MouseReleased struct {
	Button   Button
	Position geometry.Point
}

func (e MouseReleased) Pos() geometry.Point { return e.Position }

// MouseMoved reports cursor motion.
type MouseMoved struct {
	Position geometry.Point
}

func (e MouseMoved) Pos() geometry.Point { return e.Position }

// WheelScrolled reports a scroll. DeltaY is passed through in whatever
// unit the host produced (lines or pixels); consumers normalize.
type WheelScrolled struct {
	Position geometry.Point
	DeltaY   float64
}

func (e WheelScrolled) Pos() geometry.Point { return e.Position }

// Status reports whether a widget consumed an event.
type Status int

const (
	Ignored Status = iota
	Captured
)

// Merge combines two statuses; Captured wins.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

// Interaction is the cursor hint a widget requests. Higher values take
// precedence when merged.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionPointer
	InteractionGrab
	InteractionGrabbing
)

// Merge keeps the stronger of two hints.
func (i Interaction) Merge(other Interaction) Interaction {
	if other > i {
		return other
	}
	return i
}

// Shell collects the messages widgets publish while handling an event.
// The host drains them into its own update loop after dispatch.
type Shell struct {
	messages []tea.Msg
}

// Publish queues a message. Nil messages are dropped so optional intent
// handlers can be invoked unconditionally.
func (s *Shell) Publish(m tea.Msg) {
	if m == nil {
		return
	}
	s.messages = append(s.messages, m)
}

// Messages returns the queued messages in publish order.
func (s *Shell) Messages() []tea.Msg { return s.messages }
