package teacanvas

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// EventFromMouse adapts a Bubble Tea mouse message into a pointer
// event. Cell coordinates become widget coordinates one-to-one. The
// second return is false for messages the widget tree has no use for
// (unknown buttons, wheel axes other than vertical).
func EventFromMouse(msg tea.MouseMsg) (widget.Event, bool) {
	mouse := msg.Mouse()
	pos := geometry.Pt(float64(mouse.X), float64(mouse.Y))

	switch msg.(type) {
	case tea.MouseClickMsg:
		button, ok := buttonFromMouse(mouse.Button)
		if !ok {
			return nil, false
		}
		return widget.MousePressed{Button: button, Position: pos}, true

	case tea.MouseReleaseMsg:
		button, ok := buttonFromMouse(mouse.Button)
		if !ok {
			// Terminals commonly report releases with no button; treat
			// them as the primary button going up.
			button = widget.ButtonLeft
		}
		return widget.MouseReleased{Button: button, Position: pos}, true

	case tea.MouseMotionMsg:
		return widget.MouseMoved{Position: pos}, true

	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			return widget.WheelScrolled{Position: pos, DeltaY: 1}, true
		case tea.MouseWheelDown:
			return widget.WheelScrolled{Position: pos, DeltaY: -1}, true
		}
		return nil, false
	}

	return nil, false
}

func buttonFromMouse(b tea.MouseButton) (widget.Button, bool) {
	switch b {
	case tea.MouseLeft:
		return widget.ButtonLeft, true
	case tea.MouseRight:
		return widget.ButtonRight, true
	case tea.MouseMiddle:
		return widget.ButtonMiddle, true
	}
	return 0, false
}
