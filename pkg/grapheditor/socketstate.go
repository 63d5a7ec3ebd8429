package grapheditor

import "github.com/wesen/nodecanvas/pkg/geometry"

// SocketLayoutState is the per-frame buffer of socket blob rectangles,
// indexed by element position in the container's content vector.
// Rectangles are in container-local unscaled pre-translation
// coordinates: the frame produced by the scalable layout pass before
// the viewport translation is applied.
//
// Nodes append their blob geometry during layout; the container reads
// it during event hit-testing and connection drawing within the same
// frame. Every content element (including connections) contributes
// exactly one entry per list so indices stay aligned.
type SocketLayoutState struct {
	Inputs  [][]geometry.Rectangle
	Outputs [][]geometry.Rectangle

	// Done reports that this frame's layout pass has populated the
	// buffer. Reads before layout must be treated as misses.
	Done bool
}

// Clear resets the buffer at the top of a layout pass.
func (s *SocketLayoutState) Clear() {
	s.Inputs = s.Inputs[:0]
	s.Outputs = s.Outputs[:0]
	s.Done = false
}

// blobCenter resolves a logical endpoint to its blob center, reporting
// false when the buffer is not populated or the indices are out of
// range.
func (s *SocketLayoutState) blobCenter(le LogicalEndpoint) (geometry.Point, bool) {
	if !s.Done {
		return geometry.Point{}, false
	}
	lists := s.Inputs
	if le.Role == RoleOut {
		lists = s.Outputs
	}
	if le.NodeIndex < 0 || le.NodeIndex >= len(lists) {
		return geometry.Point{}, false
	}
	sockets := lists[le.NodeIndex]
	if le.SocketIndex < 0 || le.SocketIndex >= len(sockets) {
		return geometry.Point{}, false
	}
	return sockets[le.SocketIndex].Center(), true
}
