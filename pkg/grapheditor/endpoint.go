package grapheditor

import "github.com/wesen/nodecanvas/pkg/geometry"

// LogicalEndpoint is a stable reference to one socket: the node's index
// in the container's content vector, the socket's role, and its index
// within that node's per-role socket list.
type LogicalEndpoint struct {
	NodeIndex   int
	Role        SocketRole
	SocketIndex int
}

// Endpoint is one end of a connection: either a logical socket or an
// absolute point (used while a connection is dragged to the cursor).
type Endpoint interface {
	isEndpoint()
}

// SocketEndpoint references a socket by logical position.
type SocketEndpoint struct {
	Socket LogicalEndpoint
}

func (SocketEndpoint) isEndpoint() {}

// AbsoluteEndpoint is a fixed point in pre-translation container
// coordinates (the host divides the raw cursor by the current scale
// before constructing one).
type AbsoluteEndpoint struct {
	Point geometry.Point
}

func (AbsoluteEndpoint) isEndpoint() {}

// Link is an ordered pair of endpoints, normalized so that an Out-role
// socket (if any) comes first and an In-role socket second.
type Link struct {
	From Endpoint
	To   Endpoint
}

// LinkFromUnordered normalizes two endpoints into a Link: if exactly
// one endpoint is an Out socket it goes first; else if exactly one is
// an In socket the other goes first; otherwise input order is kept.
func LinkFromUnordered(a, b Endpoint) Link {
	aOut, aIn := endpointRole(a)
	bOut, bIn := endpointRole(b)

	switch {
	case aOut && !bOut:
		return Link{From: a, To: b}
	case bOut && !aOut:
		return Link{From: b, To: a}
	case aIn && !bIn:
		return Link{From: b, To: a}
	case bIn && !aIn:
		return Link{From: a, To: b}
	default:
		return Link{From: a, To: b}
	}
}

func endpointRole(e Endpoint) (out, in bool) {
	s, ok := e.(SocketEndpoint)
	if !ok {
		return false, false
	}
	return s.Socket.Role == RoleOut, s.Socket.Role == RoleIn
}
