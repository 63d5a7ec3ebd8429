package teacanvas

import (
	"image"
	"math"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// bresenham returns the integer cells on the line from (x0,y0) to
// (x1,y1). The result always includes both endpoints. The loop is
// capped at dx+dy+2 iterations to prevent infinite loops.
func bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// lineChar returns the box-drawing character for a line segment with
// the given direction vector (dx, dy).
func lineChar(dx, dy int) rune {
	if dx == 0 {
		return '│'
	}
	if dy == 0 {
		return '─'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// flattenBezier samples a cubic curve into a polyline. The segment
// count grows with the control polygon's extent so flat short curves
// stay cheap and long ones stay smooth.
func flattenBezier(b widget.Bezier) []geometry.Point {
	extent := dist(b.From, b.Control1) + dist(b.Control1, b.Control2) + dist(b.Control2, b.To)
	segments := int(math.Ceil(extent / 2))
	if segments < 4 {
		segments = 4
	}
	if segments > 128 {
		segments = 128
	}

	pts := make([]geometry.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		pts = append(pts, cubicAt(b, t))
	}
	return pts
}

func cubicAt(b widget.Bezier, t float64) geometry.Point {
	u := 1 - t
	c0 := u * u * u
	c1 := 3 * u * u * t
	c2 := 3 * u * t * t
	c3 := t * t * t
	return geometry.Pt(
		c0*b.From.X+c1*b.Control1.X+c2*b.Control2.X+c3*b.To.X,
		c0*b.From.Y+c1*b.Control1.Y+c2*b.Control2.Y+c3*b.To.Y,
	)
}

func dist(a, b geometry.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cell maps a widget-space coordinate to a cell index.
func cell(v float64) int {
	return int(math.Round(v))
}
