// Package geometry provides float64 points, vectors, sizes, rectangles
// and the 2D affine Matrix used for the canvas viewport transform.
//
// The stdlib image package is integer-based; node positions, socket blob
// rectangles and viewport math all need sub-cell precision, so the types
// here mirror image.Point/image.Rectangle with float64 fields.
package geometry

import "math"

// Point is a position in some 2D coordinate frame.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p shifted by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Mul returns p with both coordinates multiplied by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Div returns p with both coordinates divided by s.
func (p Point) Div(s float64) Point { return Point{p.X / s, p.Y / s} }

// Vector is a displacement between two points.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Rect builds a Rectangle from a top-left corner and a size.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point { return Point{r.X, r.Y} }

// Size returns the rectangle's size.
func (r Rectangle) Size() Size { return Size{r.Width, r.Height} }

// Center returns the midpoint.
func (r Rectangle) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies inside r. The top and left edges are
// inclusive, the bottom and right edges exclusive, matching the
// half-open convention of image.Rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersection returns the overlap of r and s and whether it is non-empty.
func (r Rectangle) Intersection(s Rectangle) (Rectangle, bool) {
	x0 := math.Max(r.X, s.X)
	y0 := math.Max(r.Y, s.Y)
	x1 := math.Min(r.X+r.Width, s.X+s.Width)
	y1 := math.Min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}, false
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Translate returns r shifted by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}
