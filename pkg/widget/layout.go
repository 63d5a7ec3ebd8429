package widget

import (
	"math"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

// LengthUnit selects a sizing strategy.
type LengthUnit int

const (
	// LengthShrink sizes the widget to its intrinsic content.
	LengthShrink LengthUnit = iota
	// LengthFill expands the widget to the available space.
	LengthFill
	// LengthFixed pins the widget to an exact amount.
	LengthFixed
)

// Length is a sizing strategy with an optional fixed amount.
type Length struct {
	Unit   LengthUnit
	Amount float64
}

// Shrink sizes to content.
func Shrink() Length { return Length{Unit: LengthShrink} }

// Fill expands to the available space.
func Fill() Length { return Length{Unit: LengthFill} }

// Fixed pins to an exact size.
func Fixed(amount float64) Length { return Length{Unit: LengthFixed, Amount: amount} }

// Limits bound the size a layout pass may resolve to.
type Limits struct {
	Min, Max geometry.Size
}

// NewLimits builds limits from explicit bounds.
func NewLimits(min, max geometry.Size) Limits {
	return Limits{Min: min, Max: max}
}

// Loose drops the minimum constraint.
func (l Limits) Loose() Limits {
	l.Min = geometry.Size{}
	return l
}

// MaxWidth caps the maximum width.
func (l Limits) MaxWidth(w float64) Limits {
	l.Max.Width = math.Min(l.Max.Width, w)
	return l
}

// MaxHeight caps the maximum height.
func (l Limits) MaxHeight(h float64) Limits {
	l.Max.Height = math.Min(l.Max.Height, h)
	return l
}

// Resolve picks a concrete size for the given strategies, using
// intrinsic as the content size for Shrink.
func (l Limits) Resolve(w, h Length, intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  l.resolveAxis(w, intrinsic.Width, l.Min.Width, l.Max.Width),
		Height: l.resolveAxis(h, intrinsic.Height, l.Min.Height, l.Max.Height),
	}
}

func (l Limits) resolveAxis(length Length, intrinsic, min, max float64) float64 {
	var v float64
	switch length.Unit {
	case LengthFill:
		v = max
	case LengthFixed:
		v = length.Amount
	default:
		v = intrinsic
	}
	return clamp(v, min, max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LayoutNode is one node of the computed layout tree. Bounds are
// absolute within the frame of the top-level container.
type LayoutNode struct {
	bounds   geometry.Rectangle
	children []*LayoutNode
}

// NewLayoutNode builds a childless node at the origin.
func NewLayoutNode(size geometry.Size) *LayoutNode {
	return &LayoutNode{bounds: geometry.Rect(0, 0, size.Width, size.Height)}
}

// LayoutNodeWithChildren builds a node at the origin with children.
func LayoutNodeWithChildren(size geometry.Size, children []*LayoutNode) *LayoutNode {
	return &LayoutNode{
		bounds:   geometry.Rect(0, 0, size.Width, size.Height),
		children: children,
	}
}

// LayoutNodeAt builds a node with explicit absolute bounds. Children
// are taken as already positioned and are not shifted.
func LayoutNodeAt(bounds geometry.Rectangle, children []*LayoutNode) *LayoutNode {
	return &LayoutNode{bounds: bounds, children: children}
}

// Bounds returns the node's absolute rectangle.
func (n *LayoutNode) Bounds() geometry.Rectangle { return n.bounds }

// Children returns the child layout nodes.
func (n *LayoutNode) Children() []*LayoutNode { return n.children }

// Move places the node's origin at p, shifting children along.
func (n *LayoutNode) Move(p geometry.Point) *LayoutNode {
	return n.Translate(p.Sub(n.bounds.Position()))
}

// Translate shifts the node and all its children by v.
func (n *LayoutNode) Translate(v geometry.Vector) *LayoutNode {
	n.bounds = n.bounds.Translate(v)
	for _, c := range n.children {
		c.Translate(v)
	}
	return n
}
