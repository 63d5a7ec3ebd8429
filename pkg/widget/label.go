package widget

import (
	"image/color"
	"unicode/utf8"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

// Label is a single-line text leaf, the usual content of nodes and
// socket rows. It measures with a fixed per-rune advance; the default
// of 1×1 matches terminal cells, GUI backends configure their font's
// advance via CharSize.
type Label struct {
	Base

	text       string
	color      color.Color
	charWidth  float64
	charHeight float64
}

// NewLabel creates a label with the default 1×1 rune advance.
func NewLabel(text string) *Label {
	return &Label{text: text, charWidth: 1, charHeight: 1}
}

// Color sets the text color. Nil leaves the backend default.
func (l *Label) Color(c color.Color) *Label {
	l.color = c
	return l
}

// CharSize sets the per-rune advance used for measurement.
func (l *Label) CharSize(w, h float64) *Label {
	l.charWidth = w
	l.charHeight = h
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

func (l *Label) Size() (Length, Length) {
	return Shrink(), Shrink()
}

func (l *Label) Layout(_ *Tree, limits Limits) *LayoutNode {
	intrinsic := geometry.Size{
		Width:  float64(utf8.RuneCountInString(l.text)) * l.charWidth,
		Height: l.charHeight,
	}
	return NewLayoutNode(limits.Resolve(Shrink(), Shrink(), intrinsic))
}

func (l *Label) Draw(_ *Tree, r Renderer, layout *LayoutNode, _ geometry.Point, _ geometry.Rectangle) {
	r.Text(l.text, layout.Bounds().Position(), l.color)
}
