package grapheditor

import (
	"image/color"
	"math"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

// normalizeScale maps a positive scale into [1, 2) by dividing out the
// largest power of two. Guideline density stays visually stable under
// arbitrary zoom while spacings remain in a perceptual 1–2× band.
func normalizeScale(scale float64) float64 {
	log2 := math.Floor(math.Log2(scale))
	if math.Abs(log2) > 1e-9 {
		return scale / math.Pow(2, log2)
	}
	return scale
}

// drawGuidelines paints one grid series as 1-px vertical then
// horizontal lines. The grid is skipped entirely when its effective
// spacing drops below 5 px. Lines coincident with the bounds edges are
// not drawn.
func drawGuidelines(r widget.Renderer, bounds geometry.Rectangle,
	offsetX, offsetY, scale, spacing, biggestSpacing float64, col color.Color) {

	if spacing*scale < 5 {
		return
	}

	edge := biggestSpacing * scale
	step := spacing * scale

	fromX := -edge + math.Mod(offsetX, edge) + bounds.X
	toX := bounds.X + bounds.Width + edge
	for x := fromX; x < toX; x += step {
		if x <= bounds.X || x >= bounds.X+bounds.Width {
			continue
		}
		r.FillQuad(widget.Quad{
			Bounds: geometry.Rect(x, bounds.Y, 1, bounds.Height),
		}, widget.Bg(col))
	}

	fromY := -edge + math.Mod(offsetY, edge) + bounds.Y
	toY := bounds.Y + bounds.Height + edge
	for y := fromY; y < toY; y += step {
		if y <= bounds.Y || y >= bounds.Y+bounds.Height {
			continue
		}
		r.FillQuad(widget.Quad{
			Bounds: geometry.Rect(bounds.X, y, bounds.Width, 1),
		}, widget.Bg(col))
	}
}
