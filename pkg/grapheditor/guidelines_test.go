package grapheditor

import (
	"testing"

	"github.com/wesen/nodecanvas/pkg/geometry"
)

func TestNormalizeScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{2, 1},
		{4, 1},
		{8, 1},
		{3, 1.5},
		{0.5, 1},
		{0.75, 1.5},
		{1.9, 1.9},
	}
	for _, tc := range tests {
		if got := normalizeScale(tc.in); !almost(got, tc.want) {
			t.Errorf("normalizeScale(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeScaleRange(t *testing.T) {
	for _, s := range []float64{0.1, 0.3, 0.9, 1.0, 1.5, 2.0, 5.7, 13, 100} {
		got := normalizeScale(s)
		if got < 1 || got >= 2 {
			t.Errorf("normalizeScale(%v) = %v, outside [1,2)", s, got)
		}
	}
}

func TestDrawGuidelinesSkipsBelowThreshold(t *testing.T) {
	r := &recordRenderer{}
	bounds := geometry.Rect(0, 0, 100, 100)

	// 4 * 1 = 4 px effective spacing, under the 5 px cutoff.
	drawGuidelines(r, bounds, 0, 0, 1, 4, 250, DefaultLinkColor)
	if len(r.quads) != 0 {
		t.Fatalf("drew %d quads, want none below the density cutoff", len(r.quads))
	}
}

func TestDrawGuidelinesCountAndEdges(t *testing.T) {
	r := &recordRenderer{}
	bounds := geometry.Rect(0, 0, 100, 100)

	drawGuidelines(r, bounds, 0, 0, 1, 10, 10, DefaultLinkColor)

	// Interior lines only: x and y in {10..90}, edges at 0 and 100
	// excluded. 9 vertical + 9 horizontal.
	if len(r.quads) != 18 {
		t.Fatalf("drew %d quads, want 18", len(r.quads))
	}
	for _, q := range r.quads {
		b := q.quad.Bounds
		vertical := b.Width == 1 && b.Height == bounds.Height
		horizontal := b.Height == 1 && b.Width == bounds.Width
		if !vertical && !horizontal {
			t.Fatalf("quad %+v is neither a 1-px column nor a 1-px row", b)
		}
		if vertical && (b.X <= 0 || b.X >= 100) {
			t.Fatalf("vertical line at x=%v coincides with a bounds edge", b.X)
		}
		if horizontal && (b.Y <= 0 || b.Y >= 100) {
			t.Fatalf("horizontal line at y=%v coincides with a bounds edge", b.Y)
		}
	}
}

func TestDrawGuidelinesFollowsOffset(t *testing.T) {
	r := &recordRenderer{}
	bounds := geometry.Rect(0, 0, 100, 100)

	drawGuidelines(r, bounds, 3, 0, 1, 10, 10, DefaultLinkColor)

	var first float64 = -1
	for _, q := range r.quads {
		if q.quad.Bounds.Width == 1 {
			first = q.quad.Bounds.X
			break
		}
	}
	// The grid shifts with the pan: first interior vertical at x=3.
	if !almost(first, 3) {
		t.Fatalf("first vertical at x=%v, want 3", first)
	}
}

func TestDrawGuidelinesRespectsBoundsOrigin(t *testing.T) {
	r := &recordRenderer{}
	bounds := geometry.Rect(50, 20, 100, 100)

	drawGuidelines(r, bounds, 0, 0, 1, 10, 10, DefaultLinkColor)

	for _, q := range r.quads {
		b := q.quad.Bounds
		if b.Width == 1 {
			if b.X <= 50 || b.X >= 150 {
				t.Fatalf("vertical at x=%v escapes bounds", b.X)
			}
			if b.Y != 20 || b.Height != 100 {
				t.Fatalf("vertical %+v does not span the bounds", b)
			}
		}
	}
}
