package teacanvas

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/wesen/nodecanvas/pkg/geometry"
	"github.com/wesen/nodecanvas/pkg/widget"
)

func testCanvas(w, h int) *Canvas {
	return NewCanvas(w, h, lipgloss.Color("#2c2c2c"))
}

func TestFillQuadPaintsInterior(t *testing.T) {
	c := testCanvas(20, 10)
	fill := lipgloss.Color("#3a3a3a")
	c.FillQuad(widget.Quad{Bounds: geometry.Rect(2, 1, 5, 3)}, widget.Bg(fill))

	want := c.styles.Key(nil, fill)
	for y := 1; y <= 3; y++ {
		for x := 2; x <= 6; x++ {
			if got := c.buf.Cells[y][x].Style; got != want {
				t.Fatalf("cell (%d,%d) style = %d, want fill", x, y, got)
			}
		}
	}
	// One past the right edge stays background.
	if c.buf.Cells[1][7].Style == want {
		t.Fatal("fill leaked past the quad's right edge")
	}
}

func TestFillQuadBorderRunes(t *testing.T) {
	c := testCanvas(20, 10)
	c.FillQuad(widget.Quad{
		Bounds: geometry.Rect(0, 0, 6, 4),
		Border: widget.Border{Color: lipgloss.Color("#565656"), Width: 1},
	}, widget.Bg(lipgloss.Color("#3a3a3a")))

	if got := c.buf.Cells[0][0].Ch; got != '┌' {
		t.Errorf("top-left = %q, want ┌", got)
	}
	if got := c.buf.Cells[0][5].Ch; got != '┐' {
		t.Errorf("top-right = %q, want ┐", got)
	}
	if got := c.buf.Cells[3][0].Ch; got != '└' {
		t.Errorf("bottom-left = %q, want └", got)
	}
	if got := c.buf.Cells[3][5].Ch; got != '┘' {
		t.Errorf("bottom-right = %q, want ┘", got)
	}
	if got := c.buf.Cells[0][2].Ch; got != '─' {
		t.Errorf("top edge = %q, want ─", got)
	}
	if got := c.buf.Cells[1][0].Ch; got != '│' {
		t.Errorf("left edge = %q, want │", got)
	}
	if got := c.buf.Cells[1][1].Ch; got != ' ' {
		t.Errorf("interior = %q, want space", got)
	}
}

func TestFillQuadRoundedCorners(t *testing.T) {
	c := testCanvas(10, 5)
	c.FillQuad(widget.Quad{
		Bounds: geometry.Rect(0, 0, 4, 3),
		Border: widget.Border{Color: lipgloss.Color("#565656"), Width: 1, Radius: 2},
	}, widget.Bg(lipgloss.Color("#3a3a3a")))

	if got := c.buf.Cells[0][0].Ch; got != '╭' {
		t.Errorf("rounded top-left = %q, want ╭", got)
	}
	if got := c.buf.Cells[2][3].Ch; got != '╯' {
		t.Errorf("rounded bottom-right = %q, want ╯", got)
	}
}

func TestTextKeepsUnderlyingBackground(t *testing.T) {
	c := testCanvas(20, 5)
	fill := lipgloss.Color("#3a3a3a")
	fg := lipgloss.Color("#ffffff")
	c.FillQuad(widget.Quad{Bounds: geometry.Rect(0, 0, 20, 5)}, widget.Bg(fill))
	c.Text("hi", geometry.Pt(3, 2), fg)

	want := c.styles.Key(fg, fill)
	if got := c.buf.Cells[2][3]; got.Ch != 'h' || got.Style != want {
		t.Fatalf("cell = %+v, want 'h' with the quad's fill behind it", got)
	}
	if got := c.buf.Cells[2][4].Ch; got != 'i' {
		t.Fatalf("second rune = %q, want 'i'", got)
	}
}

func TestStrokeBezierHorizontal(t *testing.T) {
	c := testCanvas(20, 5)
	c.StrokeBezier(widget.Bezier{
		From:     geometry.Pt(2, 2),
		Control1: geometry.Pt(6, 2),
		Control2: geometry.Pt(10, 2),
		To:       geometry.Pt(14, 2),
	}, 1, lipgloss.Color("#9a9a9a"))

	for x := 3; x <= 13; x++ {
		if got := c.buf.Cells[2][x].Ch; got != '─' {
			t.Fatalf("cell (%d,2) = %q, want ─", x, got)
		}
	}
	if got := c.buf.Cells[1][8].Ch; got != ' ' {
		t.Fatal("stroke strayed off the line")
	}
}

func TestWithLayerClips(t *testing.T) {
	c := testCanvas(20, 10)
	fill := lipgloss.Color("#3a3a3a")

	c.WithLayer(geometry.Rect(0, 0, 5, 5), func() {
		c.FillQuad(widget.Quad{Bounds: geometry.Rect(0, 0, 20, 10)}, widget.Bg(fill))
	})

	filled := c.styles.Key(nil, fill)
	if got := c.buf.Cells[2][2].Style; got != filled {
		t.Fatal("cell inside the layer was not painted")
	}
	if got := c.buf.Cells[2][10].Style; got == filled {
		t.Fatal("cell outside the layer was painted")
	}

	// The clip pops with the layer.
	c.FillQuad(widget.Quad{Bounds: geometry.Rect(10, 0, 2, 1)}, widget.Bg(fill))
	if got := c.buf.Cells[0][10].Style; got != filled {
		t.Fatal("clip leaked out of the layer")
	}
}

func TestNestedLayersIntersect(t *testing.T) {
	c := testCanvas(20, 10)
	fill := lipgloss.Color("#3a3a3a")

	c.WithLayer(geometry.Rect(0, 0, 10, 10), func() {
		c.WithLayer(geometry.Rect(5, 0, 10, 10), func() {
			c.FillQuad(widget.Quad{Bounds: geometry.Rect(0, 0, 20, 10)}, widget.Bg(fill))
		})
	})

	filled := c.styles.Key(nil, fill)
	if got := c.buf.Cells[0][7].Style; got != filled {
		t.Fatal("cell in the intersection was not painted")
	}
	if got := c.buf.Cells[0][3].Style; got == filled {
		t.Fatal("cell outside the inner layer was painted")
	}
	if got := c.buf.Cells[0][12].Style; got == filled {
		t.Fatal("cell outside the outer layer was painted")
	}
}
