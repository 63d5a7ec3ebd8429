// Package teacanvas is the terminal reference backend: it rasterizes
// the renderer contract into a 2D character buffer, renders the buffer
// with Lipgloss, and adapts Bubble Tea mouse messages into pointer
// events. One widget unit maps to one terminal cell.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package teacanvas

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// StyleKey identifies an interned foreground/background color pair.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Styles interns color pairs so the buffer stores small keys instead of
// full styles, and run merging can compare keys cheaply.
type Styles struct {
	keys   map[stylePair]StyleKey
	styles []lipgloss.Style
}

type stylePair struct {
	fg, bg color.Color
}

// NewStyles creates an empty style table.
func NewStyles() *Styles {
	return &Styles{keys: make(map[stylePair]StyleKey)}
}

// Key returns the key for the given color pair, interning it on first
// use. Either color may be nil to leave that attribute unset.
func (s *Styles) Key(fg, bg color.Color) StyleKey {
	pair := stylePair{fg: fg, bg: bg}
	if k, ok := s.keys[pair]; ok {
		return k
	}
	style := lipgloss.NewStyle()
	if fg != nil {
		style = style.Foreground(fg)
	}
	if bg != nil {
		style = style.Background(bg)
	}
	k := StyleKey(len(s.styles))
	s.keys[pair] = k
	s.styles = append(s.styles, style)
	return k
}

// Style returns the interned style for a key.
func (s *Styles) Style(k StyleKey) lipgloss.Style {
	if int(k) < 0 || int(k) >= len(s.styles) {
		return lipgloss.NewStyle()
	}
	return s.styles[k]
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// NewBuffer creates a Buffer of the given size, filled with spaces in
// the given default style.
func NewBuffer(w, h int, defaultStyle StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string starting at (x, y), advancing x for each
// rune. Characters that fall outside the buffer are silently skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	for i, ch := range s {
		b.Set(x+i, y, ch, style)
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Render converts the buffer into a styled string using the table the
// keys were interned in.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run; this is
// significantly faster than per-cell rendering on dense canvases.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles *Styles) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)

	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]

		runStart := 0
		runStyle := row[0].Style

		for x := 1; x <= b.W; x++ {
			// Sentinel style at the end flushes the last run.
			curStyle := StyleKey(-1)
			if x < b.W {
				curStyle = row[x].Style
			}

			if curStyle != runStyle {
				chunk := make([]rune, x-runStart)
				for i := runStart; i < x; i++ {
					chunk[i-runStart] = row[i].Ch
				}
				sb.WriteString(styles.Style(runStyle).Render(string(chunk)))
				runStart = x
				runStyle = curStyle
			}
		}

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
