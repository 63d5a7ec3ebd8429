package grapheditor

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/nodecanvas/pkg/widget"
)

// Appearance holds the container's visual knobs. When a custom
// appearance is configured via GraphContainer.Style, all three
// guideline spacings and colors must be present; a nil field there is a
// configuration bug and fails loudly at draw time. A nil Background
// falls back to the default canvas color.
type Appearance struct {
	Background *widget.Background

	MinorGuidelinesSpacing *float64
	MinorGuidelinesColor   color.Color
	MidGuidelinesSpacing   *float64
	MidGuidelinesColor     color.Color
	MajorGuidelinesSpacing *float64
	MajorGuidelinesColor   color.Color
}

// DefaultAppearance is the built-in dark canvas theme.
func DefaultAppearance() Appearance {
	return Appearance{
		Background:             bg(lipgloss.Color("#2c2c2c")),
		MinorGuidelinesSpacing: f64(10),
		MinorGuidelinesColor:   lipgloss.Color("#313131"),
		MidGuidelinesSpacing:   f64(50),
		MidGuidelinesColor:     lipgloss.Color("#363636"),
		MajorGuidelinesSpacing: f64(250),
		MajorGuidelinesColor:   lipgloss.Color("#3f3f3f"),
	}
}

func bg(c color.Color) *widget.Background {
	b := widget.Bg(c)
	return &b
}

func f64(v float64) *float64 { return &v }

func mustSpacing(name string, v *float64) float64 {
	if v == nil {
		panic(fmt.Sprintf("grapheditor: appearance field %s is unset", name))
	}
	return *v
}

func mustColor(name string, c color.Color) color.Color {
	if c == nil {
		panic(fmt.Sprintf("grapheditor: appearance field %s is unset", name))
	}
	return c
}

// lipglossFallbackBackground backs a configured Appearance whose
// Background was left nil.
var lipglossFallbackBackground color.Color = lipgloss.Color("#2c2c2c")

// DefaultLinkColor strokes connections unless overridden per
// connection.
var DefaultLinkColor color.Color = lipgloss.Color("#9a9a9a")

// Node chrome defaults, overridable per node.
var (
	defaultNodeBackground  color.Color = lipgloss.Color("#3a3a3a")
	defaultNodeBorderColor color.Color = lipgloss.Color("#565656")
)
