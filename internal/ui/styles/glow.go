package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for ANSI palette colors, which have no fixed RGB value.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// halo renders text in bold with core at its center fading to edge at both
// ends. Each grapheme cluster gets one color, so combining marks and wide
// characters are never split.
func halo(text string, core, edge lipgloss.Color) string {
	clusters := graphemes(text)
	base := lipgloss.NewStyle().Bold(true)
	if len(clusters) < 3 {
		return base.Foreground(core).Render(text)
	}

	ramp := haloRamp(len(clusters), hexColor(core), hexColor(edge))
	var b strings.Builder
	for i, c := range clusters {
		b.WriteString(base.Foreground(lipgloss.Color(ramp[i].Hex())).Render(c))
	}
	return b.String()
}

// haloRamp blends from edge to core and back in Lab space.
func haloRamp(n int, core, edge colorful.Color) []colorful.Color {
	ramp := make([]colorful.Color, n)
	mid := float64(n-1) / 2
	for i := range ramp {
		d := float64(i) - mid
		if d < 0 {
			d = -d
		}
		ramp[i] = core.BlendLab(edge, d/mid).Clamped()
	}
	return ramp
}

func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// hexColor parses a #rrggbb lipgloss color.
func hexColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
