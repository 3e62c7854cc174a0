package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for a page.
type Theme struct {
	// Accent used for the glowing title and focused borders
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Panel   lipgloss.Style // rounded box around a shown panel
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var lightTheme = Theme{
	Primary:   lipgloss.Color("#b45309"),
	Secondary: lipgloss.Color("#f59e0b"),

	FgBase:   lipgloss.Color("#262626"),
	FgMuted:  lipgloss.Color("#525252"),
	FgSubtle: lipgloss.Color("#a3a3a3"),

	Border: lipgloss.Color("#a3a3a3"),

	Error:   lipgloss.Color("#dc2626"),
	Warning: lipgloss.Color("#d97706"),
}

var darkTheme = Theme{
	Primary:   lipgloss.Color("#f1a208"),
	Secondary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the theme matching the page's dark mode.
func T(dark bool) *Theme {
	if dark {
		return &darkTheme
	}
	return &lightTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Glow renders text the way a glowing element looks: bold, brightest in
// the middle.
func (t *Theme) Glow(text string) string {
	return halo(text, t.Primary, t.Secondary)
}
