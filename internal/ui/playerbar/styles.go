package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/moo/internal/ui/styles"
)

func barStyle(t *styles.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

func titleStyle(t *styles.Theme) lipgloss.Style { return t.S().Title }

func infoStyle(t *styles.Theme) lipgloss.Style { return t.S().Muted }

func metaStyle(t *styles.Theme) lipgloss.Style { return t.S().Subtle }

func filledStyle(t *styles.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary)
}

func emptyStyle(t *styles.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgSubtle)
}
