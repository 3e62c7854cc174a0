package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/moo/internal/ui/styles"
)

// minBarWidth is the narrowest progress bar worth drawing.
const minBarWidth = 5

// RenderProgressBar draws position over duration in width cells.
// Format: ━━━━━─────
func RenderProgressBar(t *styles.Theme, position, duration time.Duration, width int) string {
	if width < minBarWidth {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(width) * ratio)
	return filledStyle(t).Render(strings.Repeat("━", filled)) +
		emptyStyle(t).Render(strings.Repeat("─", width-filled))
}

// FormatDuration renders m:ss.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
