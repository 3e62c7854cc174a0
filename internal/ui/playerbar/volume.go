package playerbar

import (
	"fmt"

	"github.com/llehouerou/moo/internal/icons"
	"github.com/llehouerou/moo/internal/ui/styles"
)

// RenderVolume renders the volume indicator, e.g. "vol  80%".
func RenderVolume(t *styles.Theme, volume float64) string {
	pct := int(volume*100 + 0.5)
	return metaStyle(t).Render(fmt.Sprintf("%s %3d%%", icons.Volume(pct == 0), pct))
}
