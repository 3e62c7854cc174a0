// Package layout provides pure functions for terminal dimension calculations.
package layout

import pagelayout "github.com/llehouerou/moo/internal/layout"

// MinPanelWidth is the narrowest a side panel column is allowed to get.
const MinPanelWidth = 24

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight    int
	PlayerBarHeight int // 0 without audio
	StatusHeight    int // 0 when there is no message
}

// ContentHeight returns the rows left for the page body.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.PlayerBarHeight-opts.StatusHeight, 0)
}

// SideBySide reports whether shown panels sit beside the page body. Small
// and thin pages stack them below.
func SideBySide(class pagelayout.Class, width int) bool {
	return class == pagelayout.ClassDefault && width >= 3*MinPanelWidth
}

// MainWidth is the width of the page body column.
func MainWidth(windowWidth int, sideBySide, panelsShown bool) int {
	if sideBySide && panelsShown {
		return windowWidth - PanelWidth(windowWidth, sideBySide, panelsShown)
	}
	return windowWidth
}

// PanelWidth is the width of the panel column: a third of the window side
// by side, the full width when stacked.
func PanelWidth(windowWidth int, sideBySide, panelsShown bool) int {
	if !panelsShown {
		return 0
	}
	if sideBySide {
		return max(windowWidth/3, MinPanelWidth)
	}
	return windowWidth
}

// PlayerBarRow returns the 1-based row where the player bar starts, or 0
// when there is none.
func PlayerBarRow(windowHeight, playerBarHeight, statusHeight int) int {
	if playerBarHeight == 0 {
		return 0
	}
	return windowHeight - statusHeight - playerBarHeight + 1
}
