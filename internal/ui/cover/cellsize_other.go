//go:build !unix

package cover

import pagelayout "github.com/llehouerou/moo/internal/layout"

// TerminalCellSize asks the terminal for its cell size in pixels.
func TerminalCellSize() (pagelayout.CellSize, bool) {
	return pagelayout.DefaultCellSize, false
}
