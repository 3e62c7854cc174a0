//go:build unix

package cover

import (
	"os"

	"golang.org/x/sys/unix"

	pagelayout "github.com/llehouerou/moo/internal/layout"
)

// TerminalCellSize asks the terminal for its cell size in pixels.
func TerminalCellSize() (pagelayout.CellSize, bool) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return pagelayout.DefaultCellSize, false
	}
	return pagelayout.CellSize{
		Width:  int(ws.Xpixel) / int(ws.Col),
		Height: int(ws.Ypixel) / int(ws.Row),
	}, true
}
