// Package cover draws the album cover of the current page in terminals
// that support the Kitty graphics protocol.
package cover

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // covers are usually JPEG
	_ "image/png"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"

	pagelayout "github.com/llehouerou/moo/internal/layout"
)

// Default size of the cover area, in cells.
const (
	DefaultWidth  = 16
	DefaultHeight = 8
)

// ErrDisabled is returned by Prepare when images are not drawn.
var ErrDisabled = errors.New("cover images disabled")

var nextID uint32

// Renderer keeps at most one cover in terminal memory.
type Renderer struct {
	mu      sync.RWMutex
	enabled bool
	width   int
	height  int
	cell    pagelayout.CellSize

	path string
	id   uint32
}

// New creates a renderer for a width×height cell area. A disabled renderer
// never draws.
func New(enabled bool, width, height int, cell pagelayout.CellSize) *Renderer {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = pagelayout.DefaultCellSize
	}
	return &Renderer{enabled: enabled, width: width, height: height, cell: cell}
}

// Enabled reports whether covers are drawn at all.
func (r *Renderer) Enabled() bool {
	return r != nil && r.enabled
}

// Size returns the cover area in cells.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Prepare loads the image at path and returns the escape sequence that
// replaces the previous cover in terminal memory. Preparing the current
// path again returns "".
func (r *Renderer) Prepare(path string) (string, error) {
	if !r.Enabled() {
		return "", ErrDisabled
	}

	r.mu.RLock()
	same := path == r.path && r.id != 0
	r.mu.RUnlock()
	if same {
		return "", nil
	}

	img, err := load(path)
	if err != nil {
		return "", err
	}
	w, h := r.cell.Pixels(r.width, r.height)
	thumb := resize.Thumbnail(uint(max(w, 1)), uint(max(h, 1)), img, resize.Lanczos3) //nolint:gosec // small positive sizes

	id := atomic.AddUint32(&nextID, 1)
	seq, err := Transmit(thumb, id)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id != 0 {
		seq = Delete(r.id) + seq
	}
	r.path = path
	r.id = id
	return seq, nil
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// HasImage reports whether a cover is in terminal memory.
func (r *Renderer) HasImage() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id != 0
}

// Path returns the file of the current cover.
func (r *Renderer) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}

// Placeholder returns the blank area the cover is drawn over.
func (r *Renderer) Placeholder() string {
	return Placeholder(r.width, r.height)
}

// Place returns the sequence that shows the cover at a 1-based position,
// or "" without a cover.
func (r *Renderer) Place(row, col int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.id == 0 {
		return ""
	}
	return Place(r.id, row, col, r.width, r.height)
}

// Clear forgets the current cover and returns the sequence that removes it.
func (r *Renderer) Clear() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var seq string
	if r.id != 0 {
		seq = Delete(r.id)
	}
	r.path = ""
	r.id = 0
	return seq
}
