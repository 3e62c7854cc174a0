package player

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Downloader fetches a server resource.
type Downloader interface {
	Download(ctx context.Context, u *url.URL, w io.Writer) (int64, error)
}

// Cache keeps downloaded tracks on disk, mirroring the server's paths so
// that a track and its album cover share a directory.
type Cache struct {
	dir      string
	maxBytes int64
	dl       Downloader
}

// NewCache creates a cache rooted at dir. A maxBytes of 0 disables pruning.
func NewCache(dir string, maxBytes int64, dl Downloader) *Cache {
	return &Cache{dir: dir, maxBytes: maxBytes, dl: dl}
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns where u is stored.
func (c *Cache) Path(u *url.URL) string {
	p := path.Clean("/" + u.Path)
	return filepath.Join(c.dir, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// Fetch returns the local copy of u, downloading it first when needed.
func (c *Cache) Fetch(ctx context.Context, u *url.URL) (string, error) {
	return c.FetchAs(ctx, u, c.Path(u))
}

// FetchAs downloads u to dest unless dest already exists.
func (c *Cache) FetchAs(ctx context.Context, u *url.URL, dest string) (string, error) {
	if fi, err := os.Stat(dest); err == nil && fi.Size() > 0 {
		now := time.Now()
		_ = os.Chtimes(dest, now, now) // mark as recently used
		return dest, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".part-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := c.dl.Download(ctx, u, tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("move into cache: %w", err)
	}
	return dest, nil
}

type cachedFile struct {
	path string
	info fs.FileInfo
}

func (c *Cache) files() ([]cachedFile, error) {
	var files []cachedFile
	err := filepath.WalkDir(c.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // file vanished while walking
		}
		files = append(files, cachedFile{path: p, info: info})
		return nil
	})
	return files, err
}

// Size returns the total size of cached files.
func (c *Cache) Size() (int64, error) {
	files, err := c.files()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, f := range files {
		total += f.info.Size()
	}
	return total, nil
}

// Prune removes the least recently used files until the cache fits in
// maxBytes. Files under keep are never removed. Returns the bytes freed.
func (c *Cache) Prune(keep ...string) (int64, error) {
	if c.maxBytes <= 0 {
		return 0, nil
	}
	files, err := c.files()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, f := range files {
		total += f.info.Size()
	}
	if total <= c.maxBytes {
		return 0, nil
	}

	slices.SortFunc(files, func(a, b cachedFile) int {
		return cmp.Compare(a.info.ModTime().UnixNano(), b.info.ModTime().UnixNano())
	})

	var freed int64
	for _, f := range files {
		if total <= c.maxBytes {
			break
		}
		if slices.Contains(keep, f.path) {
			continue
		}
		if err := os.Remove(f.path); err != nil {
			continue
		}
		total -= f.info.Size()
		freed += f.info.Size()
	}
	return freed, nil
}

// Describe returns a short human-readable summary such as "12 MB cached".
func (c *Cache) Describe() string {
	size, err := c.Size()
	if err != nil {
		return "cache unavailable"
	}
	return humanize.Bytes(uint64(size)) + " cached" //nolint:gosec // size is a sum of file sizes
}

// FormatSize formats a byte count the way the cache reports it.
func FormatSize(n int64) string {
	return humanize.Bytes(uint64(max(n, 0))) //nolint:gosec // clamped above
}
