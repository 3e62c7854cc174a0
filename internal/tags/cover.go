package tags

import (
	"os"
	"path/filepath"
	"strings"
)

// CoverFilename is the name the client gives the album cover it downloads
// next to a cached track.
const CoverFilename = "cover.jpg"

// folderArt lists the images looked up next to a track, best first.
var folderArt = []string{
	CoverFilename, "cover.jpeg", "cover.png",
	"folder.jpg", "folder.png",
	"front.jpg", "front.png",
}

// FolderArtPath returns the cover image next to a track, or "".
func FolderArtPath(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range folderArt {
		for _, candidate := range []string{name, strings.ToUpper(name)} {
			p := filepath.Join(dir, candidate)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				return p
			}
		}
	}
	return ""
}
