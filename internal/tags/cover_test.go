package tags

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFolderArtPath(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01.mp3")

	if got := FolderArtPath(track); got != "" {
		t.Errorf("FolderArtPath() = %q, want empty", got)
	}

	front := filepath.Join(dir, "FRONT.PNG")
	if err := os.WriteFile(front, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FolderArtPath(track); got != front {
		t.Errorf("FolderArtPath() = %q, want %q", got, front)
	}

	folder := filepath.Join(dir, "folder.png")
	if err := os.WriteFile(folder, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FolderArtPath(track); got != folder {
		t.Errorf("FolderArtPath() = %q, want %q", got, folder)
	}

	cover := filepath.Join(dir, CoverFilename)
	if err := os.WriteFile(cover, []byte("jpg"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FolderArtPath(track); got != cover {
		t.Errorf("FolderArtPath() = %q, want %q (higher priority)", got, cover)
	}
}

func TestFolderArtPath_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, CoverFilename), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FolderArtPath(filepath.Join(dir, "01.mp3")); got != "" {
		t.Errorf("FolderArtPath() = %q, want empty", got)
	}
}
