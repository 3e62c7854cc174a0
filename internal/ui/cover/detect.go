package cover

import (
	"os"
	"strings"
)

// Supported reports whether the terminal understands the Kitty graphics
// protocol. MOO_IMAGE_PROTOCOL=kitty or none overrides detection.
func Supported() bool {
	switch os.Getenv("MOO_IMAGE_PROTOCOL") {
	case "kitty":
		return true
	case "none":
		return false
	}

	// Contour inherits the parent terminal's variables but has no support.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; 22.04 added the protocol
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
