// Package icons provides the glyphs used by the terminal views.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for a style.
type Icons struct {
	Play       string
	Pause      string
	Repeat     string
	Shuffle    string
	Album      string
	Volume     string
	VolumeMute string
	Loading    string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",      // nf-fa-play
		Pause:      "\uf04c",      // nf-fa-pause
		Repeat:     "\U000f0456",  // nf-md-repeat
		Shuffle:    "\U000f049f",  // nf-md-shuffle
		Album:      "\U000f0025 ", // nf-md-album
		Volume:     "\uf028",      // nf-fa-volume_up
		VolumeMute: "\uf6a9",      // nf-fa-volume_xmark
		Loading:    "\uf110 ",     // nf-fa-spinner
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Repeat:     "🔁",
		Shuffle:    "🔀",
		Album:      "💿 ",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Loading:    "⏳ ",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Repeat:     "[R]",
		Shuffle:    "[S]",
		Album:      "",
		Volume:     "vol",
		VolumeMute: "mute",
		Loading:    "",
	}

	current = noneIcons
)

// Init selects the icon set. Call it once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

func Play() string { return current.Play }
func Pause() string { return current.Pause }
func Repeat() string { return current.Repeat }
func Shuffle() string { return current.Shuffle }

// Volume returns the volume glyph, or the muted one.
func Volume(muted bool) string {
	if muted {
		return current.VolumeMute
	}
	return current.Volume
}

// FormatAlbum prefixes an album title.
func FormatAlbum(name string) string {
	return current.Album + name
}

// FormatLoading prefixes a loading message.
func FormatLoading(msg string) string {
	return current.Loading + msg
}
