package keymap

import "strings"

var namedKeys = map[string]string{
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	" ":     "Space",
	"space": "Space",
	"home":  "Home",
	"/":     "Slash",
	"f1":    "F1",
}

var arrows = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// CodeForKey translates a terminal key name (as bubbletea reports it) to the
// KeyboardEvent.code of the physical key. Shifted letters map to the same
// code and arrows ignore modifiers. Unknown keys return "".
func CodeForKey(key string) string {
	if base := stripModifiers(key); arrows[base] {
		key = base
	}
	if code, ok := namedKeys[key]; ok {
		return code
	}
	if len(key) != 1 {
		return ""
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return "Key" + strings.ToUpper(key)
	case c >= '0' && c <= '9':
		return "Digit" + key
	}
	return ""
}

// stripModifiers drops leading ctrl+, alt+ and shift+ prefixes.
func stripModifiers(key string) string {
	for {
		rest, ok := strings.CutPrefix(key, "ctrl+")
		if !ok {
			rest, ok = strings.CutPrefix(key, "alt+")
		}
		if !ok {
			rest, ok = strings.CutPrefix(key, "shift+")
		}
		if !ok || rest == "" {
			return key
		}
		key = rest
	}
}
