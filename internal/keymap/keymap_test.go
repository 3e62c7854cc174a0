//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/llehouerou/moo/internal/panel"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"navigation context", "navigation", true, 6},
		{"playback context", "playback", true, 1},
		{"panels context", "panels", true, 8},
		{"tracks context", "tracks", true, 10},
		{"page context", "page", true, 6},
		{"host context", "host", true, 1},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestPanelBindingsCoverAllPanels(t *testing.T) {
	bound := make(map[string]bool)
	for _, b := range ByContext("panels") {
		if b.Action != ActionTogglePanel {
			t.Errorf("panels binding %v has action %q", b.Keys, b.Action)
		}
		bound[b.Panel] = true
	}
	for _, id := range panel.All {
		if !bound[id] {
			t.Errorf("panel %q has no binding", id)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
		if b.Action == ActionTrack && b.Track == 0 {
			t.Errorf("binding[%d] (%v) is a track binding without a track", i, b.Keys)
		}
		if b.Action == ActionTogglePanel && b.Panel == "" {
			t.Errorf("binding[%d] (%v) is a panel binding without a panel", i, b.Keys)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	valid := make(map[string]bool)
	for _, c := range Contexts {
		valid[c] = true
	}

	for i, b := range Bindings {
		if !valid[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestBindingsHaveUniqueCodes(t *testing.T) {
	seen := make(map[string]int)
	for i, b := range Bindings {
		for _, k := range b.Keys {
			if j, dup := seen[k]; dup {
				t.Errorf("code %q bound by binding[%d] and binding[%d]", k, j, i)
			}
			seen[k] = i
		}
	}
}

func TestCodeForKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"up", "ArrowUp"},
		{"down", "ArrowDown"},
		{"left", "ArrowLeft"},
		{"right", "ArrowRight"},
		{" ", "Space"},
		{"/", "Slash"},
		{"f1", "F1"},
		{"space", "Space"},
		{"home", "Home"},
		{"n", "KeyN"},
		{"N", "KeyN"},
		{"0", "Digit0"},
		{"7", "Digit7"},
		{"shift+up", "ArrowUp"},
		{"ctrl+right", "ArrowRight"},
		{"alt+left", "ArrowLeft"},
		{"ctrl+shift+down", "ArrowDown"},
		{"ctrl+c", ""},
		{"alt+n", ""},
		{"enter", ""},
		{"?", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := CodeForKey(tt.key); got != tt.want {
				t.Errorf("CodeForKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
