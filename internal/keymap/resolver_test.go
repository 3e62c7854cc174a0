//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	"github.com/llehouerou/moo/internal/panel"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{Action: ActionNext, Keys: []string{"KeyN"}, Description: "Next", Context: "navigation"},
		{Action: ActionPlayPause, Keys: []string{"Space"}, Description: "Play/pause", Context: "playback"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
	if r.bindings == nil {
		t.Error("bindings map is nil")
	}
	if r.byAction == nil {
		t.Error("byAction map is nil")
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		code     string
		expected Dispatch
	}{
		{"ArrowUp", Dispatch{Action: ActionPrev, PreventDefault: true}},
		{"ArrowLeft", Dispatch{Action: ActionPrev, PreventDefault: true}},
		{"ArrowDown", Dispatch{Action: ActionNext, PreventDefault: true}},
		{"ArrowRight", Dispatch{Action: ActionNext, PreventDefault: true}},
		{"KeyN", Dispatch{Action: ActionNext}},
		{"KeyP", Dispatch{Action: ActionPrev}},
		{"KeyR", Dispatch{Action: ActionRandom}},
		{"KeyT", Dispatch{Action: ActionRandomTrack}},
		{"Space", Dispatch{Action: ActionPlayPause, PreventDefault: true}},
		{"KeyC", Dispatch{Action: ActionTogglePanel, Panel: panel.Covers}},
		{"KeyD", Dispatch{Action: ActionTogglePanel, Panel: panel.Metadata}},
		{"KeyG", Dispatch{Action: ActionTogglePanel, Panel: panel.Tags}},
		{"KeyH", Dispatch{Action: ActionTogglePanel, Panel: panel.Help}},
		{"KeyI", Dispatch{Action: ActionTogglePanel, Panel: panel.Index}},
		{"KeyL", Dispatch{Action: ActionTogglePanel, Panel: panel.Classical}},
		{"KeyM", Dispatch{Action: ActionTogglePanel, Panel: panel.Related}},
		{"Digit1", Dispatch{Action: ActionTrack, Track: 1}},
		{"Digit9", Dispatch{Action: ActionTrack, Track: 9}},
		{"Digit0", Dispatch{Action: ActionTrack, Track: 10}},
		{"KeyZ", Dispatch{}},
		{"F5", Dispatch{}},
		{"", Dispatch{}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			result := r.Resolve(tt.code)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.code, result, tt.expected)
			}
		})
	}
}

func TestResolver_UnmappedIsNone(t *testing.T) {
	r := NewResolver(Bindings)
	if got := r.Resolve("KeyX").Action; got != ActionNone {
		t.Errorf("Resolve(KeyX).Action = %q, want none", got)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionNext, []string{"ArrowDown", "ArrowRight", "KeyN"}},
		{ActionPrev, []string{"ArrowUp", "ArrowLeft", "KeyP"}},
		{ActionPlayPause, []string{"Space"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{Action: ActionNext, Keys: []string{"KeyN", "ArrowDown"}, Description: "Next", Context: "navigation"},
		{Action: ActionNext, Keys: []string{"KeyN"}, Description: "Next", Context: "page"},
	}

	r := NewResolver(bindings)

	count := 0
	for _, k := range r.KeysFor(ActionNext) {
		if k == "KeyN" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected KeyN to appear once after deduplication, got %d", count)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"all duplicates", []string{"a", "a", "a"}, []string{"a"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if d := r.Resolve("KeyN"); d.Action != ActionNone {
		t.Errorf("Resolve on empty resolver should return none, got %q", d.Action)
	}

	if keys := r.KeysFor(ActionNext); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
