package keymap

// Dispatch is the outcome of resolving a key code.
type Dispatch struct {
	Action         Action
	Track          int
	Panel          string
	Shown          bool
	PreventDefault bool
}

// Resolver maps key codes to dispatches.
type Resolver struct {
	bindings map[string]Dispatch // code -> dispatch
	byAction map[Action][]string // action -> codes (for help/documentation)
}

// NewResolver creates a resolver from bindings. Later bindings win when
// two bind the same code.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Dispatch),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		d := Dispatch{
			Action:         b.Action,
			Track:          b.Track,
			Panel:          b.Panel,
			Shown:          b.Shown,
			PreventDefault: b.PreventDefault,
		}
		for _, key := range b.Keys {
			r.bindings[key] = d
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the dispatch for a key code. Unbound codes resolve to
// ActionNone.
func (r *Resolver) Resolve(code string) Dispatch {
	return r.bindings[code]
}

// KeysFor returns the codes bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
