package keymap

import "strings"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	prefixes map[string]bool     // first keys of multi-key sequences
}

// NewResolver creates a resolver from bindings. Sequence keys are written
// with a space, e.g. "g r".
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		prefixes: make(map[string]bool),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
			if first, _, ok := strings.Cut(key, " "); ok {
				r.prefixes[first] = true
			}
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// ResolveSequence resolves key pressed after prefix, e.g. ("g", "r").
func (r *Resolver) ResolveSequence(prefix, key string) Action {
	return r.bindings[prefix+" "+key]
}

// IsPrefix reports whether key starts a multi-key sequence.
func (r *Resolver) IsPrefix(key string) bool {
	return r.prefixes[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
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
