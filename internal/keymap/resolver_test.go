//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"/", ActionSearch},
		{"k", ActionMoveUp},
		{"down", ActionMoveDown},
		{"enter", ActionPurchase},
		{"b", ActionPurchase},
		{"n", ActionNew},
		{"e", ActionEdit},
		{"d", ActionDelete},
		{"r", ActionRestock},
		{"o", ActionSort},
		{"g", ActionGPrefix},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_Sequences(t *testing.T) {
	r := NewResolver(All)

	if !r.IsPrefix("g") {
		t.Error("IsPrefix(g) = false, want true")
	}
	if r.IsPrefix("r") {
		t.Error("IsPrefix(r) = true, want false")
	}
	if got := r.ResolveSequence("g", "r"); got != ActionRefresh {
		t.Errorf("ResolveSequence(g, r) = %q, want %q", got, ActionRefresh)
	}
	if got := r.ResolveSequence("g", "x"); got != "" {
		t.Errorf("ResolveSequence(g, x) = %q, want empty", got)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionQuit)
	if !slices.Contains(keys, "q") || !slices.Contains(keys, "ctrl+c") {
		t.Errorf("KeysFor(ActionQuit) = %v, expected q and ctrl+c", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionDelete, []string{"d", "delete"}, "Delete", ContextAdmin},
		{ActionDelete, []string{"d"}, "Delete", ContextGrid},
	}

	keys := NewResolver(bindings).KeysFor(ActionDelete)

	if len(keys) != 2 || keys[0] != "d" || keys[1] != "delete" {
		t.Errorf("KeysFor(ActionDelete) = %v, want [d delete]", keys)
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
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver(nil)

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if r.IsPrefix("g") {
		t.Error("IsPrefix on empty resolver should be false")
	}
}
