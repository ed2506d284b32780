// Package keymap defines key bindings for the application.
package keymap

// Binding contexts.
const (
	ContextGlobal = "global"
	ContextGrid   = "grid"
	ContextAdmin  = "admin"
	ContextSearch = "search"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings, in help display order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionSearch, []string{"/"}, "Search and filter", ContextGlobal},
	{ActionSort, []string{"o"}, "Cycle sort order", ContextGlobal},
	{ActionGPrefix, []string{"g"}, "", ContextGlobal},
	{ActionRefresh, []string{"g r"}, "Reload sweets", ContextGlobal},

	// Grid
	{ActionMoveLeft, []string{"h", "left"}, "Previous sweet", ContextGrid},
	{ActionMoveRight, []string{"l", "right"}, "Next sweet", ContextGrid},
	{ActionMoveUp, []string{"k", "up"}, "Row up", ContextGrid},
	{ActionMoveDown, []string{"j", "down"}, "Row down", ContextGrid},
	{ActionJumpStart, []string{"home"}, "First sweet", ContextGrid},
	{ActionJumpEnd, []string{"end"}, "Last sweet", ContextGrid},
	{ActionPurchase, []string{"enter", "b"}, "Purchase one", ContextGrid},

	// Admin
	{ActionNew, []string{"n"}, "Add new sweet", ContextAdmin},
	{ActionEdit, []string{"e"}, "Edit sweet", ContextAdmin},
	{ActionDelete, []string{"d"}, "Delete sweet", ContextAdmin},
	{ActionRestock, []string{"r"}, "Restock sweet", ContextAdmin},

	// Search bar
	{ActionLeaveSearch, []string{"esc", "enter"}, "Back to sweets", ContextSearch},
	{ActionClearSearch, []string{"ctrl+x"}, "Clear all filters", ContextSearch},
}

// ByContext returns key bindings filtered by context.
// Bindings without a description (sequence prefixes) are skipped.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context && kb.Description != "" {
			result = append(result, kb)
		}
	}
	return result
}

// InContexts returns the bindings of the given contexts.
func InContexts(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range All {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}
