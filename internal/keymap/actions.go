// Package keymap defines key bindings and action dispatch for the dashboard.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionSearch  Action = "search"
	ActionRefresh Action = "refresh"
	ActionSort    Action = "sort"

	// Key sequence prefix (g + key)
	ActionGPrefix Action = "g_prefix"

	// Grid navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Item actions
	ActionPurchase Action = "purchase" // enter/b

	// Admin item actions
	ActionNew     Action = "new"     // n
	ActionEdit    Action = "edit"    // e
	ActionDelete  Action = "delete"  // d
	ActionRestock Action = "restock" // r

	// Search bar actions
	ActionLeaveSearch Action = "leave_search" // esc/enter
	ActionClearSearch Action = "clear_search" // ctrl+x
)
