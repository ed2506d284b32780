// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the title bar and its separator.
	HeaderHeight = 2

	// SearchBarHeight is the bordered single-line search form.
	SearchBarHeight = 3

	// FooterHeight is the key hint line at the bottom of the dashboard.
	FooterHeight = 1

	// ToastHeight is the bordered single-line notification.
	ToastHeight = 3

	// CardHeight is the rendered height of one item card including its border.
	CardHeight = 9

	// CardGap is the horizontal space between two cards in a row.
	CardGap = 1

	// MinCardWidth is the narrowest card that still fits its action row.
	MinCardWidth = 24
)
