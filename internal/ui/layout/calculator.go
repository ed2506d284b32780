// Package layout provides pure functions for UI dimension calculations.
package layout

// NotificationBorderHeight is the height of borders around notifications.
const NotificationBorderHeight = 2

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight      int
	SearchBarHeight   int
	FooterHeight      int
	NotificationCount int // notification lines reserved below the grid
}

// ContentHeight calculates the available height for the card grid. This is
// the terminal height minus header, search bar, notifications and footer.
// It is never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.SearchBarHeight
	height -= NotificationHeight(opts.NotificationCount)
	height -= opts.FooterHeight
	return max(height, 0)
}

// NotificationHeight returns the height needed for the given number of notifications.
func NotificationHeight(count int) int {
	if count == 0 {
		return 0
	}
	return count + NotificationBorderHeight
}

// GridColumns returns how many cells of cellWidth separated by gap fit in
// width. At least one column is always returned.
func GridColumns(width, cellWidth, gap int) int {
	if cellWidth <= 0 {
		return 1
	}
	return max((width+gap)/(cellWidth+gap), 1)
}

// GridRows returns how many rows of cellHeight fit in height. At least one
// row is always returned so a short terminal still shows the selection.
func GridRows(height, cellHeight int) int {
	if cellHeight <= 0 {
		return 1
	}
	return max(height/cellHeight, 1)
}
