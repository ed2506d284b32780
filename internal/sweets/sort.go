package sweets

import (
	"cmp"
	"slices"
	"strings"
)

// SortMode orders the rendered grid. The API order is kept for SortNone.
type SortMode string

const (
	SortNone     SortMode = ""
	SortName     SortMode = "name"
	SortPrice    SortMode = "price"
	SortQuantity SortMode = "quantity"
)

var sortCycle = []SortMode{SortNone, SortName, SortPrice, SortQuantity}

// Next returns the mode that follows m in the cycle.
func (m SortMode) Next() SortMode {
	i := slices.Index(sortCycle, m)
	return sortCycle[(i+1)%len(sortCycle)]
}

// Label returns the mode name shown in the status line.
func (m SortMode) Label() string {
	if m == SortNone {
		return "default"
	}
	return string(m)
}

// Sorted returns a sorted copy of items. The input slice is not modified.
func Sorted(items []Item, mode SortMode) []Item {
	out := slices.Clone(items)
	switch mode {
	case SortName:
		slices.SortStableFunc(out, func(a, b Item) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortPrice:
		slices.SortStableFunc(out, func(a, b Item) int {
			return a.Price.Cmp(b.Price)
		})
	case SortQuantity:
		slices.SortStableFunc(out, func(a, b Item) int {
			return cmp.Compare(a.Quantity, b.Quantity)
		})
	}
	return out
}
