package app

import (
	"github.com/llehouerou/sweetshop/internal/errmsg"
	"github.com/llehouerou/sweetshop/internal/sweets"
)

// ItemsLoadedMsg carries the result of fetching the full catalog.
type ItemsLoadedMsg struct {
	Items []sweets.Item
	Err   error
}

// SearchResultMsg carries the result of a filtered search.
type SearchResultMsg struct {
	Criteria sweets.Criteria
	Items    []sweets.Item
	Err      error
}

// MutationResultMsg reports the outcome of a purchase, restock, create,
// update or delete request.
type MutationResultMsg struct {
	Op      errmsg.Op
	ItemID  string
	Success string // toast text on success
	Err     error
}
