// Package sweets defines the catalog types shared by the API client and the UI.
package sweets

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The API exchanges prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a catalog product as returned by the remote API.
type Item struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// InStock reports whether at least one unit can be purchased.
func (i Item) InStock() bool {
	return i.Quantity > 0
}

// PriceLabel returns the price formatted with two decimals, e.g. "$1.50".
func (i Item) PriceLabel() string {
	return "$" + i.Price.StringFixed(2)
}

// Input is the request body for creating or updating an item.
type Input struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// InputFrom returns the editable fields of an existing item.
func InputFrom(item Item) Input {
	return Input{
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Quantity: item.Quantity,
	}
}

// FindByID returns the item with the given id and whether it was found.
func FindByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
