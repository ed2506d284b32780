package sweets

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// Criteria holds the search form values exactly as typed.
// An empty string means the criterion is not set.
type Criteria struct {
	Name     string `schema:"name,omitempty"`
	Category string `schema:"category,omitempty"`
	MinPrice string `schema:"minPrice,omitempty"`
	MaxPrice string `schema:"maxPrice,omitempty"`
}

var encoder = schema.NewEncoder()

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Name == "" && c.Category == "" && c.MinPrice == "" && c.MaxPrice == ""
}

// Values encodes the set criteria as query parameters. Unset criteria are omitted.
func (c Criteria) Values() (url.Values, error) {
	values := url.Values{}
	if err := encoder.Encode(c, values); err != nil {
		return nil, err
	}
	return values, nil
}

// Summary returns a short human readable description of the active criteria.
func (c Criteria) Summary() string {
	var parts []string
	if c.Name != "" {
		parts = append(parts, "name~"+c.Name)
	}
	if c.Category != "" {
		parts = append(parts, "category~"+c.Category)
	}
	switch {
	case c.MinPrice != "" && c.MaxPrice != "":
		parts = append(parts, "$"+c.MinPrice+"-$"+c.MaxPrice)
	case c.MinPrice != "":
		parts = append(parts, ">= $"+c.MinPrice)
	case c.MaxPrice != "":
		parts = append(parts, "<= $"+c.MaxPrice)
	}
	return strings.Join(parts, ", ")
}
