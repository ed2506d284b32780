package sweets

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrice is returned for prices that are not non-negative decimals.
	ErrInvalidPrice = errors.New("price must be a non-negative number")
	// ErrInvalidQuantity is returned for quantities that are not non-negative integers.
	ErrInvalidQuantity = errors.New("quantity must be a non-negative whole number")
)

// ValidPriceInput reports whether s is a partially typed price: digits with
// at most one decimal point and at most two digits after it.
func ValidPriceInput(s string) bool {
	whole, frac, hasDot := strings.Cut(s, ".")
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return false
	}
	return !hasDot || len(frac) <= 2
}

// ValidQuantityInput reports whether s holds digits only.
func ValidQuantityInput(s string) bool {
	return digitsOnly(s)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParsePrice parses a non-negative decimal price.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d.Round(2), nil
}

// ParseQuantity parses a non-negative integer quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}
