// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/sweetshop/internal/api"
)

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	// Catalog reads
	OpListSweets   Op = "load sweets"
	OpSearchSweets Op = "search sweets"

	// Mutations
	OpPurchase Op = "purchase"
	OpRestock  Op = "restock"
	OpCreate   Op = "create sweet"
	OpUpdate   Op = "update sweet"
	OpDelete   Op = "delete sweet"

	// Local state
	OpStateLoad Op = "load saved view"
	OpStateSave Op = "save view"

	// Initialization
	OpInitialize Op = "initialize application"
)

// fallbacks are shown when the server gives no message for a failed mutation.
var fallbacks = map[Op]string{
	OpPurchase: "Purchase failed",
	OpRestock:  "Restock failed",
	OpCreate:   "Failed to create sweet",
	OpUpdate:   "Failed to update sweet",
	OpDelete:   "Failed to delete sweet",
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Fallback returns the generic message for a failed operation.
func Fallback(op Op) string {
	if msg, ok := fallbacks[op]; ok {
		return msg
	}
	return "Failed to " + string(op)
}

// Notice returns the text of the error notification for a failed operation:
// the server-provided message when there is one, the generic fallback otherwise.
func Notice(op Op, err error) string {
	if err == nil {
		return ""
	}
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return Fallback(op)
}
