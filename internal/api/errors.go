package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is returned for responses with a non-2xx status.
// Message holds the server-provided "message" field, if any.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API returned status %d", e.Status)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = strings.TrimSpace(eb.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(eb.Error)
		}
	}
	return apiErr
}

// ServerMessage extracts the server-provided message from err.
// It returns "" when err is not an *Error or the server sent no message.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
