package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Sentinel errors matched with errors.Is.
var (
	ErrNotFound     = errors.New("api: not found")
	ErrUnauthorized = errors.New("api: unauthorized")
)

// Error is a non-2xx response from the backend.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto the package sentinels.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// newError builds an Error from a response body. The backend reports
// failures as {"error": "..."}; some proxies use "message" or "msg".
func newError(status int, body []byte, requestID string) *Error {
	msg := ""
	if gjson.ValidBytes(body) {
		for _, key := range []string{"error", "message", "msg"} {
			if v := gjson.GetBytes(body, key); v.Exists() && v.Type == gjson.String && v.String() != "" {
				msg = v.String()
				break
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg, RequestID: requestID}
}

// Message returns the user-facing message carried by err when it is an
// *Error, and fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
