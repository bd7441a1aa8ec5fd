package notify

import (
	"errors"
	"net/http"
)

// Domain errors for notification operations.
var (
	ErrNotConfigured = errors.New("smtp sender not configured")
	ErrNoRecipients  = errors.New("no notification recipients registered")
)

// MapHTTPStatus maps notification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrNoRecipients) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
