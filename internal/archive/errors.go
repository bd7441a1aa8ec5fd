package archive

import (
	"errors"
	"net/http"
)

// Domain errors for archive operations.
var (
	ErrNotFound  = errors.New("archived agreement not found")
	ErrDuplicate = errors.New("agreement already active")
)

// MapHTTPStatus maps archive domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
