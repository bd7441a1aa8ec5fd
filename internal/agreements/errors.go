package agreements

import (
	"errors"
	"net/http"
)

// Domain errors for agreement operations.
var (
	ErrNotFound  = errors.New("agreement not found")
	ErrDuplicate = errors.New("agreement already exists")
	ErrNoFields  = errors.New("no lease terms extracted")
)

// MapHTTPStatus maps agreement domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoFields) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
