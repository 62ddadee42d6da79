package jobpost

import (
	"errors"
	"net/http"
)

// Failure kinds returned by Service. Wrap them with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrValidation       = errors.New("validation failed")
	ErrStorage          = errors.New("storage failure")
	ErrConflict         = errors.New("already exists")
)

// HTTPStatus maps a Service error to the status code the controllers respond with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
