package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionInvalidated means the refresh failed and the stored
	// credentials were cleared. The caller has to log in again.
	ErrSessionInvalidated = errors.New("session invalidated")

	// ErrNotAuthenticated is returned for authenticated calls made while no
	// credentials are held.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// APIError is a non-2xx answer from the server carried in the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
