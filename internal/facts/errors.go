package facts

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers dial failures, timeouts, and non-2xx responses.
	ErrTransport = errors.New("facts: transport failure")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("facts: decode failure")
)

// StatusError is a non-2xx response from the API. It unwraps to ErrTransport.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("facts: unexpected status %d from %s", e.StatusCode, e.URL)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}
