package athlete

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound is returned when a selector matches no node in the page.
	ErrElementNotFound = errors.New("element not found")
	// ErrFoundRedirect is returned by fetchers that observe a 302 in the redirect chain.
	ErrFoundRedirect = errors.New("the request returned a 302 before redirecting")
	// ErrUnknownField is returned when a field name is not part of the field table.
	ErrUnknownField = errors.New("unknown field")
)

// ClientError reports an unsuccessful response from the UFC site.
type ClientError struct {
	URL        string
	StatusCode int
	Reason     string
	Err        error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("ufc: GET %s: %d %s", e.URL, e.StatusCode, e.Reason)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the site answered 404.
func (e *ClientError) NotFound() bool {
	return e.StatusCode == 404
}

// ExtractError wraps a failure to read a single field from a profile page.
type ExtractError struct {
	Field string
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Field, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
