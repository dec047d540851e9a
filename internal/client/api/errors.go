package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
)

// Error is a non-2xx answer from the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
