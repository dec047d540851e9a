// Package common defines the error taxonomy shared by the aggregation service,
// the upload broker and their transports. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports a missing or placeholder credential. It is
	// returned before any network I/O takes place.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidRequest reports a missing or malformed caller-supplied field.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream reports a non-success answer from the search provider or
	// the object-storage provider.
	ErrUpstream = errors.New("upstream error")

	// ErrNotFound is returned by repositories for an unknown record id.
	ErrNotFound = errors.New("not found")

	// ErrStorageRead reports an unreadable metadata store. A store that was
	// never written is not an error.
	ErrStorageRead = errors.New("storage read error")
)

// RequestError is a rejected caller input. Message is safe to show.
type RequestError struct {
	Message string
}

// InvalidRequest builds a *RequestError with a human-readable reason.
func InvalidRequest(format string, args ...any) error {
	return &RequestError{Message: fmt.Sprintf(format, args...)}
}

func (e *RequestError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.Message
}

// Is makes every RequestError match ErrInvalidRequest.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// UpstreamError captures details of a failed call to an external provider.
// Message is what the caller gets to see; Err keeps the underlying cause.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func NewUpstreamError(provider string, statusCode int, message string, err error) *UpstreamError {
	return &UpstreamError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes every UpstreamError match ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// Detail returns a message suitable for logs.
func (e *UpstreamError) Detail() string {
	underlying := ""
	if e.Err != nil {
		underlying = fmt.Sprintf(" (underlying error: %s)", e.Err.Error())
	}
	return fmt.Sprintf("%s returned status %d: %s%s", e.Provider, e.StatusCode, e.Message, underlying)
}
