// Package errors defines the error type returned by the movies API client and
// the favourites flows. ClientError carries a type classification so callers
// can branch with errors.Is against the exported sentinels.
package errors

import (
	"fmt"
)

// ClientError represents a failure talking to the movies API or applying its
// result to a page.
type ClientError struct {
	Type       string
	Message    string
	StatusCode int
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches any ClientError of the same Type, so sentinels compare by kind.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// Error type constants
const (
	ErrorTypeHTTPStatus         = "HTTP_STATUS"
	ErrorTypeDecodeFailed       = "DECODE_FAILED"
	ErrorTypeTransportFailed    = "TRANSPORT_FAILED"
	ErrorTypeDuplicateFavourite = "DUPLICATE_FAVOURITE"
	ErrorTypeContainerNotFound  = "CONTAINER_NOT_FOUND"
	ErrorTypeInvalidPayload     = "INVALID_PAYLOAD"
)

// Sentinels for errors.Is.
var (
	ErrHTTPStatus         = &ClientError{Type: ErrorTypeHTTPStatus}
	ErrDecodeFailed       = &ClientError{Type: ErrorTypeDecodeFailed}
	ErrTransportFailed    = &ClientError{Type: ErrorTypeTransportFailed}
	ErrDuplicateFavourite = &ClientError{Type: ErrorTypeDuplicateFavourite}
	ErrContainerNotFound  = &ClientError{Type: ErrorTypeContainerNotFound}
	ErrInvalidPayload     = &ClientError{Type: ErrorTypeInvalidPayload}
)

// NewClientError creates a new ClientError
func NewClientError(errorType, message string, cause error) *ClientError {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewHTTPStatusError reports a non-success response.
func NewHTTPStatusError(status int) *ClientError {
	e := NewClientError(ErrorTypeHTTPStatus, fmt.Sprintf("HTTP error! Status: %d", status), nil)
	e.StatusCode = status
	return e
}

// NewDecodeError reports a response body that is not the expected JSON.
func NewDecodeError(what string, cause error) *ClientError {
	return NewClientError(ErrorTypeDecodeFailed, fmt.Sprintf("failed to decode %s", what), cause)
}

// NewTransportError reports a request that never produced a response.
func NewTransportError(method, url string, cause error) *ClientError {
	return NewClientError(ErrorTypeTransportFailed, fmt.Sprintf("%s %s failed", method, url), cause)
}

// NewDuplicateFavouriteError reports an add for an id already in favourites.
func NewDuplicateFavouriteError(id fmt.Stringer) *ClientError {
	return NewClientError(ErrorTypeDuplicateFavourite, fmt.Sprintf("Movie %s is already added to favourites", id), nil)
}

// NewContainerNotFoundError reports a page without the expected list element.
func NewContainerNotFoundError(id string) *ClientError {
	return NewClientError(ErrorTypeContainerNotFound, fmt.Sprintf("Element with ID '%s' not found", id), nil)
}

// NewInvalidPayloadError reports an unreadable card payload.
func NewInvalidPayloadError(cause error) *ClientError {
	return NewClientError(ErrorTypeInvalidPayload, "invalid movie payload", cause)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	for err != nil {
		if ce, ok := err.(*ClientError); ok && ce.StatusCode != 0 {
			return ce.StatusCode
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}
