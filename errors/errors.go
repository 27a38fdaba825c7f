// Package errors provides the failure taxonomy for GRIP publish operations.
// Every failed publish surfaces as a single *PublishError classified into
// one of three kinds, so callers can discriminate transport-level failure,
// HTTP-level failure, and body-read failure without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a publish failure.
type Kind int

const (
	// KindTransport means no HTTP response was ever obtained
	// (DNS, connect, timeout, reset).
	KindTransport Kind = iota
	// KindHTTP means a response was obtained with a status outside 2xx.
	KindHTTP
	// KindBodyRead means the status was 2xx but the body stream failed
	// while being drained.
	KindBodyRead
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindBodyRead:
		return "body_read"
	default:
		return "unknown"
	}
}

// NoStatus is the sentinel status code reserved to mean "no HTTP response
// was ever obtained".
const NoStatus = -1

// BodyReadMessage is the fixed message carried by every KindBodyRead error.
const BodyReadMessage = "Connection Closed Unexpectedly"

// PublishError is the uniform failure value returned to publish callers.
// StatusCode is NoStatus for transport failures and the actual response
// code otherwise. HTTPBody is non-nil only for KindBodyRead and preserves
// the underlying read failure as an error value, never a string rendering.
type PublishError struct {
	Kind       Kind
	Message    string
	StatusCode int
	HTTPBody   error

	cause error
}

// Error implements the error interface.
func (e *PublishError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is/errors.As
// against the original transport or read error.
func (e *PublishError) Unwrap() error {
	return e.cause
}

// Data returns the diagnostic mapping associated with the failure.
// status_code is always present; http_body is present only when a body
// read was attempted in association with the failure.
func (e *PublishError) Data() map[string]any {
	data := map[string]any{
		"status_code": e.StatusCode,
	}
	if e.HTTPBody != nil {
		data["http_body"] = e.HTTPBody
	}
	return data
}

// Transport creates a PublishError for a failure that occurred before any
// HTTP response existed. The message is the transport error's own message.
func Transport(cause error) *PublishError {
	return &PublishError{
		Kind:       KindTransport,
		Message:    cause.Error(),
		StatusCode: NoStatus,
		cause:      cause,
	}
}

// HTTP creates a PublishError for a response with a status outside the
// 2xx success range. The response body, read as text, becomes the message.
func HTTP(statusCode int, body string) *PublishError {
	return &PublishError{
		Kind:       KindHTTP,
		Message:    body,
		StatusCode: statusCode,
	}
}

// BodyRead creates a PublishError for a 2xx response whose body stream
// failed while being read. The read failure is preserved in HTTPBody.
func BodyRead(statusCode int, readErr error) *PublishError {
	return &PublishError{
		Kind:       KindBodyRead,
		Message:    BodyReadMessage,
		StatusCode: statusCode,
		HTTPBody:   readErr,
		cause:      readErr,
	}
}

// As extracts a *PublishError from an error chain.
func As(err error) (*PublishError, bool) {
	var pe *PublishError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsTransportFailure checks whether err is a publish failure where no
// HTTP response was obtained.
func IsTransportFailure(err error) bool {
	pe, ok := As(err)
	return ok && pe.Kind == KindTransport
}

// IsHTTPFailure checks whether err is a publish failure caused by a
// non-2xx response status.
func IsHTTPFailure(err error) bool {
	pe, ok := As(err)
	return ok && pe.Kind == KindHTTP
}

// IsBodyReadFailure checks whether err is a publish failure caused by the
// response body stream failing mid-read.
func IsBodyReadFailure(err error) bool {
	pe, ok := As(err)
	return ok && pe.Kind == KindBodyRead
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}
