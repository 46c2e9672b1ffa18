package domain

import (
	"errors"
	"fmt"
)

// ErrConfigFieldMissing means the response had no usable "config" field and
// the extraction policy chose the fallback.
var ErrConfigFieldMissing = errors.New("response has no config field")

// -----------------------------
// TransportError
// -----------------------------

// TransportError covers network, DNS and TLS failures, and failures reading
// the response body.
type TransportError struct {
	Op  string
	Err error
}

func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// -----------------------------
// HTTPStatusError
// -----------------------------

// HTTPStatusError is returned for responses outside the 2xx range.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func NewHTTPStatusError(code int, status string) *HTTPStatusError {
	return &HTTPStatusError{StatusCode: code, Status: status}
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("failed to fetch config: %d %s", e.StatusCode, e.Status)
}

func IsHTTPStatusError(err error) bool {
	var target *HTTPStatusError
	return errors.As(err, &target)
}

// -----------------------------
// DecodeError
// -----------------------------

// DecodeError means the response body could not be turned into a mapping.
type DecodeError struct {
	Message string
	Err     error
}

func NewDecodeError(message string, err error) *DecodeError {
	return &DecodeError{Message: message, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// ReasonOf maps an error to the label used in logs and metrics.
func ReasonOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfigFieldMissing):
		return "config_missing"
	case IsHTTPStatusError(err):
		return "http_status"
	case IsDecodeError(err):
		return "decode"
	case IsTransportError(err):
		return "transport"
	default:
		return "unknown"
	}
}
