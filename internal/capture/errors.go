// internal/capture/errors.go
package capture

import (
	"errors"
	"fmt"
)

// Common capture errors
var (
	ErrMissingAccessKey = errors.New("no access key configured")
	ErrCaptureInFlight  = errors.New("a capture is already in progress")
	ErrBrowserNotFound  = errors.New("chrome browser not found")
)

// ErrorKind classifies where a capture failure originated
type ErrorKind string

const (
	// KindValidation covers malformed input; the capture was never attempted
	KindValidation ErrorKind = "VALIDATION"
	// KindRemote covers rejections and transport failures from the capture service
	KindRemote ErrorKind = "REMOTE"
	// KindProcessing covers failures while decoding or tiling a received payload
	KindProcessing ErrorKind = "PROCESSING"
	// KindBrowser covers failures of the locally driven headless Chrome
	KindBrowser ErrorKind = "BROWSER"
)

// Error wraps capture failures with their origin and, for service
// rejections, a hint about the likely cause
type Error struct {
	Kind       ErrorKind
	Message    string
	Hint       string
	StatusCode int
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg = msg + " (" + e.Hint + ")"
	}
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return errors.Is(e.Underlying, target)
}

// NewError creates a new capture Error
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		Underlying: err,
	}
}

// WithHint attaches a likely-cause hint to the error
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithStatus records the HTTP status that produced the error
func (e *Error) WithStatus(code int) *Error {
	e.StatusCode = code
	return e
}

// IsValidation reports whether err is a validation failure, meaning no
// capture request was ever sent
func IsValidation(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindValidation
}
