package pagesift

import (
	"errors"
	"fmt"
)

// Application error codes. These map the fetch failure taxonomy onto
// machine-readable codes so the strategy selector can decide whether a
// failure is worth escalating to a browser render.
const (
	EINVALID     = "invalid"      // malformed input (bad locator, bad request)
	ENOTFOUND    = "not_found"    // entity does not exist
	EINTERNAL    = "internal"     // unexpected internal failure
	ETIMEOUT     = "timeout"      // fetch attempt exceeded its deadline
	ENETWORK     = "network"      // DNS, connection, or TLS failure
	EBLOCKED     = "blocked"      // HTTP 403/503 or anti-bot response
	ECONTENTTYPE = "content_type" // non-HTML response
	EEMPTY       = "empty"        // empty or script-dependent page body
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagesift error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; a nil error returns the empty
// string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return their Error() string; a nil error returns
// the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
