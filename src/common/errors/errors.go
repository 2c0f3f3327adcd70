// Package errors provides a structured error system for the retail console.
// It supports error codes, exit code mapping, error wrapping, and consistent
// user-facing messages across all retail components.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a unique error code within a domain
type Code string

// Domain represents an error domain (e.g., "auth", "order", "database")
type Domain string

// Common error domains
const (
	DomainAuth       Domain = "auth"
	DomainUser       Domain = "user"
	DomainStore      Domain = "store"
	DomainProduct    Domain = "product"
	DomainOrder      Domain = "order"
	DomainSupply     Domain = "supply"
	DomainDatabase   Domain = "database"
	DomainValidation Domain = "validation"
	DomainInput      Domain = "input"
	DomainInternal   Domain = "internal"
)

// Exit codes used by the retail binary
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUnavailable = 2
)

// Error represents a structured error with domain, code, and process exit code
type Error struct {
	// Domain categorizes the error (e.g., "auth", "order")
	Domain Domain `json:"domain" yaml:"domain"`

	// Code is a unique identifier within the domain (e.g., "not_found")
	Code Code `json:"code" yaml:"code"`

	// Message is the text shown to the console user
	Message string `json:"message" yaml:"message"`

	// ExitCode is used when the error terminates the process
	ExitCode int `json:"-" yaml:"-"`

	// cause is the underlying error if this error wraps another
	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is and errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Domain == t.Domain && e.Code == t.Code
}

// WithCause returns a new error with the underlying cause attached
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Domain:   e.Domain,
		Code:     e.Code,
		Message:  e.Message,
		ExitCode: e.ExitCode,
		cause:    cause,
	}
}

// WithMessage returns a new error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Domain:   e.Domain,
		Code:     e.Code,
		Message:  message,
		ExitCode: e.ExitCode,
		cause:    e.cause,
	}
}

// WithMessagef returns a new error with a formatted custom message
func (e *Error) WithMessagef(format string, args ...interface{}) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// UserFacing reports whether the message is meant for the console user.
// Database and internal failures are diagnostics and go to the log instead.
func (e *Error) UserFacing() bool {
	return e.Domain != DomainDatabase && e.Domain != DomainInternal
}

// New creates a new Error with the given parameters
func New(domain Domain, code Code, message string) *Error {
	return &Error{
		Domain:   domain,
		Code:     code,
		Message:  message,
		ExitCode: ExitFailure,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, domain Domain, code Code, message string) *Error {
	return &Error{
		Domain:   domain,
		Code:     code,
		Message:  message,
		ExitCode: ExitFailure,
		cause:    err,
	}
}

// GetExitCode returns the process exit code for an error.
// A nil error maps to ExitOK, a non-*Error to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode
	}
	return ExitFailure
}

// GetCode returns the error code if the error is an *Error, otherwise empty string
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetDomain returns the error domain if the error is an *Error, otherwise empty string
func GetDomain(err error) Domain {
	var e *Error
	if errors.As(err, &e) {
		return e.Domain
	}
	return ""
}

// IsUserFacing reports whether err carries a message for the console user
func IsUserFacing(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.UserFacing()
	}
	return false
}

// Is checks if an error matches a target error (delegates to errors.Is)
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target (delegates to errors.As)
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
