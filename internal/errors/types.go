package errors

import (
	"fmt"
	"strings"
)

// TextsigError is implemented by every error this module reports. Errors
// carry where the offending declaration lives and how to fix it.
type TextsigError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode classifies a TextsigError
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	ValidationErrorCode
	OrderingErrorCode
	ExtractionErrorCode
	FileSystemErrorCode
	ConfigurationErrorCode
)

var codeNames = map[ErrorCode]string{
	SyntaxErrorCode:        "SyntaxError",
	ValidationErrorCode:    "ValidationError",
	OrderingErrorCode:      "OrderingError",
	ExtractionErrorCode:    "ExtractionError",
	FileSystemErrorCode:    "FileSystemError",
	ConfigurationErrorCode: "ConfigurationError",
}

// String returns the name used in reports, e.g. "OrderingError"
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UnknownError"
}

// SourceLocation points at a declaration. Line and Column are 1-based; zero
// means unknown.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// String formats the location as file:line:col, dropping unknown parts
func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// IsEmpty reports whether no file is known
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError is the shared TextsigError implementation. The typed errors in
// this package embed it.
type BaseError struct {
	code        ErrorCode
	message     string
	location    SourceLocation
	cause       error
	context     map[string]interface{}
	suggestions []string
}

// New creates an error with no cause
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{code: code, message: message}
}

// Wrap creates an error caused by another one
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{code: code, message: message, cause: cause}
}

// Error renders "location: message: cause", leaving out what is unknown
func (e *BaseError) Error() string {
	var b strings.Builder
	if !e.location.IsEmpty() {
		b.WriteString(e.location.String())
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *BaseError) ErrorCode() ErrorCode { return e.code }

func (e *BaseError) Location() SourceLocation { return e.location }

func (e *BaseError) Suggestions() []string { return e.suggestions }

func (e *BaseError) Unwrap() error { return e.cause }

// Context returns extra key/value details; never nil
func (e *BaseError) Context() map[string]interface{} {
	if e.context == nil {
		return map[string]interface{}{}
	}
	return e.context
}

// WithLocation sets where the error occurred
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.location = loc
	return e
}

// WithContext records a key/value detail shown in verbose reports
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.context == nil {
		e.context = make(map[string]interface{})
	}
	e.context[key] = value
	return e
}

// WithSuggestion appends a fix hint
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.suggestions = append(e.suggestions, suggestion)
	return e
}

// MultipleErrors collects per-callable failures so one bad declaration never
// hides the others
type MultipleErrors struct {
	Errors []TextsigError
}

// NewMultipleErrors creates an empty collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{Errors: []TextsigError{}}
}

// Add appends an error
func (e *MultipleErrors) Add(err TextsigError) {
	e.Errors = append(e.Errors, err)
}

func (e *MultipleErrors) IsEmpty() bool { return len(e.Errors) == 0 }

func (e *MultipleErrors) Count() int { return len(e.Errors) }

// HasCode reports whether any collected error has the code
func (e *MultipleErrors) HasCode(code ErrorCode) bool {
	for _, err := range e.Errors {
		if err.ErrorCode() == code {
			return true
		}
	}
	return false
}

// ErrorOrNil returns nil for an empty collection so callers can return it directly
func (e *MultipleErrors) ErrorOrNil() error {
	if e == nil || e.IsEmpty() {
		return nil
	}
	return e
}

// Error lists one collected error per line
func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	lines := make([]string, 0, len(e.Errors)+1)
	lines = append(lines, fmt.Sprintf("%d declaration errors:", len(e.Errors)))
	for _, err := range e.Errors {
		lines = append(lines, "  "+err.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}
