package errors

import "fmt"

// ValidationError represents a declaration that is well-formed syntactically
// but violates a model rule
type ValidationError struct {
	*BaseError
	Field    string // field that failed validation
	Expected string // what was expected
	Actual   string // what was provided
}

// NewValidationError creates a new validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("invalid %s: expected %s, got %s", field, expected, actual)

	return &ValidationError{
		BaseError: New(ValidationErrorCode, message),
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// WithLocation sets the source location
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// SyntaxError represents an attribute or manifest parsing error
type SyntaxError struct {
	*BaseError
	Token    string // the token that caused the error
	Position int    // offset in the input where the error occurred
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// NewSyntaxErrorWithToken creates a syntax error with token information
func NewSyntaxErrorWithToken(message, token string, position int) *SyntaxError {
	if token != "" {
		message = fmt.Sprintf("%s (near token '%s')", message, token)
	}

	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
		Token:     token,
		Position:  position,
	}
}

// WithLocation sets the source location
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a suggestion
func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// OrderingError reports a parameter list whose categories are out of order
// or that repeats a variadic parameter
type OrderingError struct {
	*BaseError
	Parameter string // offending parameter name
	Index     int    // position of the offending parameter
}

// NewOrderingError creates a new ordering error
func NewOrderingError(parameter string, index int, reason string) *OrderingError {
	message := fmt.Sprintf("parameter '%s' at position %d: %s", parameter, index, reason)

	return &OrderingError{
		BaseError: New(OrderingErrorCode, message),
		Parameter: parameter,
		Index:     index,
	}
}

// WithLocation sets the source location
func (e *OrderingError) WithLocation(loc SourceLocation) *OrderingError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a suggestion
func (e *OrderingError) WithSuggestion(suggestion string) *OrderingError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}
