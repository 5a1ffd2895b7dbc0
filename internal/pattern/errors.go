package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError represents a malformed pattern or selector.
// Input is the pattern text as written, without the sentinel.
type ParseError struct {
	Input  string // Pattern text that failed to parse
	Reason string // Human-readable failure description
	Err    error  // Underlying error (optional)
}

// NewParseError creates a ParseError for the given pattern text.
func NewParseError(input, reason string, err error) *ParseError {
	return &ParseError{
		Input:  input,
		Reason: reason,
		Err:    err,
	}
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("invalid pattern %q: %s", e.Input, e.Reason))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if the error is or wraps a ParseError.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ParseError
	return errors.As(err, &pe)
}
