package resolve

import (
	"errors"
	"fmt"
)

// ErrorKind classifies selection failures.
type ErrorKind int

const (
	// KindNoMatch means the pattern produced zero candidates, or a regex
	// selector filtered every candidate away.
	KindNoMatch ErrorKind = iota
	// KindIndexOutOfRange means a selector index exceeds the candidate count.
	KindIndexOutOfRange
	// KindAmbiguous means several candidates, no selector, and no terminal
	// to ask on.
	KindAmbiguous
	// KindCancelled means the user quit the interactive prompt.
	KindCancelled
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindNoMatch:
		return "no match"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindAmbiguous:
		return "ambiguous"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error represents a selection failure.
type Error struct {
	Kind  ErrorKind
	Index int // Offending selector index, for KindIndexOutOfRange
	Count int // Candidate count at the time of failure
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNoMatch:
		return "no matching entries"
	case KindIndexOutOfRange:
		return fmt.Sprintf("selector index %d out of range (%d candidates)", e.Index, e.Count)
	case KindAmbiguous:
		return fmt.Sprintf("%d candidates and no selector (not an interactive terminal)", e.Count)
	case KindCancelled:
		return "selection cancelled"
	default:
		return "selection failed"
	}
}

// IsNoMatch checks if the error is a selection failure of kind NoMatch.
func IsNoMatch(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNoMatch
}

// IsSelectionError checks if the error is or wraps a selection Error.
func IsSelectionError(err error) bool {
	if err == nil {
		return false
	}
	var se *Error
	return errors.As(err, &se)
}
