package launcher

import (
	"errors"
	"fmt"
	"strings"
)

// LaunchError means neither the target nor any fallback command could be
// started. A child that started and exited non-zero is not a LaunchError;
// its status passes through as the exit code.
type LaunchError struct {
	Target string   // Command the user asked for
	Tried  []string // Every binary attempted, in order
	Err    error    // Last start failure
}

// Error implements the error interface for LaunchError.
func (e *LaunchError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("cannot launch %q", e.Target))
	if len(e.Tried) > 1 {
		sb.WriteString(fmt.Sprintf(" (tried %s)", strings.Join(e.Tried, ", ")))
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsLaunchError checks if the error is or wraps a LaunchError.
func IsLaunchError(err error) bool {
	if err == nil {
		return false
	}
	var le *LaunchError
	return errors.As(err, &le)
}
