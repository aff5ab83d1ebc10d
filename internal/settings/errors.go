package settings

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing settings file, command key or candidate path.
// Callers treat it as an informational state rather than a failure.
var ErrNotFound = errors.New("not found")

// ParseError reports malformed settings content.
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse settings JSON from %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a caller-level rule violation such as a duplicate
// command key or mismatched find/replace counts.
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return fmt.Sprintf("command '%s': %s", e.Key, e.Message)
}

// IOError reports a failed backup copy or settings write.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Warning is a non-fatal problem collected during best-effort cleanup.
type Warning struct {
	Err  error
	Path string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}
