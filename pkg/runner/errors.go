package runner

import "errors"

var (
	// ErrEmptyPath is returned when a Spec carries no executable path.
	ErrEmptyPath = errors.New("spec has no executable path")

	// ErrNotFound is returned when the executable cannot be resolved.
	ErrNotFound = errors.New("executable not found")
)
