package fsx

import "errors"

var (
	// ErrOutsideRoot is returned by a sandboxed filesystem when a path
	// resolves outside the configured root.
	ErrOutsideRoot = errors.New("path escapes sandbox root")

	// ErrReadOnly is returned by a read-only filesystem for any mutating
	// operation.
	ErrReadOnly = errors.New("filesystem is read-only")
)
