package watcher

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on a running watcher.
	ErrAlreadyStarted = errors.New("watcher already started")

	// ErrStopped is returned when the watcher has been stopped.
	ErrStopped = errors.New("watcher stopped")

	// ErrAlreadyWatched is returned by Watch for a root already under watch.
	ErrAlreadyWatched = errors.New("root already watched")

	// ErrNotWatched is returned by Unwatch for a root not under watch.
	ErrNotWatched = errors.New("root not watched")
)
