package bounded

import "errors"

var (
	// ErrInvalidCapacity is returned when a requested capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrSeedExceedsCapacity is returned when a constructor receives more
	// seed elements than the requested capacity can hold.
	ErrSeedExceedsCapacity = errors.New("seed length exceeds capacity")

	// ErrEmpty is returned by Pop and Peek when the queue holds no elements.
	ErrEmpty = errors.New("queue is empty")
)
