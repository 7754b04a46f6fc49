package strqueue

import "errors"

var (
	// ErrOutOfMemory indicates that an Allocator refused a storage reservation.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidSortStrategy indicates that an unknown sort strategy was provided.
	ErrInvalidSortStrategy = errors.New("invalid sort strategy")

	// ErrQueueConfigNil indicates that an option was applied to a nil queue configuration.
	ErrQueueConfigNil = errors.New("queue config is nil")

	// ErrAllocatorNil indicates that a nil Allocator was provided.
	ErrAllocatorNil = errors.New("allocator is nil")
)
