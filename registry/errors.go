package registry

import "errors"

var (
	// ErrQueueNotFound indicates that no queue is registered under the given name.
	ErrQueueNotFound = errors.New("queue not found")

	// ErrQueueExists indicates that a queue is already registered under the given name.
	ErrQueueExists = errors.New("queue already exists")

	// ErrQueueClosed indicates that the queue was destroyed while the caller waited for it.
	ErrQueueClosed = errors.New("queue closed")

	// ErrRegistryConfigNil indicates that an option was applied to a nil registry configuration.
	ErrRegistryConfigNil = errors.New("registry config is nil")
)
