package strqueue

import (
	"github.com/arloliu/go-natqueue/logger"
)

type queueConfig struct {
	// logger receives allocation warnings and sort tracing.
	// Defaults to logger.GetLogger().
	logger logger.Logger

	// strategy selects the merge sort variant used by Sort.
	// Defaults to BottomUp.
	strategy SortStrategy

	// alloc accounts for header, node and value storage.
	// Defaults to an allocator that never refuses.
	alloc Allocator
}

func defaultQueueConfig() *queueConfig {
	return &queueConfig{
		logger:   logger.GetLogger(),
		strategy: BottomUp,
		alloc:    DefaultAllocator(),
	}
}

// Option represents a functional option for configuring a Queue.
type Option interface {
	apply(*queueConfig) error
}

type optFunc struct {
	name      string
	applyFunc func(*queueConfig) error
}

func (o *optFunc) apply(cfg *queueConfig) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*queueConfig) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithLogger sets the logger used by the queue.
// A nil logger keeps the package default.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *queueConfig) error {
		if cfg == nil {
			return ErrQueueConfigNil
		}

		if l != nil {
			cfg.logger = l
		}

		return nil
	})
}

// WithSortStrategy selects the merge sort variant used by Sort.
// It returns ErrInvalidSortStrategy if s is not BottomUp or TopDown.
//
// The default strategy is BottomUp.
func WithSortStrategy(s SortStrategy) Option {
	return newOptFunc("WithSortStrategy", func(cfg *queueConfig) error {
		if cfg == nil {
			return ErrQueueConfigNil
		}

		if !s.isValid() {
			return ErrInvalidSortStrategy
		}
		cfg.strategy = s

		return nil
	})
}

// WithAllocator sets the Allocator that accounts for the queue's storage.
// It returns ErrAllocatorNil if a is nil.
func WithAllocator(a Allocator) Option {
	return newOptFunc("WithAllocator", func(cfg *queueConfig) error {
		if cfg == nil {
			return ErrQueueConfigNil
		}

		if a == nil {
			return ErrAllocatorNil
		}
		cfg.alloc = a

		return nil
	})
}
