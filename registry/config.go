package registry

import (
	"github.com/arloliu/go-natqueue/logger"
	"github.com/arloliu/go-natqueue/strqueue"
)

type registryConfig struct {
	// logger receives registry lifecycle events. It is also handed to every created queue
	// unless queueOpts override it.
	logger logger.Logger

	// queueOpts are applied to every queue the registry creates.
	queueOpts []strqueue.Option
}

// Option represents a functional option for configuring a Registry.
type Option interface {
	apply(*registryConfig) error
}

type optFunc struct {
	name      string
	applyFunc func(*registryConfig) error
}

func (o *optFunc) apply(cfg *registryConfig) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*registryConfig) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithLogger sets the registry logger. A nil logger keeps the package default.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *registryConfig) error {
		if cfg == nil {
			return ErrRegistryConfigNil
		}

		if l != nil {
			cfg.logger = l
		}

		return nil
	})
}

// WithQueueOptions sets the options used to create every queue in the registry.
func WithQueueOptions(opts ...strqueue.Option) Option {
	return newOptFunc("WithQueueOptions", func(cfg *registryConfig) error {
		if cfg == nil {
			return ErrRegistryConfigNil
		}

		cfg.queueOpts = append(cfg.queueOpts, opts...)

		return nil
	})
}
