// Package registry keeps named strqueue queues and serializes access to each of them.
//
// strqueue.Queue is not safe for concurrent use. Registry gives every queue its own exclusive
// lock: Do runs a callback while holding that lock, so goroutines working on different queues
// never contend, and goroutines sharing a queue take turns.
package registry

import (
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-natqueue/logger"
	"github.com/arloliu/go-natqueue/natsort"
	"github.com/arloliu/go-natqueue/strqueue"
)

type entry struct {
	mu     sync.Mutex
	queue  *strqueue.Queue
	closed bool
}

// Registry maps names to queues.
type Registry struct {
	queues    *xsync.MapOf[string, *entry]
	logger    logger.Logger
	queueOpts []strqueue.Option
}

// New creates an empty registry configured by opts.
func New(opts ...Option) (*Registry, error) {
	cfg := &registryConfig{logger: logger.GetLogger()}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	queueOpts := make([]strqueue.Option, 0, len(cfg.queueOpts)+1)
	queueOpts = append(queueOpts, strqueue.WithLogger(cfg.logger))
	queueOpts = append(queueOpts, cfg.queueOpts...)

	return &Registry{
		queues:    xsync.NewMapOf[string, *entry](),
		logger:    cfg.logger,
		queueOpts: queueOpts,
	}, nil
}

// Create registers a new empty queue under name.
//
// It returns ErrQueueExists if the name is taken, or the error reported by strqueue.New.
func (r *Registry) Create(name string) error {
	var exists bool
	var createErr error
	r.queues.Compute(name, func(old *entry, loaded bool) (*entry, bool) {
		if loaded {
			exists = true
			return old, false
		}

		q, err := strqueue.New(r.queueOpts...)
		if err != nil {
			createErr = err
			return nil, true
		}
		return &entry{queue: q}, false
	})

	if exists {
		return fmt.Errorf("registry: create queue %q: %w", name, ErrQueueExists)
	}
	if createErr != nil {
		return fmt.Errorf("registry: create queue %q: %w", name, createErr)
	}

	r.logger.Debug("registry: queue created", "name", name)

	return nil
}

// Do runs fn with exclusive access to the queue registered under name.
//
// fn must not retain q after it returns. It returns ErrQueueNotFound if no queue is registered
// under name, or ErrQueueClosed if the queue was destroyed before the lock was acquired.
func (r *Registry) Do(name string, fn func(q *strqueue.Queue)) error {
	e, ok := r.queues.Load(name)
	if !ok {
		return fmt.Errorf("registry: queue %q: %w", name, ErrQueueNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("registry: queue %q: %w", name, ErrQueueClosed)
	}
	fn(e.queue)

	return nil
}

// Destroy unregisters the queue under name and frees it.
// It waits for a running Do on the same queue to finish.
func (r *Registry) Destroy(name string) error {
	e, ok := r.queues.LoadAndDelete(name)
	if !ok {
		return fmt.Errorf("registry: destroy queue %q: %w", name, ErrQueueNotFound)
	}

	e.mu.Lock()
	size := e.queue.Size()
	e.queue.Free()
	e.closed = true
	e.mu.Unlock()

	r.logger.Debug("registry: queue destroyed", "name", name, "size", size)

	return nil
}

// DestroyAll unregisters and frees every queue.
func (r *Registry) DestroyAll() {
	for _, name := range r.Names() {
		_ = r.Destroy(name)
	}
}

// Names returns the registered names in natural order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.queues.Size())
	r.queues.Range(func(name string, _ *entry) bool {
		names = append(names, name)
		return true
	})
	natsort.Strings(names)

	return names
}

// Len returns the number of registered queues.
func (r *Registry) Len() int {
	return r.queues.Size()
}
