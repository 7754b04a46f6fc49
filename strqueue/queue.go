package strqueue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/go-natqueue/internal/util"
	"github.com/arloliu/go-natqueue/logger"
)

// node is one element of the chain. A linked node always has hasValue set.
type node struct {
	value    string
	hasValue bool
	next     *node
}

// Queue is a singly linked queue of strings.
//
// The zero value is an empty queue that uses the default logger, allocator and sort strategy.
type Queue struct {
	head *node
	tail *node
	size int

	logger   logger.Logger
	strategy SortStrategy
	alloc    Allocator

	ownsHeader bool
	freed      bool
}

// New creates an empty queue configured by opts.
//
// It returns an error if an option is invalid, or an error wrapping ErrOutOfMemory
// if the allocator refuses the queue header.
func New(opts ...Option) (*Queue, error) {
	cfg := defaultQueueConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.alloc.Alloc(HeaderStorage, headerSize); err != nil {
		cfg.logger.Warn("strqueue: failed to allocate queue", "error", err)
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, err
	}

	return &Queue{
		logger:     cfg.logger,
		strategy:   cfg.strategy,
		alloc:      cfg.alloc,
		ownsHeader: true,
	}, nil
}

// Free destroys every node and its value, then releases the queue itself.
//
// Free is safe to call on an empty queue and on a nil queue. After Free the queue behaves
// as an absent queue and should not be retained.
func (q *Queue) Free() {
	if !q.usable() {
		return
	}

	for n := q.head; n != nil; {
		next := n.next
		q.releaseNode(n)
		n = next
	}
	q.head, q.tail, q.size = nil, nil, 0

	if q.ownsHeader {
		q.allocator().Release(HeaderStorage, headerSize)
		q.ownsHeader = false
	}
	q.freed = true
}

// InsertHead inserts a copy of s at the head of the queue.
//
// It returns false, leaving the queue unchanged, if the queue is absent or storage for
// the node or its value is refused.
func (q *Queue) InsertHead(s string) bool {
	if !q.usable() {
		return false
	}

	n := q.newNode(s)
	if n == nil {
		return false
	}

	n.next = q.head
	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.size++

	return true
}

// InsertTail inserts a copy of s at the tail of the queue.
//
// It returns false, leaving the queue unchanged, if the queue is absent or storage for
// the node or its value is refused.
func (q *Queue) InsertTail(s string) bool {
	if !q.usable() {
		return false
	}

	n := q.newNode(s)
	if n == nil {
		return false
	}

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++

	return true
}

// RemoveHead removes the head node and destroys it together with its value.
//
// If buf is non-nil, at most len(buf)-1 bytes of the removed value are copied into it followed
// by a 0 terminator; longer values are truncated. The value is released whether or not buf
// is supplied.
//
// It returns false if the queue is absent or empty.
func (q *Queue) RemoveHead(buf []byte) bool {
	n := q.unlinkHead()
	if n == nil {
		return false
	}

	if buf != nil && n.hasValue {
		util.CopyTerminated(buf, n.value)
	}
	q.releaseNode(n)

	return true
}

// PopHead removes the head node and returns its complete value.
// It returns false if the queue is absent or empty.
func (q *Queue) PopHead() (string, bool) {
	n := q.unlinkHead()
	if n == nil {
		return "", false
	}

	value := n.value
	q.releaseNode(n)

	return value, true
}

// Head returns the value at the head without removing it.
func (q *Queue) Head() (string, bool) {
	if !q.usable() || q.head == nil {
		return "", false
	}
	return q.head.value, true
}

// Tail returns the value at the tail without removing it.
func (q *Queue) Tail() (string, bool) {
	if !q.usable() || q.tail == nil {
		return "", false
	}
	return q.tail.value, true
}

// Size returns the number of values in the queue, or 0 if the queue is absent.
func (q *Queue) Size() int {
	if q == nil || q.head == nil {
		return 0
	}
	return q.size
}

// IsEmpty returns true if the queue is absent or holds no values.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

// Values returns a snapshot of the values from head to tail.
func (q *Queue) Values() []string {
	if !q.usable() {
		return nil
	}
	return chainValues(q.head, q.size)
}

// String returns the values from head to tail in a bracketed, space separated form.
func (q *Queue) String() string {
	return "[" + strings.Join(q.Values(), " ") + "]"
}

// Reverse reverses the order of the values by flipping every forward link,
// then swapping head and tail. It does nothing on an absent or empty queue.
func (q *Queue) Reverse() {
	if !q.usable() || q.head == nil {
		return
	}

	var prev *node
	for n := q.head; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	q.head, q.tail = prev, q.head
}

func (q *Queue) usable() bool {
	return q != nil && !q.freed
}

func (q *Queue) log() logger.Logger {
	if q.logger == nil {
		return logger.GetLogger()
	}
	return q.logger
}

func (q *Queue) allocator() Allocator {
	if q.alloc == nil {
		return DefaultAllocator()
	}
	return q.alloc
}

// newNode reserves node and value storage and returns an unlinked node owning a copy of s.
// It returns nil with nothing reserved if either reservation is refused.
func (q *Queue) newNode(s string) *node {
	alloc := q.allocator()
	if err := alloc.Alloc(NodeStorage, nodeSize); err != nil {
		q.log().Warn("strqueue: failed to allocate node", "error", err)
		return nil
	}

	n := getNode()
	if err := alloc.Alloc(ValueStorage, len(s)); err != nil {
		putNode(n)
		alloc.Release(NodeStorage, nodeSize)
		q.log().Warn("strqueue: failed to allocate value", "error", err, "len", len(s))
		return nil
	}
	n.value = strings.Clone(s)
	n.hasValue = true

	return n
}

// releaseNode gives up the storage of an unlinked node and its value.
func (q *Queue) releaseNode(n *node) {
	alloc := q.allocator()
	if n.hasValue {
		alloc.Release(ValueStorage, len(n.value))
	}
	putNode(n)
	alloc.Release(NodeStorage, nodeSize)
}

// unlinkHead detaches the head node from the chain, or returns nil if there is none.
func (q *Queue) unlinkHead() *node {
	if !q.usable() || q.head == nil {
		return nil
	}

	n := q.head
	q.head = n.next
	if q.tail == n {
		q.tail = nil
	}
	n.next = nil
	q.size--

	return n
}

func chainValues(head *node, sizeHint int) []string {
	values := make([]string, 0, sizeHint)
	for n := head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
