package strqueue

import (
	"fmt"
	"sync"
	"unsafe"
)

// StorageKind identifies what a storage reservation is for.
type StorageKind uint8

const (
	// HeaderStorage is the queue header reserved by New and released by Free.
	HeaderStorage StorageKind = iota
	// NodeStorage is one chain node.
	NodeStorage
	// ValueStorage is the owned copy of one value.
	ValueStorage

	storageKindCount
)

var (
	headerSize = int(unsafe.Sizeof(Queue{}))
	nodeSize   = int(unsafe.Sizeof(node{}))
)

func (k StorageKind) String() string {
	switch k {
	case HeaderStorage:
		return "header"
	case NodeStorage:
		return "node"
	case ValueStorage:
		return "value"
	default:
		return fmt.Sprintf("StorageKind(%d)", uint8(k))
	}
}

// Allocator accounts for the storage a Queue holds.
//
// Alloc is called before storage of the given kind and size is taken into use. A non-nil error
// refuses the reservation; implementations should wrap ErrOutOfMemory. Release is called exactly
// once for every successful Alloc, with the same kind and size, when the storage is given up.
type Allocator interface {
	Alloc(kind StorageKind, size int) error
	Release(kind StorageKind, size int)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(StorageKind, int) error { return nil }
func (heapAllocator) Release(StorageKind, int)     {}

// DefaultAllocator returns the allocator used when no WithAllocator option is given.
// It never refuses a reservation.
func DefaultAllocator() Allocator {
	return heapAllocator{}
}

// TrackingAllocator counts live reservations per StorageKind and can be told to refuse them.
//
// It is safe for concurrent use, so one instance can be shared by several queues.
type TrackingAllocator struct {
	mu     sync.Mutex
	live   [storageKindCount]int
	bytes  [storageKindCount]int
	total  [storageKindCount]int
	failFn func(kind StorageKind, size int) bool
}

var _ Allocator = (*TrackingAllocator)(nil)

// NewTrackingAllocator creates a TrackingAllocator that accepts every reservation.
func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{}
}

// FailWhen installs fn to decide which reservations are refused. A nil fn accepts all of them.
func (a *TrackingAllocator) FailWhen(fn func(kind StorageKind, size int) bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.failFn = fn
}

// FailAfter accepts the next n reservations of kind and refuses every one after them.
func (a *TrackingAllocator) FailAfter(kind StorageKind, n int) {
	remaining := n
	a.FailWhen(func(k StorageKind, _ int) bool {
		if k != kind {
			return false
		}
		if remaining > 0 {
			remaining--
			return false
		}
		return true
	})
}

func (a *TrackingAllocator) Alloc(kind StorageKind, size int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failFn != nil && a.failFn(kind, size) {
		return fmt.Errorf("%w: %s of %d bytes", ErrOutOfMemory, kind, size)
	}
	if kind < storageKindCount {
		a.live[kind]++
		a.bytes[kind] += size
		a.total[kind]++
	}

	return nil
}

func (a *TrackingAllocator) Release(kind StorageKind, size int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if kind < storageKindCount {
		a.live[kind]--
		a.bytes[kind] -= size
	}
}

// Live returns the number of outstanding reservations of kind.
func (a *TrackingAllocator) Live(kind StorageKind) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if kind >= storageKindCount {
		return 0
	}
	return a.live[kind]
}

// Bytes returns the number of outstanding bytes reserved for kind.
func (a *TrackingAllocator) Bytes(kind StorageKind) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if kind >= storageKindCount {
		return 0
	}
	return a.bytes[kind]
}

// Total returns the number of successful reservations of kind since creation.
func (a *TrackingAllocator) Total(kind StorageKind) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if kind >= storageKindCount {
		return 0
	}
	return a.total[kind]
}

// InUse reports whether any reservation is still outstanding.
func (a *TrackingAllocator) InUse() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for k := range a.live {
		if a.live[k] != 0 || a.bytes[k] != 0 {
			return true
		}
	}
	return false
}
