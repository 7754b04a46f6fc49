package strqueue

import "sync"

var nodePool = sync.Pool{New: func() any { return &node{} }}

var usePool = true

// IsUsePool returns true if node pooling is enabled, false otherwise.
func IsUsePool() bool {
	return usePool
}

// UsePool enables or disables node pooling.
// When enabled, nodes destroyed by RemoveHead, PopHead and Free are recycled for later insertions.
//
// Pooling is enabled by default.
func UsePool(val bool) {
	usePool = val
}

func getNode() *node {
	if usePool {
		n, _ := nodePool.Get().(*node)
		if n == nil {
			return &node{}
		}
		return n
	}

	return &node{}
}

func putNode(n *node) {
	*n = node{}
	if usePool {
		nodePool.Put(n)
	}
}
