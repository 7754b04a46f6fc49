// Package strqueue provides a singly linked queue of strings with head and tail insertion,
// head removal, in-place reversal and a stable natural-order merge sort.
//
// Queue keeps cached head, tail and size references so that insertion at either end,
// head removal and Size are O(1). Reverse and Sort never create or destroy nodes; they only
// rewrite the forward links of the existing chain.
//
// Nil Safety:
// A nil *Queue, and a Queue released by Free, behave as an absent queue: mutations report
// false, Size reports 0, and Reverse and Sort do nothing.
//
// Sorting:
// Sort orders values with natsort.Compare, so embedded numbers compare by value and letter
// case is ignored ("img2" sorts before "IMG10"). Two strategies are available:
//   - BottomUp (default): iterative carry-merge over pending runs of power-of-two length.
//   - TopDown: recursive midpoint split using slow and fast pointers.
//
// Storage Accounting:
// Node and value storage is reserved through an Allocator before a value is linked into the chain,
// and released when the node is destroyed by RemoveHead, PopHead or Free. The default allocator
// never refuses; TrackingAllocator counts live reservations and can inject refusals, which is
// useful to prove that failed insertions leave no partial state behind.
//
// Concurrency:
// A Queue is not safe for concurrent use. Callers that share a queue between goroutines must
// serialize every operation, for example with the registry package.
package strqueue
