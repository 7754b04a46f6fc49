package strqueue

import (
	"fmt"

	"github.com/arloliu/go-natqueue/logger"
	"github.com/arloliu/go-natqueue/natsort"
)

// SortStrategy selects the merge sort variant used by Queue.Sort.
type SortStrategy uint8

const (
	// BottomUp merges the chain iteratively through pending runs of power-of-two length,
	// without recursion.
	BottomUp SortStrategy = iota
	// TopDown splits the chain at its midpoint and sorts each half recursively.
	TopDown
)

func (s SortStrategy) String() string {
	switch s {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	default:
		return fmt.Sprintf("SortStrategy(%d)", uint8(s))
	}
}

func (s SortStrategy) isValid() bool {
	return s == BottomUp || s == TopDown
}

// Sort orders the queue ascending under natsort.Compare.
//
// The sort is stable and relinks the existing nodes without creating or destroying any.
// It does nothing on an absent, empty or single-element queue.
func (q *Queue) Sort() {
	if !q.usable() || q.head == nil || q.head == q.tail {
		return
	}

	l := q.log()
	debug := logger.IsDebugEnabled(l)
	if debug {
		l.Debug("strqueue: sort", "strategy", q.strategy.String(), "size", q.size)
	}

	var head *node
	switch q.strategy {
	case TopDown:
		head = mergeSortTopDown(q.head)
	default:
		var trace func(slot int, run *node)
		if debug {
			trace = func(slot int, run *node) {
				l.Debug("strqueue: pending run", "slot", slot, "values", chainValues(run, 1<<slot))
			}
		}
		head = mergeSortBottomUp(q.head, trace)
	}

	tail := head
	for tail.next != nil {
		tail = tail.next
	}
	q.head, q.tail = head, tail
}

// compareNodes compares node values under natsort.Compare.
// A node without a value sorts after every node with one.
func compareNodes(a, b *node) int {
	if !a.hasValue || !b.hasValue {
		switch {
		case !a.hasValue && !b.hasValue:
			return 0
		case !a.hasValue:
			return 1
		default:
			return -1
		}
	}

	return natsort.Compare(a.value, b.value)
}

// merge relinks two sorted chains into one sorted chain. On ties the node from a comes first.
func merge(a, b *node) *node {
	var dummy node
	tail := &dummy
	for a != nil && b != nil {
		if compareNodes(a, b) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// mergeSortTopDown sorts the chain starting at head and returns the new head.
//
// fast starts one node ahead of slow so that slow stops at the end of the first half
// and both halves are non-empty.
func mergeSortTopDown(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return merge(mergeSortTopDown(head), mergeSortTopDown(second))
}

// mergeSortBottomUp sorts the chain starting at head and returns the new head.
//
// pending[i] holds a sorted run of 2^i nodes or nil. Each input node enters as a run of one
// and is carried upward like a binary increment. Runs in higher slots hold earlier input, so
// they are always passed to merge as the first argument.
//
// If trace is non-nil it is called for every occupied slot once the input is consumed.
func mergeSortBottomUp(head *node, trace func(slot int, run *node)) *node {
	var pending []*node
	for head != nil {
		run := head
		head = head.next
		run.next = nil

		i := 0
		for ; i < len(pending) && pending[i] != nil; i++ {
			run = merge(pending[i], run)
			pending[i] = nil
		}
		if i == len(pending) {
			pending = append(pending, run)
		} else {
			pending[i] = run
		}
	}

	if trace != nil {
		for i, run := range pending {
			if run != nil {
				trace(i, run)
			}
		}
	}

	var result *node
	for _, run := range pending {
		if run != nil {
			result = merge(run, result)
		}
	}

	return result
}
