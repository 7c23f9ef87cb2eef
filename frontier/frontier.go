// SPDX-License-Identifier: MIT
// Package: gridpath/frontier
//
// frontier.go — min-priority queue of search entries.
//
// Contract:
//   • Add never deduplicates: the same item may be queued several times.
//   • Pop returns the smallest priority; equal priorities leave in insertion
//     order (FIFO) so exploration order is reproducible.
//   • Backed by container/heap: O(log n) Add/Pop, O(1) IsEmpty/Len.

package frontier

import "container/heap"

// Frontier is a binary min-heap of items keyed by integer priority.
// The zero value is ready to use. It is not safe for concurrent use.
type Frontier[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty frontier with room for capacity entries.
func New[T any](capacity int) *Frontier[T] {
	return &Frontier[T]{h: make(entryHeap[T], 0, capacity)}
}

// Add queues item with the given priority.
func (f *Frontier[T]) Add(item T, priority int) {
	heap.Push(&f.h, entry[T]{item: item, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes and returns the entry with the smallest priority. ok is false
// when the frontier is empty.
func (f *Frontier[T]) Pop() (item T, ok bool) {
	if len(f.h) == 0 {
		return item, false
	}
	e := heap.Pop(&f.h).(entry[T])
	return e.item, true
}

// PopWithPriority is Pop that also reports the priority of the entry.
func (f *Frontier[T]) PopWithPriority() (item T, priority int, ok bool) {
	if len(f.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&f.h).(entry[T])
	return e.item, e.priority, true
}

// IsEmpty reports whether no entries remain.
func (f *Frontier[T]) IsEmpty() bool { return len(f.h) == 0 }

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[T]) Len() int { return len(f.h) }

// entry is one queued (priority, item) pair; seq breaks priority ties.
type entry[T any] struct {
	item     T
	priority int
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*h = old[:n-1]
	return e
}
