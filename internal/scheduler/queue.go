// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scheduler

import "container/heap"

// eventHeap implements heap.Interface over a slice of *Event, ordered by
// time and then by insertion sequence.
type eventHeap struct {
	items []*Event
}

// Len returns the number of items in the queue. It is part of the
// heap.Interface implementation.
func (h *eventHeap) Len() int {
	return len(h.items)
}

// Less reports whether the item at index i should be popped before the
// item at index j: strictly earlier time first, ties broken by insertion
// order so runs are reproducible.
func (h *eventHeap) Less(i, j int) bool {
	if h.items[i].Time != h.items[j].Time {
		return h.items[i].Time < h.items[j].Time
	}
	return h.items[i].seq < h.items[j].seq
}

// Swap swaps the items at the passed indices. It is part of the
// heap.Interface implementation.
func (h *eventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push appends x to the queue. It is part of the heap.Interface
// implementation; callers should use Queue.Add instead of calling this
// directly.
func (h *eventHeap) Push(x interface{}) {
	h.items = append(h.items, x.(*Event))
}

// Pop removes and returns the last item in the backing slice. It is part
// of the heap.Interface implementation.
func (h *eventHeap) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	return item
}

// Queue is the simulator's single min-priority queue of pending events.
type Queue struct {
	heap    eventHeap
	nextSeq int
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.heap)
	return q
}

// Add pushes ev into the queue, stamping it with the next insertion
// sequence number for deterministic tie-breaking.
func (q *Queue) Add(ev *Event) {
	ev.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.heap, ev)
}

// Pop removes and returns the earliest pending event. It reports false if
// the queue is empty.
func (q *Queue) Pop() (*Event, bool) {
	if q.heap.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&q.heap).(*Event), true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return q.heap.Len()
}

// Peek returns the earliest pending event without removing it.
func (q *Queue) Peek() (*Event, bool) {
	if q.heap.Len() == 0 {
		return nil, false
	}
	return q.heap.items[0], true
}
