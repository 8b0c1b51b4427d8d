// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides a priority-queue container over the paged heap
// primitives of cloudeng.io/gheap. Unlike the core package the queue owns
// its storage, and it can run a caller-supplied deleter over every element
// that leaves it, which keeps resource-holding elements honest.
package pqueue

import "cloudeng.io/gheap"

// Queue is a max-priority queue: Top and Pop address the element that
// orders after every other under the queue's less function. A queue is
// not safe for concurrent use.
type Queue[T any] struct {
	shape   gheap.Shape
	less    func(a, b T) bool
	items   []T
	deleter func(*T)
}

// New returns a queue using the given shape and ordering. With WithData
// the queue takes ownership of the supplied slice and heapifies it in
// place; otherwise it starts empty.
func New[T any](s gheap.Shape, less func(a, b T) bool, opts ...Option[T]) *Queue[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	q := &Queue[T]{shape: s, less: less, deleter: o.deleter}
	if o.data != nil {
		q.items = o.data
		gheap.MakeHeap(s, q.items, less)
		return q
	}
	q.items = make([]T, 0, o.sliceCap)
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Push adds x to the queue.
func (q *Queue[T]) Push(x T) {
	q.items = append(q.items, x)
	gheap.PushHeap(q.shape, q.items, q.less)
}

// Top returns a pointer to the maximum element. The pointer is valid until
// the next mutating call. The queue must not be empty.
func (q *Queue[T]) Top() *T {
	if len(q.items) == 0 {
		panic("pqueue: Top of an empty queue")
	}
	return &q.items[0]
}

// Pop removes and returns the maximum element, invoking the deleter, if
// any, on the element as it leaves the queue. The queue must not be empty.
func (q *Queue[T]) Pop() T {
	if len(q.items) == 0 {
		panic("pqueue: Pop of an empty queue")
	}
	gheap.PopHeap(q.shape, q.items, q.less)
	n := len(q.items) - 1
	x := q.items[n]
	if q.deleter != nil {
		q.deleter(&q.items[n])
	}
	var zero T
	q.items[n] = zero // drop the queue's reference to the vacated slot
	q.items = q.items[:n]
	return x
}

// Close invokes the deleter, if any, on every element still held and
// releases the queue's storage. The queue is empty afterwards and remains
// usable.
func (q *Queue[T]) Close() {
	if q.deleter != nil {
		for i := range q.items {
			q.deleter(&q.items[i])
		}
	}
	q.items = nil
}
