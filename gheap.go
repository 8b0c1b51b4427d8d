// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gheap implements a generalized paged d-ary max-heap over caller
// owned slices. The branching factor and page layout are described by a
// Shape; with the default-like Shape of fanout 2 and a single page chunk
// the heap is a classical binary heap, while larger fanouts and page
// chunk counts trade comparisons for cache locality on large heaps.
//
// All operations are package level generic functions taking the shape,
// the slice holding the heap window and a less function. A heap built
// with less is a max-heap: for every parent u and child v,
// !less(a[u], a[v]). Min-heap behavior and descending sorts are obtained
// by supplying an inverted less function, see Greater.
//
// The slice passed to an operation is the heap window. PopHeap and
// RemoveFromHeap relocate the extracted element to the last slot of the
// window, so callers shrink the window by reslicing afterwards.
//
// Operations never allocate beyond a single element of scratch and are
// not safe for concurrent use with mutations. Precondition violations
// (an empty window where elements are required, an index outside the
// window, a zero Shape) panic.
package gheap

// IsHeapUntil returns the smallest index k such that a[0:k] is a valid
// max-heap under less and either k == len(a) or the parent→child edge
// ending at k violates the heap order.
func IsHeapUntil[T any](s Shape, a []T, less func(a, b T) bool) int {
	s.check()
	for v := 1; v < len(a); v++ {
		if less(a[s.Parent(v)], a[v]) {
			return v
		}
	}
	return len(a)
}

// IsHeap reports whether a is a valid max-heap under less.
func IsHeap[T any](s Shape, a []T, less func(a, b T) bool) bool {
	return IsHeapUntil(s, a, less) == len(a)
}

// MakeHeap reorders a into a valid max-heap under less.
func MakeHeap[T any](s Shape, a []T, less func(a, b T) bool) {
	s.check()
	n := len(a)
	if n < 2 {
		return
	}
	// For the flat layout start at the parent of the last node, skipping
	// the leaves. Paged layouts have no cheap leaf test, so every slot is
	// visited there.
	i := n - 2
	if s.pageChunks == 1 {
		i = (n - 2) / s.fanout
	}
	for ; i >= 0; i-- {
		item := a[i]
		siftDown(s, a, n, i, item, less)
	}
}

// PushHeap grows the heap a[0:len(a)-1] by sifting a[len(a)-1] up into
// position. The window must not be empty.
func PushHeap[T any](s Shape, a []T, less func(a, b T) bool) {
	s.check()
	n := len(a)
	if n == 0 {
		panic("gheap: PushHeap of an empty window")
	}
	if n < 2 {
		return
	}
	item := a[n-1]
	siftUp(s, a, n-1, item, less)
}

// PopHeap moves the maximum of the heap a to a[len(a)-1] and restores the
// heap invariant on a[0:len(a)-1]. The window must not be empty.
func PopHeap[T any](s Shape, a []T, less func(a, b T) bool) {
	s.check()
	n := len(a)
	switch {
	case n == 0:
		panic("gheap: PopHeap of an empty heap")
	case n == 1:
	case n == 2:
		a[0], a[1] = a[1], a[0]
	default:
		popMaxItem(s, a, n-1, less)
	}
}

// popMaxItem pops the maximum of the heap a[0:heapSize] into a[heapSize].
func popMaxItem[T any](s Shape, a []T, heapSize int, less func(a, b T) bool) {
	item := a[heapSize]
	a[heapSize] = a[0]
	siftDown(s, a, heapSize, 0, item, less)
}

// SortHeap sorts the heap a into ascending order under less.
func SortHeap[T any](s Shape, a []T, less func(a, b T) bool) {
	s.check()
	for i := len(a); i > 2; i-- {
		popMaxItem(s, a, i-1, less)
	}
	if len(a) > 1 {
		a[0], a[1] = a[1], a[0]
	}
}

// SwapMaxItem exchanges *item with the maximum of the heap a and restores
// the heap invariant: on return *item holds the old maximum and the heap
// contains the old *item. The heap must not be empty.
func SwapMaxItem[T any](s Shape, a []T, item *T, less func(a, b T) bool) {
	s.check()
	n := len(a)
	if n == 0 {
		panic("gheap: SwapMaxItem of an empty heap")
	}
	tmp := *item
	*item = a[0]
	if n > 1 {
		siftDown(s, a, n, 0, tmp, less)
	} else {
		a[0] = tmp
	}
}

// RestoreAfterIncrease restores the heap invariant after the key of a[i]
// has risen, sifting a[i] up toward the root. a[0:i] must be a valid heap.
func RestoreAfterIncrease[T any](s Shape, a []T, i int, less func(a, b T) bool) {
	s.check()
	if i < 0 || i >= len(a) {
		panic("gheap: index outside the heap window")
	}
	if i > 0 {
		item := a[i]
		siftUp(s, a, i, item, less)
	}
}

// RestoreAfterDecrease restores the heap invariant after the key of a[i]
// has fallen, sifting a[i] down toward the leaves.
func RestoreAfterDecrease[T any](s Shape, a []T, i int, less func(a, b T) bool) {
	s.check()
	if i < 0 || i >= len(a) {
		panic("gheap: index outside the heap window")
	}
	if len(a) > 1 {
		item := a[i]
		siftDown(s, a, len(a), i, item, less)
	}
}

// RemoveFromHeap extracts a[i] into a[len(a)-1] and restores the heap
// invariant on a[0:len(a)-1]. The former last element is written into
// position i and sifted up or down depending on how it compares to the
// extracted element.
func RemoveFromHeap[T any](s Shape, a []T, i int, less func(a, b T) bool) {
	s.check()
	n := len(a) - 1 // heap size after the removal
	if i < 0 || i > n {
		panic("gheap: index outside the heap window")
	}
	if i == n {
		return
	}
	if n == 1 {
		a[0], a[1] = a[1], a[0]
		return
	}
	tmp := a[n]
	a[n] = a[i]
	if less(tmp, a[n]) {
		siftDown(s, a, n, i, tmp, less)
	} else {
		siftUp(s, a, i, tmp, less)
	}
}
