// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gheap

import "math"

// NoChild is returned by Shape.Child when the index of the first child
// cannot be represented. Any index greater than or equal to the heap size
// means "no child", which NoChild always satisfies.
const NoChild = math.MaxInt

// Shape determines the branching structure and memory layout of a paged
// heap. Fanout is the number of children per node. PageChunks is the
// number of fanout-wide chunks laid out contiguously in one page, so a
// page spans Fanout*PageChunks slots. With PageChunks == 1 the layout
// degenerates to a classical d-ary heap; larger values keep a parent and
// its children within the same page for most edges, which improves cache
// locality on large heaps.
type Shape struct {
	fanout     int
	pageChunks int
	pageSize   int
}

// NewShape returns the shape with the given fanout and page chunks.
// It panics unless fanout >= 1 and pageChunks >= 1.
func NewShape(fanout, pageChunks int) Shape {
	if fanout < 1 {
		panic("gheap: fanout must be >= 1")
	}
	if pageChunks < 1 {
		panic("gheap: page chunks must be >= 1")
	}
	if pageChunks > math.MaxInt/fanout {
		panic("gheap: page size overflows int")
	}
	return Shape{
		fanout:     fanout,
		pageChunks: pageChunks,
		pageSize:   fanout * pageChunks,
	}
}

// Fanout returns the number of children per node.
func (s Shape) Fanout() int { return s.fanout }

// PageChunks returns the number of chunks per page.
func (s Shape) PageChunks() int { return s.pageChunks }

// PageSize returns Fanout() * PageChunks().
func (s Shape) PageSize() int { return s.pageSize }

func (s Shape) check() {
	if s.fanout < 1 {
		panic("gheap: zero Shape, use NewShape")
	}
}

// Parent returns the index of the parent of u. u must be greater than 0;
// the parent of any of the root's children is 0.
func (s Shape) Parent(u int) int {
	if u <= 0 {
		panic("gheap: Parent of the root")
	}
	u--
	if s.pageChunks == 1 {
		return u / s.fanout
	}
	if u < s.fanout {
		// Parent is the root.
		return 0
	}
	v := u % s.pageSize
	if v >= s.fanout {
		// Parent is on the same page.
		return u - v + v/s.fanout
	}
	// Parent is on another page.
	v = u/s.pageSize - 1
	pageLeaves := (s.fanout-1)*s.pageChunks + 1
	u = v/pageLeaves + 1
	return u*s.pageSize + v%pageLeaves - pageLeaves + 1
}

// Child returns the index of the first child of u, or NoChild when that
// index cannot be represented. The children of u are the fanout
// consecutive indices starting at Child(u).
func (s Shape) Child(u int) int {
	if u < 0 {
		panic("gheap: negative index")
	}
	if s.pageChunks == 1 {
		if u > (math.MaxInt-1)/s.fanout {
			return NoChild
		}
		return u*s.fanout + 1
	}
	if u == 0 {
		// The root's first child is always 1.
		return 1
	}
	u--
	v := u%s.pageSize + 1
	if v < s.pageChunks {
		// Child is on the same page.
		v *= s.fanout - 1
		if u > math.MaxInt-2-v {
			return NoChild
		}
		return u + v + 2
	}
	// Child is on another page.
	pageLeaves := (s.fanout-1)*s.pageChunks + 1
	v += (u/s.pageSize+1)*pageLeaves - s.pageSize
	if v < 0 || v > (math.MaxInt-1)/s.pageSize {
		return NoChild
	}
	return v*s.pageSize + 1
}
