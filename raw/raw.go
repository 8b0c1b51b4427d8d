// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package raw implements the paged heap operations of cloudeng.io/gheap
// over type-erased byte buffers, for callers whose element type is not
// known at compile time. Elements are fixed-size byte records relocated
// through a mover and ordered through a comparator; the package never
// inspects element bytes itself.
package raw

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/gheap"
)

// Context carries the shape and the element contract threaded through
// every operation.
//
// Less reports whether the element at a orders before the element at b
// under a strict weak ordering; it must not mutate or retain its
// arguments. Move relocates exactly one element from src to dst. Move is
// invoked on heap slots in three patterns only: scratch ← slot,
// slot ← slot and slot ← scratch, and never with dst and src aliasing the
// same slot. SwapMaxItem additionally moves the caller's item into
// scratch and the old maximum into the caller's item.
type Context struct {
	Shape    gheap.Shape
	ItemSize int
	Less     func(a, b []byte) bool
	Move     func(dst, src []byte)
}

// Validate reports every defect in the context at once, or nil when the
// context is usable.
func (c *Context) Validate() error {
	errs := errors.M{}
	if c.Shape.Fanout() < 1 {
		errs.Append(fmt.Errorf("fanout must be >= 1, have %v", c.Shape.Fanout()))
	}
	if c.Shape.PageChunks() < 1 {
		errs.Append(fmt.Errorf("page chunks must be >= 1, have %v", c.Shape.PageChunks()))
	}
	if c.ItemSize < 1 {
		errs.Append(fmt.Errorf("item size must be >= 1, have %v", c.ItemSize))
	}
	if c.Less == nil {
		errs.Append(fmt.Errorf("missing comparator"))
	}
	if c.Move == nil {
		errs.Append(fmt.Errorf("missing item mover"))
	}
	return errs.Err()
}

func (c *Context) check() {
	if err := c.Validate(); err != nil {
		panic("raw: invalid context: " + err.Error())
	}
}

// at returns the byte slice holding element i of base.
func (c *Context) at(base []byte, i int) []byte {
	return base[i*c.ItemSize : (i+1)*c.ItemSize]
}

func (c *Context) less(base []byte, i, j int) bool {
	return c.Less(c.at(base, i), c.at(base, j))
}

// scratch returns a buffer holding one element.
func (c *Context) scratch() []byte {
	return make([]byte, c.ItemSize)
}

// siftUp moves the element held in item from the hole at index i toward
// the root and places it in the final hole.
func (c *Context) siftUp(base []byte, i int, item []byte) {
	for i > 0 {
		p := c.Shape.Parent(i)
		parent := c.at(base, p)
		if !c.Less(parent, item) {
			break
		}
		c.Move(c.at(base, i), parent)
		i = p
	}
	c.Move(c.at(base, i), item)
}

// siftDown moves the element held in item from the hole at index i toward
// the leaves of base[0:n] elements, promoting the maximum child until item
// orders at or above every child in range. Ties select the highest index.
func (c *Context) siftDown(base []byte, n, i int, item []byte) {
	for {
		ch := c.Shape.Child(i)
		if ch >= n {
			break
		}
		m := ch
		last := ch + c.Shape.Fanout() - 1
		if last >= n || last < ch {
			last = n - 1
		}
		for j := ch + 1; j <= last; j++ {
			if !c.less(base, j, m) {
				m = j
			}
		}
		if !c.Less(item, c.at(base, m)) {
			break
		}
		c.Move(c.at(base, i), c.at(base, m))
		i = m
	}
	c.Move(c.at(base, i), item)
}

func (c *Context) swap(base []byte, i, j int) {
	tmp := c.scratch()
	c.Move(tmp, c.at(base, i))
	c.Move(c.at(base, i), c.at(base, j))
	c.Move(c.at(base, j), tmp)
}

// IsHeapUntil returns the smallest index k such that the first k elements
// of base form a valid max-heap and either k == heapSize or the
// parent→child edge ending at k violates the heap order.
func (c *Context) IsHeapUntil(base []byte, heapSize int) int {
	c.check()
	for v := 1; v < heapSize; v++ {
		if c.less(base, c.Shape.Parent(v), v) {
			return v
		}
	}
	return heapSize
}

// IsHeap reports whether the first heapSize elements of base form a valid
// max-heap.
func (c *Context) IsHeap(base []byte, heapSize int) bool {
	return c.IsHeapUntil(base, heapSize) == heapSize
}

// MakeHeap reorders the first heapSize elements of base into a valid
// max-heap.
func (c *Context) MakeHeap(base []byte, heapSize int) {
	c.check()
	if heapSize < 2 {
		return
	}
	i := heapSize - 2
	if c.Shape.PageChunks() == 1 {
		i = (heapSize - 2) / c.Shape.Fanout()
	}
	item := c.scratch()
	for ; i >= 0; i-- {
		c.Move(item, c.at(base, i))
		c.siftDown(base, heapSize, i, item)
	}
}

// PushHeap grows the heap held in the first heapSize-1 elements of base by
// sifting element heapSize-1 up into position.
func (c *Context) PushHeap(base []byte, heapSize int) {
	c.check()
	if heapSize == 0 {
		panic("raw: PushHeap of an empty window")
	}
	if heapSize < 2 {
		return
	}
	item := c.scratch()
	c.Move(item, c.at(base, heapSize-1))
	c.siftUp(base, heapSize-1, item)
}

// PopHeap moves the maximum of the heap to element heapSize-1 and restores
// the heap invariant on the first heapSize-1 elements.
func (c *Context) PopHeap(base []byte, heapSize int) {
	c.check()
	switch {
	case heapSize == 0:
		panic("raw: PopHeap of an empty heap")
	case heapSize == 1:
	case heapSize == 2:
		c.swap(base, 0, 1)
	default:
		c.popMaxItem(base, heapSize-1)
	}
}

// popMaxItem pops the maximum of the heap held in the first heapSize
// elements into element heapSize.
func (c *Context) popMaxItem(base []byte, heapSize int) {
	item := c.scratch()
	c.Move(item, c.at(base, heapSize))
	c.Move(c.at(base, heapSize), c.at(base, 0))
	c.siftDown(base, heapSize, 0, item)
}

// SortHeap sorts the heap held in the first heapSize elements of base into
// ascending order.
func (c *Context) SortHeap(base []byte, heapSize int) {
	c.check()
	for i := heapSize; i > 2; i-- {
		c.popMaxItem(base, i-1)
	}
	if heapSize > 1 {
		c.swap(base, 0, 1)
	}
}

// SwapMaxItem exchanges the element held in item with the maximum of the
// heap and restores the heap invariant: on return item holds the old
// maximum. item must not alias base.
func (c *Context) SwapMaxItem(base []byte, heapSize int, item []byte) {
	c.check()
	if heapSize == 0 {
		panic("raw: SwapMaxItem of an empty heap")
	}
	tmp := c.scratch()
	c.Move(tmp, item)
	c.Move(item, c.at(base, 0))
	if heapSize > 1 {
		c.siftDown(base, heapSize, 0, tmp)
	} else {
		c.Move(c.at(base, 0), tmp)
	}
}

// RestoreAfterIncrease restores the heap invariant after the key of
// element i has risen.
func (c *Context) RestoreAfterIncrease(base []byte, heapSize, i int) {
	c.check()
	if i < 0 || i >= heapSize {
		panic("raw: index outside the heap window")
	}
	if i > 0 {
		item := c.scratch()
		c.Move(item, c.at(base, i))
		c.siftUp(base, i, item)
	}
}

// RestoreAfterDecrease restores the heap invariant after the key of
// element i has fallen.
func (c *Context) RestoreAfterDecrease(base []byte, heapSize, i int) {
	c.check()
	if i < 0 || i >= heapSize {
		panic("raw: index outside the heap window")
	}
	if heapSize > 1 {
		item := c.scratch()
		c.Move(item, c.at(base, i))
		c.siftDown(base, heapSize, i, item)
	}
}

// RemoveFromHeap extracts element i into element heapSize-1 and restores
// the heap invariant on the first heapSize-1 elements.
func (c *Context) RemoveFromHeap(base []byte, heapSize, i int) {
	c.check()
	n := heapSize - 1
	if i < 0 || i > n {
		panic("raw: index outside the heap window")
	}
	if i == n {
		return
	}
	if n == 1 {
		c.swap(base, 0, 1)
		return
	}
	tmp := c.scratch()
	c.Move(tmp, c.at(base, n))
	c.Move(c.at(base, n), c.at(base, i))
	if c.Less(tmp, c.at(base, n)) {
		c.siftDown(base, n, i, tmp)
	} else {
		c.siftUp(base, i, tmp)
	}
}
