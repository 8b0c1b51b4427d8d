// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package algorithm

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/gheap"
)

const (
	// DefaultSmallRangeSize is the run length sorted by the small-range
	// sorter in the first phase of NWayMergesort.
	DefaultSmallRangeSize = 32
	// DefaultSubranges is the number of runs merged per NWayMerge call in
	// the second phase of NWayMergesort.
	DefaultSubranges = 15
)

type sortOptions[T any] struct {
	smallRangeSize   int
	subranges        int
	scratch          []T
	smallRangeSorter func(a []T, less func(a, b T) bool)
}

// SortOption represents the options accepted by NWayMergesort.
type SortOption[T any] func(*sortOptions[T])

// WithSmallRangeSize sets the run length for the first phase of the sort.
func WithSmallRangeSize[T any](n int) SortOption[T] {
	return func(o *sortOptions[T]) {
		o.smallRangeSize = n
	}
}

// WithSubranges sets the number of runs merged at a time in the second
// phase of the sort.
func WithSubranges[T any](n int) SortOption[T] {
	return func(o *sortOptions[T]) {
		o.subranges = n
	}
}

// WithScratch supplies the scratch buffer used by the merge phase. It must
// hold at least as many elements as the range being sorted; without it a
// buffer is allocated per call.
func WithScratch[T any](buf []T) SortOption[T] {
	return func(o *sortOptions[T]) {
		o.scratch = buf
	}
}

// WithSmallRangeSorter replaces InsertionSort as the first-phase sorter.
// The sorter must sort its argument ascending under the less function it
// is given.
func WithSmallRangeSorter[T any](fn func(a []T, less func(a, b T) bool)) SortOption[T] {
	return func(o *sortOptions[T]) {
		o.smallRangeSorter = fn
	}
}

func (o *sortOptions[T]) validate(n int) error {
	errs := errors.M{}
	if o.smallRangeSize < 1 {
		errs.Append(fmt.Errorf("small range size must be >= 1, have %v", o.smallRangeSize))
	}
	if o.subranges < 2 {
		errs.Append(fmt.Errorf("subranges must be >= 2, have %v", o.subranges))
	}
	if o.scratch != nil && len(o.scratch) < n {
		errs.Append(fmt.Errorf("scratch buffer holds %v elements, need %v", len(o.scratch), n))
	}
	if o.smallRangeSorter == nil {
		errs.Append(fmt.Errorf("missing small range sorter"))
	}
	return errs.Err()
}

// InsertionSort sorts a into ascending order under less. It is the default
// small-range sorter for NWayMergesort.
func InsertionSort[T any](a []T, less func(a, b T) bool) {
	for i := 1; i < len(a); i++ {
		item := a[i]
		j := i
		for j > 0 && less(item, a[j-1]) {
			a[j] = a[j-1]
			j--
		}
		a[j] = item
	}
}

// NWayMergesort sorts a into ascending order under less. The range is
// partitioned into consecutive runs which are sorted by the small-range
// sorter, then groups of runs are merged through a scratch buffer with
// NWayMerge, the run length growing by the subranges factor per round
// until a single run remains. The shape of the work is independent of the
// input ordering.
func NWayMergesort[T any](s gheap.Shape, a []T, less func(a, b T) bool, opts ...SortOption[T]) {
	o := sortOptions[T]{
		smallRangeSize:   DefaultSmallRangeSize,
		subranges:        DefaultSubranges,
		smallRangeSorter: InsertionSort[T],
	}
	for _, fn := range opts {
		fn(&o)
	}
	n := len(a)
	if err := o.validate(n); err != nil {
		panic("algorithm: NWayMergesort: " + err.Error())
	}

	// Phase 1: sort consecutive runs of smallRangeSize elements; the last
	// run may be shorter.
	for lo := 0; lo < n; lo += o.smallRangeSize {
		hi := lo + o.smallRangeSize
		if hi > n {
			hi = n
		}
		o.smallRangeSorter(a[lo:hi], less)
	}
	if n <= o.smallRangeSize {
		return
	}

	// Phase 2: merge groups of subranges consecutive runs into the
	// scratch buffer, move the merged output back, and widen the runs
	// until one run covers the range.
	buf := o.scratch
	if buf == nil {
		buf = make([]T, n)
	}
	buf = buf[:n]
	handles := make([]SliceInput[T], o.subranges)
	inputs := make([]Input[T], o.subranges)
	for runSize := o.smallRangeSize; runSize < n; {
		w := &bufWriter[T]{buf: buf}
		for start := 0; start < n; {
			k := 0
			lo := start
			for lo < n && k < o.subranges {
				hi := lo + runSize
				if hi > n {
					hi = n
				}
				handles[k] = SliceInput[T]{items: a[lo:hi]}
				inputs[k] = &handles[k]
				k++
				lo = hi
			}
			NWayMerge(s, inputs[:k], w, less)
			start = lo
		}
		copy(a, buf)
		if runSize > (n-1)/o.subranges {
			break
		}
		runSize *= o.subranges
	}
}
