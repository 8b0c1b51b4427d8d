// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package algorithm provides sorting and merging algorithms built on the
// paged heap primitives of cloudeng.io/gheap: heapsort, partial sort,
// N-way merge and N-way mergesort.
package algorithm

import "cloudeng.io/gheap"

// Heapsort sorts a into ascending order under less.
func Heapsort[T any](s gheap.Shape, a []T, less func(a, b T) bool) {
	gheap.MakeHeap(s, a, less)
	gheap.SortHeap(s, a, less)
}
