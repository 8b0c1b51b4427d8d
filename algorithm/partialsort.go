// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package algorithm

import "cloudeng.io/gheap"

// PartialSort reorders a so that a[0:middle] holds the middle smallest
// elements in ascending order and every element of a[middle:] orders at or
// above them. The relative order of a[middle:] is unspecified.
func PartialSort[T any](s gheap.Shape, a []T, middle int, less func(a, b T) bool) {
	if middle < 0 || middle > len(a) {
		panic("algorithm: middle outside the range")
	}
	if middle == 0 {
		return
	}
	window := a[:middle]
	gheap.MakeHeap(s, window, less)
	for i := middle; i < len(a); i++ {
		if less(a[i], window[0]) {
			gheap.SwapMaxItem(s, window, &a[i], less)
		}
	}
	gheap.SortHeap(s, window, less)
}
