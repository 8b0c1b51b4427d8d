// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gheap

// siftUp moves item from the hole at index i toward the root, shifting
// each parent that orders below item down into the hole, and places item
// in the final hole.
func siftUp[T any](s Shape, a []T, i int, item T, less func(a, b T) bool) {
	for i > 0 {
		p := s.Parent(i)
		if !less(a[p], item) {
			break
		}
		a[i] = a[p]
		i = p
	}
	a[i] = item
}

// siftDown moves item from the hole at index i toward the leaves of
// a[0:n], promoting the maximum child into the hole until item orders at
// or above every child in range. Ties between children select the highest
// index.
func siftDown[T any](s Shape, a []T, n, i int, item T, less func(a, b T) bool) {
	for {
		c := s.Child(i)
		if c >= n {
			break
		}
		m := c
		last := c + s.fanout - 1
		if last >= n || last < c { // last < c after int overflow
			last = n - 1
		}
		for j := c + 1; j <= last; j++ {
			if !less(a[j], a[m]) {
				m = j
			}
		}
		if !less(item, a[m]) {
			break
		}
		a[i] = a[m]
		i = m
	}
	a[i] = item
}
