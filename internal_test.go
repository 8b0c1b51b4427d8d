// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gheap

import "testing"

// VerifyHeap fails the test if a is not a valid max-heap under less for
// the given shape.
func VerifyHeap[T any](t *testing.T, s Shape, a []T, less func(a, b T) bool) {
	t.Helper()
	for v := 1; v < len(a); v++ {
		p := s.Parent(v)
		if less(a[p], a[v]) {
			t.Errorf("heap inconsistent: edge %v -> %v ([%v] %v < [%v] %v)", p, v, p, a[p], v, a[v])
			return
		}
	}
}
