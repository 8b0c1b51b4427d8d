// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gheap

import "golang.org/x/exp/constraints"

// Less returns a comparison function ordering values of an ordered type
// ascending. A heap built with it is a max-heap and SortHeap produces
// ascending output.
func Less[T constraints.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}

// Greater returns the inverse of Less. A heap built with it behaves as a
// min-heap and SortHeap produces descending output.
func Greater[T constraints.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return b < a }
}
