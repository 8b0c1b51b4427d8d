// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package algorithm

import "cloudeng.io/gheap"

// NWayMerge merges the given ascending inputs into out in ascending order
// under less. Every input must hold at least one item. The inputs slice is
// permuted in place as inputs drain; on return every input has been
// advanced to exhaustion.
func NWayMerge[T any](s gheap.Shape, inputs []Input[T], out Output[T], less func(a, b T) bool) {
	if len(inputs) == 0 {
		panic("algorithm: NWayMerge needs at least one input")
	}
	// Order the input handles by their current item, inverted so the
	// handle with the smallest current item sits at the root of the
	// max-heap.
	handleLess := func(a, b Input[T]) bool {
		return less(*b.Get(), *a.Get())
	}
	h := inputs
	gheap.MakeHeap(s, h, handleLess)
	for {
		in := h[0]
		out.Put(*in.Get())
		if !in.Next() {
			n := len(h) - 1
			if n == 0 {
				break
			}
			h[0], h[n] = h[n], h[0]
			h = h[:n]
		}
		gheap.RestoreAfterDecrease(s, h, 0, handleLess)
	}
}
