// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gheap_test

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"cloudeng.io/gheap"
)

// randInts returns n deterministic pseudo-random keys with enough
// duplicates to exercise the tie-break paths.
func randInts(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rnd.Intn(1 << 13)
	}
	return vals
}

func sameMultiset(a, b []int) bool {
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

func TestMakeHeap(t *testing.T) {
	lt := gheap.Less[int]()
	for _, s := range shapeGrid() {
		for _, n := range []int{0, 1, 2, 3, 7, 8, 63, 64, 100, 1000} {
			input := randInts(int64(n), n)
			a := slices.Clone(input)
			gheap.MakeHeap(s, a, lt)
			if !gheap.IsHeap(s, a, lt) {
				t.Errorf("shape %v/%v size %v: MakeHeap did not produce a heap",
					s.Fanout(), s.PageChunks(), n)
			}
			gheap.VerifyHeap(t, s, a, lt)
			if !sameMultiset(a, input) {
				t.Errorf("shape %v/%v size %v: MakeHeap lost elements",
					s.Fanout(), s.PageChunks(), n)
			}
		}
	}
}

func TestIsHeapUntil(t *testing.T) {
	s := gheap.NewShape(2, 1)
	lt := gheap.Less[int]()
	if got, want := gheap.IsHeapUntil(s, nil, lt), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gheap.IsHeapUntil(s, []int{7}, lt), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gheap.IsHeapUntil(s, []int{9, 7, 8, 3, 5, 6}, lt), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// a[1] > a[0] breaks the first edge.
	if got, want := gheap.IsHeapUntil(s, []int{5, 9, 1}, lt), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The prefix up to the violation is a valid heap.
	if got, want := gheap.IsHeapUntil(s, []int{9, 7, 8, 3, 5, 10}, lt), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeapsortScenario(t *testing.T) {
	// Sorting via make + sort over the binary shape.
	s := gheap.NewShape(2, 1)
	lt := gheap.Less[int]()
	a := []int{5, 2, 9, 1, 5, 6}
	gheap.MakeHeap(s, a, lt)
	gheap.SortHeap(s, a, lt)
	if got, want := a, []int{1, 2, 5, 5, 6, 9}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEqualKeys(t *testing.T) {
	lt := gheap.Less[int]()
	for _, s := range shapeGrid() {
		a := []int{3, 3, 3, 3}
		if !gheap.IsHeap(s, a, lt) {
			t.Errorf("equal keys are always a heap")
		}
		gheap.MakeHeap(s, a, lt)
		gheap.SortHeap(s, a, lt)
		if got, want := a, []int{3, 3, 3, 3}; !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestPushPopOrdering(t *testing.T) {
	lt := gheap.Less[int]()
	for _, s := range shapeGrid() {
		input := randInts(42, 500)
		a := make([]int, 0, len(input))
		for _, v := range input {
			a = append(a, v)
			gheap.PushHeap(s, a, lt)
			gheap.VerifyHeap(t, s, a, lt)
		}
		var popped []int
		for len(a) > 0 {
			gheap.PopHeap(s, a, lt)
			popped = append(popped, a[len(a)-1])
			a = a[:len(a)-1]
		}
		if !sort.IsSorted(sort.Reverse(sort.IntSlice(popped))) {
			t.Errorf("shape %v/%v: pops are not non-increasing: %v...",
				s.Fanout(), s.PageChunks(), popped[:10])
		}
		if !sameMultiset(popped, input) {
			t.Errorf("shape %v/%v: pops lost elements", s.Fanout(), s.PageChunks())
		}
	}
}

func TestSortHeapAcrossShapes(t *testing.T) {
	// Identical results for every shape, only performance may differ.
	lt := gheap.Less[int]()
	input := randInts(7, 1000)
	want := slices.Clone(input)
	slices.Sort(want)
	for _, s := range shapeGrid() {
		a := slices.Clone(input)
		gheap.MakeHeap(s, a, lt)
		gheap.SortHeap(s, a, lt)
		if !slices.Equal(a, want) {
			t.Errorf("shape %v/%v: sorted output differs", s.Fanout(), s.PageChunks())
		}
	}
}

func TestSortHeapDescending(t *testing.T) {
	gt := gheap.Greater[int]()
	input := randInts(11, 500)
	want := slices.Clone(input)
	slices.Sort(want)
	slices.Reverse(want)
	for _, s := range shapeGrid() {
		a := slices.Clone(input)
		gheap.MakeHeap(s, a, gt)
		gheap.SortHeap(s, a, gt)
		if !slices.Equal(a, want) {
			t.Errorf("shape %v/%v: descending sort differs", s.Fanout(), s.PageChunks())
		}
	}
}

func TestSwapMaxItem(t *testing.T) {
	lt := gheap.Less[int]()
	for _, s := range shapeGrid() {
		a := []int{7, 3, 5, 1, 9, 2, 8, 4}
		gheap.MakeHeap(s, a, lt)
		item := 0
		gheap.SwapMaxItem(s, a, &item, lt)
		if got, want := item, 9; got != want {
			t.Errorf("shape %v/%v: got %v, want %v", s.Fanout(), s.PageChunks(), got, want)
		}
		gheap.VerifyHeap(t, s, a, lt)
		if !sameMultiset(a, []int{7, 3, 5, 1, 0, 2, 8, 4}) {
			t.Errorf("shape %v/%v: unexpected heap contents %v", s.Fanout(), s.PageChunks(), a)
		}

		single := []int{5}
		item = 42
		gheap.SwapMaxItem(s, single, &item, lt)
		if got, want := item, 5; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := single[0], 42; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestRestoreAfterIncrease(t *testing.T) {
	lt := gheap.Less[int]()
	rnd := rand.New(rand.NewSource(3)) // #nosec: G404
	for _, s := range shapeGrid() {
		a := randInts(13, 200)
		gheap.MakeHeap(s, a, lt)
		for trial := 0; trial < 50; trial++ {
			i := rnd.Intn(len(a))
			a[i] += rnd.Intn(5000)
			gheap.RestoreAfterIncrease(s, a, i, lt)
			gheap.VerifyHeap(t, s, a, lt)
		}
	}
}

func TestRestoreAfterDecrease(t *testing.T) {
	lt := gheap.Less[int]()
	rnd := rand.New(rand.NewSource(4)) // #nosec: G404
	for _, s := range shapeGrid() {
		a := randInts(17, 200)
		gheap.MakeHeap(s, a, lt)
		for trial := 0; trial < 50; trial++ {
			i := rnd.Intn(len(a))
			a[i] -= rnd.Intn(5000)
			gheap.RestoreAfterDecrease(s, a, i, lt)
			gheap.VerifyHeap(t, s, a, lt)
		}
	}
}

func TestRemoveFromHeap(t *testing.T) {
	s := gheap.NewShape(2, 1)
	lt := gheap.Less[int]()
	a := []int{9, 7, 8, 3, 5, 6}
	gheap.MakeHeap(s, a, lt)
	gheap.RemoveFromHeap(s, a, 2, lt)
	if got, want := a[len(a)-1], 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	gheap.VerifyHeap(t, s, a[:len(a)-1], lt)
	if !gheap.IsHeap(s, a[:len(a)-1], lt) {
		t.Errorf("prefix is not a heap after removal: %v", a)
	}
}

func TestRemoveFromHeapRandom(t *testing.T) {
	lt := gheap.Less[int]()
	rnd := rand.New(rand.NewSource(5)) // #nosec: G404
	for _, s := range shapeGrid() {
		input := randInts(19, 100)
		a := slices.Clone(input)
		gheap.MakeHeap(s, a, lt)
		var removed []int
		for len(a) > 0 {
			i := rnd.Intn(len(a))
			want := a[i]
			gheap.RemoveFromHeap(s, a, i, lt)
			if got := a[len(a)-1]; got != want {
				t.Fatalf("shape %v/%v: removed %v, want %v", s.Fanout(), s.PageChunks(), got, want)
			}
			removed = append(removed, a[len(a)-1])
			a = a[:len(a)-1]
			gheap.VerifyHeap(t, s, a, lt)
		}
		if !sameMultiset(removed, input) {
			t.Errorf("shape %v/%v: removals lost elements", s.Fanout(), s.PageChunks())
		}
	}
}

func TestSizeOneAndTwo(t *testing.T) {
	lt := gheap.Less[int]()
	for _, s := range shapeGrid() {
		one := []int{3}
		gheap.PopHeap(s, one, lt)
		if got, want := one[0], 3; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		two := []int{2, 5}
		gheap.MakeHeap(s, two, lt)
		gheap.PopHeap(s, two, lt)
		if got, want := two[1], 5; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		gheap.SortHeap(s, []int{}, lt)
	}
}

func TestPopHeapEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	gheap.PopHeap(gheap.NewShape(2, 1), []int{}, gheap.Less[int]())
}

func TestZeroShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	var s gheap.Shape
	gheap.MakeHeap(s, []int{3, 1, 2}, gheap.Less[int]())
}
