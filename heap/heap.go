// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package heap implements a min-max heap: a binary heap whose root sits on
// a max level, alternating min/max levels down the tree, exposing O(1)
// access to both the minimum and maximum element and, for size >= 3, the
// ordered (max, mid, min) triple with a single comparison.
//
// See D. Atkinson, J-R. Sack, N. Santoro, T. Strothotte, "Min-Max Heaps and
// Generalized Priority Queues" (1986).
package heap

import (
	"math/bits"

	"code.hybscloud.com/bbsort/pool"
)

// MinMax is a min-max heap over elements of type T, storage rented from an
// ArrayPool. Ordering is supplied by less rather than a type constraint,
// since buckets sometimes hold raw numeric values and sometimes hold
// (value, count) pairs ordered by value alone.
type MinMax[T any] struct {
	storage *pool.Vector[T]
	less    func(a, b T) bool
}

// New returns an empty heap backed by p and ordered by less.
func New[T any](p *pool.ArrayPool[T], less func(a, b T) bool) *MinMax[T] {
	return &MinMax[T]{
		storage: pool.NewVector(p),
		less:    less,
	}
}

// Len returns the number of elements in the heap.
func (h *MinMax[T]) Len() int { return h.storage.Len() }

// Empty reports whether the heap holds no elements.
func (h *MinMax[T]) Empty() bool { return h.storage.Len() == 0 }

// At returns the element stored at raw heap index i (0 is always the max).
func (h *MinMax[T]) At(i int) T { return h.storage.At(i) }

// Release returns the heap's backing storage to its pool. The heap must not
// be used afterward.
func (h *MinMax[T]) Release() { h.storage.Release() }

// Push inserts val and restores the min-max heap property.
func (h *MinMax[T]) Push(val T) {
	h.storage.PushBack(val)
	h.trickleUp(h.storage.Len() - 1)
}

// FindMax returns the greatest element. Panics if the heap is empty.
func (h *MinMax[T]) FindMax() T {
	if h.Empty() {
		panic("heap: FindMax on empty heap")
	}
	return h.storage.At(0)
}

// FindMin returns the least element. Panics if the heap is empty.
func (h *MinMax[T]) FindMin() T {
	if h.Empty() {
		panic("heap: FindMin on empty heap")
	}
	return h.storage.At(h.findMinIndex())
}

// AllDuplicates is the sufficient-but-not-complete short circuit: it only
// compares the root to its first child (index 1), which is enough for the
// recursion's duplicate short-circuit heuristic (see spec Design Notes).
// Callers wanting a strict check should compare FindMin() == FindMax()
// instead.
func (h *MinMax[T]) AllDuplicates() bool {
	return h.eq(h.storage.At(0), h.storage.At(1))
}

func (h *MinMax[T]) eq(a, b T) bool {
	return !h.less(a, b) && !h.less(b, a)
}

// GetMaxMidMin returns the (max, mid, min) index triple in O(1) for a heap
// of size >= 3, resolved with a single comparison.
func (h *MinMax[T]) GetMaxMidMin() (maxIdx, midIdx, minIdx int) {
	if h.less(h.storage.At(1), h.storage.At(2)) {
		return 0, 2, 1
	}
	return 0, 1, 2
}

// PopMax removes and returns the greatest element.
func (h *MinMax[T]) PopMax() T {
	if h.Empty() {
		panic("heap: PopMax on empty heap")
	}
	top := h.storage.At(0)
	h.deleteElement(0)
	return top
}

// Pop is a convenience alias for PopMax.
func (h *MinMax[T]) Pop() T { return h.PopMax() }

// PopMin removes and returns the least element.
func (h *MinMax[T]) PopMin() T {
	if h.Empty() {
		panic("heap: PopMin on empty heap")
	}
	idx := h.findMinIndex()
	v := h.storage.At(idx)
	h.deleteElement(idx)
	return v
}

func (h *MinMax[T]) findMinIndex() int {
	switch h.storage.Len() {
	case 0:
		panic("heap: findMinIndex on empty heap")
	case 1:
		return 0
	case 2:
		return 1
	default:
		if h.less(h.storage.At(1), h.storage.At(2)) {
			return 1
		}
		return 2
	}
}

func (h *MinMax[T]) deleteElement(idx int) {
	n := h.storage.Len()
	if idx == n-1 {
		h.storage.PopBack()
		return
	}

	last := h.storage.PopBack()
	h.storage.Set(idx, last)
	h.trickleDown(idx)
}

// isOnMinLevel reports whether index i sits on a min level: level(i) is odd,
// where level(i) = floor(log2(i+1)).
func isOnMinLevel(i int) bool {
	level := bits.Len(uint(i+1)) - 1
	return level%2 == 1
}

func parentOf(i int) int     { return (i - 1) / 2 }
func leftChildOf(i int) int  { return 2*i + 1 }
func rightChildOf(i int) int { return 2*i + 2 }

func (h *MinMax[T]) swap(i, j int) {
	vi, vj := h.storage.At(i), h.storage.At(j)
	h.storage.Set(i, vj)
	h.storage.Set(j, vi)
}

func (h *MinMax[T]) trickleUp(i int) {
	if i == 0 {
		return
	}
	p := parentOf(i)

	if isOnMinLevel(i) {
		if h.less(h.storage.At(p), h.storage.At(i)) {
			h.swap(p, i)
			h.trickleUpOnLevel(p, true)
		} else {
			h.trickleUpOnLevel(i, false)
		}
	} else {
		if h.less(h.storage.At(i), h.storage.At(p)) {
			h.swap(p, i)
			h.trickleUpOnLevel(p, false)
		} else {
			h.trickleUpOnLevel(i, true)
		}
	}
}

// trickleUpOnLevel continues a trickle-up already known to be on the given
// level (maxLevel == true means i sits on a max level), comparing against
// the grandparent until the invariant holds.
func (h *MinMax[T]) trickleUpOnLevel(i int, maxLevel bool) {
	if i == 0 {
		return
	}
	gp := parentOf(i)
	if gp == 0 {
		return
	}
	gp = parentOf(gp)

	violates := h.less(h.storage.At(i), h.storage.At(gp))
	if violates != maxLevel {
		h.swap(gp, i)
		h.trickleUpOnLevel(gp, maxLevel)
	}
}

func (h *MinMax[T]) trickleDown(i int) {
	if isOnMinLevel(i) {
		h.trickleDownOnLevel(i, false)
	} else {
		h.trickleDownOnLevel(i, true)
	}
}

// trickleDownOnLevel sifts the element at i down within its level (maxLevel
// selects whether "best" means greatest or least), comparing it against its
// children and grandchildren.
func (h *MinMax[T]) trickleDownOnLevel(i int, maxLevel bool) {
	n := h.storage.Len()
	if i >= n {
		panic("heap: trickleDown index does not exist")
	}

	best := i
	left := leftChildOf(i)

	better := func(a, b int) bool {
		if maxLevel {
			return h.less(h.storage.At(b), h.storage.At(a))
		}
		return h.less(h.storage.At(a), h.storage.At(b))
	}

	if left < n && better(left, best) {
		best = left
	}
	if left+1 < n && better(left+1, best) {
		best = left + 1
	}

	leftGrandchild := leftChildOf(left)
	for k := 0; k < 4 && leftGrandchild+k < n; k++ {
		c := leftGrandchild + k
		if better(c, best) {
			best = c
		}
	}

	if best == i {
		return
	}

	h.swap(i, best)

	if best-left > 1 {
		p := parentOf(best)
		if better(p, best) {
			h.swap(p, best)
		}
		h.trickleDownOnLevel(best, maxLevel)
	}
}
