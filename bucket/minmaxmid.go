// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bucket implements the min-max-mid vector: an append-only
// container that tracks {Min, Max, Mid} incrementally, as a lighter
// alternative to a full min-max heap when a caller only ever needs the
// size-3 fast path's extremes.
package bucket

import "code.hybscloud.com/bbsort/pool"

// MinMaxMid is an append-only sequence that tracks its minimum, maximum,
// and (for exactly size 3) middle value as elements are pushed. Mid is only
// reliable while the vector holds exactly three elements; past that, only
// Min/Max continue to be tracked.
type MinMaxMid[T any] struct {
	storage *pool.Vector[T]
	less    func(a, b T) bool

	Min, Max, Mid T
	hasMinMax     bool
}

// New returns an empty MinMaxMid backed by p and ordered by less.
func New[T any](p *pool.ArrayPool[T], less func(a, b T) bool) *MinMaxMid[T] {
	return &MinMaxMid[T]{
		storage: pool.NewVector(p),
		less:    less,
	}
}

// Len returns the number of elements pushed.
func (v *MinMaxMid[T]) Len() int { return v.storage.Len() }

// Empty reports whether the vector holds no elements.
func (v *MinMaxMid[T]) Empty() bool { return v.storage.Len() == 0 }

// At returns the element at push-order index i.
func (v *MinMaxMid[T]) At(i int) T { return v.storage.At(i) }

// Release returns the backing storage to its pool.
func (v *MinMaxMid[T]) Release() { v.storage.Release() }

// Push appends val, updating Min/Max/Mid per the incremental rule: while
// size is 0 or 1 both extremes track val; at size 2, a new extreme shifts
// the old extreme into Mid; beyond size 2, Mid is no longer touched.
func (v *MinMaxMid[T]) Push(val T) {
	switch v.storage.Len() {
	case 0:
		v.Min, v.Max = val, val
		v.hasMinMax = true
	case 1:
		if v.less(val, v.Min) {
			v.Min = val
		}
		if v.less(v.Max, val) {
			v.Max = val
		}
	case 2:
		if v.less(val, v.Min) {
			v.Mid = v.Min
			v.Min = val
		} else if v.less(v.Max, val) {
			v.Mid = v.Max
			v.Max = val
		} else {
			v.Mid = val
		}
	default:
		if v.less(val, v.Min) {
			v.Min = val
		}
		if v.less(v.Max, val) {
			v.Max = val
		}
	}

	v.storage.PushBack(val)
}
