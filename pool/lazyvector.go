// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// LazyVector is a fixed-length, pool-backed sequence that defers
// construction of each slot to its first touch. It backs the bucket
// pipeline's recursive bucket arrays, which are pre-sized to the upper
// bound of possible indices even though most indices stay empty.
type LazyVector[T any] struct {
	pool *ArrayPool[T]
	buf  []T
	init []bool
}

// NewLazyVector returns a LazyVector of the given fixed size, with every
// slot marked uninitialized.
func NewLazyVector[T any](p *ArrayPool[T], size int) *LazyVector[T] {
	return &LazyVector[T]{
		pool: p,
		buf:  p.Rent(size)[:size],
		init: make([]bool, size),
	}
}

// Len returns the fixed size of the vector.
func (v *LazyVector[T]) Len() int { return len(v.buf) }

// HasValue reports whether slot i has been touched.
func (v *LazyVector[T]) HasValue(i int) bool { return v.init[i] }

// At returns the value at i, default-constructing it (the zero value) on
// first touch.
func (v *LazyVector[T]) At(i int) T {
	if !v.init[i] {
		var zero T
		v.buf[i] = zero
		v.init[i] = true
	}
	return v.buf[i]
}

// Set writes val at i and marks the slot initialized.
func (v *LazyVector[T]) Set(i int, val T) {
	v.buf[i] = val
	v.init[i] = true
}

// Release returns the backing buffer to the pool. The LazyVector must not be
// used afterward.
func (v *LazyVector[T]) Release() {
	if v.buf != nil {
		v.pool.Return(v.buf)
		v.buf = nil
	}
}
