// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// Vector is a contiguous dynamic sequence whose backing storage is rented
// from an ArrayPool rather than grown by the runtime allocator directly.
// Growth policy matches the teacher/spec contract: new capacity is
// max(16, 2*old). Go's garbage collector makes the trivial/non-trivial
// element distinction in the reference implementation moot (there is no
// destructor to run either way), so growth is always a single copy().
type Vector[T any] struct {
	pool *ArrayPool[T]
	buf  []T
	n    int
}

// NewVector returns an empty Vector renting from p.
func NewVector[T any](p *ArrayPool[T]) *Vector[T] {
	return &Vector[T]{pool: p}
}

// Len returns the number of elements pushed.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the vector's current rented capacity.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// At returns the element at index i.
func (v *Vector[T]) At(i int) T { return v.buf[i] }

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, val T) { v.buf[i] = val }

// PushBack appends val, growing the backing buffer through the pool if
// needed.
func (v *Vector[T]) PushBack(val T) {
	if v.n == len(v.buf) {
		v.grow(v.n + 1)
	}
	v.buf[v.n] = val
	v.n++
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() T {
	v.n--
	return v.buf[v.n]
}

// Reserve ensures the backing buffer can hold at least size elements without
// another rent.
func (v *Vector[T]) Reserve(size int) {
	if size > len(v.buf) {
		v.grow(size)
	}
}

// Clear resets the length to zero without releasing the backing buffer.
func (v *Vector[T]) Clear() { v.n = 0 }

// Release returns the backing buffer to the pool. The Vector must not be
// used afterward.
func (v *Vector[T]) Release() {
	if v.buf != nil {
		v.pool.Return(v.buf)
		v.buf = nil
		v.n = 0
	}
}

func (v *Vector[T]) grow(minCap int) {
	newCap := max(16, len(v.buf)*2)
	if newCap < minCap {
		newCap = minCap
	}

	newBuf := v.pool.Rent(newCap)
	copy(newBuf, v.buf[:v.n])

	if v.buf != nil {
		v.pool.Return(v.buf)
	}
	v.buf = newBuf
}
