// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides the array pool and pool-backed vectors that the
// bucket pipeline rents storage from across recursion.
//
// Unlike the teacher package's BoundedPool (a fixed-capacity, lock-free MPMC
// structure for long-lived concurrent buffer exchange), ArrayPool here is an
// unbounded, single-threaded free-list bucketed by power-of-two capacity,
// matching a sort invocation's actual access pattern: many short-lived
// rent/return pairs from one goroutine, recursion depth bounded by distinct
// projected values.
//
// ArrayPool is deliberately scoped to one call (an arena), not a process-wide
// singleton. The reference implementation guards a global pool against
// static-destruction-order hazards with a "destroying" flag; that hazard is
// specific to languages with static destructors. A garbage-collected target
// language sidesteps it entirely by giving the pool the lifetime of the sort
// call instead of the process (see Design Notes in SPEC_FULL.md).
package pool

import "math/bits"

// maxPooledSize is the largest request the pool itself buckets; requests
// above this fall through to a direct allocation that is never pooled on
// return (it is simply dropped for the GC to reclaim).
const maxPooledSize = 0x40000000

// bucketIndex picks the power-of-two size class for a requested capacity n,
// matching the pack's own bucketed-pool idiom (see the retrieved
// multiSizeSlicePool sample, which computes its slot with
// bits.LeadingZeros32 the same way).
func bucketIndex(n int) int {
	if n <= 16 {
		return 0
	}
	return 32 - bits.LeadingZeros32(uint32(n-1)>>4)
}

// bucketCapacity returns the capacity every slice in bucket i has.
func bucketCapacity(i int) int {
	return 16 << i
}

// ArrayPool is a process-local (or, idiomatically, call-local) pool of raw
// backing slices, bucketed by power-of-two capacity. It amortizes allocation
// across the bucket pipeline's recursive bucket formation.
type ArrayPool[T any] struct {
	buckets [][][]T
}

// New returns an empty ArrayPool ready for use.
func New[T any]() *ArrayPool[T] {
	return &ArrayPool[T]{}
}

// Rent returns a slice with capacity >= size (len == its actual capacity);
// the caller must treat len(buf) as the authoritative capacity it rented.
// Requests beyond maxPooledSize allocate directly and are never pooled.
func (p *ArrayPool[T]) Rent(size int) []T {
	if size > maxPooledSize {
		return make([]T, size)
	}

	idx := bucketIndex(size)
	bucketCap := bucketCapacity(idx)

	if idx < len(p.buckets) {
		free := p.buckets[idx]
		if n := len(free); n > 0 {
			buf := free[n-1]
			p.buckets[idx] = free[:n-1]
			return buf[:bucketCap]
		}
	}

	return make([]T, bucketCap)
}

// Return releases buf back to the pool bucket matching its capacity. Slices
// larger than maxPooledSize are dropped (the allocator released them
// directly in Rent, so there is nothing to pool).
func (p *ArrayPool[T]) Return(buf []T) {
	c := cap(buf)
	if c > maxPooledSize {
		return
	}

	idx := bucketIndex(c)
	for len(p.buckets) <= idx {
		p.buckets = append(p.buckets, nil)
	}
	p.buckets[idx] = append(p.buckets[idx], buf[:c])
}
