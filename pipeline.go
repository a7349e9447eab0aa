// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort

import (
	"code.hybscloud.com/bbsort/heap"
	"code.hybscloud.com/bbsort/internal/distinct"
	"code.hybscloud.com/bbsort/numeric"
	"code.hybscloud.com/bbsort/pool"
)

// topBucketCount is the top-level bucket fan-out (spec.md §4.6.1 step 4).
const topBucketCount = 128

// state carries the two arenas a single Sort/TopK call rents backing
// storage from. Both are scoped to one call, not process-wide (see
// package pool's doc comment for why: it eliminates the static-destruction
// hazard the reference implementation's global pool works around).
type state[T numeric.Numeric] struct {
	itemPool   *pool.ArrayPool[item[T]]
	bucketPool *pool.ArrayPool[*heap.MinMax[item[T]]]
}

func newState[T numeric.Numeric]() *state[T] {
	return &state[T]{
		itemPool:   pool.New[item[T]](),
		bucketPool: pool.New[*heap.MinMax[item[T]]](),
	}
}

func (s *state[T]) newHeap() *heap.MinMax[item[T]] {
	return heap.New[item[T]](s.itemPool, itemLess[T])
}

// buildDistinct scans data, collapsing repeated values into one item per
// distinct value with Count set to its multiplicity (spec.md §4.6.1 step 2,
// "Distinct mode"). Grounded on the reference's getTopStackBuckets, using
// internal/distinct instead of a generic map for the hot hashing path (see
// SPEC_FULL.md Domain Stack).
func buildDistinct[T numeric.Numeric](data []T) (items []item[T], minEl, maxEl T) {
	index := distinct.New[T](len(data))

	items = make([]item[T], 0, len(data))
	minEl, maxEl = data[0], data[0]

	for _, v := range data {
		if i, ok := index.Get(v); ok {
			items[i].Count++
			continue
		}

		if v < minEl {
			minEl = v
		}
		if v > maxEl {
			maxEl = v
		}

		items = append(items, item[T]{Value: v, Count: 1})
		index.Set(v, len(items)-1)
	}

	return items, minEl, maxEl
}

// resolve drives the bucket-resolution stack until it empties or output
// fills, writing ascending values into output (spec.md §4.6.1-§4.6.2).
func resolve[T numeric.Numeric](s *state[T], items []item[T], minEl, maxEl T, output []T) {
	count := min(len(items), topBucketCount)
	top := distributeItems(s, items, minEl, maxEl, count)
	defer top.Release()

	stack := make([]*heap.MinMax[item[T]], 0, count)
	for i := top.Len() - 1; i >= 0; i-- {
		if b := top.At(i); b != nil && b.Len() > 0 {
			stack = append(stack, b)
		}
	}

	writeIndex := 0
	for len(stack) > 0 && writeIndex < len(output) {
		n := len(stack) - 1
		bucket := stack[n]
		stack = stack[:n]

		switch min(bucket.Len()-1, 3) {
		case 0:
			writeIndex += emitSingle(bucket, output, writeIndex)
			bucket.Release()
		case 1:
			writeIndex += emitPair(bucket, output, writeIndex)
			bucket.Release()
		case 2:
			writeIndex += emitTriple(bucket, output, writeIndex)
			bucket.Release()
		default:
			if dup, total, val := duplicateCheck(bucket); dup {
				writeIndex += fill(val, total, output, writeIndex)
				bucket.Release()
			} else {
				stack = split(s, bucket, stack)
			}
		}
	}

	for _, b := range stack {
		b.Release()
	}
}

// distributeItems performs the top-level distribution (spec.md §4.6.1,
// prepareTopBuckets in the reference).
func distributeItems[T numeric.Numeric](s *state[T], items []item[T], minEl, maxEl T, count int) *pool.LazyVector[*heap.MinMax[item[T]]] {
	a, b := linearTransformParams(getLog(minEl), getLog(maxEl), 0, float32(count-1))

	buckets := pool.NewLazyVector[*heap.MinMax[item[T]]](s.bucketPool, count)
	for _, it := range items {
		idx := bucketIndexFor(a, b, it.Value, count)
		bh := buckets.At(idx)
		if bh == nil {
			bh = s.newHeap()
			buckets.Set(idx, bh)
		}
		bh.Push(it)
	}
	return buckets
}

func bucketIndexFor[T numeric.Numeric](a, b float32, v T, count int) int {
	idx := int(a*getLog(v) + b)
	if idx > count-1 {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// fill writes up to the remaining output space, returning how many values
// were actually written (spec.md §4.6.3: "must respect the output bound").
func fill[T numeric.Numeric](val T, count int, output []T, index int) int {
	n := count
	if index+n > len(output) {
		n = len(output) - index
	}
	for i := 0; i < n; i++ {
		output[index+i] = val
	}
	return n
}

func emitSingle[T numeric.Numeric](bucket *heap.MinMax[item[T]], output []T, index int) int {
	it := bucket.At(0)
	return fill(it.Value, it.Count, output, index)
}

func emitPair[T numeric.Numeric](bucket *heap.MinMax[item[T]], output []T, index int) int {
	minIt := bucket.At(1)
	maxIt := bucket.At(0)
	n := fill(minIt.Value, minIt.Count, output, index)
	n += fill(maxIt.Value, maxIt.Count, output, index+n)
	return n
}

func emitTriple[T numeric.Numeric](bucket *heap.MinMax[item[T]], output []T, index int) int {
	maxIdx, midIdx, minIdx := bucket.GetMaxMidMin()
	minIt, midIt, maxIt := bucket.At(minIdx), bucket.At(midIdx), bucket.At(maxIdx)

	n := fill(minIt.Value, minIt.Count, output, index)
	n += fill(midIt.Value, midIt.Count, output, index+n)
	n += fill(maxIt.Value, maxIt.Count, output, index+n)
	return n
}

// duplicateCheck is CN step 1 (spec.md §4.6.4): the heuristic sufficient
// condition (AllDuplicates) strengthened to the strict, still-O(1) check
// (FindMin() == FindMax()), either of which means every item in the bucket
// shares one logical value.
func duplicateCheck[T numeric.Numeric](bucket *heap.MinMax[item[T]]) (dup bool, total int, val T) {
	minEl, maxEl := bucket.FindMin().Value, bucket.FindMax().Value
	if !bucket.AllDuplicates() && minEl != maxEl {
		return false, 0, val
	}

	for i := 0; i < bucket.Len(); i++ {
		total += bucket.At(i).Count
	}
	return true, total, minEl
}

// split implements CN steps 2-6 (spec.md §4.6.4): redistribute the bucket's
// contents into a finer lazy bucket array and push the non-empty results
// back onto the stack in reverse index order.
func split[T numeric.Numeric](s *state[T], bucket *heap.MinMax[item[T]], stack []*heap.MinMax[item[T]]) []*heap.MinMax[item[T]] {
	minEl, maxEl := bucket.FindMin().Value, bucket.FindMax().Value
	newCount := min(bucket.Len()/2+1, topBucketCount)
	items := make([]item[T], bucket.Len())
	for i := range items {
		items[i] = bucket.At(i)
	}
	bucket.Release()

	a, b := linearTransformParams(getLog(minEl), getLog(maxEl), 0, float32(newCount-1))
	newBuckets := pool.NewLazyVector[*heap.MinMax[item[T]]](s.bucketPool, newCount)
	for _, it := range items {
		idx := bucketIndexFor(a, b, it.Value, newCount)
		bh := newBuckets.At(idx)
		if bh == nil {
			bh = s.newHeap()
			newBuckets.Set(idx, bh)
		}
		bh.Push(it)
	}

	for i := newBuckets.Len() - 1; i >= 0; i-- {
		if bh := newBuckets.At(i); bh != nil && bh.Len() > 0 {
			stack = append(stack, bh)
		}
	}
	newBuckets.Release()

	return stack
}
