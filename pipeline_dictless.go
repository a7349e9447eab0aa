// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort

import (
	"code.hybscloud.com/bbsort/bucket"
	"code.hybscloud.com/bbsort/numeric"
	"code.hybscloud.com/bbsort/pool"
)

// dictlessState is the dictless-mode counterpart to state: buckets hold raw
// values in a min-max-mid vector instead of (value, count) items in a heap,
// grounded on bb_sort_dictless_min_max_vect.h (see SPEC_FULL.md §4,
// "Supplemented").
type dictlessState[T numeric.Numeric] struct {
	valuePool  *pool.ArrayPool[T]
	bucketPool *pool.ArrayPool[*bucket.MinMaxMid[T]]
}

func newDictlessState[T numeric.Numeric]() *dictlessState[T] {
	return &dictlessState[T]{
		valuePool:  pool.New[T](),
		bucketPool: pool.New[*bucket.MinMaxMid[T]](),
	}
}

func (s *dictlessState[T]) newBucket() *bucket.MinMaxMid[T] {
	return bucket.New[T](s.valuePool, less[T])
}

func less[T numeric.Numeric](a, b T) bool { return a < b }

// resolveDictless drives the same stack-based resolution as resolve, but
// every occurrence is its own element (no Count bookkeeping) and each bucket
// tracks its extremes incrementally instead of maintaining full heap order.
func resolveDictless[T numeric.Numeric](s *dictlessState[T], data []T, minEl, maxEl T, output []T) {
	count := min(len(data), topBucketCount)
	top := distributeDictless(s, data, minEl, maxEl, count)
	defer top.Release()

	stack := make([]*bucket.MinMaxMid[T], 0, count)
	for i := top.Len() - 1; i >= 0; i-- {
		if bk := top.At(i); bk != nil && bk.Len() > 0 {
			stack = append(stack, bk)
		}
	}

	writeIndex := 0
	for len(stack) > 0 && writeIndex < len(output) {
		n := len(stack) - 1
		bk := stack[n]
		stack = stack[:n]

		switch min(bk.Len()-1, 3) {
		case 0:
			writeIndex += fill(bk.Min, 1, output, writeIndex)
			bk.Release()
		case 1:
			writeIndex += fill(bk.Min, 1, output, writeIndex)
			writeIndex += fill(bk.Max, 1, output, writeIndex)
			bk.Release()
		case 2:
			writeIndex += fill(bk.Min, 1, output, writeIndex)
			writeIndex += fill(bk.Mid, 1, output, writeIndex)
			writeIndex += fill(bk.Max, 1, output, writeIndex)
			bk.Release()
		default:
			if bk.Min == bk.Max {
				writeIndex += fill(bk.Min, bk.Len(), output, writeIndex)
				bk.Release()
			} else {
				stack = splitDictless(s, bk, stack)
			}
		}
	}

	for _, bk := range stack {
		bk.Release()
	}
}

func distributeDictless[T numeric.Numeric](s *dictlessState[T], data []T, minEl, maxEl T, count int) *pool.LazyVector[*bucket.MinMaxMid[T]] {
	a, b := linearTransformParams(getLog(minEl), getLog(maxEl), 0, float32(count-1))

	buckets := pool.NewLazyVector[*bucket.MinMaxMid[T]](s.bucketPool, count)
	for _, v := range data {
		idx := bucketIndexFor(a, b, v, count)
		bk := buckets.At(idx)
		if bk == nil {
			bk = s.newBucket()
			buckets.Set(idx, bk)
		}
		bk.Push(v)
	}
	return buckets
}

func splitDictless[T numeric.Numeric](s *dictlessState[T], bk *bucket.MinMaxMid[T], stack []*bucket.MinMaxMid[T]) []*bucket.MinMaxMid[T] {
	minEl, maxEl := bk.Min, bk.Max
	newCount := min(bk.Len()/2+1, topBucketCount)
	values := make([]T, bk.Len())
	for i := range values {
		values[i] = bk.At(i)
	}
	bk.Release()

	a, b := linearTransformParams(getLog(minEl), getLog(maxEl), 0, float32(newCount-1))
	newBuckets := pool.NewLazyVector[*bucket.MinMaxMid[T]](s.bucketPool, newCount)
	for _, v := range values {
		idx := bucketIndexFor(a, b, v, newCount)
		nb := newBuckets.At(idx)
		if nb == nil {
			nb = s.newBucket()
			newBuckets.Set(idx, nb)
		}
		nb.Push(v)
	}

	for i := newBuckets.Len() - 1; i >= 0; i-- {
		if nb := newBuckets.At(i); nb != nil && nb.Len() > 0 {
			stack = append(stack, nb)
		}
	}
	newBuckets.Release()

	return stack
}
