// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bbsort is a bucket-based distribution sorting engine for
// one-dimensional sequences of numeric values. It sorts in expected
// near-linear time on well-distributed inputs by projecting each value into
// a bucket through a logarithmic linear transform, then recursively
// resolving each bucket until it becomes trivially orderable.
//
// # Algorithm
//
// Sort and TopK both collapse the input into (value, count) pairs keyed by a
// fast open-addressing map (package internal/distinct), project the distinct
// values into up to 128 top-level buckets via a signed-aware log2
// approximation (see getLog and linearTransformParams), then resolve buckets
// off an explicit stack, smallest-index-first:
//
//	size 1      emit the single element count times
//	size 2      emit min then max, each count times
//	size 3      emit min, mid, max via one O(1) comparison (GetMaxMidMin)
//	size 4+     if every element shares one value, emit it; otherwise
//	            redistribute into min(size/2 + 1, 128) finer buckets
//	            (integer division) and push the non-empty results back
//	            onto the stack
//
// Recursion depth is bounded by the number of distinct log-projected values
// in the input, not by the input's length, because every split strictly
// shrinks the bucket's [min, max] span.
//
// # Containers
//
// The heavy lifting is in two packages: pool (the array pool and the
// pool-backed vectors that rent storage from it across recursion, scoped to
// one Sort/TopK call rather than process-wide) and heap (the min-max heap
// each bucket is stored in, giving O(1) access to both extremes and the
// ordered (min, mid, max) triple). Package bucket offers a lighter
// min-max-mid vector for callers that only need incremental extremes
// without full heap ordering.
//
// # Error behavior
//
// Sort and TopK are never asked to signal failure: an empty or
// single-element input is a silent no-op, a zero-length TopK is an empty
// result, and every other failure mode (an out-of-range heap index, a pop on
// an empty heap) is a programming-error invariant violation that panics
// rather than returning an error.
package bbsort
