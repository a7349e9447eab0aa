// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort

import "code.hybscloud.com/bbsort/numeric"

// item is the element distinct-mode heap buckets store: a value together
// with its multiplicity. Ordering is defined solely by Value; Count never
// participates in comparisons, only in how many copies a case handler
// writes to the output.
//
// Distinct mode (see buildDistinct) collapses repeated inputs into one item
// per distinct value with Count set to the multiplicity, so duplicates
// occupy a single counted heap slot instead of one slot each. Dictless mode
// (sortDictless/topKDictless, pipeline_dictless.go) is a separate pipeline
// that skips this type entirely: it carries raw values through a
// bucket.MinMaxMid vector with no per-element bookkeeping.
type item[T numeric.Numeric] struct {
	Value T
	Count int
}

func itemLess[T numeric.Numeric](a, b item[T]) bool {
	return a.Value < b.Value
}
