// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort

import "code.hybscloud.com/bbsort/numeric"

// Sort sorts data in place in ascending order.
func Sort[T numeric.Numeric](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	items, minEl, maxEl := buildDistinct(data)
	if minEl == maxEl {
		for i := range data {
			data[i] = minEl
		}
		return
	}

	s := newState[T]()
	output := make([]T, n)
	resolve(s, items, minEl, maxEl, output)
	copy(data, output)
}

// TopK returns a new ascending sequence holding the min(len(data), k)
// smallest elements of data. data is not modified.
func TopK[T numeric.Numeric](data []T, k int) []T {
	m := min(len(data), k)
	output := make([]T, m)
	if m == 0 {
		return output
	}

	if len(data) <= 1 {
		copy(output, data)
		return output
	}

	items, minEl, maxEl := buildDistinct(data)
	if minEl == maxEl {
		for i := range output {
			output[i] = minEl
		}
		return output
	}

	s := newState[T]()
	resolve(s, items, minEl, maxEl, output)
	return output
}

// sortDictless is the dictless-mode counterpart to Sort: every occurrence of
// a repeated value is carried through the pipeline as its own element rather
// than collapsed into a counted item. It is not part of the public API
// (spec.md §4.6.1 step 2 leaves the choice between distinct and dictless
// construction to the implementation); Sort and TopK default to distinct
// mode since a hash-map-counted pass over typical inputs with repeats does
// less total bucket work.
func sortDictless[T numeric.Numeric](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	minEl, maxEl := data[0], data[0]
	for _, v := range data {
		if v < minEl {
			minEl = v
		}
		if v > maxEl {
			maxEl = v
		}
	}
	if minEl == maxEl {
		for i := range data {
			data[i] = minEl
		}
		return
	}

	s := newDictlessState[T]()
	output := make([]T, n)
	resolveDictless(s, data, minEl, maxEl, output)
	copy(data, output)
}

// topKDictless is the dictless-mode counterpart to TopK.
func topKDictless[T numeric.Numeric](data []T, k int) []T {
	m := min(len(data), k)
	output := make([]T, m)
	if m == 0 {
		return output
	}

	if len(data) <= 1 {
		copy(output, data)
		return output
	}

	minEl, maxEl := data[0], data[0]
	for _, v := range data {
		if v < minEl {
			minEl = v
		}
		if v > maxEl {
			maxEl = v
		}
	}
	if minEl == maxEl {
		for i := range output {
			output[i] = minEl
		}
		return output
	}

	s := newDictlessState[T]()
	resolveDictless(s, data, minEl, maxEl, output)
	return output
}
