// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package distinct implements the open-addressing map the bucket pipeline's
// distinct-mode construction uses to collapse duplicate input values into
// (value, count) pairs. SPEC_FULL.md/Design Notes call the duplicate-count
// map "interchangeable" and flag hashing the element as the hot spot; this
// package hashes with xxhash rather than relying on the generic built-in
// map, directly targeting that hot spot.
package distinct

import (
	"math"

	"code.hybscloud.com/bbsort/numeric"
	"github.com/cespare/xxhash/v2"
)

// Map is a linear-probing open-addressing hash map from a Numeric key to an
// int value (the bucket pipeline uses the value slot to hold an index into
// its distinct-items list).
type Map[T numeric.Numeric] struct {
	keys  []T
	vals  []int
	used  []bool
	count int
	mask  uint64
}

// New returns an empty Map sized for at least capacityHint entries before
// its first internal grow.
func New[T numeric.Numeric](capacityHint int) *Map[T] {
	capacity := 16
	for capacity < capacityHint*2 {
		capacity *= 2
	}
	return &Map[T]{
		keys: make([]T, capacity),
		vals: make([]int, capacity),
		used: make([]bool, capacity),
		mask: uint64(capacity - 1),
	}
}

func hashKey[T numeric.Numeric](key T) uint64 {
	var b [8]byte
	bits := math.Float64bits(float64(key))
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
	b[4] = byte(bits >> 32)
	b[5] = byte(bits >> 40)
	b[6] = byte(bits >> 48)
	b[7] = byte(bits >> 56)
	return xxhash.Sum64(b[:])
}

// Get returns the value stored for key and whether it was present.
func (m *Map[T]) Get(key T) (int, bool) {
	idx := hashKey(key) & m.mask
	for {
		if !m.used[idx] {
			return 0, false
		}
		if m.keys[idx] == key {
			return m.vals[idx], true
		}
		idx = (idx + 1) & m.mask
	}
}

// Set inserts or overwrites the value stored for key, growing the table first
// if one more entry would bring the load factor to 0.75 or above.
func (m *Map[T]) Set(key T, val int) {
	if (m.count+1)*4 >= len(m.keys)*3 {
		m.grow()
	}
	m.insert(key, val)
}

func (m *Map[T]) insert(key T, val int) {
	idx := hashKey(key) & m.mask
	for {
		if !m.used[idx] {
			m.used[idx] = true
			m.keys[idx] = key
			m.vals[idx] = val
			m.count++
			return
		}
		if m.keys[idx] == key {
			m.vals[idx] = val
			return
		}
		idx = (idx + 1) & m.mask
	}
}

func (m *Map[T]) grow() {
	oldKeys, oldVals, oldUsed := m.keys, m.vals, m.used

	newCap := len(m.keys) * 2
	m.keys = make([]T, newCap)
	m.vals = make([]int, newCap)
	m.used = make([]bool, newCap)
	m.mask = uint64(newCap - 1)
	m.count = 0

	for i, used := range oldUsed {
		if used {
			m.insert(oldKeys[i], oldVals[i])
		}
	}
}

// Len returns the number of distinct keys stored.
func (m *Map[T]) Len() int { return m.count }
