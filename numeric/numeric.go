// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package numeric defines the element type constraint shared by every
// BBSort container and the log projection.
package numeric

import "golang.org/x/exp/constraints"

// Numeric is the set of types BBSort can sort: anything with a sign and a
// magnitude and a total order. The log projection (see getLog in log.go) is
// only defined for values with magnitude, so non-numeric orderable types
// (e.g. strings) are intentionally excluded.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v. For signed integer types the caller
// must ensure v != math.MinInt*, whose magnitude does not fit the type;
// BBSort's inputs are ordinary sort payloads and are not expected to carry
// that edge case.
func Abs[T Numeric](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign[T Numeric](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
