// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbsort

import (
	"math"

	"code.hybscloud.com/bbsort/numeric"
)

// fastLog2 approximates log2(val) for val > 0 using the IEEE-754 exponent
// plus a degree-2 polynomial fit of the mantissa's fractional log. It is
// bit-level reproducible across platforms that use IEEE-754 single-precision
// floats and little-endian byte order.
func fastLog2(val float32) float32 {
	bits := math.Float32bits(val)

	logExp := float32(int32((bits>>23)&255) - 128)

	bits &^= 255 << 23
	bits += 127 << 23
	mantissa := math.Float32frombits(bits)

	return logExp + ((-0.33582878*mantissa+2.0)*mantissa - 0.65871759)
}

// boundaryLog is fastLog2(2), the value the logarithmic branch of getLog
// returns right at magnitude 2. The reference formula's linear branch below
// magnitude 2 returns x unscaled, which leaves a downward jump at the seam
// (fastLog2(2) ≈ 1.005, not 2) and breaks monotonicity for inputs straddling
// magnitude 2. Scaling the linear branch to land on boundaryLog at the seam
// keeps getLog monotonic across its whole domain instead.
var boundaryLog = fastLog2(2)

// getLog is the signed-aware log: magnitudes below 2 scale linearly up to
// boundaryLog at the seam (keeping small values, zero, and sub-unit
// magnitudes on a continuous, monotonic scale with the logarithmic region),
// everything else is signed fastLog2.
func getLog[T numeric.Numeric](x T) float32 {
	xf := float32(x)
	abs := xf
	if abs < 0 {
		abs = -abs
	}

	if abs < 2 {
		return xf * (boundaryLog / 2)
	}

	lg := fastLog2(abs)
	if xf < 0 {
		return -lg
	}
	return lg
}

// linearTransformParams derives (a, b) for the affine map
// idx = a*x + b that sends x1 -> y1 and x2 -> y2. When x1 == x2 every key
// projects to the same log value; callers must treat (0, 0) as "everything
// belongs in the same bucket" rather than a valid slope/intercept pair.
func linearTransformParams(x1, x2, y1, y2 float32) (a, b float32) {
	dx := x1 - x2
	if dx == 0 {
		return 0, 0
	}
	a = (y1 - y2) / dx
	b = y1 - a*x1
	return a, b
}
