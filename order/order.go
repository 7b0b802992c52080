// Package order implements the cross-type total ordering between i64 and
// f64 values needed wherever the two domains are compared — notably the
// jsonvalue package's Int/Float tiebreak.
//
// Integers of magnitude below 2^53 convert losslessly to float64; floats of
// magnitude at or above 2^53 are themselves integral. Comparisons never
// shortcut through a lossy float(n) < x when |n| >= 2^53, since that would
// silently drop precision. NaN is defined to be strictly smaller than every
// other value, including -Inf, so the relation stays total.
package order

import "math"

const (
	// f64IntBoundary is 2^53, the largest magnitude an integer can have
	// and still convert to float64 without loss.
	f64IntBoundary = 1 << 53
	// i64Boundary is 2^63, at or beyond which no i64 value can reach.
	i64Boundary = 1 << 63
)

// CompareIntFloat returns -1, 0, or 1 as n is less than, equal to, or
// greater than x. A NaN x is treated as smaller than any n, so the result is
// 1; CompareFloatInt(x, n) gives the mirror-image result (-1).
func CompareIntFloat(n int64, x float64) int {
	if math.IsNaN(x) {
		return 1
	}

	switch {
	case -f64IntBoundary < n && n < f64IntBoundary:
		return cmpFloat(float64(n), x)
	case math.Abs(x) < f64IntBoundary:
		// |n| dominates |x|; only the sign of n matters.
		if n > 0 {
			return 1
		}

		return -1
	case x >= i64Boundary:
		return -1
	case x < -i64Boundary:
		return 1
	default:
		// |x| >= f64IntBoundary implies x is integral.
		return cmpInt(n, int64(x))
	}
}

// CompareFloatInt returns -1, 0, or 1 as x is less than, equal to, or
// greater than n. It is the adjoint of CompareIntFloat: a NaN x compares
// smaller than any n.
func CompareFloatInt(x float64, n int64) int {
	if math.IsNaN(x) {
		return -1
	}

	switch {
	case -f64IntBoundary < n && n < f64IntBoundary:
		return cmpFloat(x, float64(n))
	case math.Abs(x) < f64IntBoundary:
		if n > 0 {
			return -1
		}

		return 1
	case x >= i64Boundary:
		return 1
	case x < -i64Boundary:
		return -1
	default:
		return cmpInt(int64(x), n)
	}
}

// CompareFloat returns -1, 0, or 1 as x is less than, equal to, or greater
// than y, treating NaN as smaller than every other float (including
// itself-excepted equality: NaN compares equal to NaN so the relation stays
// total).
func CompareFloat(x, y float64) int {
	xNaN, yNaN := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return 1
	default:
		return cmpFloat(x, y)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
