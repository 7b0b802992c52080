package order

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareFloat_NaNOrdering(t *testing.T) {
	nan := math.NaN()

	assert.Equal(t, 0, CompareFloat(nan, nan), "NaN == NaN")
	assert.Equal(t, -1, CompareFloat(nan, 1.0), "NaN < finite")
	assert.Equal(t, 1, CompareFloat(1.0, nan), "finite > NaN")
	assert.Equal(t, -1, CompareFloat(nan, math.Inf(-1)), "NaN < -Inf")
}

func TestCompareIntFloat_IsAdjointOfCompareFloatInt(t *testing.T) {
	cases := []struct {
		n int64
		x float64
	}{
		{3, 3.5},
		{0, math.NaN()},
		{1 << 62, 1 << 60},
		{-(1 << 62), -(1 << 60)},
		{5, 5.0},
		{1 << 53, math.Pow(2, 53)},
	}

	for _, c := range cases {
		got := CompareIntFloat(c.n, c.x)
		mirror := -CompareFloatInt(c.x, c.n)
		assert.Equal(t, got, mirror, "cmp_if(%v,%v) should mirror -cmp_fi", c.n, c.x)
	}
}

func TestCompareIntFloat_LosslessRange(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 1<<53 - 1, -(1<<53 - 1)} {
		assert.Equal(t, 0, CompareIntFloat(n, float64(n)))
	}
}

func TestCompareIntFloat_LargeMagnitudes(t *testing.T) {
	assert.Equal(t, 1, CompareIntFloat(1<<62, 1<<60), "2^62 > 2^60")
}

func TestCompareIntFloat_NaNIsGreater(t *testing.T) {
	assert.Equal(t, 1, CompareIntFloat(0, math.NaN()))
}

func TestCompareFloatInt_NaNIsLess(t *testing.T) {
	assert.Equal(t, -1, CompareFloatInt(math.NaN(), 0))
}

func TestCompareIntFloat_BeyondInt64Range(t *testing.T) {
	hugeFloat := math.Pow(2, 70)
	assert.Equal(t, -1, CompareIntFloat(math.MaxInt64, hugeFloat), "any i64 < huge float")
	assert.Equal(t, 1, CompareIntFloat(math.MinInt64, -hugeFloat), "any i64 > -huge float")
}

func TestCompareIntFloat_IntegralFloatInRange(t *testing.T) {
	// |x| >= 2^53 but within i64 range and representing an exact integer.
	x := math.Pow(2, 60)
	n := int64(1) << 60
	assert.Equal(t, 0, CompareIntFloat(n, x))
	assert.Equal(t, 1, CompareIntFloat(n+1, x))
}

func TestCompareFloat_Reflexive(t *testing.T) {
	assert.Equal(t, 0, CompareFloat(1.5, 1.5))
	assert.Equal(t, -1, CompareFloat(1.0, 2.0))
	assert.Equal(t, 1, CompareFloat(2.0, 1.0))
}
