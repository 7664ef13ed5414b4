package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	require.LessOrEqual(t, MaxAbsDiff(got, want), eps)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the largest absolute element difference of two equally
// long slices.
func MaxAbsDiff(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// Interior drops margin samples from both ends of x, where filters settle.
func Interior(x []float64, margin int) []float64 {
	if 2*margin >= len(x) {
		return nil
	}
	return x[margin : len(x)-margin]
}
