package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// IRFType names an impulse response shape.
type IRFType string

// Impulse response shapes.
const (
	IRFGauss  IRFType = "gauss"
	IRFRect   IRFType = "rect"
	IRFTriang IRFType = "triang"
	IRFDGauss IRFType = "dgauss"
	IRFCustom IRFType = "custom" // supplied literally, never synthesized
)

// IRFTypes lists every impulse response shape.
func IRFTypes() []IRFType {
	return []IRFType{IRFGauss, IRFRect, IRFTriang, IRFDGauss, IRFCustom}
}

// SynthesizeIRF returns an impulse response of the given shape spanning n
// samples.
//
//	gauss   gaussian window with std floor(n/8) (n/8 when that is 0)
//	rect    n ones
//	triang  0, 1, ..., then back down; odd n gets a single apex
//	dgauss  first difference of the gauss shape, n-1 samples
//
// Lengths too short for the shape, and IRFCustom, fail with
// ErrMissingAlgorithmInput.
func SynthesizeIRF(kind IRFType, n int) ([]float64, error) {
	minLen := 1
	if kind == IRFDGauss {
		minLen = 2
	}
	if n < minLen {
		return nil, fmt.Errorf("%w: %s impulse response of %d samples", ErrMissingAlgorithmInput, kind, n)
	}

	switch kind {
	case IRFGauss:
		return gaussian(n, gaussStd(n)), nil
	case IRFRect:
		out := make([]float64, n)
		for i := range out {
			out[i] = 1
		}
		return out, nil
	case IRFTriang:
		return triangle(n), nil
	case IRFDGauss:
		g := gaussian(n, gaussStd(n))
		out := make([]float64, n-1)
		floats.SubTo(out, g[1:], g[:n-1])
		return out, nil
	default:
		return nil, fmt.Errorf("%w: no shape to synthesize for irftype %q", ErrMissingAlgorithmInput, kind)
	}
}

func gaussStd(n int) float64 {
	if std := n / 8; std > 0 {
		return float64(std)
	}
	return float64(n) / 8
}

func gaussian(n int, std float64) []float64 {
	out := make([]float64, n)
	center := float64(n-1) / 2
	for i := range out {
		d := (float64(i) - center) / std
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

func triangle(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}
	half := n / 2
	out := make([]float64, 0, n)
	for i := 0; i < half; i++ {
		out = append(out, float64(i))
	}
	if n%2 == 1 {
		out = append(out, float64(half))
	}
	for i := 0; i < half; i++ {
		out = append(out, float64(half-1-i))
	}
	return out
}

// unitArea scales irf to unit sum. Shapes whose samples cancel out (such as
// dgauss) are scaled to unit L1 norm instead. It reports false for an
// all-zero response.
func unitArea(irf []float64) ([]float64, bool) {
	l1 := floats.Norm(irf, 1)
	if l1 == 0 || math.IsNaN(l1) || math.IsInf(l1, 0) {
		return nil, false
	}

	area := f64.Sum(irf)
	if math.Abs(area) <= 1e-9*l1 {
		area = l1
	}

	out := make([]float64, len(irf))
	f64.Scale(out, irf, 1/area)
	return out, true
}
