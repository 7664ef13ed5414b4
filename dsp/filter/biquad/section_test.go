package biquad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSectionImpulseResponse(t *testing.T) {
	// Hand-traced DF-II-T output for a damped lowpass.
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if got := s.ProcessSample(x); !almostEqual(got, w, eps) {
			t.Fatalf("sample %d: got %v want %v", i, got, w)
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: -0.1, B2: 0.05, A1: -0.5, A2: 0.3}
	for _, n := range []int{0, 1, 2, 7, 16} {
		in := make([]float64, n)
		for i := range in {
			in[i] = math.Sin(float64(i)*0.7) + 0.1*float64(i)
		}

		ref := NewSection(c)
		want := make([]float64, n)
		for i, x := range in {
			want[i] = ref.ProcessSample(x)
		}

		blk := NewSection(c)
		got := append([]float64(nil), in...)
		blk.ProcessBlock(got)

		for i := range want {
			assert.InDelta(t, want[i], got[i], eps, "n=%d i=%d", n, i)
		}
		assert.Equal(t, ref.State(), blk.State())
	}
}

func TestSectionStateRoundTrip(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, B1: 0.5, A1: -0.3})
	s.ProcessSample(1)
	s.ProcessSample(-2)
	saved := s.State()
	y := s.ProcessSample(0.5)

	s.Reset()
	assert.Equal(t, [2]float64{}, s.State())
	s.SetState(saved)
	assert.InDelta(t, y, s.ProcessSample(0.5), eps)
}

func TestCoefficientsDCGain(t *testing.T) {
	g, ok := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}.DCGain()
	require.True(t, ok)
	assert.InDelta(t, 1/0.84, g, eps)

	_, ok = Coefficients{B0: 1, A1: -1}.DCGain()
	assert.False(t, ok)
}

func TestCoefficientsIsFinite(t *testing.T) {
	assert.True(t, Coefficients{B0: 1}.IsFinite())
	assert.False(t, Coefficients{B0: math.NaN()}.IsFinite())
	assert.False(t, Coefficients{A2: math.Inf(-1)}.IsFinite())
}

func TestChainPrimeSteadyState(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.5, B1: 0.1, A1: -0.4},
	}
	c := NewChain(coeffs)
	c.PrimeSteadyState(3)

	g0, _ := coeffs[0].DCGain()
	g1, _ := coeffs[1].DCGain()
	want := 3 * g0 * g1
	for i := 0; i < 10; i++ {
		assert.InDelta(t, want, c.ProcessSample(3), 1e-9)
	}
}

func TestChainImpulseResponsePreservesState(t *testing.T) {
	c := NewChain([]Coefficients{{B0: 0.5, B1: 0.5}, {B0: 1, A1: -0.5}})
	c.ProcessSample(1)
	before := c.State()

	ir := c.ImpulseResponse(4)
	require.Len(t, ir, 4)
	assert.InDelta(t, 0.5, ir[0], eps)
	assert.InDelta(t, 0.75, ir[1], eps)
	assert.InDelta(t, 0.375, ir[2], eps)
	assert.Equal(t, before, c.State())
	assert.Equal(t, 2, c.NumSections())
}

func TestCascadeMagnitudeDB(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	chain := NewChain([]Coefficients{c, c})

	dc := CascadeMagnitudeDB([]Coefficients{c, c}, 0, 100)
	assert.InDelta(t, 40*math.Log10(1/0.84), dc, 1e-9)
	assert.InDelta(t, dc, chain.MagnitudeDB(0, 100), eps)
	// Double zero at z=-1 kills Nyquist.
	assert.Less(t, CascadeMagnitudeDB([]Coefficients{c}, 50, 100), -200.0)
}
