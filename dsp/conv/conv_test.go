package conv

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveConvolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}
	return out
}

func randomSlice(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected []float64
	}{
		{"simple 3x3", []float64{1, 2, 3}, []float64{1, 1, 1}, []float64{1, 3, 6, 5, 3}},
		{"impulse", []float64{1, 2, 3, 4, 5}, []float64{1}, []float64{1, 2, 3, 4, 5}},
		{"delayed impulse", []float64{1, 2, 3, 4, 5}, []float64{0, 0, 1}, []float64{0, 0, 1, 2, 3, 4, 5}},
		{"symmetric", []float64{1, 2, 1}, []float64{1, 2, 1}, []float64{1, 4, 6, 4, 1}},
		{"kernel longer than signal", []float64{2}, []float64{1, -1, 3}, []float64{2, -2, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct(nil, []float64{1, 2})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Direct([]float64{1, 2}, nil)
	require.ErrorIs(t, err, ErrEmptyKernel)

	_, err = Convolve(nil, []float64{1})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestConvolveMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, sizes := range [][2]int{{10, 3}, {100, 64}, {300, 65}, {1000, 200}, {70, 500}} {
		a := randomSlice(rng, sizes[0])
		b := randomSlice(rng, sizes[1])

		got, err := Convolve(a, b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, naiveConvolve(a, b), got, 1e-9, "sizes %v", sizes)
	}
}

func TestOverlapAddSmallBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := randomSlice(rng, 97)
	b := randomSlice(rng, 13)

	oa, err := NewOverlapAdd(b, 16)
	require.NoError(t, err)
	assert.Equal(t, 32, oa.FFTSize())

	got, err := oa.Process(a)
	require.NoError(t, err)
	assert.InDeltaSlice(t, naiveConvolve(a, b), got, 1e-9)

	_, err = oa.Process(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestConvolveModes(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 0, -1}

	full, err := ConvolveMode(a, b, ModeFull)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 2, 2, 2, -4, -5}, full, 1e-12)

	same, err := ConvolveMode(a, b, ModeSame)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2, 2, -4}, same, 1e-12)

	valid, err := ConvolveMode(a, b, ModeValid)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2}, valid, 1e-12)
}

func TestDeconvolveRecoversCircularConvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := randomSlice(rng, 50)
	h := []float64{1, 0.5, 0.25}

	// Circular convolution at length 50 is what exact-length division inverts.
	y := make([]float64, len(x))
	for i := range x {
		for j, hv := range h {
			y[(i+j)%len(x)] += x[i] * hv
		}
	}

	for _, m := range []DeconvMethod{DeconvNaive, DeconvRegularized} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Deconvolve(y, h, DeconvOptions{Method: m})
			require.NoError(t, err)
			require.Len(t, got, len(x))
			assert.InDeltaSlice(t, x, got, 1e-6)
			assert.Greater(t, SNR(x, got), 100.0)
		})
	}
}

func TestDeconvolveMagnitude(t *testing.T) {
	y := []float64{-1, -2, -3, -4}
	got, err := Deconvolve(y, []float64{1}, DeconvOptions{Magnitude: true})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, got, 1e-12)
}

func TestDeconvolveWienerShrinks(t *testing.T) {
	y := []float64{1, 2, 3, 2, 1, 0, 0, 0}
	got, err := Deconvolve(y, []float64{1}, DeconvOptions{Method: DeconvWiener, NoiseVariance: 1, SignalVariance: 1})
	require.NoError(t, err)
	// With NSR = 1 and H = 1 the estimate is y/2.
	for i := range y {
		assert.InDelta(t, y[i]/2, got[i], 1e-12)
	}
}

func TestDeconvolveIllConditioned(t *testing.T) {
	// A two-tap average has a zero at Nyquist for even lengths.
	_, err := Deconvolve(make([]float64, 8), []float64{0.5, 0.5}, DeconvOptions{Method: DeconvNaive})
	require.ErrorIs(t, err, ErrIllConditioned)

	// Regularization keeps the same kernel usable.
	_, err = Deconvolve(make([]float64, 8), []float64{0.5, 0.5}, DeconvOptions{Method: DeconvRegularized})
	require.NoError(t, err)
}

func TestDeconvolveErrors(t *testing.T) {
	_, err := Deconvolve(nil, []float64{1}, DeconvOptions{})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Deconvolve([]float64{1}, nil, DeconvOptions{})
	require.ErrorIs(t, err, ErrEmptyKernel)

	_, err = Deconvolve([]float64{1}, []float64{1}, DeconvOptions{Epsilon: -1})
	require.ErrorIs(t, err, ErrInvalidEpsilon)

	_, err = Deconvolve([]float64{1}, []float64{1}, DeconvOptions{NoiseVariance: -1})
	require.ErrorIs(t, err, ErrInvalidNoiseVar)

	_, err = Deconvolve([]float64{1}, []float64{1}, DeconvOptions{Method: DeconvMethod(9)})
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestDeconvolveTruncatesLongKernel(t *testing.T) {
	got, err := Deconvolve([]float64{2, 4}, []float64{2, 0, 5, 5}, DeconvOptions{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, got, 1e-12)
}

func TestSNR(t *testing.T) {
	assert.True(t, math.IsInf(SNR([]float64{1}, []float64{1}), 1))
	assert.True(t, math.IsInf(SNR([]float64{1}, nil), -1))
	assert.InDelta(t, 20.0, SNR([]float64{10}, []float64{9}), 1e-12)
}
