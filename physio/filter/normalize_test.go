package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-physio/internal/testutil"
)

func TestNormalizeMethods(t *testing.T) {
	x := testutil.Add(testutil.Sine(1.3, 50, 2, 500), testutil.Noise(3, 0.4, 500), testutil.DC(7, 500))
	s := testutil.Evenly(x, 50)

	t.Run("mean", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{Method: NormMean}, x)
		assert.InDelta(t, 0, stat.Mean(out, nil), 1e-12)
		assert.InDelta(t, floats.Max(x)-floats.Min(x), floats.Max(out)-floats.Min(out), 1e-12)
	})

	t.Run("standard", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{Method: NormStandard}, x)
		mean, std := stat.PopMeanStdDev(out, nil)
		assert.InDelta(t, 0, mean, 1e-12)
		assert.InDelta(t, 1, std, 1e-12)
	})

	t.Run("default is standard", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{}, x)
		_, std := stat.PopMeanStdDev(out, nil)
		assert.InDelta(t, 1, std, 1e-12)
	})

	t.Run("min", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{Method: NormMin}, x)
		assert.Equal(t, 0.0, floats.Min(out))
	})

	t.Run("maxmin", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{Method: NormMaxMin}, x)
		assert.Equal(t, 0.0, floats.Min(out))
		assert.InDelta(t, 1, floats.Max(out), 1e-15)
	})

	t.Run("custom", func(t *testing.T) {
		out := applyNormalize(t, NormalizeConfig{Method: NormCustom, Bias: 7, Range: 2}, x)
		assert.InDelta(t, (x[10]-7)/2, out[10], 1e-15)
	})

	t.Run("keeps sampling grid", func(t *testing.T) {
		f, err := NewNormalize(NormalizeConfig{Method: NormMean})
		require.NoError(t, err)
		res, err := f.Apply(s)
		require.NoError(t, err)
		assert.Equal(t, s.SampleRate, res.Signal.SampleRate)
		assert.Equal(t, s.StartTime, res.Signal.StartTime)
		assert.Equal(t, Applied, res.Status)
	})
}

func applyNormalize(t *testing.T, cfg NormalizeConfig, x []float64) []float64 {
	t.Helper()
	f, err := NewNormalize(cfg)
	require.NoError(t, err)

	in := append([]float64(nil), x...)
	res, err := f.Apply(testutil.Evenly(in, 50))
	require.NoError(t, err)
	require.Equal(t, x, in, "input must not be modified")
	return res.Signal.Values
}

func TestNormalizeZeroRange(t *testing.T) {
	constant := testutil.Evenly(testutil.DC(3, 20), 10)

	tests := []struct {
		name string
		cfg  NormalizeConfig
	}{
		{"standard on constant", NormalizeConfig{Method: NormStandard}},
		{"maxmin on constant", NormalizeConfig{Method: NormMaxMin}},
		{"custom zero range", NormalizeConfig{Method: NormCustom, Bias: 1, Range: 0}},
		{"custom range below rounding", NormalizeConfig{Method: NormCustom, Bias: 1e6, Range: 1e-12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewNormalize(tt.cfg)
			require.NoError(t, err)
			_, err = f.Apply(constant)
			require.ErrorIs(t, err, ErrZeroRange)
		})
	}

	t.Run("mean on constant is fine", func(t *testing.T) {
		f, err := NewNormalize(NormalizeConfig{Method: NormMean})
		require.NoError(t, err)
		res, err := f.Apply(constant)
		require.NoError(t, err)
		assert.Equal(t, testutil.DC(0, 20), res.Signal.Values)
	})
}

func TestNormalizeBiasOnlyLargeOffset(t *testing.T) {
	x := []float64{1e14, 1e14 + 2, 1e14 + 4, 1e14 + 6}

	assert.Equal(t, []float64{-3, -1, 1, 3}, applyNormalize(t, NormalizeConfig{Method: NormMean}, x))
	assert.Equal(t, []float64{0, 2, 4, 6}, applyNormalize(t, NormalizeConfig{Method: NormMin}, x))
}

func TestNormalizeCustomParamsInactiveOtherwise(t *testing.T) {
	f, err := New(NameNormalize, map[string]any{"norm_method": "mean", "norm_bias": 4.0})
	require.NoError(t, err)
	assert.False(t, f.Params().Has("norm_bias"))
	assert.False(t, f.Params().Has("norm_range"))
}
