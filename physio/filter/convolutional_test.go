package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-physio/internal/testutil"
	"github.com/cwbudde/algo-physio/physio/diag"
	"github.com/cwbudde/algo-physio/physio/param"
)

func TestConvolutionalPreservesLength(t *testing.T) {
	in := testutil.Evenly(testutil.Noise(4, 1, 333), 20)

	for _, kind := range []IRFType{IRFGauss, IRFRect, IRFTriang, IRFDGauss} {
		for _, winLen := range []float64{0.35, 0.5, 1, 3} {
			f, err := NewConvolutional(ConvolutionalConfig{Type: kind, WindowLength: winLen})
			require.NoError(t, err)

			res, err := f.Apply(in)
			require.NoError(t, err, "%s %g", kind, winLen)
			assert.Equal(t, Applied, res.Status)
			assert.Len(t, res.Signal.Values, in.Len(), "%s %g", kind, winLen)
			testutil.RequireFinite(t, res.Signal.Values)
		}
	}
}

func TestConvolutionalKeepsConstant(t *testing.T) {
	in := testutil.Evenly(testutil.DC(2.5, 120), 10)

	for _, kind := range []IRFType{IRFGauss, IRFRect, IRFTriang} {
		f, err := NewConvolutional(ConvolutionalConfig{Type: kind, WindowLength: 2})
		require.NoError(t, err)

		res, err := f.Apply(in)
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, res.Signal.Values, in.Values, 1e-12)
	}
}

func TestConvolutionalSmooths(t *testing.T) {
	x := testutil.Noise(6, 1, 1000)
	f, err := NewConvolutional(ConvolutionalConfig{Type: IRFRect, WindowLength: 1})
	require.NoError(t, err)

	res, err := f.Apply(testutil.Evenly(x, 10))
	require.NoError(t, err)
	assert.Less(t, floats.Norm(res.Signal.Values, 2), floats.Norm(x, 2)/2)
}

func TestConvolutionalCustomIRF(t *testing.T) {
	f, err := New(NameConvolutional, param.Values{"irftype": "custom", "irf": []float64{1, 1}, "normalize": false})
	require.NoError(t, err)
	assert.False(t, f.Params().Has("win_len"))

	res, err := f.Apply(testutil.Evenly([]float64{1, 2, 3, 4}, 1))
	require.NoError(t, err)
	// Edge-extended [1 1 | 1 2 3 4 | 4 4] convolved with [1 1].
	assert.Equal(t, []float64{2, 3, 5, 7}, res.Signal.Values)
}

func TestConvolutionalMissingInputPassesThrough(t *testing.T) {
	in := testutil.Evenly(testutil.Noise(1, 1, 50), 100)

	tests := []struct {
		name string
		raw  param.Values
	}{
		{"custom without irf", param.Values{"irftype": "custom"}},
		{"window shorter than a sample", param.Values{"win_len": 0.001}},
		{"dgauss of one sample", param.Values{"irftype": "dgauss", "win_len": 0.01}},
		{"all-zero irf", param.Values{"irftype": "custom", "irf": []float64{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &diag.Recorder{}
			f, err := New(NameConvolutional, tt.raw, WithLogger(rec))
			require.NoError(t, err)

			res, err := f.Apply(in)
			require.NoError(t, err)
			assert.Equal(t, PassThrough, res.Status)
			assert.Same(t, in, res.Signal)
			require.ErrorIs(t, res.Reason, ErrMissingAlgorithmInput)
			assert.Equal(t, 1, rec.Count(diag.Error))
		})
	}
}

func TestConvolutionalImpulseResponseUsesSampleRate(t *testing.T) {
	f, err := NewConvolutional(ConvolutionalConfig{Type: IRFRect, WindowLength: 0.5})
	require.NoError(t, err)

	irf, err := f.ImpulseResponse(64)
	require.NoError(t, err)
	assert.Len(t, irf, 32)
}
