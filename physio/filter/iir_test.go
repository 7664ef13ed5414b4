package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-physio/dsp/filter/design/pass"
	"github.com/cwbudde/algo-physio/internal/testutil"
	"github.com/cwbudde/algo-physio/physio/diag"
	"github.com/cwbudde/algo-physio/physio/param"
)

func TestIIRLowpassKeepsSlowComponent(t *testing.T) {
	const fs = 100.0
	slow := testutil.Sine(1, fs, 1, 2000)
	fast := testutil.Sine(30, fs, 0.5, 2000)
	in := testutil.Evenly(testutil.Add(slow, fast), fs)

	for _, family := range pass.Families() {
		t.Run(string(family), func(t *testing.T) {
			rec := &diag.Recorder{}
			f, err := NewIIR(IIRConfig{
				Passband: []float64{5},
				Stopband: []float64{25},
				LossDB:   1,
				Family:   family,
			}, WithLogger(rec))
			require.NoError(t, err)

			res, err := f.Apply(in)
			require.NoError(t, err)
			require.Equal(t, Applied, res.Status)
			require.Len(t, res.Signal.Values, in.Len())
			assert.Empty(t, rec.Entries())

			// filtfilt doubles the loss: at most 2 dB on the slow sine,
			// and the interior has no phase lag.
			diff := testutil.MaxAbsDiff(testutil.Interior(res.Signal.Values, 200), testutil.Interior(slow, 200))
			assert.Less(t, diff, 0.25)
		})
	}
}

func TestIIRHighpassRemovesOffset(t *testing.T) {
	const fs = 50.0
	x := testutil.Add(testutil.Sine(5, fs, 1, 1500), testutil.DC(4, 1500))

	f, err := New(NameIIR, param.Values{"fp": []float64{2}, "fs": []float64{0.5}, "loss": 0.5}, WithLogger(diag.Nop))
	require.NoError(t, err)

	res, err := f.Apply(testutil.Evenly(x, fs))
	require.NoError(t, err)

	mid := testutil.Interior(res.Signal.Values, 300)
	sum := 0.0
	for _, v := range mid {
		sum += v
	}
	assert.InDelta(t, 0, sum/float64(len(mid)), 0.05)
}

func TestIIRUnsatisfiablePassesThrough(t *testing.T) {
	in := testutil.Evenly(testutil.Noise(5, 1, 300), 100)

	tests := []struct {
		name string
		cfg  IIRConfig
	}{
		{"edges above nyquist", IIRConfig{Passband: []float64{60}, Stopband: []float64{70}}},
		{"coincident edges", IIRConfig{Passband: []float64{10}, Stopband: []float64{10}}},
		{"loss above attenuation", IIRConfig{Passband: []float64{10}, Stopband: []float64{20}, LossDB: 50, AttenuationDB: 30}},
		{"order overflow", IIRConfig{Passband: []float64{10}, Stopband: []float64{10.001}, AttenuationDB: 200, Family: pass.Bessel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &diag.Recorder{}
			f, err := NewIIR(tt.cfg, WithLogger(rec))
			require.NoError(t, err)

			res, err := f.Apply(in)
			require.NoError(t, err)
			assert.Equal(t, PassThrough, res.Status)
			assert.Same(t, in, res.Signal)
			require.ErrorIs(t, res.Reason, ErrFilterDesignUnsatisfiable)
			require.ErrorIs(t, res.Reason, pass.ErrUnsatisfiable)
			assert.Equal(t, 1, rec.Count(diag.Warning))
			assert.Equal(t, 0, rec.Count(diag.Error))
		})
	}
}

func TestIIRSignalTooShort(t *testing.T) {
	f, err := NewIIR(IIRConfig{Passband: []float64{5}, Stopband: []float64{15}}, WithLogger(diag.Nop))
	require.NoError(t, err)

	_, err = f.Apply(testutil.Evenly([]float64{1}, 100))
	require.ErrorIs(t, err, ErrSignalTooShort)
}

func TestIIRConfigDefaults(t *testing.T) {
	f, err := NewIIR(IIRConfig{Passband: []float64{1, 2}, Stopband: []float64{0.5, 3}})
	require.NoError(t, err)

	p := f.Params()
	assert.Equal(t, DefaultLossDB, p.Float("loss"))
	assert.Equal(t, DefaultAttenuationDB, p.Float("att"))
	assert.Equal(t, string(pass.Butterworth), p.String("ftype"))
}
