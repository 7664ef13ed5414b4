package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-physio/internal/testutil"
	"github.com/cwbudde/algo-physio/physio/diag"
	"github.com/cwbudde/algo-physio/physio/param"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		NameConvolutional, NameDeConvolutional, NameDiff, NameIIR, NameMatched, NameNormalize,
	}, Names())
}

func TestNewUnknownFilter(t *testing.T) {
	_, err := New("Smooth", nil)
	require.ErrorIs(t, err, ErrUnknownFilter)

	_, err = Descriptors("Smooth")
	require.ErrorIs(t, err, ErrUnknownFilter)
}

func TestEveryFilterHasDescriptors(t *testing.T) {
	for _, name := range Names() {
		set, err := Descriptors(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, set, name)
		for pname, d := range set {
			assert.NotEmpty(t, d.Description, "%s.%s", name, pname)
		}
	}
}

func TestDescriptorsReturnsCopy(t *testing.T) {
	set, err := Descriptors(NameDiff)
	require.NoError(t, err)
	delete(set, "degree")

	again, err := Descriptors(NameDiff)
	require.NoError(t, err)
	assert.Contains(t, again, "degree")
}

func TestNewResolutionErrors(t *testing.T) {
	tests := []struct {
		name string
		algo string
		raw  param.Values
		want error
	}{
		{"unknown key", NameDiff, param.Values{"order": 2}, param.ErrUnknownParameter},
		{"wrong kind", NameDiff, param.Values{"degree": "two"}, param.ErrTypeMismatch},
		{"invalid degree", NameDiff, param.Values{"degree": 0}, param.ErrInvalidValue},
		{"custom without bias", NameNormalize, param.Values{"norm_method": "custom", "norm_range": 1}, param.ErrMissingParameter},
		{"bad method", NameNormalize, param.Values{"norm_method": "zscore"}, param.ErrInvalidValue},
		{"iir without edges", NameIIR, param.Values{}, param.ErrMissingParameter},
		{"iir three edges", NameIIR, param.Values{"fp": []float64{1, 2, 3}, "fs": []float64{4}}, param.ErrInvalidValue},
		{"template missing", NameMatched, nil, param.ErrMissingParameter},
		{"deconv irf missing", NameDeConvolutional, nil, param.ErrMissingParameter},
		{"negative window", NameConvolutional, param.Values{"win_len": -1.0}, param.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.algo, tt.raw)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParamsIsACopy(t *testing.T) {
	f, err := New(NameMatched, param.Values{"template": []float64{1, 2}}, WithLogger(diag.Nop))
	require.NoError(t, err)

	p := f.Params()
	p.Floats("template")[0] = 99

	assert.Equal(t, []float64{1, 2}, f.Params().Floats("template"))
}

func TestApplyRejectsInvalidSignal(t *testing.T) {
	f, err := NewDiff(DiffConfig{})
	require.NoError(t, err)

	_, err = f.Apply(testutil.Evenly(nil, 10))
	require.Error(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "applied", Applied.String())
	assert.Equal(t, "pass-through", PassThrough.String())
	assert.Equal(t, "Status(7)", Status(7).String())
}
