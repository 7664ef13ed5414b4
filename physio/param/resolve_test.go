package param

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeLikeSet() Set {
	return Set{
		"method": {
			Level:     Recommended,
			Kinds:     []Kind{String},
			Default:   "standard",
			Validator: OneOf("mean", "standard", "custom"),
		},
		"bias": {
			Level:      Mandatory,
			Kinds:      []Kind{Float},
			Activation: Equals("method", "custom"),
		},
		"degree": {
			Level:     Optional,
			Kinds:     []Kind{Int},
			Default:   1,
			Validator: AtLeast(1),
		},
		"edges": {
			Level:     Optional,
			Kinds:     []Kind{FloatList},
			Validator: All(Positive(), LenBetween(1, 2)),
		},
	}
}

func TestResolveDefaults(t *testing.T) {
	got, err := Resolve("Algo", normalizeLikeSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, "standard", got.String("method"))
	assert.Equal(t, 1, got.Int("degree"))
	assert.False(t, got.Has("edges"), "nil default leaves the parameter unconfigured")
}

func TestResolveInactiveMandatoryIsAbsent(t *testing.T) {
	got, err := Resolve("Algo", normalizeLikeSet(), Values{"method": "mean"})
	require.NoError(t, err)
	assert.False(t, got.Has("bias"))
}

func TestResolveActiveMandatoryMissing(t *testing.T) {
	_, err := Resolve("Algo", normalizeLikeSet(), Values{"method": "custom"})
	require.Error(t, err)

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "bias", missing.Param)
	assert.Equal(t, "Algo", missing.Algorithm)
	assert.True(t, errors.Is(err, ErrMissingParameter))
}

func TestResolveActiveConditional(t *testing.T) {
	got, err := Resolve("Algo", normalizeLikeSet(), Values{"method": "custom", "bias": 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Float("bias"))
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("Algo", normalizeLikeSet(), Values{"zeta": 1, "alpha": 2})
	var unknown *UnknownParameterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []string{"alpha", "zeta"}, unknown.Params)
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestResolveTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  Values
	}{
		{"string for int", Values{"degree": "two"}},
		{"fractional float for int", Values{"degree": 1.5}},
		{"number for string", Values{"method": 4}},
		{"strings for list", Values{"edges": []string{"a"}}},
		{"bool for float", Values{"method": "custom", "bias": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve("Algo", normalizeLikeSet(), tt.raw)
			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestResolveInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   Values
		param string
	}{
		{"enum", Values{"method": "median"}, "method"},
		{"lower bound", Values{"degree": 0}, "degree"},
		{"negative element", Values{"edges": []float64{1, -2}}, "edges"},
		{"too long", Values{"edges": []float64{1, 2, 3}}, "edges"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve("Algo", normalizeLikeSet(), tt.raw)
			var invalid *InvalidValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.param, invalid.Param)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestResolveCoercion(t *testing.T) {
	type mode string
	got, err := Resolve("Algo", normalizeLikeSet(), Values{
		"method": mode("custom"),
		"bias":   int64(2),
		"degree": 3.0,
		"edges":  []any{1, 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", got["method"])
	assert.Equal(t, 2.0, got["bias"])
	assert.Equal(t, 3, got["degree"])
	assert.Equal(t, []float64{1, 2.5}, got["edges"])
}

func TestResolveDoesNotAliasInput(t *testing.T) {
	edges := []float64{1, 2}
	raw := Values{"edges": edges}
	got, err := Resolve("Algo", normalizeLikeSet(), raw)
	require.NoError(t, err)

	got.Floats("edges")[0] = 99
	assert.Equal(t, 1.0, edges[0])
	assert.Len(t, raw, 1)
}

func TestDescribe(t *testing.T) {
	docs := Describe(normalizeLikeSet())
	require.Len(t, docs, 4)
	assert.Equal(t, "bias", docs[0].Name)
	assert.True(t, docs[0].Conditional)
	assert.Equal(t, Mandatory, docs[0].Level)
	assert.Equal(t, "edges", docs[2].Name)
	assert.Equal(t, "method", docs[3].Name)
	assert.Equal(t, "standard", docs[3].Default)
}

func TestMerge(t *testing.T) {
	a := Set{"x": {Kinds: []Kind{Float}}}
	b := Set{"y": {Kinds: []Kind{Int}}}
	m := a.Merge(b)
	assert.Equal(t, []string{"x", "y"}, m.Names())
	assert.Len(t, a, 1)
}

func TestLevelAndKindStrings(t *testing.T) {
	assert.Equal(t, "mandatory", Mandatory.String())
	assert.Equal(t, "[]float", FloatList.String())
}
