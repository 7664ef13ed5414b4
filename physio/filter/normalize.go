package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
	timestats "github.com/cwbudde/algo-physio/stats/time"
)

// NormMethod selects how Normalize derives its bias and range.
type NormMethod string

// Normalization methods.
const (
	NormMean     NormMethod = "mean"     // (x - mean)
	NormStandard NormMethod = "standard" // (x - mean) / stddev
	NormMin      NormMethod = "min"      // (x - min)
	NormMaxMin   NormMethod = "maxmin"   // (x - min) / (max - min)
	NormCustom   NormMethod = "custom"   // (x - norm_bias) / norm_range
)

// NormMethods lists every normalization method.
func NormMethods() []NormMethod {
	return []NormMethod{NormMean, NormStandard, NormMin, NormMaxMin, NormCustom}
}

var normalizeParams = param.Set{
	"norm_method": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.String},
		Description: "Normalization method: mean, standard, min, maxmin or custom",
		Default:     string(NormStandard),
		Validator:   param.OneOf(stringsOf(NormMethods())...),
	},
	"norm_bias": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.Float},
		Description: "Value subtracted from the signal (custom method only)",
		Validator:   param.Finite(),
		Activation:  param.Equals("norm_method", string(NormCustom)),
	},
	"norm_range": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.Float},
		Description: "Value the biased signal is divided by (custom method only)",
		Validator:   param.Finite(),
		Activation:  param.Equals("norm_method", string(NormCustom)),
	},
}

// NormalizeConfig is the typed form of the Normalize parameters. Zero fields
// are left to the defaults; Bias and Range are only sent with NormCustom.
type NormalizeConfig struct {
	Method NormMethod
	Bias   float64
	Range  float64
}

// Values renders the config as a raw parameter mapping.
func (c NormalizeConfig) Values() param.Values {
	v := param.Values{}
	if c.Method != "" {
		v["norm_method"] = string(c.Method)
	}
	if c.Method == NormCustom {
		v["norm_bias"] = c.Bias
		v["norm_range"] = c.Range
	}
	return v
}

// Normalize computes (x - bias) / range.
type Normalize struct {
	base
	method NormMethod
	bias   float64
	rng    float64
}

// NewNormalize returns a Normalize filter for cfg.
func NewNormalize(cfg NormalizeConfig, opts ...Option) (*Normalize, error) {
	p, o, err := resolve(NameNormalize, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newNormalize(p, o), nil
}

func newNormalize(p param.Values, o options) *Normalize {
	return &Normalize{
		base:   base{name: NameNormalize, params: p, log: o.logger},
		method: NormMethod(p.String("norm_method")),
		bias:   p.Float("norm_bias"),
		rng:    p.Float("norm_range"),
	}
}

// Apply normalizes s. A range too small to divide by, relative to the
// magnitude of the data, fails with ErrZeroRange.
func (n *Normalize) Apply(s *signal.Evenly) (Result, error) {
	if err := n.check(s); err != nil {
		return Result{}, err
	}

	x := s.Values
	st := timestats.Calculate(x)
	bias, rng := n.biasRange(st)
	if n.divides() && zeroRange(st, bias, rng) {
		return Result{}, fmt.Errorf("%s: %w: method %s, range %g", n.name, ErrZeroRange, n.method, rng)
	}

	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-bias, out)
	if rng != 1 {
		for i := range out {
			out[i] /= rng
		}
	}

	return applied(s, out), nil
}

func (n *Normalize) biasRange(st timestats.Stats) (bias, rng float64) {
	switch n.method {
	case NormMean:
		return st.Mean, 1
	case NormMin:
		return st.Min, 1
	case NormMaxMin:
		return st.Min, st.Range
	case NormCustom:
		return n.bias, n.rng
	default:
		return st.Mean, st.StDev
	}
}

// divides reports whether the method scales by a range; mean and min only
// subtract a bias.
func (n *Normalize) divides() bool {
	return n.method != NormMean && n.method != NormMin
}

// zeroRange reports whether dividing by rng would amplify rounding noise
// into the result: |rng| <= 64 eps max(1, max|x|, |bias|).
func zeroRange(st timestats.Stats, bias, rng float64) bool {
	if math.IsNaN(rng) {
		return true
	}
	scale := math.Max(1, math.Abs(bias))
	scale = math.Max(scale, st.Peak())
	return math.Abs(rng) <= 64*epsilon*scale
}

const epsilon = 0x1p-52

func stringsOf[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
