package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-physio/dsp/conv"
	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
)

// DeconvMethod names a spectral division strategy.
type DeconvMethod string

// Deconvolution methods.
const (
	DeconvNaive       DeconvMethod = "naive"
	DeconvRegularized DeconvMethod = "regularized"
	DeconvWiener      DeconvMethod = "wiener"
)

// DeconvMethods lists every deconvolution method.
func DeconvMethods() []DeconvMethod {
	return []DeconvMethod{DeconvNaive, DeconvRegularized, DeconvWiener}
}

var deconvMethods = map[DeconvMethod]conv.DeconvMethod{
	DeconvNaive:       conv.DeconvNaive,
	DeconvRegularized: conv.DeconvRegularized,
	DeconvWiener:      conv.DeconvWiener,
}

var deconvolutionalParams = param.Set{
	"irf": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.FloatList},
		Description: "Impulse response to remove from the signal",
		Validator:   param.All(param.Finite(), param.LenBetween(1, maxListLen)),
	},
	"normalize": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.Bool},
		Description: "Scale the impulse response to unit area",
		Default:     true,
	},
	"deconv_method": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.String},
		Description: "Spectral division: naive, regularized or wiener",
		Default:     string(DeconvNaive),
		Validator:   param.OneOf(stringsOf(DeconvMethods())...),
	},
	"epsilon": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.Float},
		Description: "Relative spectral floor (naive) or regularization weight (regularized)",
		Default:     conv.DefaultEpsilon,
		Validator:   param.Positive(),
	},
}

// DeConvolutionalConfig is the typed form of the DeConvolutionalFilter
// parameters.
type DeConvolutionalConfig struct {
	IRF []float64
	// SkipNormalize disables unit-area scaling of the impulse response.
	SkipNormalize bool
	Method        DeconvMethod // "" selects DeconvNaive
	Epsilon       float64      // 0 selects conv.DefaultEpsilon
}

// Values renders the config as a raw parameter mapping.
func (c DeConvolutionalConfig) Values() param.Values {
	v := param.Values{"normalize": !c.SkipNormalize}
	if c.IRF != nil {
		v["irf"] = c.IRF
	}
	if c.Method != "" {
		v["deconv_method"] = string(c.Method)
	}
	if c.Epsilon != 0 {
		v["epsilon"] = c.Epsilon
	}
	return v
}

// DeConvolutional removes a known impulse response from a signal by
// spectral division. Both spectra are taken at exactly the signal length,
// so the response is zero-padded or truncated to fit, and the result is the
// magnitude of the inverse transform.
type DeConvolutional struct {
	base
	irf       []float64
	normalize bool
	method    DeconvMethod
	epsilon   float64
}

// NewDeConvolutional returns a DeConvolutionalFilter for cfg.
func NewDeConvolutional(cfg DeConvolutionalConfig, opts ...Option) (*DeConvolutional, error) {
	p, o, err := resolve(NameDeConvolutional, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newDeConvolutional(p, o), nil
}

func newDeConvolutional(p param.Values, o options) *DeConvolutional {
	return &DeConvolutional{
		base:      base{name: NameDeConvolutional, params: p, log: o.logger},
		irf:       p.Floats("irf"),
		normalize: p.Bool("normalize"),
		method:    DeconvMethod(p.String("deconv_method")),
		epsilon:   p.Float("epsilon"),
	}
}

// Apply deconvolves s. With the naive method, an impulse response whose
// spectrum has a bin at or below epsilon times its peak fails with
// ErrIllConditioned instead of producing non-finite samples.
func (d *DeConvolutional) Apply(s *signal.Evenly) (Result, error) {
	if err := d.check(s); err != nil {
		return Result{}, err
	}

	irf := d.irf
	if d.normalize {
		var ok bool
		if irf, ok = unitArea(irf); !ok {
			return Result{}, fmt.Errorf("%s: %w: impulse response is all zeros", d.name, ErrIllConditioned)
		}
	}

	out, err := conv.Deconvolve(s.Values, irf, conv.DeconvOptions{
		Method:    deconvMethods[d.method],
		Epsilon:   d.epsilon,
		Magnitude: true,
	})
	if err != nil {
		if errors.Is(err, conv.ErrIllConditioned) {
			return Result{}, fmt.Errorf("%s: %w: %w", d.name, ErrIllConditioned, err)
		}
		return Result{}, fmt.Errorf("%s: %w", d.name, err)
	}

	return applied(s, out), nil
}
