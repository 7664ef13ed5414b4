package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-physio/dsp/conv"
	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
)

// DefaultWindowLength is the default IRF duration in seconds.
const DefaultWindowLength = 1.0

var convolutionalParams = param.Set{
	"irftype": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.String},
		Description: "Impulse response shape: gauss, rect, triang, dgauss or custom",
		Default:     string(IRFGauss),
		Validator:   param.OneOf(stringsOf(IRFTypes())...),
	},
	"normalize": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.Bool},
		Description: "Scale the impulse response to unit area",
		Default:     true,
	},
	"win_len": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.Float},
		Description: "Duration of the synthesized impulse response in seconds",
		Default:     DefaultWindowLength,
		Validator:   param.Positive(),
		Activation:  param.NotEquals("irftype", string(IRFCustom)),
	},
	"irf": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.FloatList},
		Description: "Impulse response used when irftype is custom",
		Validator:   param.Finite(),
		Activation:  param.Equals("irftype", string(IRFCustom)),
	},
}

// ConvolutionalConfig is the typed form of the ConvolutionalFilter
// parameters.
type ConvolutionalConfig struct {
	Type IRFType // "" selects IRFGauss
	// SkipNormalize disables unit-area scaling of the impulse response.
	SkipNormalize bool
	WindowLength  float64 // seconds; 0 selects DefaultWindowLength
	IRF           []float64
}

// Values renders the config as a raw parameter mapping.
func (c ConvolutionalConfig) Values() param.Values {
	v := param.Values{"normalize": !c.SkipNormalize}
	if c.Type != "" {
		v["irftype"] = string(c.Type)
	}
	if c.WindowLength != 0 {
		v["win_len"] = c.WindowLength
	}
	if c.IRF != nil {
		v["irf"] = c.IRF
	}
	return v
}

// Convolutional smooths a signal by convolution with an impulse response.
// The signal is extended at both ends by repeating its edge samples for the
// length of the response, convolved in same-length mode, and cut back to its
// original span.
type Convolutional struct {
	base
	kind      IRFType
	normalize bool
	winLen    float64
	irf       []float64
}

// NewConvolutional returns a ConvolutionalFilter for cfg.
func NewConvolutional(cfg ConvolutionalConfig, opts ...Option) (*Convolutional, error) {
	p, o, err := resolve(NameConvolutional, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newConvolutional(p, o), nil
}

func newConvolutional(p param.Values, o options) *Convolutional {
	return &Convolutional{
		base:      base{name: NameConvolutional, params: p, log: o.logger},
		kind:      IRFType(p.String("irftype")),
		normalize: p.Bool("normalize"),
		winLen:    p.Float("win_len"),
		irf:       p.Floats("irf"),
	}
}

// ImpulseResponse returns the response used for a signal sampled at
// sampleRate, before unit-area scaling.
func (c *Convolutional) ImpulseResponse(sampleRate float64) ([]float64, error) {
	if c.kind == IRFCustom {
		if len(c.irf) == 0 {
			return nil, fmt.Errorf("%w: irftype custom needs irf", ErrMissingAlgorithmInput)
		}
		return append([]float64(nil), c.irf...), nil
	}
	return SynthesizeIRF(c.kind, int(math.Round(c.winLen*sampleRate)))
}

// Apply filters s. A missing or degenerate impulse response is logged as an
// error and s is passed through with a Reason wrapping
// ErrMissingAlgorithmInput.
func (c *Convolutional) Apply(s *signal.Evenly) (Result, error) {
	if err := c.check(s); err != nil {
		return Result{}, err
	}

	irf, err := c.ImpulseResponse(s.SampleRate)
	if err == nil {
		irf, err = c.prepare(irf)
	}
	if err != nil {
		if errors.Is(err, ErrMissingAlgorithmInput) {
			c.log.Errorf("%s: returning input unchanged: %v", c.name, err)
			return passThrough(s, err), nil
		}
		return Result{}, fmt.Errorf("%s: %w", c.name, err)
	}

	n, l := len(irf), s.Len()
	padded := make([]float64, l+2*n)
	for i := 0; i < n; i++ {
		padded[i] = s.First()
		padded[n+l+i] = s.Last()
	}
	copy(padded[n:], s.Values)

	same, err := conv.ConvolveMode(padded, irf, conv.ModeSame)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", c.name, err)
	}

	out := make([]float64, l)
	copy(out, same[n:n+l])

	return applied(s, out), nil
}

func (c *Convolutional) prepare(irf []float64) ([]float64, error) {
	if !c.normalize {
		return irf, nil
	}
	out, ok := unitArea(irf)
	if !ok {
		return nil, fmt.Errorf("%w: impulse response has no area", ErrMissingAlgorithmInput)
	}
	return out, nil
}
