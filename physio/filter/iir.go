package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-physio/dsp/filter/biquad"
	"github.com/cwbudde/algo-physio/dsp/filter/design/pass"
	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
)

// Default IIR tolerances.
const (
	DefaultLossDB        = 0.1
	DefaultAttenuationDB = 40.0
)

var iirParams = param.Set{
	"fp": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.FloatList},
		Description: "Passband edge frequencies in Hz (one edge, or two for band filters)",
		Validator:   param.All(param.Positive(), param.LenBetween(1, 2)),
	},
	"fs": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.FloatList},
		Description: "Stopband edge frequencies in Hz (one edge, or two for band filters)",
		Validator:   param.All(param.Positive(), param.LenBetween(1, 2)),
	},
	"loss": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.Float},
		Description: "Maximum passband loss in dB",
		Default:     DefaultLossDB,
		Validator:   param.Positive(),
	},
	"att": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.Float},
		Description: "Minimum stopband attenuation in dB",
		Default:     DefaultAttenuationDB,
		Validator:   param.Positive(),
	},
	"ftype": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.String},
		Description: "Filter family: butter, cheby1, cheby2, ellip or bessel",
		Default:     string(pass.Butterworth),
		Validator:   param.OneOf(stringsOf(pass.Families())...),
	},
}

// IIRConfig is the typed form of the IIRFilter parameters. Edges are in Hz.
type IIRConfig struct {
	Passband      []float64
	Stopband      []float64
	LossDB        float64     // 0 selects DefaultLossDB
	AttenuationDB float64     // 0 selects DefaultAttenuationDB
	Family        pass.Family // "" selects pass.Butterworth
}

// Values renders the config as a raw parameter mapping.
func (c IIRConfig) Values() param.Values {
	v := param.Values{}
	if c.Passband != nil {
		v["fp"] = c.Passband
	}
	if c.Stopband != nil {
		v["fs"] = c.Stopband
	}
	if c.LossDB != 0 {
		v["loss"] = c.LossDB
	}
	if c.AttenuationDB != 0 {
		v["att"] = c.AttenuationDB
	}
	if c.Family != "" {
		v["ftype"] = string(c.Family)
	}
	return v
}

// IIR designs the minimum-order filter of the configured family that meets
// the tolerances at the given edges and applies it forward and backward, so
// the output has no phase delay.
type IIR struct {
	base
	passband []float64
	stopband []float64
	loss     float64
	att      float64
	family   pass.Family
}

// NewIIR returns an IIRFilter for cfg.
func NewIIR(cfg IIRConfig, opts ...Option) (*IIR, error) {
	p, o, err := resolve(NameIIR, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newIIR(p, o), nil
}

func newIIR(p param.Values, o options) *IIR {
	return &IIR{
		base:     base{name: NameIIR, params: p, log: o.logger},
		passband: p.Floats("fp"),
		stopband: p.Floats("fs"),
		loss:     p.Float("loss"),
		att:      p.Float("att"),
		family:   pass.Family(p.String("ftype")),
	}
}

// Coefficients designs the cascade for a signal sampled at sampleRate.
func (f *IIR) Coefficients(sampleRate float64) ([]biquad.Coefficients, error) {
	nyquist := sampleRate / 2
	spec := pass.Spec{
		Passband:      scaled(f.passband, 1/nyquist),
		Stopband:      scaled(f.stopband, 1/nyquist),
		LossDB:        f.loss,
		AttenuationDB: f.att,
		Family:        f.family,
	}
	return pass.Design(spec)
}

// Apply filters s. When no filter of the family meets the specification at
// this sample rate, a warning is logged and s is passed through with a
// Reason wrapping ErrFilterDesignUnsatisfiable.
func (f *IIR) Apply(s *signal.Evenly) (Result, error) {
	if err := f.check(s); err != nil {
		return Result{}, err
	}

	coeffs, err := f.Coefficients(s.SampleRate)
	if err != nil {
		if !errors.Is(err, pass.ErrUnsatisfiable) {
			return Result{}, fmt.Errorf("%s: %w", f.name, err)
		}
		reason := fmt.Errorf("%w: %w", ErrFilterDesignUnsatisfiable, err)
		f.log.Warnf("%s: returning input unchanged: %v", f.name, reason)
		return passThrough(s, reason), nil
	}

	out, err := biquad.FiltFilt(coeffs, s.Values)
	if err != nil {
		if errors.Is(err, biquad.ErrSignalTooShort) {
			return Result{}, fmt.Errorf("%s: %w: %w", f.name, ErrSignalTooShort, err)
		}
		return Result{}, fmt.Errorf("%s: %w", f.name, err)
	}

	return applied(s, out), nil
}

func scaled(x []float64, k float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * k
	}
	return out
}
