package indicator

import (
	"fmt"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/dsp/spectrum"
	"github.com/cwbudde/algo-physio/physio/param"
	"github.com/cwbudde/algo-physio/stats/frequency"
)

var bandParams = spectralParams.Merge(param.Set{
	"freq_min": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.Float},
		Description: "Lower band edge in Hz (included)",
		Validator:   param.Positive(),
	},
	"freq_max": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.Float},
		Description: "Upper band edge in Hz (excluded)",
		Validator:   param.Positive(),
	},
})

// BandConfig is the typed form of the band indicator parameters. The band
// is [Min, Max); Min >= Max yields an empty band.
type BandConfig struct {
	Min, Max float64
	Spectral SpectralConfig
}

// Values renders the config as a raw parameter mapping.
func (c BandConfig) Values() param.Values {
	v := param.Values{}
	if c.Min != 0 {
		v["freq_min"] = c.Min
	}
	if c.Max != 0 {
		v["freq_max"] = c.Max
	}
	c.Spectral.render(v)
	return v
}

// InBand returns the spectrum bins whose frequency lies in [freq_min,
// freq_max). The spectrum is re-estimated on every call.
type InBand struct {
	base
	lo, hi float64
	est    spectrum.Estimator
}

// NewInBand returns an InBand indicator for cfg.
func NewInBand(cfg BandConfig, opts ...Option) (*InBand, error) {
	return newBand(NameInBand, cfg.Values(), applyOptions(opts))
}

func newBand(name string, raw param.Values, o options) (*InBand, error) {
	p, err := param.Resolve(name, bandParams, raw)
	if err != nil {
		return nil, err
	}
	return bandFromParams(name, p, o)
}

func bandFromParams(name string, p param.Values, o options) (*InBand, error) {
	est := o.estimator
	if est == nil {
		var err error
		if est, err = spectrum.New(spectrumConfig(p)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return &InBand{
		base: base{name: name, params: p},
		lo:   p.Float("freq_min"),
		hi:   p.Float("freq_max"),
		est:  est,
	}, nil
}

// Band estimates the spectrum of s and cuts out the band.
func (b *InBand) Band(s *signal.Evenly) (spectrum.Spectrum, error) {
	if err := b.check(s); err != nil {
		return spectrum.Spectrum{}, err
	}
	spec, err := b.est.Estimate(s)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("%s: %w", b.name, err)
	}
	return spec.Band(b.lo, b.hi), nil
}

// Compute implements Indicator.
func (b *InBand) Compute(s *signal.Evenly) (Value, error) {
	band, err := b.Band(s)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: BandValue, Band: band}, nil
}

// PowerInBand sums the spectral power in [freq_min, freq_max). An empty
// band has zero power.
type PowerInBand struct {
	*InBand
}

// NewPowerInBand returns a PowerInBand indicator for cfg.
func NewPowerInBand(cfg BandConfig, opts ...Option) (*PowerInBand, error) {
	b, err := newBand(NamePowerInBand, cfg.Values(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &PowerInBand{b}, nil
}

// Power returns the band power of s.
func (p *PowerInBand) Power(s *signal.Evenly) (float64, error) {
	band, err := p.Band(s)
	if err != nil {
		return 0, err
	}
	return frequency.Calculate(band.Freqs, band.Power).Power, nil
}

// Compute implements Indicator.
func (p *PowerInBand) Compute(s *signal.Evenly) (Value, error) {
	v, err := p.Power(s)
	if err != nil {
		return Value{}, err
	}
	return scalar(v), nil
}

// PeakInBand returns the frequency of the strongest bin in [freq_min,
// freq_max). An empty band fails with ErrEmptyBand.
type PeakInBand struct {
	*InBand
}

// NewPeakInBand returns a PeakInBand indicator for cfg.
func NewPeakInBand(cfg BandConfig, opts ...Option) (*PeakInBand, error) {
	b, err := newBand(NamePeakInBand, cfg.Values(), applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return &PeakInBand{b}, nil
}

// Peak returns the peak frequency of s within the band.
func (p *PeakInBand) Peak(s *signal.Evenly) (float64, error) {
	band, err := p.Band(s)
	if err != nil {
		return 0, err
	}
	st := frequency.Calculate(band.Freqs, band.Power)
	if st.Bins == 0 {
		return 0, fmt.Errorf("%s: %w: [%g, %g) Hz", p.name, ErrEmptyBand, p.lo, p.hi)
	}
	return st.PeakFreq, nil
}

// Compute implements Indicator.
func (p *PeakInBand) Compute(s *signal.Evenly) (Value, error) {
	v, err := p.Peak(s)
	if err != nil {
		return Value{}, err
	}
	return scalar(v), nil
}
