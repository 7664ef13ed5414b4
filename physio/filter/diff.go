package filter

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
)

var diffParams = param.Set{
	"degree": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.Int},
		Description: "Distance in samples between the differenced values",
		Default:     1,
		Validator:   param.AtLeast(1),
	},
}

// DiffConfig is the typed form of the Diff parameters.
type DiffConfig struct {
	Degree int // 0 selects the default of 1
}

// Values renders the config as a raw parameter mapping.
func (c DiffConfig) Values() param.Values {
	v := param.Values{}
	if c.Degree != 0 {
		v["degree"] = c.Degree
	}
	return v
}

// Diff computes y[i] = x[i+degree] - x[i]. The output is degree samples
// shorter than the input and each value is timed at the later of its two
// samples, so the start time moves forward by degree/SampleRate.
type Diff struct {
	base
	degree int
}

// NewDiff returns a Diff filter for cfg.
func NewDiff(cfg DiffConfig, opts ...Option) (*Diff, error) {
	p, o, err := resolve(NameDiff, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newDiff(p, o), nil
}

func newDiff(p param.Values, o options) *Diff {
	return &Diff{
		base:   base{name: NameDiff, params: p, log: o.logger},
		degree: p.Int("degree"),
	}
}

// Apply differences s. Signals of at most degree samples fail with
// ErrSignalTooShort.
func (d *Diff) Apply(s *signal.Evenly) (Result, error) {
	if err := d.check(s); err != nil {
		return Result{}, err
	}

	n := s.Len()
	if n <= d.degree {
		return Result{}, fmt.Errorf("%s: %w: %d samples for degree %d", d.name, ErrSignalTooShort, n, d.degree)
	}

	out := make([]float64, n-d.degree)
	floats.SubTo(out, s.Values[d.degree:], s.Values[:n-d.degree])

	return Result{
		Signal: &signal.Evenly{
			Values:     out,
			SampleRate: s.SampleRate,
			StartTime:  s.TimeAt(d.degree),
		},
		Status: Applied,
	}, nil
}
