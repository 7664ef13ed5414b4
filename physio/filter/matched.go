package filter

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-physio/dsp/conv"
	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
)

var matchedParams = param.Set{
	"template": {
		Level:       param.Mandatory,
		Kinds:       []param.Kind{param.FloatList},
		Description: "Template to match, in time order (not reversed)",
		Validator:   param.All(param.Finite(), param.LenBetween(1, maxListLen)),
	},
}

const maxListLen = 1 << 24

// MatchedConfig is the typed form of the MatchedFilter parameters.
type MatchedConfig struct {
	Template []float64
}

// Values renders the config as a raw parameter mapping.
func (c MatchedConfig) Values() param.Values {
	v := param.Values{}
	if c.Template != nil {
		v["template"] = c.Template
	}
	return v
}

// Matched convolves the signal with a template of length M and drops the
// leading lag = argmax(template) samples, so each output sample lines up with
// the template's peak instead of its first tap. The trailing M-1-lag samples
// of the full convolution are dropped too: the output keeps the input length
// and start time.
type Matched struct {
	base
	template []float64
	lag      int
}

// NewMatched returns a MatchedFilter for cfg.
func NewMatched(cfg MatchedConfig, opts ...Option) (*Matched, error) {
	p, o, err := resolve(NameMatched, cfg.Values(), opts)
	if err != nil {
		return nil, err
	}
	return newMatched(p, o), nil
}

func newMatched(p param.Values, o options) *Matched {
	t := p.Floats("template")
	return &Matched{
		base:     base{name: NameMatched, params: p, log: o.logger},
		template: t,
		lag:      floats.MaxIdx(t),
	}
}

// Apply filters s.
func (m *Matched) Apply(s *signal.Evenly) (Result, error) {
	if err := m.check(s); err != nil {
		return Result{}, err
	}

	full, err := conv.Convolve(s.Values, m.template)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", m.name, err)
	}

	out := make([]float64, s.Len())
	copy(out, full[m.lag:])

	return applied(s, out), nil
}
