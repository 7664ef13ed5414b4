package indicator

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/dsp/spectrum"
	"github.com/cwbudde/algo-physio/physio/param"
)

// Errors returned by indicators.
var (
	ErrEmptyBand        = errors.New("indicator: frequency band is empty")
	ErrUnknownIndicator = errors.New("indicator: unknown indicator")
)

// ValueKind tells which field of a Value is set.
type ValueKind int

const (
	ScalarValue ValueKind = iota
	BandValue
)

func (k ValueKind) String() string {
	switch k {
	case ScalarValue:
		return "scalar"
	case BandValue:
		return "band"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the result of an indicator: a scalar, or the bins of a band.
type Value struct {
	Kind   ValueKind
	Scalar float64
	Band   spectrum.Spectrum
}

func scalar(v float64) Value { return Value{Kind: ScalarValue, Scalar: v} }

// Indicator is a configured signal-to-value operation. Implementations are
// immutable after construction and safe for concurrent use when their
// estimator is.
type Indicator interface {
	// Name returns the algorithm name used in the catalog and in errors.
	Name() string
	// Params returns a copy of the resolved parameters.
	Params() param.Values
	// Compute evaluates the indicator on s.
	Compute(s *signal.Evenly) (Value, error)
}

type options struct {
	estimator spectrum.Estimator
}

// Option configures an indicator at construction.
type Option func(*options)

// WithEstimator replaces the estimator built from the spectral parameters.
// Time-domain indicators ignore it.
func WithEstimator(e spectrum.Estimator) Option {
	return func(o *options) {
		if e != nil {
			o.estimator = e
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

type base struct {
	name   string
	params param.Values
}

func (b *base) Name() string { return b.name }

func (b *base) Params() param.Values { return b.params.Clone() }

func (b *base) check(s *signal.Evenly) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", b.name, err)
	}
	return nil
}
