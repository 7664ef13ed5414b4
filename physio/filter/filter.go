package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/diag"
	"github.com/cwbudde/algo-physio/physio/param"
)

// Errors returned or carried as a pass-through Reason by filters.
var (
	ErrZeroRange                 = errors.New("filter: normalization range is zero")
	ErrSignalTooShort            = errors.New("filter: signal too short")
	ErrMissingAlgorithmInput     = errors.New("filter: missing algorithm input")
	ErrFilterDesignUnsatisfiable = errors.New("filter: filter design unsatisfiable")
	ErrIllConditioned            = errors.New("filter: impulse response is ill-conditioned")
	ErrUnknownFilter             = errors.New("filter: unknown filter")
)

// Status tells whether a filter transformed its input.
type Status int

const (
	// Applied means Result.Signal is the filtered signal.
	Applied Status = iota
	// PassThrough means Result.Signal is the unmodified input and
	// Result.Reason explains why.
	PassThrough
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case PassThrough:
		return "pass-through"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a successful Apply.
type Result struct {
	Signal *signal.Evenly
	Status Status
	Reason error
}

// Filter is a configured signal-to-signal operation. Implementations are
// immutable after construction and safe for concurrent use.
type Filter interface {
	// Name returns the algorithm name used in the catalog and in errors.
	Name() string
	// Params returns a copy of the resolved parameters.
	Params() param.Values
	// Apply filters s. The input is never modified.
	Apply(s *signal.Evenly) (Result, error)
}

type options struct {
	logger diag.Logger
}

// Option configures a filter at construction.
type Option func(*options)

// WithLogger sets the sink for pass-through diagnostics.
// The default is diag.Default.
func WithLogger(l diag.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
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
	if o.logger == nil {
		o.logger = diag.Default()
	}
	return o
}

// base carries what every filter shares.
type base struct {
	name   string
	params param.Values
	log    diag.Logger
}

func (b *base) Name() string { return b.name }

func (b *base) Params() param.Values { return b.params.Clone() }

func (b *base) check(s *signal.Evenly) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", b.name, err)
	}
	return nil
}

func applied(in *signal.Evenly, values []float64) Result {
	return Result{Signal: in.WithValues(values), Status: Applied}
}

func passThrough(in *signal.Evenly, reason error) Result {
	return Result{Signal: in, Status: PassThrough, Reason: reason}
}
