// Package signal provides the evenly sampled time-series container consumed by
// the physio filters and indicators, plus deterministic generators for tests
// and examples.
package signal

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmpty              = errors.New("signal: empty signal")
	ErrInvalidSampleRate  = errors.New("signal: sample rate must be > 0")
	ErrIndexOutOfRange    = errors.New("signal: index out of range")
	ErrNonFiniteTimestamp = errors.New("signal: start time must be finite")
)

// Evenly is a regularly sampled signal. Sample i sits at
// StartTime + i/SampleRate seconds.
type Evenly struct {
	Values     []float64
	SampleRate float64
	StartTime  float64
}

// New returns an evenly sampled signal starting at t=0. The values slice is
// retained, not copied.
func New(values []float64, sampleRate float64) (*Evenly, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return &Evenly{Values: values, SampleRate: sampleRate}, nil
}

// MustNew is like New but panics on an invalid sample rate.
func MustNew(values []float64, sampleRate float64) *Evenly {
	s, err := New(values, sampleRate)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of samples.
func (s *Evenly) Len() int { return len(s.Values) }

// Duration returns the covered time span in seconds.
func (s *Evenly) Duration() float64 {
	return float64(len(s.Values)) / s.SampleRate
}

// Nyquist returns half the sample rate.
func (s *Evenly) Nyquist() float64 { return s.SampleRate / 2 }

// First returns the first sample. It panics on an empty signal.
func (s *Evenly) First() float64 { return s.Values[0] }

// Last returns the last sample. It panics on an empty signal.
func (s *Evenly) Last() float64 { return s.Values[len(s.Values)-1] }

// TimeAt returns the timestamp of sample i.
func (s *Evenly) TimeAt(i int) float64 {
	return s.StartTime + float64(i)/s.SampleRate
}

// Times returns the timestamps of all samples.
func (s *Evenly) Times() []float64 {
	out := make([]float64, len(s.Values))
	for i := range out {
		out[i] = s.TimeAt(i)
	}
	return out
}

// Slice returns samples [from, to) as a new signal sharing the backing array.
// The start time moves with from.
func (s *Evenly) Slice(from, to int) (*Evenly, error) {
	if from < 0 || to > len(s.Values) || from > to {
		return nil, fmt.Errorf("%w: [%d:%d] of %d", ErrIndexOutOfRange, from, to, len(s.Values))
	}
	return &Evenly{
		Values:     s.Values[from:to],
		SampleRate: s.SampleRate,
		StartTime:  s.TimeAt(from),
	}, nil
}

// WithValues returns a signal with the same sampling grid and new values.
func (s *Evenly) WithValues(values []float64) *Evenly {
	return &Evenly{Values: values, SampleRate: s.SampleRate, StartTime: s.StartTime}
}

// Clone returns a deep copy.
func (s *Evenly) Clone() *Evenly {
	v := make([]float64, len(s.Values))
	copy(v, s.Values)
	return s.WithValues(v)
}

// Validate reports whether the signal can be processed.
func (s *Evenly) Validate() error {
	if s == nil || len(s.Values) == 0 {
		return ErrEmpty
	}
	if !(s.SampleRate > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, s.SampleRate)
	}
	if math.IsNaN(s.StartTime) || math.IsInf(s.StartTime, 0) {
		return ErrNonFiniteTimestamp
	}
	return nil
}
