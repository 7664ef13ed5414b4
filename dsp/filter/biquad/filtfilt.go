package biquad

import (
	"errors"
	"fmt"
)

// ErrSignalTooShort is returned when a signal cannot be padded for
// forward-backward filtering.
var ErrSignalTooShort = errors.New("biquad: signal too short for zero-phase filtering")

// PadLength returns the number of samples FiltFilt reflects at each end of
// the input for a cascade of nsec sections.
func PadLength(nsec int) int {
	return 3 * (2*nsec + 1)
}

// FiltFilt applies the cascade forward and then backward over x and returns
// a new slice of the same length. The ends are extended by odd reflection
// and each pass starts from the steady state matching its first sample,
// which keeps edge transients small. The input is not modified.
//
// Signals shorter than two samples return ErrSignalTooShort. An empty
// cascade returns a copy of x.
func FiltFilt(coeffs []Coefficients, x []float64) ([]float64, error) {
	n := len(x)
	if len(coeffs) == 0 {
		return append([]float64(nil), x...), nil
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrSignalTooShort, n)
	}

	pad := min(PadLength(len(coeffs)), n-1)
	ext := oddExtend(x, pad)

	chain := NewChain(coeffs)
	chain.PrimeSteadyState(ext[0])
	chain.ProcessBlock(ext)

	reverse(ext)
	chain.PrimeSteadyState(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])
	return out, nil
}

// oddExtend reflects x about its end points: 2*x[0]-x[pad..1] before and
// 2*x[n-1]-x[n-2..n-1-pad] after.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)
	first, last := x[0], x[n-1]
	for i := 0; i < pad; i++ {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:], x)
	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
