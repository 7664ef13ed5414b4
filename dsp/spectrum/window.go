package spectrum

import (
	"fmt"

	"github.com/mjibson/go-dsp/window"

	"github.com/cwbudde/algo-vecmath"
)

// Window names a tapering window applied before transforming.
type Window string

// Supported windows.
const (
	Hann     Window = "hann"
	Hamming  Window = "hamming"
	Bartlett Window = "bartlett"
	Rect     Window = "rect"
)

// Windows lists every supported window.
func Windows() []Window {
	return []Window{Hann, Hamming, Bartlett, Rect}
}

// Func returns the window generator. An empty Window selects Hann.
func (w Window) Func() (func(int) []float64, error) {
	switch w {
	case Hann, "":
		return window.Hann, nil
	case Hamming:
		return window.Hamming, nil
	case Bartlett:
		return window.Bartlett, nil
	case Rect:
		return rectangular, nil
	default:
		return nil, fmt.Errorf("%w: unknown window %q", ErrInvalidConfig, string(w))
	}
}

func rectangular(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return w
}

// applyWindow multiplies x by the window coefficients in place and returns
// the sum of squared coefficients.
func applyWindow(x []float64, fn func(int) []float64) float64 {
	coeffs := fn(len(x))
	vecmath.MulBlockInPlace(x, coeffs)

	sq := make([]float64, len(coeffs))
	vecmath.MulBlock(sq, coeffs, coeffs)

	energy := 0.0
	for _, v := range sq {
		energy += v
	}

	return energy
}
