package conv

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Deconvolution errors.
var (
	ErrIllConditioned  = errors.New("conv: kernel spectrum too small for spectral division")
	ErrInvalidEpsilon  = errors.New("conv: epsilon must be positive")
	ErrInvalidNoiseVar = errors.New("conv: noise variance must be positive")
	ErrUnknownMethod   = errors.New("conv: unknown deconvolution method")
)

// DefaultEpsilon is the relative spectral floor used when
// DeconvOptions.Epsilon is zero.
const DefaultEpsilon = 1e-10

// DeconvMethod specifies the deconvolution method.
type DeconvMethod int

const (
	// DeconvNaive performs plain spectral division Y/H. Any kernel bin whose
	// magnitude is at most Epsilon times the largest bin magnitude makes the
	// division fail with ErrIllConditioned.
	DeconvNaive DeconvMethod = iota

	// DeconvRegularized computes Y*conj(H) / (|H|^2 + Epsilon*max|H|^2).
	DeconvRegularized

	// DeconvWiener computes Y*conj(H) / (|H|^2 + NSR) where NSR is the
	// noise-to-signal variance ratio.
	DeconvWiener
)

func (m DeconvMethod) String() string {
	switch m {
	case DeconvNaive:
		return "naive"
	case DeconvRegularized:
		return "regularized"
	case DeconvWiener:
		return "wiener"
	default:
		return fmt.Sprintf("DeconvMethod(%d)", int(m))
	}
}

// DeconvOptions configures deconvolution behavior.
type DeconvOptions struct {
	// Method specifies the deconvolution algorithm.
	Method DeconvMethod

	// Epsilon is the relative floor (naive) or regularization term
	// (regularized), both scaled by the kernel's peak spectrum.
	// Zero selects DefaultEpsilon.
	Epsilon float64

	// NoiseVariance is the estimated noise variance for Wiener deconvolution.
	// If zero, 1% of the signal variance is assumed.
	NoiseVariance float64

	// SignalVariance is the estimated signal variance for Wiener deconvolution.
	// If zero, it is estimated from the signal.
	SignalVariance float64

	// Magnitude returns |x| of the complex inverse transform instead of its
	// real part.
	Magnitude bool
}

// Deconvolve recovers an estimate of x from y = x (*) kernel by spectral
// division. Both transforms use exactly len(signal) points: the kernel is
// zero-padded, or truncated when longer, and the division is therefore
// circular. The result has len(signal) samples.
func Deconvolve(signal, kernel []float64, opts DeconvOptions) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	eps := opts.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	if !(eps > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidEpsilon, opts.Epsilon)
	}
	if opts.NoiseVariance < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidNoiseVar, opts.NoiseVariance)
	}

	n := len(signal)
	fft := fourier.NewCmplxFFT(n)

	y := fft.Coefficients(nil, toComplex(signal, n))
	h := fft.Coefficients(nil, toComplex(kernel, n))

	peak := 0.0
	for _, v := range h {
		peak = math.Max(peak, cmplx.Abs(v))
	}

	x := make([]complex128, n)

	switch opts.Method {
	case DeconvNaive:
		floor := eps * peak
		for k := range h {
			if cmplx.Abs(h[k]) <= floor {
				return nil, fmt.Errorf("%w: bin %d magnitude %g <= %g", ErrIllConditioned, k, cmplx.Abs(h[k]), floor)
			}
			x[k] = y[k] / h[k]
		}
	case DeconvRegularized:
		divideRegularized(x, y, h, eps*peak*peak)
	case DeconvWiener:
		nsr := noiseToSignal(signal, opts)
		divideRegularized(x, y, h, nsr)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}

	seq := fft.Sequence(nil, x)

	out := make([]float64, n)
	scale := 1 / float64(n)
	for i, v := range seq {
		if opts.Magnitude {
			out[i] = cmplx.Abs(v) * scale
		} else {
			out[i] = real(v) * scale
		}
	}

	return out, nil
}

func divideRegularized(dst, y, h []complex128, lambda float64) {
	for k := range h {
		mag2 := real(h[k])*real(h[k]) + imag(h[k])*imag(h[k])
		dst[k] = y[k] * cmplx.Conj(h[k]) / complex(mag2+lambda, 0)
	}
}

func noiseToSignal(signal []float64, opts DeconvOptions) float64 {
	signalVar := opts.SignalVariance
	if signalVar <= 0 {
		_, std := stat.PopMeanStdDev(signal, nil)
		signalVar = std * std
	}

	noiseVar := opts.NoiseVariance
	if noiseVar <= 0 {
		noiseVar = 0.01 * signalVar
	}

	if signalVar <= 0 || noiseVar <= 0 {
		return DefaultEpsilon
	}

	return noiseVar / signalVar
}

// toComplex copies the first n values of x into a complex slice of length n,
// zero-padding when x is shorter.
func toComplex(x []float64, n int) []complex128 {
	out := make([]complex128, n)
	for i := range min(n, len(x)) {
		out[i] = complex(x[i], 0)
	}

	return out
}

// SNR computes the signal-to-noise ratio in dB between original and recovered
// signals, treating their difference as noise.
func SNR(original, recovered []float64) float64 {
	if len(original) != len(recovered) || len(original) == 0 {
		return math.Inf(-1)
	}

	var signalPower, noisePower float64
	for i := range original {
		signalPower += original[i] * original[i]
		d := original[i] - recovered[i]
		noisePower += d * d
	}

	if noisePower == 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(signalPower/noisePower)
}
