package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-physio/dsp/core"
	"github.com/cwbudde/algo-physio/dsp/signal"
)

// Defaults for the autoregressive estimator.
const (
	DefaultAROrder = 16
	defaultARGrid  = 1024
)

// AR fits an autoregressive model with the Yule-Walker equations and
// evaluates its spectrum on an evenly spaced grid of NFFT/2+1 frequencies.
// NFFT is rounded up to a power of two; 0 selects 1024. The signal must be
// longer than the model order.
type AR struct {
	Order      int
	NFFT       int
	RemoveMean bool
}

// Estimate implements Estimator.
func (a AR) Estimate(s *signal.Evenly) (Spectrum, error) {
	order := a.Order
	if order == 0 {
		order = DefaultAROrder
	}
	if order < 1 || a.NFFT < 0 {
		return Spectrum{}, fmt.Errorf("%w: order %d nfft %d", ErrInvalidConfig, a.Order, a.NFFT)
	}

	x, err := prepare(s, a.RemoveMean, order+1)
	if err != nil {
		return Spectrum{}, err
	}

	coeffs, sigma2, err := yuleWalker(x, order)
	if err != nil {
		return Spectrum{}, err
	}

	n := max(defaultARGrid, core.NextPowerOf2(2*order))
	if a.NFFT > 0 {
		n = core.NextPowerOf2(max(a.NFFT, 2*order))
	}

	// Spectrum of the whitening polynomial 1 - sum(a_k z^-k).
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	poly := make([]complex128, n)
	poly[0] = 1
	for k, c := range coeffs {
		poly[k+1] = complex(-c, 0)
	}

	den := make([]complex128, n)
	if err := plan.Forward(den, poly); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	pow := make([]float64, bins)
	for k := range pow {
		m := cmplx.Abs(den[k])
		pow[k] = sigma2 / (m * m)
	}
	oneSided(pow, n, s.SampleRate)

	return Spectrum{Freqs: binFreqs(bins, n, s.SampleRate), Power: pow}, nil
}

// yuleWalker solves R a = r for the AR coefficients, where R is the
// Toeplitz matrix of the biased autocorrelation, and returns them with the
// innovation variance.
func yuleWalker(x []float64, order int) ([]float64, float64, error) {
	r := autocorr(x, order)
	if !(r[0] > 0) {
		return nil, 0, fmt.Errorf("%w: zero signal energy", ErrSingular)
	}

	toeplitz := mat.NewSymDense(order, nil)
	for i := range order {
		for j := i; j < order; j++ {
			toeplitz.SetSym(i, j, r[j-i])
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(toeplitz); !ok {
		return nil, 0, ErrSingular
	}

	rhs := mat.NewVecDense(order, append([]float64(nil), r[1:]...))
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, rhs); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	coeffs := make([]float64, order)
	sigma2 := r[0]
	for k := range order {
		coeffs[k] = sol.AtVec(k)
		sigma2 -= coeffs[k] * r[k+1]
	}

	if !(sigma2 > 0) || math.IsNaN(sigma2) {
		return nil, 0, fmt.Errorf("%w: innovation variance %g", ErrSingular, sigma2)
	}

	return coeffs, sigma2, nil
}

// autocorr returns the biased autocorrelation for lags 0..maxLag.
func autocorr(x []float64, maxLag int) []float64 {
	n := len(x)
	r := make([]float64, maxLag+1)
	for lag := range r {
		sum := 0.0
		for i := 0; i+lag < n; i++ {
			sum += x[i] * x[i+lag]
		}
		r[lag] = sum / float64(n)
	}

	return r
}
