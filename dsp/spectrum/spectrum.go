package spectrum

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-physio/dsp/core"
	"github.com/cwbudde/algo-physio/dsp/signal"
)

// Errors returned by estimators.
var (
	ErrTooShort      = errors.New("spectrum: signal too short")
	ErrInvalidConfig = errors.New("spectrum: invalid configuration")
	ErrSingular      = errors.New("spectrum: autocorrelation matrix is not positive definite")
)

// Spectrum is a one-sided power spectral density.
// Freqs ascend from 0 to the Nyquist frequency.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s.Freqs) }

// Band returns the bins whose frequency lies in [lo, hi). The returned
// slices share memory with s.
func (s Spectrum) Band(lo, hi float64) Spectrum {
	i0 := sort.SearchFloat64s(s.Freqs, lo)
	i1 := sort.SearchFloat64s(s.Freqs, hi)
	if i1 < i0 {
		i1 = i0
	}

	return Spectrum{Freqs: s.Freqs[i0:i1], Power: s.Power[i0:i1]}
}

// Estimator computes the power spectrum of a signal.
type Estimator interface {
	Estimate(s *signal.Evenly) (Spectrum, error)
}

// prepare copies the signal values and optionally removes their mean.
func prepare(s *signal.Evenly, removeMean bool, minLen int) ([]float64, error) {
	if s == nil || s.Len() < minLen {
		n := 0
		if s != nil {
			n = s.Len()
		}
		return nil, fmt.Errorf("%w: %d samples, need %d", ErrTooShort, n, minLen)
	}
	if !(s.SampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate %g", ErrInvalidConfig, s.SampleRate)
	}

	x := append([]float64(nil), s.Values...)
	if removeMean {
		m := stat.Mean(x, nil)
		for i := range x {
			x[i] -= m
		}
	}

	return x, nil
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// power writes |X[k]|^2 for the first len(dst) bins of in.
func power(dst []float64, in []complex128) {
	n := len(dst)
	buf := scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	re, im := buf.data[:n], buf.data[n:2*n]

	for i := range n {
		re[i] = real(in[i])
		im[i] = imag(in[i])
	}

	vecmath.Power(dst, re, im)
	scratchPool.Put(buf)
}

// oneSided converts two-sided bin powers of an n-point transform to a
// one-sided density: interior bins are doubled and everything is divided by
// norm. DC and, for even n, the Nyquist bin stay single.
func oneSided(p []float64, n int, norm float64) {
	for k := range p {
		if k > 0 && !(n%2 == 0 && k == n/2) {
			p[k] *= 2
		}
		p[k] /= norm
	}
}

func binFreqs(bins, n int, fs float64) []float64 {
	f := make([]float64, bins)
	for k := range f {
		f[k] = float64(k) * fs / float64(n)
	}

	return f
}
