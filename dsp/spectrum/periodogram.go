package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-physio/dsp/core"
	"github.com/cwbudde/algo-physio/dsp/signal"
)

// Periodogram estimates the spectrum from a single windowed FFT of the whole
// signal. The transform length is the next power of two at or above
// max(NFFT, len(signal)).
type Periodogram struct {
	NFFT       int
	Window     Window
	RemoveMean bool
}

// Estimate implements Estimator.
func (p Periodogram) Estimate(s *signal.Evenly) (Spectrum, error) {
	if p.NFFT < 0 {
		return Spectrum{}, fmt.Errorf("%w: nfft %d", ErrInvalidConfig, p.NFFT)
	}

	wf, err := p.Window.Func()
	if err != nil {
		return Spectrum{}, err
	}

	x, err := prepare(s, p.RemoveMean, 2)
	if err != nil {
		return Spectrum{}, err
	}

	energy := applyWindow(x, wf)
	if energy == 0 {
		return Spectrum{}, fmt.Errorf("%w: window %q has no energy at length %d", ErrInvalidConfig, p.Window, len(x))
	}

	n := core.NextPowerOf2(max(p.NFFT, len(x)))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	pow := make([]float64, bins)
	power(pow, out)
	oneSided(pow, n, s.SampleRate*energy)

	return Spectrum{Freqs: binFreqs(bins, n, s.SampleRate), Power: pow}, nil
}
