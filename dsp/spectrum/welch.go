package spectrum

import (
	"fmt"

	"github.com/mjibson/go-dsp/spectral"

	"github.com/cwbudde/algo-physio/dsp/signal"
)

// defaultSegment is the Welch segment length used when NFFT is 0.
const defaultSegment = 256

// Welch estimates the spectrum by averaging windowed periodograms of
// half-overlapping segments. NFFT is the segment length; 0 selects 256
// samples. The segment is clipped to the signal length and rounded down to
// an even count.
type Welch struct {
	NFFT       int
	Window     Window
	RemoveMean bool
}

// SegmentLength returns the segment length used for a signal of n samples.
func (w Welch) SegmentLength(n int) int {
	seg := w.NFFT
	if seg == 0 {
		seg = defaultSegment
	}

	seg = min(seg, n)
	seg -= seg % 2

	return max(seg, 2)
}

// Estimate implements Estimator.
func (w Welch) Estimate(s *signal.Evenly) (Spectrum, error) {
	if w.NFFT < 0 {
		return Spectrum{}, fmt.Errorf("%w: nfft %d", ErrInvalidConfig, w.NFFT)
	}

	wf, err := w.Window.Func()
	if err != nil {
		return Spectrum{}, err
	}

	x, err := prepare(s, w.RemoveMean, 2)
	if err != nil {
		return Spectrum{}, err
	}

	seg := w.SegmentLength(len(x))
	pxx, freqs := spectral.Pwelch(x, s.SampleRate, &spectral.PwelchOptions{
		NFFT:     seg,
		Noverlap: seg / 2,
		Window:   wf,
		Pad:      seg,
	})

	return Spectrum{Freqs: freqs, Power: pxx}, nil
}
