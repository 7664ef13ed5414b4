package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-physio/dsp/core"
)

// minBlockSize is the smallest input segment used when the caller leaves
// the block size to OverlapAdd.
const minBlockSize = 256

// OverlapAdd convolves long signals with a fixed kernel in the frequency
// domain. The input is cut into blocks, each block is zero-padded to the FFT
// size, multiplied with the kernel spectrum and the overlapping tails of the
// block results are summed.
//
// An OverlapAdd holds only the kernel spectrum and the FFT plan, so Process
// may be called from several goroutines.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int
	plan      *algofft.Plan[complex128]
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// If blockSize is 0, the block size follows the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(core.NextPowerOf2(len(kernel)), minBlockSize)
	}

	fftSize := core.NextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return &OverlapAdd{
		kernelFFT: spectrum,
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
	}, nil
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(input)+oa.kernelLen-1)
	buf := make([]complex128, oa.fftSize)
	spec := make([]complex128, oa.fftSize)

	for start := 0; start < len(input); start += oa.blockSize {
		block := input[start:min(start+oa.blockSize, len(input))]

		clear(buf)
		for i, v := range block {
			buf[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(spec, buf); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range spec {
			spec[i] *= oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(buf, spec); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		tail := min(len(block)+oa.kernelLen-1, len(out)-start)
		for i := range tail {
			out[start+i] += real(buf[i])
		}
	}

	return out, nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}

	return oa.Process(signal)
}
