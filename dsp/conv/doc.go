// Package conv provides linear convolution and FFT deconvolution routines.
//
//   - Direct convolution: O(N*M) time-domain convolution for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//   - Deconvolution: exact-length spectral division with naive, regularized
//     and Wiener variants
//
// # Usage
//
//	full, err := conv.Convolve(signal, kernel)
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//	x, err := conv.Deconvolve(y, irf, conv.DeconvOptions{Method: conv.DeconvNaive})
//
// # Algorithm Selection
//
// The [Convolve] function selects the algorithm from the kernel size:
//   - Kernel length <= 64: Direct convolution
//   - Kernel length > 64: FFT-based overlap-add
package conv
