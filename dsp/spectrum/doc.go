// Package spectrum estimates one-sided power spectral densities of evenly
// sampled signals.
//
// Three [Estimator] backends are provided:
//
//   - [Periodogram]: a single windowed FFT, zero-padded to a power of two
//   - [Welch]: averaged overlapping periodograms
//   - [AR]: a Yule-Walker autoregressive model evaluated on a frequency grid
//
// All of them return a [Spectrum] whose frequencies ascend from DC to
// Nyquist and whose power is scaled as a density, so that summing Power
// times the bin width approximates the signal variance.
package spectrum
