// Package indicator implements the physio indicators: named, parameterized
// operations that reduce a signal to a scalar or to a small vector.
//
// The frequency-domain indicators (InBand, PowerInBand, PeakInBand) obtain a
// power spectrum from a spectrum.Estimator on every call and then work on the
// half-open band [freq_min, freq_max). The estimator is built from the
// spectral parameters (method, nfft, ar_order, window, remove_mean) unless one
// is injected with WithEstimator.
//
// The time-domain indicators (Mean, StDev, Min, Max, Range) take no
// parameters.
//
//	ind, err := indicator.New(indicator.NamePowerInBand, param.Values{
//		"freq_min": 0.04, "freq_max": 0.15, "method": "ar",
//	})
//	v, err := ind.Compute(rr)
package indicator
