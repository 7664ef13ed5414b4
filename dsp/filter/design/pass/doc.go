// Package pass designs IIR filters from band-edge specifications.
//
// [Design] takes passband and stopband edges normalized to Nyquist together
// with the allowed passband loss and required stopband attenuation, infers
// lowpass, highpass, bandpass or bandstop from the edge placement, picks the
// minimum order of the requested [Family] and returns a cascade of
// [biquad.Coefficients] ready for [biquad.FiltFilt].
//
// Supported families are Butterworth, Chebyshev type I and II, elliptic
// (Cauer) and Bessel. Bessel prototypes are tabulated up to order 10.
package pass
