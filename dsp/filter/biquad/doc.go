// Package biquad provides second-order IIR section primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for higher-order designs produced by dsp/filter/design/pass.
//
// [FiltFilt] applies a cascade forward and backward over a finite signal so
// the result carries no phase delay.
package biquad
