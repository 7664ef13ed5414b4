// Package filter implements the physio filters: named, parameterized
// operations that map a signal to a new signal of the same nature.
//
// Every filter is built from a parameter mapping that is resolved once, at
// construction, against the filter's descriptor table:
//
//	f, err := filter.New(filter.NameNormalize, param.Values{"norm_method": "maxmin"})
//	res, err := f.Apply(sig)
//
// Apply has three outcomes. A nil error with Status Applied carries the
// filtered signal. A nil error with Status PassThrough carries the input
// unchanged together with the Reason; this degraded mode is used when a
// well-formed configuration turns out to be unusable for the signal at hand
// (an IIR specification no filter can meet, a custom IRF that was never
// supplied) and is also reported to the configured diag.Logger. A non-nil
// error is fatal for the call.
//
// Typed configuration structs (NormalizeConfig, IIRConfig, ...) render
// themselves to parameter mappings, so the descriptor tables remain the single
// source of validation and documentation.
package filter
