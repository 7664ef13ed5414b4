// Package param implements the parameter contract shared by every physio
// algorithm.
//
// Each algorithm owns a [Set]: a fixed table of [Descriptor] values keyed by
// parameter name. A descriptor states which [Kind] of value it accepts, its
// [Level] (mandatory, recommended or optional), a default, an optional
// validity predicate and an optional activation predicate that makes the
// parameter conditional on its siblings.
//
// [Resolve] turns caller-supplied raw [Values] into a fully checked mapping:
//
//	resolved, err := param.Resolve("Normalize", set, param.Values{"norm_method": "maxmin"})
//
// Resolution is pure. It runs identically when called standalone for
// inspection and when an algorithm is constructed.
package param
