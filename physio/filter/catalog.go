package filter

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-physio/physio/param"
)

// Catalog names.
const (
	NameNormalize       = "Normalize"
	NameDiff            = "Diff"
	NameIIR             = "IIRFilter"
	NameMatched         = "MatchedFilter"
	NameConvolutional   = "ConvolutionalFilter"
	NameDeConvolutional = "DeConvolutionalFilter"
)

type entry struct {
	params param.Set
	build  func(resolved param.Values, o options) Filter
}

var catalog = map[string]entry{
	NameNormalize:       {normalizeParams, func(p param.Values, o options) Filter { return newNormalize(p, o) }},
	NameDiff:            {diffParams, func(p param.Values, o options) Filter { return newDiff(p, o) }},
	NameIIR:             {iirParams, func(p param.Values, o options) Filter { return newIIR(p, o) }},
	NameMatched:         {matchedParams, func(p param.Values, o options) Filter { return newMatched(p, o) }},
	NameConvolutional:   {convolutionalParams, func(p param.Values, o options) Filter { return newConvolutional(p, o) }},
	NameDeConvolutional: {deconvolutionalParams, func(p param.Values, o options) Filter { return newDeConvolutional(p, o) }},
}

// Names lists the catalog in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns a copy of the parameter table of the named filter.
func Descriptors(name string) (param.Set, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return e.params.Merge(), nil
}

// New resolves raw against the named filter's parameters and returns the
// configured filter. Resolution errors from package param are returned as is.
func New(name string, raw param.Values, opts ...Option) (Filter, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	resolved, err := param.Resolve(name, e.params, raw)
	if err != nil {
		return nil, err
	}
	return e.build(resolved, applyOptions(opts)), nil
}

// resolve is the typed-constructor path: it resolves raw for name and hands
// back the options alongside.
func resolve(name string, raw param.Values, opts []Option) (param.Values, options, error) {
	resolved, err := param.Resolve(name, catalog[name].params, raw)
	if err != nil {
		return nil, options{}, err
	}
	return resolved, applyOptions(opts), nil
}
