package indicator

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-physio/physio/param"
)

// Catalog names.
const (
	NameInBand      = "InBand"
	NamePowerInBand = "PowerInBand"
	NamePeakInBand  = "PeakInBand"
	NameMean        = "Mean"
	NameStDev       = "StDev"
	NameMin         = "Min"
	NameMax         = "Max"
	NameRange       = "Range"
)

type entry struct {
	params param.Set
	build  func(name string, resolved param.Values, o options) (Indicator, error)
}

var catalog = map[string]entry{
	NameInBand: {bandParams, func(name string, p param.Values, o options) (Indicator, error) {
		b, err := bandFromParams(name, p, o)
		if err != nil {
			return nil, err
		}
		return b, nil
	}},
	NamePowerInBand: {bandParams, func(name string, p param.Values, o options) (Indicator, error) {
		b, err := bandFromParams(name, p, o)
		if err != nil {
			return nil, err
		}
		return &PowerInBand{b}, nil
	}},
	NamePeakInBand: {bandParams, func(name string, p param.Values, o options) (Indicator, error) {
		b, err := bandFromParams(name, p, o)
		if err != nil {
			return nil, err
		}
		return &PeakInBand{b}, nil
	}},
	NameMean:  {param.Set{}, buildStatistic},
	NameStDev: {param.Set{}, buildStatistic},
	NameMin:   {param.Set{}, buildStatistic},
	NameMax:   {param.Set{}, buildStatistic},
	NameRange: {param.Set{}, buildStatistic},
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

// Descriptors returns a copy of the parameter table of the named indicator.
func Descriptors(name string) (param.Set, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	return e.params.Merge(), nil
}

// New resolves raw against the named indicator's parameters and returns the
// configured indicator.
func New(name string, raw param.Values, opts ...Option) (Indicator, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	resolved, err := param.Resolve(name, e.params, raw)
	if err != nil {
		return nil, err
	}
	return e.build(name, resolved, applyOptions(opts))
}
