package indicator

import (
	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/physio/param"
	timestats "github.com/cwbudde/algo-physio/stats/time"
)

// statistic is a parameterless time-domain indicator.
type statistic struct {
	base
	pick func(timestats.Stats) float64
}

// Compute implements Indicator.
func (st *statistic) Compute(s *signal.Evenly) (Value, error) {
	if err := st.check(s); err != nil {
		return Value{}, err
	}
	return scalar(st.pick(timestats.Calculate(s.Values))), nil
}

var statistics = map[string]func(timestats.Stats) float64{
	NameMean:  func(s timestats.Stats) float64 { return s.Mean },
	NameStDev: func(s timestats.Stats) float64 { return s.StDev }, // population, as Normalize uses
	NameMin:   func(s timestats.Stats) float64 { return s.Min },
	NameMax:   func(s timestats.Stats) float64 { return s.Max },
	NameRange: func(s timestats.Stats) float64 { return s.Range },
}

func buildStatistic(name string, _ param.Values, _ options) (Indicator, error) {
	return &statistic{base: base{name: name, params: param.Values{}}, pick: statistics[name]}, nil
}

// NewStatistic returns the named time-domain indicator: Mean, StDev, Min,
// Max or Range.
func NewStatistic(name string) (Indicator, error) {
	return New(name, nil)
}
