// Package frequency reduces a band of a power spectrum to summary values.
// The band indicators are built on it.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds statistics of a one-sided power spectrum band.
type Stats struct {
	Bins      int
	Power     float64 // sum of the bin powers
	PeakBin   int     // -1 for an empty band
	PeakFreq  float64 // NaN for an empty band
	PeakPower float64
	Centroid  float64 // power-weighted mean frequency; NaN without power
}

// Calculate summarizes the bins freqs/power, which must be equally long.
// Ties for the peak go to the lowest frequency.
func Calculate(freqs, power []float64) Stats {
	if len(power) == 0 {
		return Stats{PeakBin: -1, PeakFreq: math.NaN(), Centroid: math.NaN()}
	}

	total := floats.Sum(power)
	peak := floats.MaxIdx(power)

	centroid := math.NaN()
	if total > 0 {
		centroid = floats.Dot(freqs, power) / total
	}

	return Stats{
		Bins:      len(power),
		Power:     total,
		PeakBin:   peak,
		PeakFreq:  freqs[peak],
		PeakPower: power[peak],
		Centroid:  centroid,
	}
}
