// Package time computes summary statistics of a sampled signal in the time
// domain. Normalize and the time-domain indicators are built on it.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length int
	Mean   float64
	StDev  float64 // population standard deviation
	Min    float64
	MinPos int
	Max    float64
	MaxPos int
	Range  float64 // max - min
	RMS    float64
}

// Calculate computes all statistics of signal. An empty signal yields a
// zero Length and NaN for every value.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		nan := math.NaN()
		return Stats{Mean: nan, StDev: nan, Min: nan, Max: nan, Range: nan, RMS: nan, MinPos: -1, MaxPos: -1}
	}

	mean, std := stat.PopMeanStdDev(signal, nil)
	minPos, maxPos := floats.MinIdx(signal), floats.MaxIdx(signal)

	return Stats{
		Length: len(signal),
		Mean:   mean,
		StDev:  std,
		Min:    signal[minPos],
		MinPos: minPos,
		Max:    signal[maxPos],
		MaxPos: maxPos,
		Range:  signal[maxPos] - signal[minPos],
		RMS:    RMS(signal),
	}
}

// RMS returns the root mean square of signal, or 0 when it is empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return floats.Norm(signal, 2) / math.Sqrt(float64(len(signal)))
}

// Peak returns max(|min|, |max|).
func (s Stats) Peak() float64 {
	return math.Max(math.Abs(s.Min), math.Abs(s.Max))
}
