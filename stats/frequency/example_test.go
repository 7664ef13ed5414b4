package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-physio/stats/frequency"
)

func ExampleCalculate() {
	s := frequency.Calculate([]float64{0.1, 0.2, 0.3}, []float64{2, 5, 1})
	fmt.Printf("power=%.0f peak=%.1f Hz\n", s.Power, s.PeakFreq)

	// Output:
	// power=8 peak=0.2 Hz
}
