package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-physio/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("mean=%.1f std=%.1f range=%.1f\n", s.Mean, s.StDev, s.Range)

	// Output:
	// mean=0.0 std=1.0 range=2.0
}
