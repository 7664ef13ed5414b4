package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-physio/dsp/signal"
	"github.com/cwbudde/algo-physio/dsp/spectrum"
)

func ExampleWelch() {
	values := make([]float64, 2048)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * 0.25 * float64(i) / 4)
	}
	s := signal.MustNew(values, 4)

	est, err := spectrum.New(spectrum.Config{Method: spectrum.MethodWelch, NFFT: 512, Window: spectrum.Hann})
	if err != nil {
		fmt.Println(err)
		return
	}
	spec, err := est.Estimate(s)
	if err != nil {
		fmt.Println(err)
		return
	}

	band := spec.Band(0.2, 0.3)
	peak := 0
	for i := range band.Power {
		if band.Power[i] > band.Power[peak] {
			peak = i
		}
	}
	fmt.Printf("peak at %.2f Hz\n", band.Freqs[peak])
	// Output: peak at 0.25 Hz
}
