package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic evenly sampled signals.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	g := &Generator{sampleRate: sampleRate, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Sine generates amplitude*sin(2*pi*f*t) + offset.
func (g *Generator) Sine(freqHz, amplitude, offset float64, samples int) (*Evenly, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude*math.Sin(step*float64(i)) + offset
	}
	return g.wrap(out), nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) (*Evenly, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g.wrap(out), nil
}

// Impulse generates a unit impulse at pos.
func (g *Generator) Impulse(pos, samples int) (*Evenly, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("%w: impulse position %d of %d", ErrIndexOutOfRange, pos, samples)
	}
	out := make([]float64, samples)
	out[pos] = 1
	return g.wrap(out), nil
}

// Bateman generates a skin-conductance-like response: the difference of two
// exponentials with decay and rise time constants (seconds) starting at onset.
func (g *Generator) Bateman(onset, tauDecay, tauRise float64, samples int) (*Evenly, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("bateman samples must be > 0: %d", samples)
	}
	if tauDecay <= 0 || tauRise <= 0 || tauDecay == tauRise {
		return nil, fmt.Errorf("bateman time constants must be > 0 and distinct: %v, %v", tauDecay, tauRise)
	}
	out := make([]float64, samples)
	for i := range out {
		t := float64(i)/g.sampleRate - onset
		if t < 0 {
			continue
		}
		out[i] = math.Exp(-t/tauDecay) - math.Exp(-t/tauRise)
	}
	return g.wrap(out), nil
}

func (g *Generator) wrap(values []float64) *Evenly {
	return &Evenly{Values: values, SampleRate: g.sampleRate}
}
