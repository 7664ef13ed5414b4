package pass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-physio/dsp/filter/biquad"
)

// MaxOrder bounds the prototype order Design will build.
const MaxOrder = 40

// ErrUnsatisfiable is returned when no stable, finite filter of the
// requested family meets the specification.
var ErrUnsatisfiable = errors.New("pass: filter specification cannot be met")

// Family names an analog prototype family.
type Family string

// Supported prototype families.
const (
	Butterworth Family = "butter"
	Chebyshev1  Family = "cheby1"
	Chebyshev2  Family = "cheby2"
	Elliptic    Family = "ellip"
	Bessel      Family = "bessel"
)

// Families lists every supported family in a stable order.
func Families() []Family {
	return []Family{Butterworth, Chebyshev1, Chebyshev2, Elliptic, Bessel}
}

// BandType is the response shape inferred from the band edges.
type BandType int

// Band types.
const (
	Lowpass BandType = iota
	Highpass
	Bandpass
	Bandstop
)

func (b BandType) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("BandType(%d)", int(b))
	}
}

// Spec describes a filter by its band edges and tolerances. Edges are
// normalized so that 1 is the Nyquist frequency. Passband and Stopband each
// hold one edge (lowpass/highpass) or two ascending edges (bandpass/bandstop).
type Spec struct {
	Passband      []float64
	Stopband      []float64
	LossDB        float64 // maximum passband loss
	AttenuationDB float64 // minimum stopband attenuation
	Family        Family
}

// Classify infers the band type from the relative placement of the edges.
//
//	one edge:  wp < ws lowpass, wp > ws highpass
//	two edges: ws0 < wp0 < wp1 < ws1 bandpass, wp0 < ws0 < ws1 < wp1 bandstop
func (s Spec) Classify() (BandType, error) {
	wp, ws := s.Passband, s.Stopband
	if len(wp) != len(ws) || len(wp) < 1 || len(wp) > 2 {
		return 0, fmt.Errorf("%w: need 1 or 2 edges per band, got %d and %d", ErrUnsatisfiable, len(wp), len(ws))
	}

	for _, e := range append(append([]float64(nil), wp...), ws...) {
		if !(e > 0 && e < 1) {
			return 0, fmt.Errorf("%w: edge %g outside (0, Nyquist)", ErrUnsatisfiable, e)
		}
	}

	if len(wp) == 1 {
		switch {
		case wp[0] < ws[0]:
			return Lowpass, nil
		case wp[0] > ws[0]:
			return Highpass, nil
		default:
			return 0, fmt.Errorf("%w: passband and stopband edges coincide", ErrUnsatisfiable)
		}
	}

	switch {
	case ws[0] < wp[0] && wp[0] < wp[1] && wp[1] < ws[1]:
		return Bandpass, nil
	case wp[0] < ws[0] && ws[0] < ws[1] && ws[1] < wp[1]:
		return Bandstop, nil
	default:
		return 0, fmt.Errorf("%w: edges %v / %v are neither nested bandpass nor bandstop", ErrUnsatisfiable, wp, ws)
	}
}

// plan is a validated specification with prewarped analog edges.
type plan struct {
	band   BandType
	passb  []float64
	stopb  []float64
	nat    float64
	lossDB float64
	attDB  float64
	family Family
}

func newPlan(s Spec) (plan, error) {
	band, err := s.Classify()
	if err != nil {
		return plan{}, err
	}

	if !(s.LossDB > 0) || !(s.AttenuationDB > s.LossDB) || math.IsInf(s.AttenuationDB, 0) {
		return plan{}, fmt.Errorf("%w: need 0 < loss (%g dB) < attenuation (%g dB)", ErrUnsatisfiable, s.LossDB, s.AttenuationDB)
	}

	p := plan{
		band:   band,
		passb:  warp(s.Passband),
		stopb:  warp(s.Stopband),
		lossDB: s.LossDB,
		attDB:  s.AttenuationDB,
		family: s.Family,
	}
	p.nat = p.naturalRatio()

	if !(p.nat > 1) || math.IsInf(p.nat, 0) {
		return plan{}, fmt.Errorf("%w: transition ratio %g", ErrUnsatisfiable, p.nat)
	}

	return p, nil
}

func warp(edges []float64) []float64 {
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = math.Tan(math.Pi * e / 2)
	}

	return out
}

// naturalRatio is the stopband edge of the equivalent lowpass prototype
// whose passband edge is 1 rad/s.
func (p plan) naturalRatio() float64 {
	switch p.band {
	case Lowpass:
		return p.stopb[0] / p.passb[0]
	case Highpass:
		return p.passb[0] / p.stopb[0]
	case Bandpass:
		p0, p1 := p.passb[0], p.passb[1]
		nat := math.Inf(1)
		for _, s := range p.stopb {
			nat = math.Min(nat, math.Abs((s*s-p0*p1)/(s*(p0-p1))))
		}
		return nat
	default:
		p0, p1 := p.passb[0], p.passb[1]
		nat := math.Inf(1)
		for _, s := range p.stopb {
			nat = math.Min(nat, math.Abs(s*(p0-p1)/(s*s-p0*p1)))
		}
		return nat
	}
}

// transform maps the prototype onto the warped passband edges.
func (p plan) transform(f zpk) (zpk, bool) {
	switch p.band {
	case Lowpass:
		return f.scale(p.passb[0]), true
	case Highpass:
		return f.toHighpass(p.passb[0])
	case Bandpass:
		return f.toBandpass(math.Sqrt(p.passb[0]*p.passb[1]), p.passb[1]-p.passb[0])
	default:
		return f.toBandstop(math.Sqrt(p.passb[0]*p.passb[1]), p.passb[1]-p.passb[0])
	}
}

// MinimumOrder returns the lowest prototype order that meets s.
func MinimumOrder(s Spec) (int, error) {
	p, err := newPlan(s)
	if err != nil {
		return 0, err
	}

	order := minimumOrder(p.family, p.lossDB, p.attDB, p.nat)
	if order == 0 {
		return 0, fmt.Errorf("%w: no %s filter up to the order limit", ErrUnsatisfiable, p.family)
	}

	return order, nil
}

// Design builds the minimum-order digital filter that meets s and returns
// it as a cascade of second-order sections. The analog prototype is placed
// with its loss exactly at the passband edges, transformed to the requested
// band shape and mapped to the z-plane with the bilinear transform.
func Design(s Spec) ([]biquad.Coefficients, error) {
	p, err := newPlan(s)
	if err != nil {
		return nil, err
	}

	order := minimumOrder(p.family, p.lossDB, p.attDB, p.nat)
	if order == 0 {
		return nil, fmt.Errorf("%w: no %s filter up to the order limit", ErrUnsatisfiable, p.family)
	}

	proto, ok := prototype(p.family, order, p.lossDB, p.attDB, p.nat)
	if !ok {
		return nil, fmt.Errorf("%w: %s prototype of order %d", ErrUnsatisfiable, p.family, order)
	}

	analog, ok := p.transform(proto)
	if !ok {
		return nil, fmt.Errorf("%w: %s transform of %s order %d", ErrUnsatisfiable, p.band, p.family, order)
	}

	digital, ok := analog.bilinear()
	if !ok {
		return nil, fmt.Errorf("%w: bilinear transform of %s order %d", ErrUnsatisfiable, p.family, order)
	}

	sections := digital.sections()
	for i, c := range sections {
		if !c.IsFinite() || !stable(c) {
			return nil, fmt.Errorf("%w: section %d of %s order %d is not finite and stable", ErrUnsatisfiable, i, p.family, order)
		}
	}

	return sections, nil
}

// stable reports whether both poles of c lie strictly inside the unit circle.
func stable(c biquad.Coefficients) bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}
