package pass

import (
	"math"
	"math/cmplx"
)

// butterworthPrototype returns the order-N Butterworth lowpass whose
// attenuation at 1 rad/s is exactly lossDB.
func butterworthPrototype(order int, lossDB float64) (zpk, bool) {
	if order < 1 {
		return zpk{}, false
	}

	p := make([]complex128, order)
	for i := range order {
		m := float64(2*i - order + 1)
		p[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	w0 := math.Pow(dbToMinusOne(lossDB), -1/float64(2*order))
	f := zpk{p: p, k: 1}.scale(w0)

	return f, f.finite()
}

// chebyshev1Prototype returns the order-N type I Chebyshev lowpass with
// lossDB of equiripple in the passband edge at 1 rad/s.
func chebyshev1Prototype(order int, lossDB float64) (zpk, bool) {
	if order < 1 {
		return zpk{}, false
	}

	eps := math.Sqrt(dbToMinusOne(lossDB))
	mu := math.Asinh(1/eps) / float64(order)

	p := make([]complex128, order)
	for i := range order {
		theta := math.Pi * float64(2*i-order+1) / float64(2*order)
		p[i] = -cmplx.Sinh(complex(mu, theta))
	}

	k := real(negProduct(p))
	if order%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}

	f := zpk{p: p, k: k}

	return f, f.finite()
}

// chebyshev2Prototype returns the order-N type II Chebyshev lowpass with
// attDB of equiripple stopband starting at stopEdge rad/s.
func chebyshev2Prototype(order int, attDB, stopEdge float64) (zpk, bool) {
	if order < 1 || !(stopEdge > 0) {
		return zpk{}, false
	}

	de := 1 / math.Sqrt(dbToMinusOne(attDB))
	mu := math.Asinh(1/de) / float64(order)

	z := make([]complex128, 0, order)
	p := make([]complex128, 0, order)
	for i := range order {
		m := 2*i - order + 1
		if m != 0 {
			z = append(z, complex(0, 1/math.Sin(float64(m)*math.Pi/float64(2*order))))
		}

		q := -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*order)))
		q = complex(math.Sinh(mu)*real(q), math.Cosh(mu)*imag(q))
		p = append(p, 1/q)
	}

	f := zpk{z: z, p: p, k: real(negProduct(p) / negProduct(z))}
	if !f.finite() {
		return zpk{}, false
	}

	f = f.scale(stopEdge)

	return f, f.finite()
}
