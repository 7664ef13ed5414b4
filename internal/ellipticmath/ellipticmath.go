// Package ellipticmath evaluates complete elliptic integrals and Jacobi
// elliptic functions through descending Landen transformations.
//
// All functions take the modulus k (not the parameter m = k^2).
package ellipticmath

import (
	"math"
	"math/cmplx"
)

// smallModulus is the threshold below which the asymptotic series replaces
// the Landen product for K'.
const smallModulus = 1e-6

// Landen returns the descending Landen moduli of k until they fall below tol.
// k = 0 and k = 1 are fixed points and return a single-element sequence.
func Landen(k, tol float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var seq []float64
	for k > tol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		seq = append(seq, k)
	}

	return seq
}

// LandenK evaluates K from a Landen sequence: (pi/2) * prod(1 + v[i]).
func LandenK(seq []float64) float64 {
	prod := 1.0
	for _, v := range seq {
		prod *= 1 + v
	}

	return prod * math.Pi / 2
}

// EllipK returns the complete elliptic integral of the first kind K(k)
// and its complement K'(k) = K(sqrt(1-k^2)).
func EllipK(k, tol float64) (float64, float64) {
	kmax := math.Sqrt(1 - smallModulus*smallModulus)

	var K, Kp float64

	switch {
	case k == 1:
		K = math.Inf(1)
	case k > kmax:
		kp := math.Sqrt((1 - k) * (1 + k))
		l := -math.Log(kp / 4)
		K = l + (l-1)*kp*kp/4
	default:
		K = LandenK(Landen(k, tol))
	}

	switch {
	case k == 0:
		Kp = math.Inf(1)
	case k < smallModulus:
		l := -math.Log(k / 4)
		Kp = l + (l-1)*k*k/4
	default:
		Kp = LandenK(Landen(math.Sqrt((1-k)*(1+k)), tol))
	}

	return K, Kp
}

// CD evaluates the Jacobi cd function at u expressed in units of K,
// so CD(0) = 1 and CD(1) = 0.
func CD(u complex128, k, tol float64) complex128 {
	seq := Landen(k, tol)
	w := cmplx.Cos(u * math.Pi / 2)
	for i := len(seq) - 1; i >= 0; i-- {
		v := complex(seq[i], 0)
		w = (1 + v) * w / (1 + v*w*w)
	}

	return w
}

// SN evaluates the Jacobi sn function at real u expressed in units of K,
// so SN(0) = 0 and SN(1) = 1.
func SN(u, k, tol float64) float64 {
	seq := Landen(k, tol)
	w := math.Sin(u * math.Pi / 2)
	for i := len(seq) - 1; i >= 0; i-- {
		w = (1 + seq[i]) * w / (1 + seq[i]*w*w)
	}

	return w
}
