package pass

import (
	"math"

	"github.com/cwbudde/algo-physio/internal/ellipticmath"
)

// minimumOrder returns the smallest order of family that keeps the
// passband loss at most lossDB and the stopband attenuation at least attDB
// once the prototype's stopband edge sits at nat rad/s. It returns 0 when
// no order exists.
func minimumOrder(family Family, lossDB, attDB, nat float64) int {
	gpass := dbToMinusOne(lossDB)
	gstop := dbToMinusOne(attDB)

	var order float64

	switch family {
	case Butterworth:
		order = math.Ceil(math.Log10(gstop/gpass) / (2 * math.Log10(nat)))
	case Chebyshev1, Chebyshev2:
		order = math.Ceil(math.Acosh(math.Sqrt(gstop/gpass)) / math.Acosh(nat))
	case Elliptic:
		k0, k0p := ellipticmath.EllipK(1/nat, ellipticTol)
		k1, k1p := ellipticmath.EllipK(math.Sqrt(gpass/gstop), ellipticTol)
		order = math.Ceil(k0 * k1p / (k0p * k1))
	case Bessel:
		return besselOrder(lossDB, attDB, nat)
	default:
		return 0
	}

	if math.IsNaN(order) || math.IsInf(order, 0) || order > MaxOrder {
		return 0
	}

	return max(int(order), 1)
}

// prototype returns the analog lowpass of the given family and order with
// its passband edge at 1 rad/s.
func prototype(family Family, order int, lossDB, attDB, nat float64) (zpk, bool) {
	switch family {
	case Butterworth:
		return butterworthPrototype(order, lossDB)
	case Chebyshev1:
		return chebyshev1Prototype(order, lossDB)
	case Chebyshev2:
		return chebyshev2Prototype(order, attDB, nat)
	case Elliptic:
		return ellipticPrototype(order, lossDB, attDB)
	case Bessel:
		return besselPrototype(order, lossDB)
	default:
		return zpk{}, false
	}
}
