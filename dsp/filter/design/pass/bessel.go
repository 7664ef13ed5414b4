package pass

import (
	"math"
	"math/cmplx"
)

// besselPoles returns all poles of the -3 dB normalized Bessel prototype,
// conjugates included.
func besselPoles(order int) []complex128 {
	delay := besselDelayPoles[order]
	scale := complex(besselScaleFactors[order], 0)

	out := make([]complex128, 0, order)
	for _, p := range delay {
		out = append(out, p/scale)
		if imag(p) != 0 {
			out = append(out, cmplx.Conj(p)/scale)
		}
	}

	return out
}

// besselAttenuationDB returns the loss in dB of the unit-DC-gain all-pole
// prototype at angular frequency w.
func besselAttenuationDB(poles []complex128, w float64) float64 {
	g := 1.0
	for _, p := range poles {
		g *= cmplx.Abs(p) / cmplx.Abs(complex(0, w)-p)
	}

	return -20 * math.Log10(g)
}

// besselEdge finds the frequency at which the prototype reaches targetDB of
// attenuation. The magnitude of a Bessel filter is monotonic, so bisection
// on a bracket grown by doubling converges.
func besselEdge(poles []complex128, targetDB float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 64 && besselAttenuationDB(poles, hi) < targetDB; i++ {
		lo, hi = hi, 2*hi
	}

	for range 100 {
		mid := 0.5 * (lo + hi)
		if besselAttenuationDB(poles, mid) < targetDB {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}

// besselOrder returns the smallest tabulated order whose transition from
// lossDB to attDB fits inside the ratio nat, or 0 when none does.
func besselOrder(lossDB, attDB, nat float64) int {
	for order := 1; order <= maxBesselOrder; order++ {
		poles := besselPoles(order)
		if besselEdge(poles, attDB)/besselEdge(poles, lossDB) <= nat {
			return order
		}
	}

	return 0
}

// besselPrototype returns the Bessel lowpass rescaled so that lossDB of
// attenuation falls exactly at 1 rad/s.
func besselPrototype(order int, lossDB float64) (zpk, bool) {
	if order < 1 || order > maxBesselOrder {
		return zpk{}, false
	}

	poles := besselPoles(order)
	wp := besselEdge(poles, lossDB)
	if !(wp > 0) {
		return zpk{}, false
	}

	f := zpk{p: poles, k: real(negProduct(poles))}

	return f.scale(1 / wp), true
}

const maxBesselOrder = 10

// besselDelayPoles contains delay-normalized Bessel filter poles for orders 1–10.
// Only the unique pole from each conjugate pair (positive imaginary part) is stored.
// For odd orders, the real pole (zero imaginary part) is listed last.
//
// Source: C.R. Bond, "Bessel Filter Constants", crbond.com/papers/bsf.pdf.
var besselDelayPoles = [maxBesselOrder + 1][]complex128{
	// order 0: unused
	{},
	// order 1
	{complex(-1.0, 0)},
	// order 2
	{complex(-1.5, 0.8660254038)},
	// order 3
	{complex(-1.8389073227, 1.7543809598), complex(-2.3221853546, 0)},
	// order 4
	{complex(-2.1037893972, 2.6574180419), complex(-2.8962106028, 0.8672341289)},
	// order 5
	{
		complex(-2.3246743032, 3.5710229203),
		complex(-3.3519563992, 1.7426614162),
		complex(-3.6467385953, 0),
	},
	// order 6
	{
		complex(-2.5159322478, 4.4926729537),
		complex(-3.7357083563, 2.6262723114),
		complex(-4.2483593959, 0.8675096732),
	},
	// order 7
	{
		complex(-2.6856768789, 5.4206941307),
		complex(-4.0701391636, 3.5171740477),
		complex(-4.7582905282, 1.7392860613),
		complex(-4.9717868585, 0),
	},
	// order 8
	{
		complex(-2.8389839177, 6.3539112470),
		complex(-4.3682892668, 4.4144425006),
		complex(-5.2048407906, 2.6161751538),
		complex(-5.5878860022, 0.8676144454),
	},
	// order 9
	{
		complex(-2.9792607983, 7.2914651564),
		complex(-4.6384398714, 5.3172716754),
		complex(-5.6044218195, 3.4981415816),
		complex(-6.1293679040, 1.7378483835),
		complex(-6.2970079817, 0),
	},
	// order 10
	{
		complex(-3.1088931555, 8.2324678728),
		complex(-4.8862195924, 6.2249854825),
		complex(-5.9675283089, 4.3849471924),
		complex(-6.6152909655, 2.6115679208),
		complex(-6.9220449048, 0.8676594792),
	},
}

// besselScaleFactors contains the frequency scaling factors to convert from
// delay-normalized to -3 dB normalized Bessel filters.
//
// Source: C.R. Bond, "Bessel Filter Constants", crbond.com/papers/bsf.pdf.
var besselScaleFactors = [maxBesselOrder + 1]float64{
	0, // order 0: unused
	1.0,
	1.36165412871613,
	1.75567236868121,
	2.11391767490422,
	2.42741070215263,
	2.70339506120292,
	2.95172214703872,
	3.17961723751065,
	3.39169313891166,
	3.59098059456916,
}
