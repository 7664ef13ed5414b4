package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-physio/dsp/filter/biquad"
)

// rootTol is the imaginary-part magnitude below which a root counts as real.
const rootTol = 1e-9

// zpk is a transfer function in zero-pole-gain form:
//
//	H(s) = k * prod(s - z[i]) / prod(s - p[i])
type zpk struct {
	z, p []complex128
	k    float64
}

func (f zpk) degree() int { return len(f.p) - len(f.z) }

func (f zpk) finite() bool {
	return f.k != 0 && !math.IsNaN(f.k) && !math.IsInf(f.k, 0)
}

// scale substitutes s -> s/wo, moving the prototype edge from 1 to wo.
func (f zpk) scale(wo float64) zpk {
	out := zpk{
		z: make([]complex128, len(f.z)),
		p: make([]complex128, len(f.p)),
		k: f.k * math.Pow(wo, float64(f.degree())),
	}
	for i, r := range f.z {
		out.z[i] = r * complex(wo, 0)
	}
	for i, r := range f.p {
		out.p[i] = r * complex(wo, 0)
	}

	return out
}

// toHighpass substitutes s -> wo/s.
func (f zpk) toHighpass(wo float64) (zpk, bool) {
	if f.degree() < 0 {
		return zpk{}, false
	}

	w := complex(wo, 0)
	out := zpk{z: make([]complex128, 0, len(f.p)), p: make([]complex128, 0, len(f.p))}
	for _, r := range f.z {
		if r == 0 {
			return zpk{}, false
		}
		out.z = append(out.z, w/r)
	}
	for range f.degree() {
		out.z = append(out.z, 0)
	}
	for _, r := range f.p {
		if r == 0 {
			return zpk{}, false
		}
		out.p = append(out.p, w/r)
	}

	out.k = f.k * real(negProduct(f.z)/negProduct(f.p))

	return out, out.finite()
}

// toBandpass substitutes s -> (s^2 + wo^2) / (s*bw).
func (f zpk) toBandpass(wo, bw float64) (zpk, bool) {
	if f.degree() < 0 {
		return zpk{}, false
	}

	half := complex(bw/2, 0)
	out := zpk{
		z: splitRoots(f.z, half, wo, false),
		p: splitRoots(f.p, half, wo, false),
		k: f.k * math.Pow(bw, float64(f.degree())),
	}
	for range f.degree() {
		out.z = append(out.z, 0)
	}

	return out, out.finite()
}

// toBandstop substitutes s -> (s*bw) / (s^2 + wo^2).
func (f zpk) toBandstop(wo, bw float64) (zpk, bool) {
	if f.degree() < 0 {
		return zpk{}, false
	}
	for _, r := range f.z {
		if r == 0 {
			return zpk{}, false
		}
	}
	for _, r := range f.p {
		if r == 0 {
			return zpk{}, false
		}
	}

	half := complex(bw/2, 0)
	out := zpk{
		z: splitRoots(f.z, half, wo, true),
		p: splitRoots(f.p, half, wo, true),
		k: f.k * real(negProduct(f.z)/negProduct(f.p)),
	}
	for range f.degree() {
		out.z = append(out.z, complex(0, wo), complex(0, -wo))
	}

	return out, out.finite()
}

// splitRoots maps each root r to the pair c ± sqrt(c^2 - wo^2) where
// c = r*half, or c = half/r when inverted.
func splitRoots(roots []complex128, half complex128, wo float64, inverted bool) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	w2 := complex(wo*wo, 0)
	for _, r := range roots {
		c := r * half
		if inverted {
			c = half / r
		}
		d := cmplx.Sqrt(c*c - w2)
		out = append(out, c+d, c-d)
	}

	return out
}

// bilinear maps the analog filter to the z-plane with s = (z-1)/(z+1).
// Analog edges must already be prewarped with tan(pi*w/2).
func (f zpk) bilinear() (zpk, bool) {
	if f.degree() < 0 {
		return zpk{}, false
	}

	out := zpk{z: make([]complex128, 0, len(f.p)), p: make([]complex128, 0, len(f.p))}
	num, den := complex(1, 0), complex(1, 0)
	for _, r := range f.z {
		if r == 1 {
			return zpk{}, false
		}
		out.z = append(out.z, (1+r)/(1-r))
		num *= 1 - r
	}
	for range f.degree() {
		out.z = append(out.z, -1)
	}
	for _, r := range f.p {
		if r == 1 {
			return zpk{}, false
		}
		out.p = append(out.p, (1+r)/(1-r))
		den *= 1 - r
	}

	out.k = f.k * real(num/den)

	return out, out.finite()
}

// sections groups digital roots into second-order sections. Conjugate pole
// pairs are ordered by decreasing imaginary part and matched to conjugate
// zero pairs first. The overall gain lands on the first section.
func (f zpk) sections() []biquad.Coefficients {
	if len(f.p) == 0 {
		return nil
	}

	pGroups := groupRoots(f.p)
	sort.SliceStable(pGroups, func(i, j int) bool {
		if len(pGroups[i]) != len(pGroups[j]) {
			return len(pGroups[i]) > len(pGroups[j])
		}
		return maxImag(pGroups[i]) > maxImag(pGroups[j])
	})

	var pairs, singles [][]complex128
	for _, g := range groupRoots(f.z) {
		if len(g) == 2 {
			pairs = append(pairs, g)
		} else {
			singles = append(singles, g)
		}
	}

	take := func(first, second *[][]complex128) []complex128 {
		for _, q := range []*[][]complex128{first, second} {
			if len(*q) > 0 {
				g := (*q)[0]
				*q = (*q)[1:]
				return g
			}
		}
		return nil
	}

	out := make([]biquad.Coefficients, 0, len(pGroups))
	for _, pg := range pGroups {
		var zg []complex128
		if len(pg) == 2 {
			zg = take(&pairs, &singles)
		} else {
			zg = take(&singles, &pairs)
		}

		b1, b2 := quadFromRoots(zg)
		a1, a2 := quadFromRoots(pg)
		out = append(out, biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2})
	}

	out[0].B0 *= f.k
	out[0].B1 *= f.k
	out[0].B2 *= f.k

	return out
}

// groupRoots pairs each complex root with its closest conjugate and pairs
// the remaining real roots in ascending order. An odd real root is left
// alone in the last group.
func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}
		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)
	reals := make([]complex128, 0, len(sorted))

	for i, r := range sorted {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) <= rootTol {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best, bestDist := -1, math.MaxFloat64
		for j, rr := range sorted {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(rr - target); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best != -1 && bestDist <= 1e-4*math.Max(1, cmplx.Abs(r)) {
			used[best] = true
			groups = append(groups, []complex128{r, sorted[best]})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })
	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}
	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups
}

func maxImag(g []complex128) float64 {
	m := 0.0
	for _, r := range g {
		m = math.Max(m, math.Abs(imag(r)))
	}
	return m
}

// quadFromRoots returns a1, a2 of (1 - r1 z^-1)(1 - r2 z^-1).
func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}

func negProduct(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}
	return out
}
