// Package core holds small numeric and buffer helpers shared by the dsp
// packages.
package core

// NextPowerOf2 returns the smallest power of two >= n, and 1 for n <= 1.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
