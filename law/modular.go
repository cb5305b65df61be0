// SPDX-License-Identifier: MIT

package law

import "math/bits"

// ModInverse returns x with a·x ≡ 1 (mod m) and 0 ≤ x < m, or ok=false when
// gcd(a, m) ≠ 1 or m ≤ 0. Negative a is reduced into [0, m) first.
//
// Extended Euclid; O(log m).
func ModInverse(a, m int) (x int, ok bool) {
	if m <= 0 {
		return 0, false
	}
	if m == 1 {
		return 0, true
	}
	a %= m
	if a < 0 {
		a += m
	}
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	oldS %= m
	if oldS < 0 {
		oldS += m
	}
	return oldS, true
}

// MulMod returns a·b mod m for 0 ≤ a, b < m without intermediate overflow.
func MulMod(a, b, m int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int(bits.Rem64(hi, lo, uint64(m)))
}

// Mod returns a mod m in [0, m) for m > 0.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// PairsMod256 returns k·(k-1)/2 mod 256 for k ≥ 0. The halving is done on
// whichever factor is even, so the exact triangular number is reduced without
// ever being formed.
func PairsMod256(k int) byte {
	if k <= 1 {
		return 0
	}
	if k%2 == 0 {
		return byte(k/2) * byte(k-1)
	}
	return byte(k) * byte((k-1)/2)
}
