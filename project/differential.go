// SPDX-License-Identifier: MIT

package project

import "github.com/katalvlaran/genlaw/law"

// deltaSum returns Σ_{t<i} Δ(t) mod 256 in closed form.
//
//	Constant c        i·c
//	Affine (a, b)     i·a + b·i(i-1)/2
//	Periodic (p)      ⌊i/p⌋·Σpattern + Σ_{t < i mod p} pattern[t]
//
// Every product is formed in byte arithmetic, which is exact mod 256; the
// triangular number is reduced without overflow by law.PairsMod256.
func deltaSum(l *law.ReactiveDifferential, i int) byte {
	switch d := l.DeltaLaw().(type) {
	case *law.Constant:
		return byte(i) * d.Value()
	case *law.Affine:
		return byte(i)*d.S0() + law.PairsMod256(i)*d.Delta()
	case *law.Periodic:
		p := d.Period()
		return byte(i/p)*l.DeltaPrefix(p) + l.DeltaPrefix(i%p)
	}
	return 0 // nil Δ
}
