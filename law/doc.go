// SPDX-License-Identifier: MIT

// Package law defines the generative law algebra: a closed set of immutable,
// parametric descriptions of byte sequences.
//
// A Law never stores the sequence it describes. It carries a handful of
// parameters and a declared extent n, and every byte S[i], 0 ≤ i < n, is a
// pure function of those parameters and i (see package project).
//
// Variants:
//
//	Constant               S[i] = c
//	Affine                 S[i] = s0 + i·δ                     (mod 256)
//	Periodic               S[i] = pattern[i mod p]
//	InstantDeduction       S[i] = s0 + r0·min(i, n-1-i) + ds·i + dr·i²  (mod 256)
//	XorSymmetric           S[i] = half[i], or half[n-1-i] ⊕ mask past ⌈n/2⌉
//	Mirror                 S[i] = half[i], or half[n-1-i] past ⌈n/2⌉
//	BlockRecurrence        S[i] = sub[i mod m]
//	RadialRecurrence       S[i] = radial[|i-center|]
//	SelfAffinePermutation  S[j] = base[α⁻¹·(j-β) mod n]
//	ReactiveDifferential   S[i] = s0 + Σ_{t<i} Δ(t)               (mod 256)
//	Split                  S = seg0 ‖ seg1 ‖ … ‖ segk
//	Radial                 S[i] = ring_r(local(i)), r = |i-center|
//	Wrapper                XorConst, AddConst, Growth, MetaEmbed, CorrelativeStride
//
// Construction is the only place invariants are checked. Every NewX
// constructor validates extents, coverage of child laws and invertibility,
// and returns an error wrapping ErrMalformedLaw on violation. A value that
// made it out of a constructor is total over [0, n) and never changes again,
// so a single tree may be shared by any number of goroutines.
//
// The set of variants is closed: Law has an unexported method, and consumers
// dispatch with an exhaustive type switch.
package law
