// SPDX-License-Identifier: MIT

// Package lawdesc reads and writes textual law descriptions, the form in
// which a recognizer hands laws to this library.
//
// A description is a YAML tree of nodes. Every node names its family and
// extent; the remaining keys depend on the family:
//
//	constant               c
//	affine                 s0, delta
//	periodic               pattern
//	instant_deduction      s0, r0, ds, dr
//	xor_symmetric          half, mask
//	mirror                 half
//	block_recurrence       m, sub
//	correlative_stride     m, sub
//	radial_recurrence      center, radial
//	self_affine            alpha, beta, base
//	reactive_differential  s0, delta_law (optional)
//	split, meta_embed      segments
//	radial                 center, completion, meta | rings
//	xor_const, add_const   inner, k
//	growth                 inner
//
// Example:
//
//	family: split
//	n: 5
//	segments:
//	  - {family: constant, n: 3, c: 9}
//	  - {family: affine, n: 2, s0: 0, delta: 1}
//
// Decoding builds the law through the law constructors, so a description is
// accepted only if it yields a well-formed law. Unknown keys are rejected.
// Encode is the inverse: Decode(Encode(l)) is law.Equal to l.
package lawdesc
