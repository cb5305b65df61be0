// SPDX-License-Identifier: MIT

// Package project evaluates laws: it computes the byte at one index of the
// sequence a law.Law describes, without materializing anything else.
//
// Project is a structural recursion over the closed set of law variants.
// Leaves (Constant, Affine, Periodic) are O(1) arithmetic; index-remapping
// variants rewrite i and recurse once; Split locates the owning segment by
// binary search over cumulative extents; Radial selects a ring by radius
// |i-center| and reads it at a local index.
//
// Radial composition:
//
//   - Parametric rings (law.AffineGradient, law.AffineLinearDelta,
//     law.AffineQuadratic) are evaluated in closed form; law.LeftRight reads
//     one of two radius-indexed laws depending on the side of center.
//   - Discrete rings are looked up in the sorted ring list. A missing radius
//     is resolved by the law's completion policy:
//     AUTO            bracket-affine interpolation, else nearest radius
//     AFFINE_BRACKET  bracket-affine interpolation or CompletionError
//     STRICT          CompletionError
//     NEAREST         nearest radius, ties to the smaller one
//   - ResolveRing exposes the decision (Exact, Interpolated, Substituted) so
//     callers can tell when a ring was not given explicitly.
//
// Complexity:
//
//   - Time:  O(d + s) per byte, d = depth of the law tree, s = Σ log(k) over
//     the Split and discrete Radial nodes visited (k = segments or rings).
//   - Space: O(d) stack; no per-law caches are built at projection time.
//
// Errors:
//
//   - law.ErrIndexOutOfRange  i ∉ [0, n); reported as *IndexError.
//   - law.ErrMalformedLaw     nil law or unknown variant.
//   - law.ErrCompletion       a ring the policy refuses to fill; *CompletionError.
//
// Every function here is pure and safe for concurrent use on a shared law.
package project
