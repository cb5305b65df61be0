// SPDX-License-Identifier: MIT

// Package validator gates acceptance of externally supplied laws.
//
// A Validator checks three properties of a law, optionally against the byte
// sequence it claims to describe:
//
//   - Size bound: law.EncodedSize(l) < l.Extent(), else ErrNotMinimal.
//   - No literal leakage: no Periodic pattern longer than the literal
//     threshold (default 16 bytes), else ErrLiteralLeakage. When the original
//     is supplied, the offset of a copied pattern is reported.
//   - Bijection (original supplied): the original has length n, and the root
//     law reproduces it at every position (Constant, Periodic) or over a
//     bounded prefix (Affine, InstantDeduction, default 10 positions), else
//     ErrBijectionViolation. Composite roots are checked only under
//     WithFullVerification, which projects all n bytes.
//
// Every rejection is a *Rejection carrying the check's sentinel, the tree
// path of the offending node and, where meaningful, an index. Check collects
// all rejections into a Report; Validate returns them as a single error.
//
// A Validator holds only its configuration, so it is immutable and may be
// shared. Validating the same (law, original) pair always yields the same
// outcome.
//
// Options:
//
//   - WithLiteralThreshold(k): longest Periodic pattern accepted (k ≥ 1).
//   - WithAffinePrefix(k):     Affine positions checked against the original (k ≥ 1).
//   - WithFullVerification():  project every byte of composite laws.
package validator
