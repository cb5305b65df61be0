// SPDX-License-Identifier: MIT

// Package sequence wraps a law as a read-only, indexable byte sequence that
// is never materialized unless asked to.
//
// A View holds only the law. At is one projection; Len is the law extent;
// Slice, Bytes, ReadAt and WriteTo project a range on demand; Equal compares
// against any Source exactly, byte by byte.
//
// SampleEqual is a diagnostic: it compares a fixed number of evenly spaced
// positions and can report true for sequences that differ elsewhere. It is
// kept separate from Equal on purpose and must not be used as a correctness
// check.
//
// Complexity:
//
//   - At:            O(depth) per byte
//   - Len:           O(1)
//   - Slice, Bytes:  O(len · depth)
//   - Equal:         O(n · depth)
//   - SampleEqual:   O(k · depth)
package sequence
