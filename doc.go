// SPDX-License-Identifier: MIT

// Package genlaw evaluates generative byte laws: compact descriptions of
// byte sequences that can be read at any index without ever storing the
// sequence.
//
// 🚀 What is genlaw?
//
//	A small, deterministic, zero-state library that brings together:
//		• Law model: constant, affine, periodic, mirror, xor-symmetric,
//		  block/radial recurrences, self-affine permutations,
//		  reactive differentials, splits, radial laws and wrappers
//		• Projection: S[i] for any index in O(depth) time and O(1) memory
//		• Radial completion: strict, nearest, affine-bracket and auto
//		  policies for radii with no explicit ring
//		• Lazy views: io.ReaderAt / io.WriterTo over a law, exact and
//		  sampled comparison
//		• Validation: size bound, literal leakage and bijection checks
//		• Descriptions: YAML encode/decode of law trees
//
// ✨ Why genlaw?
//
//   - Deterministic – the same (law, index) always yields the same byte
//   - Immutable – laws are built once, validated at construction, shared freely
//   - Total – every in-range index projects, or fails with a typed error
//   - Pure mod-256 arithmetic – no floating point anywhere
//
// Packages:
//
//	law/         the law tree, constructors, encoded size and traversal
//	project/     projection of a single index and radial completion
//	sequence/    lazy sequence views and comparison
//	validator/   acceptance checks for externally supplied laws
//	lawdesc/     YAML law descriptions
//
// Quick example:
//
//	mirror(affine(0, 1, n=3), n=5)
//
//	    0 1 2 1 0
//	        ↑
//	      center
//
// describes five bytes with two parameters and one child law.
//
//	go get github.com/katalvlaran/genlaw
package genlaw
