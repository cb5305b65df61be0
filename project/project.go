// SPDX-License-Identifier: MIT

package project

import (
	"fmt"

	"github.com/katalvlaran/genlaw/law"
)

// Project returns S[i] for the sequence described by l.
//
// Preconditions:
//  1. l is non-nil (law.ErrMalformedLaw otherwise).
//  2. 0 ≤ i < l.Extent() (*IndexError otherwise).
//
// Discrete Radial laws may additionally fail with *CompletionError when a
// ring is missing and the completion policy does not allow filling it.
func Project(l law.Law, i int) (byte, error) {
	return at(l, i)
}

// Into fills dst with S[off], S[off+1], ... S[off+len(dst)-1]. It stops at the
// first failing index and returns the number of bytes written with the error.
func Into(l law.Law, dst []byte, off int) (int, error) {
	var (
		k   int
		b   byte
		err error
	)
	for k = range dst {
		if b, err = at(l, off+k); err != nil {
			return k, err
		}
		dst[k] = b
	}
	return len(dst), nil
}

func at(l law.Law, i int) (byte, error) {
	// 1) Bounds are checked at every node; constructors guarantee that child
	//    reads stay in range, so only the root can fail here in practice.
	if l == nil {
		return 0, fmt.Errorf("project: %w: nil law", law.ErrMalformedLaw)
	}
	if i < 0 || i >= l.Extent() {
		return 0, &IndexError{Index: i, Extent: l.Extent(), Family: l.Family()}
	}

	// 2) Dispatch on the closed variant set.
	switch v := l.(type) {
	case *law.Constant:
		return v.Value(), nil

	case *law.Affine:
		return v.S0() + byte(i)*v.Delta(), nil

	case *law.Periodic:
		return v.PatternAt(i % v.Period()), nil

	case *law.InstantDeduction:
		bi := byte(i)
		return v.S0() + byte(v.Edge(i))*v.R0() + bi*v.DS() + bi*bi*v.DR(), nil

	case *law.Mirror:
		return at(v.Half(), reflect(i, v.Extent()))

	case *law.XorSymmetric:
		j := reflect(i, v.Extent())
		b, err := at(v.Half(), j)
		if err != nil || j == i {
			return b, err
		}
		return b ^ v.Mask(), nil

	case *law.BlockRecurrence:
		return at(v.Sub(), i%v.M())

	case *law.RadialRecurrence:
		return at(v.Radial(), radius(i, v.Center()))

	case *law.SelfAffinePermutation:
		return at(v.Base(), v.SourceIndex(i))

	case *law.ReactiveDifferential:
		return v.S0() + deltaSum(v, i), nil

	case *law.Split:
		k, off, _ := v.Locate(i)
		seg, _ := v.Segment(k)
		return at(seg, i-off)

	case *law.Radial:
		return radialAt(v, i)

	case *law.Wrapper:
		b, err := at(v.Inner(), i)
		if err != nil {
			return 0, err
		}
		switch v.Family() {
		case law.FamilyXorConst:
			return b ^ v.K(), nil
		case law.FamilyAddConst:
			return b + v.K(), nil
		default: // Growth, MetaEmbed, CorrelativeStride
			return b, nil
		}
	}

	return 0, fmt.Errorf("project: %w: unsupported variant %T", law.ErrMalformedLaw, l)
}

// reflect maps i into the first ⌈n/2⌉ indices: i itself on the left half,
// n-1-i past it.
func reflect(i, n int) int {
	if i < (n+1)/2 {
		return i
	}
	return n - 1 - i
}

// radius is |i-center|.
func radius(i, center int) int {
	if i < center {
		return center - i
	}
	return i - center
}
