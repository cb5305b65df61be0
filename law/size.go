// SPDX-License-Identifier: MIT

package law

import "math/bits"

// EncodedSize returns |l|, the byte size of a compact parameter encoding of l:
// one tag byte per node, one byte per byte-valued parameter, LEB128 varints for
// extents, radii and counts, zig-zag varints for signed multipliers, and the
// encoded size of every child. It measures parameters only; it is not a wire
// format. A nil law has size 0.
func EncodedSize(l Law) int {
	switch v := l.(type) {
	case nil:
		return 0
	case *Constant:
		return 1 + 1 + uvarintLen(v.n)
	case *Affine:
		return 1 + 2 + uvarintLen(v.n)
	case *InstantDeduction:
		return 1 + 4 + uvarintLen(v.n)
	case *Periodic:
		return 1 + uvarintLen(len(v.pattern)) + len(v.pattern) + uvarintLen(v.n)
	case *Mirror:
		return 1 + uvarintLen(v.n) + EncodedSize(v.half)
	case *XorSymmetric:
		return 1 + 1 + uvarintLen(v.n) + EncodedSize(v.half)
	case *BlockRecurrence:
		return 1 + uvarintLen(v.m) + uvarintLen(v.n) + EncodedSize(v.sub)
	case *RadialRecurrence:
		return 1 + uvarintLen(v.center) + uvarintLen(v.n) + EncodedSize(v.radial)
	case *SelfAffinePermutation:
		return 1 + zigzagLen(v.alpha) + zigzagLen(v.beta) + uvarintLen(v.n) + EncodedSize(v.base)
	case *ReactiveDifferential:
		size := 1 + 1 + uvarintLen(v.n)
		if v.delta == nil {
			return size + 1 // absent-delta marker
		}
		return size + EncodedSize(v.delta)
	case *Split:
		size := 1 + uvarintLen(v.n) + uvarintLen(len(v.segments))
		for _, seg := range v.segments {
			size += EncodedSize(seg)
		}
		return size
	case *Radial:
		size := 1 + uvarintLen(v.center) + 1 + uvarintLen(v.n)
		if v.meta != nil {
			return size + metaSize(v.meta)
		}
		size += uvarintLen(len(v.rings))
		for _, ring := range v.rings {
			size += uvarintLen(ring.Radius) + EncodedSize(ring.Law)
		}
		return size
	case *Wrapper:
		switch v.family {
		case FamilyXorConst, FamilyAddConst:
			return 1 + 1 + EncodedSize(v.inner)
		case FamilyMetaEmbed, FamilyCorrelativeStride:
			// the inner Split or BlockRecurrence shares the tag
			return EncodedSize(v.inner)
		default:
			return 1 + EncodedSize(v.inner)
		}
	}
	return 0
}

func metaSize(m Meta) int {
	switch v := m.(type) {
	case AffineGradient:
		return 1 + 3
	case AffineLinearDelta:
		return 1 + 4
	case AffineQuadratic:
		return 1 + 6
	case LeftRight:
		return 1 + EncodedSize(v.Left) + EncodedSize(v.Right)
	}
	return 1
}

// uvarintLen is the LEB128 length of a non-negative x.
func uvarintLen(x int) int {
	if x <= 0 {
		return 1
	}
	return (bits.Len64(uint64(x)) + 6) / 7
}

// zigzagLen is the LEB128 length of the zig-zag encoding of x.
func zigzagLen(x int) int {
	z := uint64(x<<1) ^ uint64(x>>63)
	if z == 0 {
		return 1
	}
	return (bits.Len64(z) + 6) / 7
}
