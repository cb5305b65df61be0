// SPDX-License-Identifier: MIT

package law

// This file holds the index-remapping variants: each one rewrites i in O(1)
// and defers to exactly one child law.

// halfExtent is ⌈n/2⌉, the domain of the "half" child of Mirror/XorSymmetric.
func halfExtent(n int) int { return (n + 1) / 2 }

func checkChild(f Family, name string, child Law, need int) error {
	if child == nil {
		return malformedf(f, "missing %s law", name)
	}
	if child.Extent() < need {
		return malformedf(f, "%s law extent %d does not cover %d indices", name, child.Extent(), need)
	}
	return nil
}

// checkCenter requires 0 ≤ center < n (center = 0 when n = 0).
func checkCenter(f Family, center, n int) error {
	if center < 0 || (n > 0 && center >= n) || (n == 0 && center != 0) {
		return malformedf(f, "center %d outside [0, %d)", center, n)
	}
	return nil
}

// maxRadius is the largest |i-center| over i ∈ [0, n).
func maxRadius(center, n int) int {
	if n == 0 {
		return 0
	}
	if right := n - 1 - center; right > center {
		return right
	}
	return center
}

// Mirror is a palindrome: the first ⌈n/2⌉ bytes come from half and the rest
// are reflected back through it.
type Mirror struct {
	half Law
	n    int
}

// NewMirror builds a palindrome of extent n. half must have extent exactly ⌈n/2⌉.
func NewMirror(half Law, n int) (*Mirror, error) {
	if err := checkExtent(FamilyMirror, n); err != nil {
		return nil, err
	}
	if err := checkChild(FamilyMirror, "half", half, halfExtent(n)); err != nil {
		return nil, err
	}
	if half.Extent() != halfExtent(n) {
		return nil, malformedf(FamilyMirror, "half extent %d, want %d", half.Extent(), halfExtent(n))
	}
	return &Mirror{half: half, n: n}, nil
}

func (*Mirror) Family() Family { return FamilyMirror }
func (l *Mirror) Extent() int { return l.n }
func (*Mirror) isLaw() {}

// Half is the law for indices [0, ⌈n/2⌉).
func (l *Mirror) Half() Law { return l.half }

// XorSymmetric is a mirror whose reflected half is XORed with a mask:
// S[i] ⊕ S[n-1-i] = mask for every reflected pair.
type XorSymmetric struct {
	half Law
	mask byte
	n    int
}

// NewXorSymmetric builds the masked mirror of extent n. half must have
// extent exactly ⌈n/2⌉.
func NewXorSymmetric(half Law, mask byte, n int) (*XorSymmetric, error) {
	if err := checkExtent(FamilyXorSymmetric, n); err != nil {
		return nil, err
	}
	if err := checkChild(FamilyXorSymmetric, "half", half, halfExtent(n)); err != nil {
		return nil, err
	}
	if half.Extent() != halfExtent(n) {
		return nil, malformedf(FamilyXorSymmetric, "half extent %d, want %d", half.Extent(), halfExtent(n))
	}
	return &XorSymmetric{half: half, mask: mask, n: n}, nil
}

func (*XorSymmetric) Family() Family { return FamilyXorSymmetric }
func (l *XorSymmetric) Extent() int { return l.n }
func (*XorSymmetric) isLaw() {}

// Half is the law for indices [0, ⌈n/2⌉).
func (l *XorSymmetric) Half() Law { return l.half }

// Mask is XORed into every reflected byte.
func (l *XorSymmetric) Mask() byte { return l.mask }

// BlockRecurrence repeats the first m bytes of sub: S[i] = sub[i mod m].
type BlockRecurrence struct {
	m   int
	sub Law
	n   int
}

// NewBlockRecurrence builds a block repeat of period m ≥ 1. sub must cover
// min(m, n) indices.
func NewBlockRecurrence(m int, sub Law, n int) (*BlockRecurrence, error) {
	if err := checkExtent(FamilyBlockRecurrence, n); err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, malformedf(FamilyBlockRecurrence, "block length %d must be positive", m)
	}
	if err := checkChild(FamilyBlockRecurrence, "sub", sub, min(m, n)); err != nil {
		return nil, err
	}
	return &BlockRecurrence{m: m, sub: sub, n: n}, nil
}

func (*BlockRecurrence) Family() Family { return FamilyBlockRecurrence }
func (l *BlockRecurrence) Extent() int { return l.n }
func (*BlockRecurrence) isLaw() {}

// M is the block length.
func (l *BlockRecurrence) M() int { return l.m }

// Sub is the law of one block.
func (l *BlockRecurrence) Sub() Law { return l.sub }

// RadialRecurrence reads a radius-indexed law: S[i] = radial[|i-center|].
type RadialRecurrence struct {
	center int
	radial Law
	n      int
}

// NewRadialRecurrence builds the radial read-out around center. radial must
// cover every radius reachable from [0, n).
func NewRadialRecurrence(center int, radial Law, n int) (*RadialRecurrence, error) {
	if err := checkExtent(FamilyRadialRecurrence, n); err != nil {
		return nil, err
	}
	if err := checkCenter(FamilyRadialRecurrence, center, n); err != nil {
		return nil, err
	}
	need := 0
	if n > 0 {
		need = maxRadius(center, n) + 1
	}
	if err := checkChild(FamilyRadialRecurrence, "radial", radial, need); err != nil {
		return nil, err
	}
	return &RadialRecurrence{center: center, radial: radial, n: n}, nil
}

func (*RadialRecurrence) Family() Family { return FamilyRadialRecurrence }
func (l *RadialRecurrence) Extent() int { return l.n }
func (*RadialRecurrence) isLaw() {}

// Center is the index of radius 0.
func (l *RadialRecurrence) Center() int { return l.center }

// Radial is the law indexed by radius.
func (l *RadialRecurrence) Radial() Law { return l.radial }

// SelfAffinePermutation permutes the indices of base by the affine map
// j = α·i + β (mod n), so S[j] = base[α⁻¹·(j-β) mod n].
type SelfAffinePermutation struct {
	alpha, beta int
	alphaInv    int // α⁻¹ mod n, fixed at construction
	betaMod     int // β mod n
	base        Law
	n           int
}

// NewSelfAffinePermutation builds the permuted view of base. α must be
// invertible modulo n; otherwise the error wraps ErrNonInvertible as well as
// ErrMalformedLaw. base must cover n indices.
func NewSelfAffinePermutation(alpha, beta int, base Law, n int) (*SelfAffinePermutation, error) {
	if err := checkExtent(FamilySelfAffine, n); err != nil {
		return nil, err
	}
	inv, ok := ModInverse(alpha, n)
	if !ok {
		return nil, malformedKindf(FamilySelfAffine, ErrNonInvertible, "alpha %d has no inverse mod %d", alpha, n)
	}
	if err := checkChild(FamilySelfAffine, "base", base, n); err != nil {
		return nil, err
	}
	return &SelfAffinePermutation{
		alpha:    alpha,
		beta:     beta,
		alphaInv: inv,
		betaMod:  Mod(beta, n),
		base:     base,
		n:        n,
	}, nil
}

func (*SelfAffinePermutation) Family() Family { return FamilySelfAffine }
func (l *SelfAffinePermutation) Extent() int { return l.n }
func (*SelfAffinePermutation) isLaw() {}

// Alpha is the multiplier α as supplied.
func (l *SelfAffinePermutation) Alpha() int { return l.alpha }

// Beta is the offset β as supplied.
func (l *SelfAffinePermutation) Beta() int { return l.beta }

// Base is the unpermuted law.
func (l *SelfAffinePermutation) Base() Law { return l.base }

// SourceIndex maps j ∈ [0, n) to the base index α⁻¹·(j-β) mod n.
func (l *SelfAffinePermutation) SourceIndex(j int) int {
	return MulMod(l.alphaInv, Mod(j-l.betaMod, l.n), l.n)
}
