// SPDX-License-Identifier: MIT

package law

// Wrapper applies a byte-wise post-transform to a single inner law. The
// family tag selects the transform:
//
//	FamilyXorConst           S[i] = inner[i] ⊕ k
//	FamilyAddConst           S[i] = inner[i] + k (mod 256)
//	FamilyGrowth             S[i] = inner[i]
//	FamilyMetaEmbed          S[i] = inner[i], inner is a Split
//	FamilyCorrelativeStride  S[i] = inner[i], inner is a BlockRecurrence
type Wrapper struct {
	family Family
	inner  Law
	k      byte
}

func newWrapper(f Family, inner Law, k byte) (*Wrapper, error) {
	if inner == nil {
		return nil, malformedf(f, "missing inner law")
	}
	return &Wrapper{family: f, inner: inner, k: k}, nil
}

// NewXorConst XORs every byte of inner with k.
func NewXorConst(inner Law, k byte) (*Wrapper, error) {
	return newWrapper(FamilyXorConst, inner, k)
}

// NewAddConst adds k (mod 256) to every byte of inner.
func NewAddConst(inner Law, k byte) (*Wrapper, error) {
	return newWrapper(FamilyAddConst, inner, k)
}

// NewGrowth is the identity wrapper over inner.
func NewGrowth(inner Law) (*Wrapper, error) {
	return newWrapper(FamilyGrowth, inner, 0)
}

// NewMetaEmbed concatenates segments like NewSplit, tagged as a meta-embed.
func NewMetaEmbed(segments []Law, n int) (*Wrapper, error) {
	split, err := newSplit(FamilyMetaEmbed, segments, n)
	if err != nil {
		return nil, err
	}
	return newWrapper(FamilyMetaEmbed, split, 0)
}

// NewCorrelativeStride repeats the first k bytes of sub like
// NewBlockRecurrence, tagged as a correlative stride.
func NewCorrelativeStride(k int, sub Law, n int) (*Wrapper, error) {
	if err := checkExtent(FamilyCorrelativeStride, n); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, malformedf(FamilyCorrelativeStride, "stride %d must be positive", k)
	}
	if err := checkChild(FamilyCorrelativeStride, "sub", sub, min(k, n)); err != nil {
		return nil, err
	}
	block, err := NewBlockRecurrence(k, sub, n)
	if err != nil {
		return nil, err
	}
	return newWrapper(FamilyCorrelativeStride, block, 0)
}

func (l *Wrapper) Family() Family { return l.family }
func (l *Wrapper) Extent() int { return l.inner.Extent() }
func (*Wrapper) isLaw() {}

// Inner is the wrapped law. For FamilyMetaEmbed it is a *Split, for
// FamilyCorrelativeStride a *BlockRecurrence.
func (l *Wrapper) Inner() Law { return l.inner }

// K is the constant operand of XorConst and AddConst; zero otherwise.
func (l *Wrapper) K() byte { return l.k }
