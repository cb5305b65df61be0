// SPDX-License-Identifier: MIT

package law

import (
	"fmt"
	"sort"
)

// Radial organizes a sequence as concentric rings around a center index.
// Index i belongs to ring r = |i-center|. A Radial law is either parametric
// (one Meta shape describes every ring) or discrete (an explicit, sorted list
// of rings plus a Completion policy for radii that are not listed).
type Radial struct {
	center     int
	completion Completion
	meta       Meta   // nil in discrete mode
	rings      []Ring // discrete mode, strictly increasing Radius
	n          int
}

// Ring binds one radius to the law that produces its bytes. Ring laws are
// read at local index 0 (left of center, or the center itself) and 1 (right
// of center) when their extent allows it.
type Ring struct {
	Radius int
	Law    Law
}

// MetaKind enumerates the parametric ring shapes.
type MetaKind uint8

const (
	MetaAffineGradient MetaKind = iota + 1
	MetaAffineLinearDelta
	MetaAffineQuadratic
	MetaLeftRight
)

var metaNames = map[MetaKind]string{
	MetaAffineGradient:    "affine_gradient",
	MetaAffineLinearDelta: "affine_linear_delta",
	MetaAffineQuadratic:   "affine_quadratic",
	MetaLeftRight:         "left_right",
}

func (k MetaKind) String() string {
	if s, ok := metaNames[k]; ok {
		return s
	}
	return "meta(?)"
}

// ParseMetaKind maps a shape name back to its kind.
func ParseMetaKind(s string) (MetaKind, error) {
	for k, n := range metaNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: meta shape %q", ErrUnknownName, s)
}

// Meta is a closed-form description of all rings of a parametric Radial law.
// Values are plain structs; the Radial keeps its own copy.
type Meta interface {
	Kind() MetaKind
	isMeta()
}

// AffineGradient: ring r has baseline BaseS0 + r·GradientS0; bytes right of
// center add Delta.
type AffineGradient struct {
	BaseS0, GradientS0, Delta byte
}

// AffineLinearDelta: like AffineGradient, but the right-hand step also grows
// linearly: δ(r) = BaseDelta + r·GradientDelta.
type AffineLinearDelta struct {
	BaseS0, GradientS0, BaseDelta, GradientDelta byte
}

// AffineQuadratic: second-order ring laws.
//
//	s0(r) = BaseS0 + Alpha0·r + Alpha1·r(r-1)/2
//	δ(r)  = BaseDelta + Beta0·r + Beta1·r(r-1)/2
type AffineQuadratic struct {
	BaseS0, Alpha0, Alpha1, BaseDelta, Beta0, Beta1 byte
}

// LeftRight: indices at or left of center read Left[r], the rest read Right[r].
type LeftRight struct {
	Left, Right Law
}

func (AffineGradient) Kind() MetaKind { return MetaAffineGradient }
func (AffineLinearDelta) Kind() MetaKind { return MetaAffineLinearDelta }
func (AffineQuadratic) Kind() MetaKind { return MetaAffineQuadratic }
func (LeftRight) Kind() MetaKind { return MetaLeftRight }

func (AffineGradient) isMeta() {}
func (AffineLinearDelta) isMeta() {}
func (AffineQuadratic) isMeta() {}
func (LeftRight) isMeta() {}

// NewParametricRadial builds a Radial law whose rings are all given by meta.
// Pointer metas are dereferenced; LeftRight children must cover every radius
// on their side of center.
func NewParametricRadial(center int, meta Meta, n int) (*Radial, error) {
	if err := checkExtent(FamilyRadial, n); err != nil {
		return nil, err
	}
	if err := checkCenter(FamilyRadial, center, n); err != nil {
		return nil, err
	}
	m, err := derefMeta(meta)
	if err != nil {
		return nil, err
	}
	if lr, ok := m.(LeftRight); ok && n > 0 {
		if err := checkChild(FamilyRadial, "left", lr.Left, center+1); err != nil {
			return nil, err
		}
		if err := checkChild(FamilyRadial, "right", lr.Right, n-center); err != nil {
			return nil, err
		}
	}
	return &Radial{center: center, meta: m, n: n}, nil
}

// derefMeta normalizes meta to one of the four value shapes.
func derefMeta(meta Meta) (Meta, error) {
	switch v := meta.(type) {
	case AffineGradient, AffineLinearDelta, AffineQuadratic:
		return v, nil
	case LeftRight:
		if v.Left == nil || v.Right == nil {
			return nil, malformedf(FamilyRadial, "left_right meta needs both sides")
		}
		return v, nil
	case *AffineGradient:
		if v != nil {
			return *v, nil
		}
	case *AffineLinearDelta:
		if v != nil {
			return *v, nil
		}
	case *AffineQuadratic:
		if v != nil {
			return *v, nil
		}
	case *LeftRight:
		if v != nil {
			return derefMeta(*v)
		}
	case nil:
	default:
		return nil, malformedf(FamilyRadial, "unsupported meta %T", meta)
	}
	return nil, malformedf(FamilyRadial, "missing meta")
}

// NewDiscreteRadial builds a Radial law from explicit rings. The rings are
// copied and sorted by radius; radii must be non-negative and distinct, and
// every ring law must have extent ≥ 1. Radii with no ring are resolved at
// projection time according to completion.
func NewDiscreteRadial(center int, rings []Ring, completion Completion, n int) (*Radial, error) {
	if err := checkExtent(FamilyRadial, n); err != nil {
		return nil, err
	}
	if err := checkCenter(FamilyRadial, center, n); err != nil {
		return nil, err
	}
	if !completion.valid() {
		return nil, malformedf(FamilyRadial, "unknown completion %s", completion)
	}
	if len(rings) == 0 {
		return nil, malformedf(FamilyRadial, "neither meta nor rings")
	}
	sorted := make([]Ring, len(rings))
	copy(sorted, rings)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Radius < sorted[b].Radius })
	for k, ring := range sorted {
		if ring.Radius < 0 {
			return nil, malformedf(FamilyRadial, "negative radius %d", ring.Radius)
		}
		if k > 0 && sorted[k-1].Radius == ring.Radius {
			return nil, malformedf(FamilyRadial, "duplicate radius %d", ring.Radius)
		}
		if ring.Law == nil {
			return nil, malformedf(FamilyRadial, "ring %d has no law", ring.Radius)
		}
		if ring.Law.Extent() < 1 {
			return nil, malformedf(FamilyRadial, "ring %d law has empty extent", ring.Radius)
		}
	}
	return &Radial{center: center, completion: completion, rings: sorted, n: n}, nil
}

func (*Radial) Family() Family { return FamilyRadial }
func (l *Radial) Extent() int { return l.n }
func (*Radial) isLaw() {}

// Center is the index of ring 0.
func (l *Radial) Center() int { return l.center }

// Completion is the gap policy of a discrete law (AUTO for parametric laws).
func (l *Radial) Completion() Completion { return l.completion }

// Meta is the parametric shape, or nil in discrete mode.
func (l *Radial) Meta() Meta { return l.meta }

// Parametric reports whether the law is in parametric mode.
func (l *Radial) Parametric() bool { return l.meta != nil }

// NumRings is the number of explicit rings (0 in parametric mode).
func (l *Radial) NumRings() int { return len(l.rings) }

// RingAt returns the k-th ring in increasing radius order.
func (l *Radial) RingAt(k int) Ring { return l.rings[k] }

// Rings returns a copy of the explicit rings in increasing radius order.
func (l *Radial) Rings() []Ring {
	out := make([]Ring, len(l.rings))
	copy(out, l.rings)
	return out
}

// SearchRadius returns the position of the first ring whose radius is ≥ r,
// or NumRings() if there is none.
func (l *Radial) SearchRadius(r int) int {
	return sort.Search(len(l.rings), func(k int) bool { return l.rings[k].Radius >= r })
}
