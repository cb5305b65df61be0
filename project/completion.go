// SPDX-License-Identifier: MIT

package project

import (
	"fmt"

	"github.com/katalvlaran/genlaw/law"
)

// ResolutionKind tells how the ring law for a radius was obtained.
type ResolutionKind uint8

const (
	// Exact: the radius has its own ring (or a parametric closed form).
	Exact ResolutionKind = iota

	// Interpolated: an Affine ring was synthesized from the two bracketing rings.
	Interpolated

	// Substituted: the ring of the nearest defined radius was reused.
	Substituted
)

func (k ResolutionKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Interpolated:
		return "interpolated"
	case Substituted:
		return "substituted"
	}
	return "resolution(?)"
}

// Resolution describes the outcome of ResolveRing for one radius. From and To
// are the radii of the rings that were read: equal for Exact and Substituted,
// the lower and upper bracket for Interpolated.
type Resolution struct {
	Kind   ResolutionKind
	Radius int
	From   int
	To     int
}

// ResolveRing returns the law that serves radius r of a Radial law, applying
// the law's completion policy when r has no explicit ring.
//
// For parametric affine shapes the ring is synthesized in closed form as an
// Affine law (extent 1 at the center, 2 elsewhere). LeftRight rings have no
// single law and fail with law.ErrMalformedLaw.
func ResolveRing(l *law.Radial, r int) (law.Law, Resolution, error) {
	if l == nil {
		return nil, Resolution{}, fmt.Errorf("project: %w: nil radial law", law.ErrMalformedLaw)
	}
	if r < 0 {
		return nil, Resolution{}, fmt.Errorf("project: %w: negative radius %d", law.ErrIndexOutOfRange, r)
	}
	if meta := l.Meta(); meta != nil {
		return metaRing(meta, r)
	}
	return resolve(l, r)
}

func resolve(l *law.Radial, r int) (law.Law, Resolution, error) {
	// 1) Exact hit: binary search over the sorted radii.
	k := l.SearchRadius(r)
	if k < l.NumRings() && l.RingAt(k).Radius == r {
		return l.RingAt(k).Law, Resolution{Kind: Exact, Radius: r, From: r, To: r}, nil
	}

	// 2) Gap: the ring list is non-empty, so k-1 and/or k exist.
	policy := l.Completion()
	switch policy {
	case law.CompletionStrict:
		return nil, Resolution{}, &CompletionError{Radius: r, Policy: policy, Reason: ReasonMissing}

	case law.CompletionNearest:
		return nearest(l, k, r)

	case law.CompletionAffineBracket:
		ring, res, reason := interpolate(l, k, r)
		if reason != "" {
			return nil, Resolution{}, &CompletionError{Radius: r, Policy: policy, Reason: reason}
		}
		return ring, res, nil
	}

	// 3) AUTO: interpolate when the brackets allow it, otherwise substitute.
	if ring, res, reason := interpolate(l, k, r); reason == "" {
		return ring, res, nil
	}
	return nearest(l, k, r)
}

// interpolate synthesizes the ring at radius r from rings k-1 and k. A
// non-empty reason means interpolation does not apply. The synthesized ring
// always has extent 2, whatever the extents of its brackets.
//
// With Δr = r_above - r_below the gradient is (s0_above - s0_below)·Δr⁻¹ mod
// 256 when Δr is odd. An even Δr has no inverse mod 256; the gradient is then
// defined only when the integer s0 difference is an exact multiple of Δr.
func interpolate(l *law.Radial, k, r int) (law.Law, Resolution, string) {
	if k == 0 || k == l.NumRings() {
		return nil, Resolution{}, ReasonUnbracketed
	}
	below, above := l.RingAt(k-1), l.RingAt(k)
	lo, okLo := below.Law.(*law.Affine)
	hi, okHi := above.Law.(*law.Affine)
	if !okLo || !okHi {
		return nil, Resolution{}, ReasonNotAffine
	}
	if lo.Delta() != hi.Delta() {
		return nil, Resolution{}, ReasonDeltaDiffer
	}

	var (
		dr = above.Radius - below.Radius
		g  byte
	)
	if dr%2 == 1 {
		inv, _ := law.ModInverse(dr, 256)
		g = byte(law.MulMod(int(hi.S0()-lo.S0()), inv, 256))
	} else {
		raw := int(hi.S0()) - int(lo.S0())
		if raw%dr != 0 {
			return nil, Resolution{}, ReasonEvenGap
		}
		g = byte(law.Mod(raw/dr, 256))
	}

	// r lies strictly above r_below ≥ 0, so the ring has both sides.
	s0 := lo.S0() + g*byte(r-below.Radius)
	ring, err := law.NewAffine(s0, lo.Delta(), 2)
	if err != nil {
		return nil, Resolution{}, err.Error()
	}
	return ring, Resolution{Kind: Interpolated, Radius: r, From: below.Radius, To: above.Radius}, ""
}

// nearest substitutes the ring closest to r; ties go to the smaller radius.
func nearest(l *law.Radial, k, r int) (law.Law, Resolution, error) {
	pick := k
	switch {
	case k == l.NumRings():
		pick = k - 1
	case k > 0 && r-l.RingAt(k-1).Radius <= l.RingAt(k).Radius-r:
		pick = k - 1
	}
	ring := l.RingAt(pick)
	return ring.Law, Resolution{Kind: Substituted, Radius: r, From: ring.Radius, To: ring.Radius}, nil
}

// metaRing expresses one ring of a parametric affine shape as an Affine law.
func metaRing(meta law.Meta, r int) (law.Law, Resolution, error) {
	var (
		s0, delta byte
		rb        = byte(r)
		tri       = law.PairsMod256(r)
	)
	switch m := meta.(type) {
	case law.AffineGradient:
		s0, delta = m.BaseS0+rb*m.GradientS0, m.Delta
	case law.AffineLinearDelta:
		s0, delta = m.BaseS0+rb*m.GradientS0, m.BaseDelta+rb*m.GradientDelta
	case law.AffineQuadratic:
		s0 = m.BaseS0 + rb*m.Alpha0 + tri*m.Alpha1
		delta = m.BaseDelta + rb*m.Beta0 + tri*m.Beta1
	case law.LeftRight:
		return nil, Resolution{}, fmt.Errorf("project: %w: left_right ring %d has no single law", law.ErrMalformedLaw, r)
	default:
		return nil, Resolution{}, errUnsupportedMeta(meta)
	}

	extent := 2
	if r == 0 {
		extent = 1
	}
	ring, err := law.NewAffine(s0, delta, extent)
	if err != nil {
		return nil, Resolution{}, err
	}
	return ring, Resolution{Kind: Exact, Radius: r, From: r, To: r}, nil
}

func errUnsupportedMeta(meta law.Meta) error {
	return fmt.Errorf("project: %w: unsupported meta %T", law.ErrMalformedLaw, meta)
}
