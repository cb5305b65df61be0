// SPDX-License-Identifier: MIT

package project

import "github.com/katalvlaran/genlaw/law"

func radialAt(l *law.Radial, i int) (byte, error) {
	c := l.Center()
	r := radius(i, c)

	if meta := l.Meta(); meta != nil {
		return metaAt(meta, i, c, r)
	}

	ring, _, err := resolve(l, r)
	if err != nil {
		return 0, err
	}
	return at(ring, localIndex(i, c, ring.Extent()))
}

// localIndex picks the position inside a ring law: 0 for the center and the
// left side, 1 for the right side when the ring has a distinct right value.
func localIndex(i, center, extent int) int {
	if i <= center || extent <= 1 {
		return 0
	}
	return 1
}

// metaAt evaluates a parametric ring shape at index i of radius r.
func metaAt(meta law.Meta, i, c, r int) (byte, error) {
	var side byte
	if i > c {
		side = 1
	}
	rb := byte(r)

	switch m := meta.(type) {
	case law.AffineGradient:
		return m.BaseS0 + rb*m.GradientS0 + side*m.Delta, nil

	case law.AffineLinearDelta:
		s0 := m.BaseS0 + rb*m.GradientS0
		delta := m.BaseDelta + rb*m.GradientDelta
		return s0 + side*delta, nil

	case law.AffineQuadratic:
		tri := law.PairsMod256(r)
		s0 := m.BaseS0 + rb*m.Alpha0 + tri*m.Alpha1
		delta := m.BaseDelta + rb*m.Beta0 + tri*m.Beta1
		return s0 + side*delta, nil

	case law.LeftRight:
		if i <= c {
			return at(m.Left, r)
		}
		return at(m.Right, r)
	}
	return 0, errUnsupportedMeta(meta)
}
