// SPDX-License-Identifier: MIT

package law

// checkExtent rejects negative extents, the one invariant every variant shares.
func checkExtent(f Family, n int) error {
	if n < 0 {
		return malformedf(f, "negative extent %d", n)
	}
	return nil
}

// Constant yields the same byte at every index.
type Constant struct {
	c byte
	n int
}

// NewConstant returns S[i] = c over [0, n).
func NewConstant(c byte, n int) (*Constant, error) {
	if err := checkExtent(FamilyConstant, n); err != nil {
		return nil, err
	}
	return &Constant{c: c, n: n}, nil
}

func (*Constant) Family() Family { return FamilyConstant }
func (l *Constant) Extent() int { return l.n }
func (*Constant) isLaw() {}

// Value is the constant byte c.
func (l *Constant) Value() byte { return l.c }

// Affine yields the ramp S[i] = s0 + i·delta (mod 256).
type Affine struct {
	s0, delta byte
	n         int
}

// NewAffine returns the ramp starting at s0 with step delta over [0, n).
func NewAffine(s0, delta byte, n int) (*Affine, error) {
	if err := checkExtent(FamilyAffine, n); err != nil {
		return nil, err
	}
	return &Affine{s0: s0, delta: delta, n: n}, nil
}

func (*Affine) Family() Family { return FamilyAffine }
func (l *Affine) Extent() int { return l.n }
func (*Affine) isLaw() {}

// S0 is the value at index 0.
func (l *Affine) S0() byte { return l.s0 }

// Delta is the step between consecutive indices.
func (l *Affine) Delta() byte { return l.delta }

// Periodic repeats a fixed pattern: S[i] = pattern[i mod p].
type Periodic struct {
	pattern []byte
	n       int
}

// NewPeriodic returns the cycle of pattern over [0, n). The pattern is copied;
// an empty pattern is malformed.
func NewPeriodic(pattern []byte, n int) (*Periodic, error) {
	if err := checkExtent(FamilyPeriodic, n); err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		return nil, malformedf(FamilyPeriodic, "empty pattern")
	}
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &Periodic{pattern: p, n: n}, nil
}

func (*Periodic) Family() Family { return FamilyPeriodic }
func (l *Periodic) Extent() int { return l.n }
func (*Periodic) isLaw() {}

// Period is the pattern length p (always ≥ 1).
func (l *Periodic) Period() int { return len(l.pattern) }

// PatternAt returns pattern[j] for 0 ≤ j < Period().
func (l *Periodic) PatternAt(j int) byte { return l.pattern[j] }

// Pattern returns a copy of the cycle.
func (l *Periodic) Pattern() []byte {
	out := make([]byte, len(l.pattern))
	copy(out, l.pattern)
	return out
}

// InstantDeduction is a four-byte polynomial with a distance-to-edge term:
//
//	S[i] = s0 + r0·φ(i) + ds·i + dr·i²   (mod 256),  φ(i) = min(i, n-1-i)
type InstantDeduction struct {
	s0, r0, ds, dr byte
	n              int
}

// NewInstantDeduction returns the law above over [0, n).
func NewInstantDeduction(s0, r0, ds, dr byte, n int) (*InstantDeduction, error) {
	if err := checkExtent(FamilyInstantDeduction, n); err != nil {
		return nil, err
	}
	return &InstantDeduction{s0: s0, r0: r0, ds: ds, dr: dr, n: n}, nil
}

func (*InstantDeduction) Family() Family { return FamilyInstantDeduction }
func (l *InstantDeduction) Extent() int { return l.n }
func (*InstantDeduction) isLaw() {}

// S0 is the value at index 0 before the edge term.
func (l *InstantDeduction) S0() byte { return l.s0 }

// R0 multiplies the distance to the nearer edge.
func (l *InstantDeduction) R0() byte { return l.r0 }

// DS is the linear coefficient.
func (l *InstantDeduction) DS() byte { return l.ds }

// DR is the quadratic coefficient.
func (l *InstantDeduction) DR() byte { return l.dr }

// Edge returns φ(i) = min(i, n-1-i).
func (l *InstantDeduction) Edge(i int) int { return min(i, l.n-1-i) }
