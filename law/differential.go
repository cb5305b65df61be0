// SPDX-License-Identifier: MIT

package law

// ReactiveDifferential integrates a difference law:
//
//	S[i] = s0 + Σ_{t<i} Δ(t)   (mod 256)
//
// Δ must be Constant, Affine or Periodic, the shapes whose partial sums have
// a closed form. A nil Δ is the zero difference, so S is constant s0.
type ReactiveDifferential struct {
	s0     byte
	delta  Law
	prefix []byte // Periodic Δ only: prefix[k] = Σ_{t<k} pattern[t], k ∈ [0, p]
	n      int
}

// NewReactiveDifferential builds the running sum of delta starting at s0.
// Any other delta shape fails with ErrUnsupportedDeltaLaw (and ErrMalformedLaw).
// The extent of delta is not consulted: the difference sequence is read
// through its closed form, not by index.
func NewReactiveDifferential(s0 byte, delta Law, n int) (*ReactiveDifferential, error) {
	if err := checkExtent(FamilyReactiveDifferential, n); err != nil {
		return nil, err
	}
	l := &ReactiveDifferential{s0: s0, delta: delta, n: n}
	switch d := delta.(type) {
	case nil, *Constant, *Affine:
	case *Periodic:
		l.prefix = make([]byte, d.Period()+1)
		for k := 0; k < d.Period(); k++ {
			l.prefix[k+1] = l.prefix[k] + d.PatternAt(k)
		}
	default:
		return nil, malformedKindf(FamilyReactiveDifferential, ErrUnsupportedDeltaLaw,
			"%s has no closed-form partial sum", delta.Family())
	}
	return l, nil
}

func (*ReactiveDifferential) Family() Family { return FamilyReactiveDifferential }
func (l *ReactiveDifferential) Extent() int { return l.n }
func (*ReactiveDifferential) isLaw() {}

// S0 is the value at index 0.
func (l *ReactiveDifferential) S0() byte { return l.s0 }

// DeltaLaw is the difference law, or nil for the zero difference.
func (l *ReactiveDifferential) DeltaLaw() Law { return l.delta }

// DeltaPrefix returns Σ_{t<k} Δ(t) mod 256 for a Periodic Δ and 0 ≤ k ≤ p.
// It is zero for any other Δ.
func (l *ReactiveDifferential) DeltaPrefix(k int) byte {
	if l.prefix == nil {
		return 0
	}
	return l.prefix[k]
}
