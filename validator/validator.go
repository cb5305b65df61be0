// SPDX-License-Identifier: MIT

package validator

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/genlaw/law"
	"github.com/katalvlaran/genlaw/project"
	"github.com/katalvlaran/genlaw/sequence"
)

// Validator checks laws against the size, leakage and bijection rules.
type Validator struct {
	cfg config
}

// New returns a Validator with the given options applied over the defaults.
func New(opts ...Option) *Validator {
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	return &Validator{cfg: cfg}
}

// Report is the full outcome of Check.
type Report struct {
	// Size is law.EncodedSize of the law, Extent its declared n.
	Size, Extent int

	// Density is Size/Extent, a diagnostic only (0 when Extent is 0).
	Density float64

	// Verified reports whether any bijection check ran.
	Verified bool

	Rejections []*Rejection
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Rejections) == 0 }

// Err returns nil, the single rejection, or all rejections joined.
func (r Report) Err() error {
	switch len(r.Rejections) {
	case 0:
		return nil
	case 1:
		return r.Rejections[0]
	}
	errs := make([]error, len(r.Rejections))
	for k, rej := range r.Rejections {
		errs[k] = rej
	}
	return errors.Join(errs...)
}

// Validate runs every check and returns Report.Err. original may be nil when
// no sequence is available; bijection checks are then skipped.
func (v *Validator) Validate(l law.Law, original []byte) error {
	return v.Check(l, original).Err()
}

// Check runs every check and collects all rejections.
func (v *Validator) Check(l law.Law, original []byte) Report {
	if l == nil {
		return Report{Rejections: []*Rejection{{
			Kind: law.ErrMalformedLaw, Index: -1, Detail: "nil law",
		}}}
	}

	// 1) Size bound.
	rep := Report{Size: law.EncodedSize(l), Extent: l.Extent()}
	if rep.Extent > 0 {
		rep.Density = float64(rep.Size) / float64(rep.Extent)
	}
	if rep.Size >= rep.Extent {
		rep.Rejections = append(rep.Rejections, &Rejection{
			Kind:   ErrNotMinimal,
			Path:   "root",
			Index:  -1,
			Detail: fmt.Sprintf("encoded size %d ≥ extent %d", rep.Size, rep.Extent),
		})
	}

	// 2) Literal leakage anywhere in the tree.
	rep.Rejections = append(rep.Rejections, v.leakage(l, original)...)

	// 3) Bijection against the original.
	if original != nil {
		rej, ran := v.bijection(l, original)
		rep.Verified = ran
		if rej != nil {
			rep.Rejections = append(rep.Rejections, rej)
		}
	}
	return rep
}

func (v *Validator) leakage(l law.Law, original []byte) []*Rejection {
	var out []*Rejection
	_ = law.Walk(l, func(path string, node law.Law) error {
		p, ok := node.(*law.Periodic)
		if !ok || p.Period() <= v.cfg.literalThreshold {
			return nil
		}
		rej := &Rejection{
			Kind:   ErrLiteralLeakage,
			Path:   path,
			Index:  -1,
			Detail: fmt.Sprintf("pattern of %d bytes exceeds threshold %d", p.Period(), v.cfg.literalThreshold),
		}
		if original != nil {
			if at := bytes.Index(original, p.Pattern()); at >= 0 {
				rej.Index = at
				rej.Detail = fmt.Sprintf("pattern of %d bytes copied from the original", p.Period())
			}
		}
		out = append(out, rej)
		return nil
	})
	return out
}

// bijection compares projection with original. ran is false when the root is
// composite and full verification is off.
func (v *Validator) bijection(l law.Law, original []byte) (rej *Rejection, ran bool) {
	n := l.Extent()
	if len(original) != n {
		return &Rejection{
			Kind:   ErrBijectionViolation,
			Path:   "root",
			Index:  min(n, len(original)),
			Detail: fmt.Sprintf("original has %d bytes, law extent is %d", len(original), n),
		}, true
	}

	limit := n
	switch l.(type) {
	case *law.Constant, *law.Periodic:
	case *law.Affine, *law.InstantDeduction:
		limit = min(n, v.cfg.affinePrefix)
	default:
		if !v.cfg.fullVerification {
			return nil, false
		}
		return v.fullCheck(l, original), true
	}

	for i := 0; i < limit; i++ {
		b, err := project.Project(l, i)
		if err != nil {
			return &Rejection{Kind: ErrBijectionViolation, Path: "root", Index: i, Cause: err}, true
		}
		if b != original[i] {
			return mismatch(i, b, original[i]), true
		}
	}
	return nil, true
}

func (v *Validator) fullCheck(l law.Law, original []byte) *Rejection {
	view, err := sequence.New(l)
	if err != nil {
		return &Rejection{Kind: ErrBijectionViolation, Path: "root", Index: -1, Cause: err}
	}
	i, err := view.Mismatch(sequence.Bytes(original))
	if err != nil {
		return &Rejection{Kind: ErrBijectionViolation, Path: "root", Index: i, Cause: err}
	}
	if i < 0 {
		return nil
	}
	b, _ := view.At(i)
	return mismatch(i, b, original[i])
}

func mismatch(i int, got, want byte) *Rejection {
	return &Rejection{
		Kind:   ErrBijectionViolation,
		Path:   "root",
		Index:  i,
		Detail: fmt.Sprintf("projected %d, original %d", got, want),
	}
}
