// SPDX-License-Identifier: MIT

package lawdesc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genlaw/law"
)

// ErrBadDescription indicates a description that is not valid YAML, has
// unknown keys, or lacks or misuses a parameter. Errors raised by the law
// constructors are passed through with their own sentinels.
var ErrBadDescription = errors.New("lawdesc: bad description")

// PathError locates a decoding failure in the description tree.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return fmt.Sprintf("%v (at %s)", e.Err, e.Path) }

func (e *PathError) Unwrap() error { return e.Err }

func badf(path, format string, args ...interface{}) error {
	return &PathError{Path: path, Err: fmt.Errorf("%w: %s", ErrBadDescription, fmt.Sprintf(format, args...))}
}

// at attaches path to err unless a deeper node already did.
func at(path string, err error) error {
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	return &PathError{Path: path, Err: err}
}

// Decode parses one YAML description and builds its law.
func Decode(data []byte) (law.Law, error) {
	return Read(bytes.NewReader(data))
}

// Read parses one YAML description from r and builds its law.
func Read(r io.Reader) (law.Law, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, badf("root", "empty document")
		}
		return nil, fmt.Errorf("%w: %w", ErrBadDescription, err)
	}
	return root.Law()
}

// Law builds the law described by n.
func (n *Node) Law() (law.Law, error) {
	return n.build("root")
}

func (n *Node) build(path string) (law.Law, error) {
	if n == nil {
		return nil, badf(path, "missing node")
	}
	f, err := law.ParseFamily(n.Family)
	if err != nil {
		return nil, at(path, err)
	}
	l, err := n.buildFamily(f, path)
	if err != nil {
		return nil, at(path, err)
	}
	return l, nil
}

func (n *Node) buildFamily(f law.Family, path string) (law.Law, error) {
	switch f {
	case law.FamilyConstant:
		c, err := byteParam(path, "c", n.C)
		if err != nil {
			return nil, err
		}
		return law.NewConstant(c, n.N)

	case law.FamilyAffine:
		s0, err := byteParam(path, "s0", n.S0)
		if err != nil {
			return nil, err
		}
		d, err := byteParam(path, "delta", n.Delta)
		if err != nil {
			return nil, err
		}
		return law.NewAffine(s0, d, n.N)

	case law.FamilyPeriodic:
		pattern := make([]byte, len(n.Pattern))
		for k, v := range n.Pattern {
			b, err := toByte(fmt.Sprintf("%s.pattern[%d]", path, k), v)
			if err != nil {
				return nil, err
			}
			pattern[k] = b
		}
		return law.NewPeriodic(pattern, n.N)

	case law.FamilyInstantDeduction:
		var p [4]byte
		for k, v := range [...]struct {
			name string
			v    *int
		}{{"s0", n.S0}, {"r0", n.R0}, {"ds", n.DS}, {"dr", n.DR}} {
			b, err := byteParam(path, v.name, v.v)
			if err != nil {
				return nil, err
			}
			p[k] = b
		}
		return law.NewInstantDeduction(p[0], p[1], p[2], p[3], n.N)

	case law.FamilyMirror:
		half, err := n.Half.build(path + ".half")
		if err != nil {
			return nil, err
		}
		return law.NewMirror(half, n.N)

	case law.FamilyXorSymmetric:
		mask, err := byteParam(path, "mask", n.Mask)
		if err != nil {
			return nil, err
		}
		half, err := n.Half.build(path + ".half")
		if err != nil {
			return nil, err
		}
		return law.NewXorSymmetric(half, mask, n.N)

	case law.FamilyBlockRecurrence, law.FamilyCorrelativeStride:
		sub, err := n.Sub.build(path + ".sub")
		if err != nil {
			return nil, err
		}
		if f == law.FamilyCorrelativeStride {
			return law.NewCorrelativeStride(n.M, sub, n.N)
		}
		return law.NewBlockRecurrence(n.M, sub, n.N)

	case law.FamilyRadialRecurrence:
		radial, err := n.Radial.build(path + ".radial")
		if err != nil {
			return nil, err
		}
		return law.NewRadialRecurrence(n.Center, radial, n.N)

	case law.FamilySelfAffine:
		base, err := n.Base.build(path + ".base")
		if err != nil {
			return nil, err
		}
		return law.NewSelfAffinePermutation(n.Alpha, n.Beta, base, n.N)

	case law.FamilyReactiveDifferential:
		s0, err := byteParam(path, "s0", n.S0)
		if err != nil {
			return nil, err
		}
		var delta law.Law
		if n.DeltaLaw != nil {
			if delta, err = n.DeltaLaw.build(path + ".delta_law"); err != nil {
				return nil, err
			}
		}
		return law.NewReactiveDifferential(s0, delta, n.N)

	case law.FamilySplit, law.FamilyMetaEmbed:
		segs, err := n.buildSegments(path)
		if err != nil {
			return nil, err
		}
		if f == law.FamilyMetaEmbed {
			return law.NewMetaEmbed(segs, n.N)
		}
		return law.NewSplit(segs, n.N)

	case law.FamilyRadial:
		return n.buildRadial(path)

	case law.FamilyXorConst, law.FamilyAddConst:
		k, err := byteParam(path, "k", n.K)
		if err != nil {
			return nil, err
		}
		inner, err := n.Inner.build(path + ".inner")
		if err != nil {
			return nil, err
		}
		if f == law.FamilyXorConst {
			return law.NewXorConst(inner, k)
		}
		return law.NewAddConst(inner, k)

	case law.FamilyGrowth:
		inner, err := n.Inner.build(path + ".inner")
		if err != nil {
			return nil, err
		}
		return law.NewGrowth(inner)
	}
	return nil, badf(path, "family %s is not decodable", f)
}

func (n *Node) buildSegments(path string) ([]law.Law, error) {
	segs := make([]law.Law, len(n.Segments))
	for k, s := range n.Segments {
		seg, err := s.build(fmt.Sprintf("%s.segments[%d]", path, k))
		if err != nil {
			return nil, err
		}
		segs[k] = seg
	}
	return segs, nil
}

func (n *Node) buildRadial(path string) (law.Law, error) {
	switch {
	case n.Meta != nil && len(n.Rings) > 0:
		return nil, badf(path, "radial has both meta and rings")
	case n.Meta != nil:
		meta, err := n.Meta.build(path + ".meta")
		if err != nil {
			return nil, err
		}
		return law.NewParametricRadial(n.Center, meta, n.N)
	}

	completion, err := law.ParseCompletion(n.Completion)
	if err != nil {
		return nil, err
	}
	rings := make([]law.Ring, len(n.Rings))
	for k, rn := range n.Rings {
		ring, err := rn.Law.build(fmt.Sprintf("%s.rings[r=%d]", path, rn.Radius))
		if err != nil {
			return nil, err
		}
		rings[k] = law.Ring{Radius: rn.Radius, Law: ring}
	}
	return law.NewDiscreteRadial(n.Center, rings, completion, n.N)
}

func (m *MetaNode) build(path string) (law.Meta, error) {
	kind, err := law.ParseMetaKind(m.Type)
	if err != nil {
		return nil, at(path, err)
	}
	if kind == law.MetaLeftRight {
		left, err := m.Left.build(path + ".left")
		if err != nil {
			return nil, err
		}
		right, err := m.Right.build(path + ".right")
		if err != nil {
			return nil, err
		}
		return law.LeftRight{Left: left, Right: right}, nil
	}

	var (
		names = [...]string{"base_s0", "gradient_s0", "delta", "base_delta", "gradient_delta", "alpha0", "alpha1", "beta0", "beta1"}
		vals  = [...]int{m.BaseS0, m.GradientS0, m.Delta, m.BaseDelta, m.GradientDelta, m.Alpha0, m.Alpha1, m.Beta0, m.Beta1}
		b     [len(vals)]byte
	)
	for k, v := range vals {
		if b[k], err = toByte(path+"."+names[k], v); err != nil {
			return nil, err
		}
	}

	switch kind {
	case law.MetaAffineGradient:
		return law.AffineGradient{BaseS0: b[0], GradientS0: b[1], Delta: b[2]}, nil
	case law.MetaAffineLinearDelta:
		return law.AffineLinearDelta{BaseS0: b[0], GradientS0: b[1], BaseDelta: b[3], GradientDelta: b[4]}, nil
	default: // law.MetaAffineQuadratic
		return law.AffineQuadratic{BaseS0: b[0], Alpha0: b[5], Alpha1: b[6], BaseDelta: b[3], Beta0: b[7], Beta1: b[8]}, nil
	}
}

func byteParam(path, name string, v *int) (byte, error) {
	if v == nil {
		return 0, badf(path, "missing %s", name)
	}
	return toByte(path+"."+name, *v)
}

func toByte(path string, v int) (byte, error) {
	if v < 0 || v > 255 {
		return 0, badf(path, "value %d is not a byte", v)
	}
	return byte(v), nil
}
