// SPDX-License-Identifier: MIT

package lawdesc

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genlaw/law"
)

// Encode writes l as a YAML description.
func Encode(l law.Law) ([]byte, error) {
	node, err := FromLaw(l)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err = doc.Encode(node); err != nil {
		return nil, fmt.Errorf("lawdesc: encode: %w", err)
	}
	plainKeys(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("lawdesc: encode: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("lawdesc: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// plainKeys unquotes mapping keys. yaml.v3 quotes "n" as a YAML 1.1 boolean;
// every key of a description is a plain identifier.
func plainKeys(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for k := 0; k < len(n.Content); k += 2 {
			n.Content[k].Style &^= yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle
		}
	}
	for _, c := range n.Content {
		plainKeys(c)
	}
}

// FromLaw converts l into its description tree.
func FromLaw(l law.Law) (*Node, error) {
	if l == nil {
		return nil, fmt.Errorf("lawdesc: %w: nil law", law.ErrMalformedLaw)
	}

	n := &Node{Family: l.Family().String(), N: l.Extent()}
	var err error
	switch v := l.(type) {
	case *law.Constant:
		n.C = intp(v.Value())

	case *law.Affine:
		n.S0, n.Delta = intp(v.S0()), intp(v.Delta())

	case *law.InstantDeduction:
		n.S0, n.R0, n.DS, n.DR = intp(v.S0()), intp(v.R0()), intp(v.DS()), intp(v.DR())

	case *law.Periodic:
		n.Pattern = make([]int, v.Period())
		for k := range n.Pattern {
			n.Pattern[k] = int(v.PatternAt(k))
		}

	case *law.Mirror:
		n.Half, err = FromLaw(v.Half())

	case *law.XorSymmetric:
		n.Mask = intp(v.Mask())
		n.Half, err = FromLaw(v.Half())

	case *law.BlockRecurrence:
		n.M = v.M()
		n.Sub, err = FromLaw(v.Sub())

	case *law.RadialRecurrence:
		n.Center = v.Center()
		n.Radial, err = FromLaw(v.Radial())

	case *law.SelfAffinePermutation:
		n.Alpha, n.Beta = v.Alpha(), v.Beta()
		n.Base, err = FromLaw(v.Base())

	case *law.ReactiveDifferential:
		n.S0 = intp(v.S0())
		if v.DeltaLaw() != nil {
			n.DeltaLaw, err = FromLaw(v.DeltaLaw())
		}

	case *law.Split:
		n.Segments, err = segmentNodes(v)

	case *law.Radial:
		err = radialNode(n, v)

	case *law.Wrapper:
		switch v.Family() {
		case law.FamilyMetaEmbed:
			n.Segments, err = segmentNodes(v.Inner().(*law.Split))
		case law.FamilyCorrelativeStride:
			block := v.Inner().(*law.BlockRecurrence)
			n.M = block.M()
			n.Sub, err = FromLaw(block.Sub())
		case law.FamilyXorConst, law.FamilyAddConst:
			n.K = intp(v.K())
			n.Inner, err = FromLaw(v.Inner())
		default:
			n.Inner, err = FromLaw(v.Inner())
		}

	default:
		return nil, fmt.Errorf("lawdesc: %w: unsupported variant %T", law.ErrMalformedLaw, l)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func segmentNodes(s *law.Split) ([]*Node, error) {
	out := make([]*Node, s.NumSegments())
	for k := range out {
		seg, _ := s.Segment(k)
		node, err := FromLaw(seg)
		if err != nil {
			return nil, err
		}
		out[k] = node
	}
	return out, nil
}

func radialNode(n *Node, v *law.Radial) error {
	n.Center = v.Center()

	switch m := v.Meta().(type) {
	case nil:
	case law.AffineGradient:
		n.Meta = &MetaNode{Type: m.Kind().String(), BaseS0: int(m.BaseS0), GradientS0: int(m.GradientS0), Delta: int(m.Delta)}
		return nil
	case law.AffineLinearDelta:
		n.Meta = &MetaNode{
			Type:   m.Kind().String(),
			BaseS0: int(m.BaseS0), GradientS0: int(m.GradientS0),
			BaseDelta: int(m.BaseDelta), GradientDelta: int(m.GradientDelta),
		}
		return nil
	case law.AffineQuadratic:
		n.Meta = &MetaNode{
			Type:   m.Kind().String(),
			BaseS0: int(m.BaseS0), Alpha0: int(m.Alpha0), Alpha1: int(m.Alpha1),
			BaseDelta: int(m.BaseDelta), Beta0: int(m.Beta0), Beta1: int(m.Beta1),
		}
		return nil
	case law.LeftRight:
		left, err := FromLaw(m.Left)
		if err != nil {
			return err
		}
		right, err := FromLaw(m.Right)
		if err != nil {
			return err
		}
		n.Meta = &MetaNode{Type: m.Kind().String(), Left: left, Right: right}
		return nil
	}

	n.Completion = v.Completion().String()
	n.Rings = make([]RingNode, v.NumRings())
	for k := range n.Rings {
		ring := v.RingAt(k)
		node, err := FromLaw(ring.Law)
		if err != nil {
			return err
		}
		n.Rings[k] = RingNode{Radius: ring.Radius, Law: node}
	}
	return nil
}

func intp(b byte) *int {
	v := int(b)
	return &v
}
