// SPDX-License-Identifier: MIT

package law

import (
	"errors"
	"fmt"
	"reflect"
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// current node without stopping the walk.
var SkipChildren = errors.New("law: skip children")

// Child is one edge of a law tree: the child law and its name relative to
// the parent ("half", "segments[1]", "rings[r=4]", ...).
type Child struct {
	Name string
	Law  Law
}

// WalkFunc is called once per node with its dotted path from the root.
type WalkFunc func(path string, node Law) error

// Children returns the direct sub-laws of l in a fixed order. Leaves
// (Constant, Affine, Periodic, InstantDeduction) have none.
func Children(l Law) []Child {
	switch v := l.(type) {
	case *Mirror:
		return []Child{{"half", v.half}}
	case *XorSymmetric:
		return []Child{{"half", v.half}}
	case *BlockRecurrence:
		return []Child{{"sub", v.sub}}
	case *RadialRecurrence:
		return []Child{{"radial", v.radial}}
	case *SelfAffinePermutation:
		return []Child{{"base", v.base}}
	case *ReactiveDifferential:
		if v.delta == nil {
			return nil
		}
		return []Child{{"delta", v.delta}}
	case *Split:
		out := make([]Child, len(v.segments))
		for k, seg := range v.segments {
			out[k] = Child{fmt.Sprintf("segments[%d]", k), seg}
		}
		return out
	case *Radial:
		if lr, ok := v.meta.(LeftRight); ok {
			return []Child{{"meta.left", lr.Left}, {"meta.right", lr.Right}}
		}
		out := make([]Child, len(v.rings))
		for k, ring := range v.rings {
			out[k] = Child{fmt.Sprintf("rings[r=%d]", ring.Radius), ring.Law}
		}
		return out
	case *Wrapper:
		return []Child{{"inner", v.inner}}
	}
	return nil
}

// Walk visits l and its descendants depth-first, parents before children,
// starting with path "root". A non-nil error from fn stops the walk and is
// returned, except SkipChildren, which only prunes the current subtree.
func Walk(l Law, fn WalkFunc) error {
	if l == nil {
		return nil
	}
	return walk("root", l, fn)
}

func walk(path string, l Law, fn WalkFunc) error {
	if err := fn(path, l); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range Children(l) {
		if err := walk(path+"."+c.Name, c.Law, fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at l.
func Count(l Law) int {
	n := 0
	_ = Walk(l, func(string, Law) error { n++; return nil })
	return n
}

// Depth returns the length of the longest root-to-leaf chain (1 for a leaf,
// 0 for nil).
func Depth(l Law) int {
	if l == nil {
		return 0
	}
	d := 0
	for _, c := range Children(l) {
		d = max(d, Depth(c.Law))
	}
	return d + 1
}

// Equal reports whether a and b describe the same law: same variant, same
// parameters, same extent and structurally equal children.
func Equal(a, b Law) bool {
	return reflect.DeepEqual(a, b)
}
