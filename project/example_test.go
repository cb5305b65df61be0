// SPDX-License-Identifier: MIT

package project_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genlaw/law"
	"github.com/katalvlaran/genlaw/project"
)

// ExampleProject evaluates a palindrome one index at a time.
func ExampleProject() {
	half, _ := law.NewAffine(0, 1, 3)
	m, _ := law.NewMirror(half, 5)
	out := make([]byte, m.Extent())
	for i := range out {
		out[i], _ = project.Project(m, i)
	}
	fmt.Println(out)

	_, err := project.Project(m, 5)
	fmt.Println(errors.Is(err, law.ErrIndexOutOfRange))
	// Output:
	// [0 1 2 1 0]
	// true
}

// ExampleResolveRing shows how a missing ring is filled from its brackets.
func ExampleResolveRing() {
	inner, _ := law.NewAffine(10, 5, 2)
	outer, _ := law.NewAffine(14, 5, 2)
	r, _ := law.NewDiscreteRadial(10, []law.Ring{
		{Radius: 0, Law: inner},
		{Radius: 4, Law: outer},
	}, law.CompletionAffineBracket, 21)

	ring, res, err := project.ResolveRing(r, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a := ring.(*law.Affine)
	fmt.Printf("%s from r=%d..%d: s0=%d delta=%d\n", res.Kind, res.From, res.To, a.S0(), a.Delta())
	// Output: interpolated from r=0..4: s0=12 delta=5
}

// ExampleCompletionError shows a STRICT law refusing a missing radius.
func ExampleCompletionError() {
	ring, _ := law.NewConstant(7, 1)
	r, _ := law.NewDiscreteRadial(1, []law.Ring{{Radius: 0, Law: ring}}, law.CompletionStrict, 3)

	_, err := project.Project(r, 0)
	var ce *project.CompletionError
	if errors.As(err, &ce) {
		fmt.Println(ce.Radius, ce.Policy, ce.Reason)
	}
	// Output: 1 strict no ring at this radius
}
