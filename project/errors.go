// SPDX-License-Identifier: MIT

package project

import (
	"fmt"

	"github.com/katalvlaran/genlaw/law"
)

// IndexError reports a projection index outside [0, Extent) of the node that
// received it. It unwraps to law.ErrIndexOutOfRange.
type IndexError struct {
	Index  int
	Extent int
	Family law.Family
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("project: %s: index %d outside [0, %d)", e.Family, e.Index, e.Extent)
}

func (e *IndexError) Unwrap() error { return law.ErrIndexOutOfRange }

// CompletionError reports a radius that a discrete Radial law has no ring for
// and that its completion policy refuses to fill. It unwraps to
// law.ErrCompletion.
type CompletionError struct {
	Radius int
	Policy law.Completion
	Reason string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("project: radius %d unresolved under %s: %s", e.Radius, e.Policy, e.Reason)
}

func (e *CompletionError) Unwrap() error { return law.ErrCompletion }

// Reasons carried by CompletionError.
const (
	ReasonMissing     = "no ring at this radius"
	ReasonUnbracketed = "radius is not bracketed by two rings"
	ReasonNotAffine   = "bracket rings are not both affine"
	ReasonDeltaDiffer = "bracket deltas differ"
	ReasonEvenGap     = "even radius gap does not divide the s0 difference"
)
