// SPDX-License-Identifier: MIT

package law

import (
	"fmt"
	"strings"
)

// Law describes how to produce the byte at any index of a sequence of
// declared extent. Implementations live in this package only.
type Law interface {
	// Family reports the variant tag.
	Family() Family

	// Extent is the declared length n; projection is defined on [0, n).
	Extent() int

	isLaw()
}

// Family enumerates the law variants.
type Family uint8

const (
	FamilyConstant Family = iota + 1
	FamilyAffine
	FamilyPeriodic
	FamilyXorSymmetric
	FamilyMirror
	FamilyBlockRecurrence
	FamilyRadialRecurrence
	FamilySelfAffine
	FamilyReactiveDifferential
	FamilySplit
	FamilyRadial
	FamilyXorConst
	FamilyAddConst
	FamilyGrowth
	FamilyMetaEmbed
	FamilyInstantDeduction
	FamilyCorrelativeStride
)

var familyNames = map[Family]string{
	FamilyConstant:             "constant",
	FamilyAffine:               "affine",
	FamilyPeriodic:             "periodic",
	FamilyXorSymmetric:         "xor_symmetric",
	FamilyMirror:               "mirror",
	FamilyBlockRecurrence:      "block_recurrence",
	FamilyRadialRecurrence:     "radial_recurrence",
	FamilySelfAffine:           "self_affine",
	FamilyReactiveDifferential: "reactive_differential",
	FamilySplit:                "split",
	FamilyRadial:               "radial",
	FamilyXorConst:             "xor_const",
	FamilyAddConst:             "add_const",
	FamilyGrowth:               "growth",
	FamilyMetaEmbed:            "meta_embed",
	FamilyInstantDeduction:     "instant_deduction",
	FamilyCorrelativeStride:    "correlative_stride",
}

// String returns the canonical lower-case family name.
func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

// ParseFamily maps a canonical family name back to its tag.
func ParseFamily(s string) (Family, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Completion is the gap-completion policy of a discrete Radial law: what to
// do when the queried radius has no explicit ring.
type Completion uint8

const (
	// CompletionAuto tries bracket-affine interpolation, then falls back to
	// nearest-radius substitution.
	CompletionAuto Completion = iota

	// CompletionAffineBracket requires bracket-affine interpolation to succeed.
	CompletionAffineBracket

	// CompletionStrict rejects every missing radius.
	CompletionStrict

	// CompletionNearest always substitutes the nearest defined radius.
	CompletionNearest
)

var completionNames = [...]string{
	CompletionAuto:          "auto",
	CompletionAffineBracket: "affine_bracket",
	CompletionStrict:        "strict",
	CompletionNearest:       "nearest",
}

func (c Completion) String() string {
	if int(c) < len(completionNames) {
		return completionNames[c]
	}
	return fmt.Sprintf("completion(%d)", uint8(c))
}

func (c Completion) valid() bool { return int(c) < len(completionNames) }

// ParseCompletion maps a policy name to its value. The empty string is AUTO.
func ParseCompletion(s string) (Completion, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return CompletionAuto, nil
	}
	for c, n := range completionNames {
		if n == name {
			return Completion(c), nil
		}
	}
	return 0, fmt.Errorf("%w: completion %q", ErrUnknownName, s)
}

// Must panics if err is non-nil and returns l otherwise. It is meant for
// package-level fixtures and examples whose parameters are known good.
func Must[L Law](l L, err error) L {
	if err != nil {
		panic(err)
	}
	return l
}
