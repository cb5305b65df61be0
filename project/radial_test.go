// SPDX-License-Identifier: MIT

package project_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/genlaw/law"
	"github.com/katalvlaran/genlaw/project"
)

// RadialSuite exercises ring selection, local indexing and every completion
// policy of the Radial composer.
type RadialSuite struct {
	suite.Suite
}

func TestRadialSuite(t *testing.T) {
	suite.Run(t, new(RadialSuite))
}

func (s *RadialSuite) discrete(center, n int, c law.Completion, rings ...law.Ring) *law.Radial {
	r, err := law.NewDiscreteRadial(center, rings, c, n)
	s.Require().NoError(err)
	return r
}

func (s *RadialSuite) project(l law.Law, i int) byte {
	b, err := project.Project(l, i)
	s.Require().NoError(err, "index %d", i)
	return b
}

func (s *RadialSuite) completionError(err error) *project.CompletionError {
	s.Require().ErrorIs(err, law.ErrCompletion)
	var ce *project.CompletionError
	s.Require().True(errors.As(err, &ce))
	return ce
}

// ------------------------------------------------------------------------
// Bracket interpolation
// ------------------------------------------------------------------------

// TestBracket_EvenGapExactSlope: {0: (10,5), 4: (14,5)} at r=2 is (12,5).
func (s *RadialSuite) TestBracket_EvenGapExactSlope() {
	l := s.discrete(10, 21, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(10, 5, 2)},
		law.Ring{Radius: 4, Law: affine(14, 5, 2)},
	)

	ring, res, err := project.ResolveRing(l, 2)
	s.Require().NoError(err)
	s.True(law.Equal(affine(12, 5, 2), ring), "got %+v", ring)
	s.Equal(project.Resolution{Kind: project.Interpolated, Radius: 2, From: 0, To: 4}, res)

	s.Equal(byte(12), s.project(l, 8))  // left of center
	s.Equal(byte(17), s.project(l, 12)) // right of center adds delta
	s.Equal(byte(10), s.project(l, 10)) // center, ring 0 local 0
}

// TestBracket_SingleByteCenterRing: a center ring of extent 1 still yields
// two-sided interpolated rings, so the right side keeps its delta.
func (s *RadialSuite) TestBracket_SingleByteCenterRing() {
	l := s.discrete(10, 21, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(10, 5, 1)},
		law.Ring{Radius: 4, Law: affine(14, 5, 2)},
	)

	ring, _, err := project.ResolveRing(l, 2)
	s.Require().NoError(err)
	s.True(law.Equal(affine(12, 5, 2), ring), "got %+v", ring)

	s.Equal(byte(10), s.project(l, 10))
	s.Equal(byte(12), s.project(l, 8))
	s.Equal(byte(17), s.project(l, 12))
	s.Equal(byte(19), s.project(l, 14))
}

func (s *RadialSuite) TestBracket_DeltaMismatchRejected() {
	l := s.discrete(10, 21, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(10, 5, 2)},
		law.Ring{Radius: 4, Law: affine(14, 6, 2)},
	)
	_, _, err := project.ResolveRing(l, 2)
	ce := s.completionError(err)
	s.Equal(2, ce.Radius)
	s.Equal(law.CompletionAffineBracket, ce.Policy)
	s.Equal(project.ReasonDeltaDiffer, ce.Reason)

	_, err = project.Project(l, 8)
	s.ErrorIs(err, law.ErrCompletion)
}

func (s *RadialSuite) TestBracket_OddGapUsesInverse() {
	l := s.discrete(5, 11, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(10, 1, 2)},
		law.Ring{Radius: 3, Law: affine(40, 1, 2)},
	)
	for r, want := range map[int]byte{1: 20, 2: 30} {
		ring, res, err := project.ResolveRing(l, r)
		s.Require().NoError(err)
		s.Equal(project.Interpolated, res.Kind)
		s.Equal(want, ring.(*law.Affine).S0(), "r=%d", r)
	}
}

func (s *RadialSuite) TestBracket_OddGapWrapsModulo256() {
	// 250 → 4 across three steps: s0 difference is 10 mod 256.
	l := s.discrete(5, 11, law.CompletionAffineBracket,
		law.Ring{Radius: 1, Law: affine(250, 0, 1)},
		law.Ring{Radius: 4, Law: affine(4, 0, 1)},
	)
	ring, _, err := project.ResolveRing(l, 2)
	s.Require().NoError(err)
	// g·3 ≡ 10 (mod 256) ⇒ g = 10·171 mod 256 = 174; 250+174 = 424 ≡ 168
	s.Equal(byte(168), ring.(*law.Affine).S0())
}

func (s *RadialSuite) TestBracket_EvenGapNegativeSlope() {
	l := s.discrete(2, 5, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(20, 3, 2)},
		law.Ring{Radius: 2, Law: affine(10, 3, 2)},
	)
	ring, _, err := project.ResolveRing(l, 1)
	s.Require().NoError(err)
	s.Equal(byte(15), ring.(*law.Affine).S0())
}

func (s *RadialSuite) TestBracket_EvenGapIndivisible() {
	rings := []law.Ring{
		{Radius: 0, Law: affine(10, 1, 2)},
		{Radius: 2, Law: affine(13, 1, 2)},
	}
	strict := s.discrete(2, 5, law.CompletionAffineBracket, rings...)
	_, _, err := project.ResolveRing(strict, 1)
	s.Equal(project.ReasonEvenGap, s.completionError(err).Reason)

	// AUTO falls back to the nearest ring; the tie goes to radius 0.
	auto := s.discrete(2, 5, law.CompletionAuto, rings...)
	ring, res, err := project.ResolveRing(auto, 1)
	s.Require().NoError(err)
	s.Equal(project.Resolution{Kind: project.Substituted, Radius: 1, From: 0, To: 0}, res)
	s.Same(rings[0].Law, ring)
}

func (s *RadialSuite) TestBracket_NotApplicable() {
	notAffine := s.discrete(3, 7, law.CompletionAffineBracket,
		law.Ring{Radius: 0, Law: affine(10, 1, 2)},
		law.Ring{Radius: 2, Law: constant(12, 2)},
	)
	_, _, err := project.ResolveRing(notAffine, 1)
	s.Equal(project.ReasonNotAffine, s.completionError(err).Reason)

	_, _, err = project.ResolveRing(notAffine, 3)
	s.Equal(project.ReasonUnbracketed, s.completionError(err).Reason)
}

// ------------------------------------------------------------------------
// STRICT, NEAREST, AUTO
// ------------------------------------------------------------------------

func (s *RadialSuite) TestStrict() {
	l := s.discrete(2, 5, law.CompletionStrict,
		law.Ring{Radius: 0, Law: affine(10, 1, 1)},
		law.Ring{Radius: 2, Law: affine(12, 1, 2)},
	)
	s.Equal(byte(10), s.project(l, 2))
	s.Equal(byte(12), s.project(l, 0))
	s.Equal(byte(13), s.project(l, 4))

	_, err := project.Project(l, 1)
	ce := s.completionError(err)
	s.Equal(1, ce.Radius)
	s.Equal(law.CompletionStrict, ce.Policy)
	s.Equal(project.ReasonMissing, ce.Reason)
}

func (s *RadialSuite) TestNearest_TieBreakAndEdges() {
	l := s.discrete(10, 21, law.CompletionNearest,
		law.Ring{Radius: 5, Law: constant(50, 1)},
		law.Ring{Radius: 1, Law: constant(10, 1)},
	)
	cases := map[int]int{0: 1, 2: 1, 3: 1, 4: 5, 9: 5}
	for r, from := range cases {
		_, res, err := project.ResolveRing(l, r)
		s.Require().NoError(err)
		s.Equal(project.Substituted, res.Kind, "r=%d", r)
		s.Equal(from, res.From, "r=%d", r)
	}

	// NEAREST never interpolates, even between two compatible affine rings.
	affines := s.discrete(2, 5, law.CompletionNearest,
		law.Ring{Radius: 0, Law: affine(10, 5, 2)},
		law.Ring{Radius: 2, Law: affine(12, 5, 2)},
	)
	_, res, err := project.ResolveRing(affines, 1)
	s.Require().NoError(err)
	s.Equal(project.Substituted, res.Kind)
}

func (s *RadialSuite) TestAuto_PrefersInterpolation() {
	l := s.discrete(10, 21, law.CompletionAuto,
		law.Ring{Radius: 0, Law: affine(10, 5, 2)},
		law.Ring{Radius: 4, Law: affine(14, 5, 2)},
	)
	_, res, err := project.ResolveRing(l, 3)
	s.Require().NoError(err)
	s.Equal(project.Interpolated, res.Kind)

	// above the last ring: nothing to interpolate, substitute radius 4
	_, res, err = project.ResolveRing(l, 7)
	s.Require().NoError(err)
	s.Equal(project.Resolution{Kind: project.Substituted, Radius: 7, From: 4, To: 4}, res)
}

func (s *RadialSuite) TestResolveRing_BadInput() {
	l := s.discrete(0, 1, law.CompletionAuto, law.Ring{Radius: 0, Law: constant(1, 1)})
	_, _, err := project.ResolveRing(l, -1)
	s.ErrorIs(err, law.ErrIndexOutOfRange)

	_, _, err = project.ResolveRing(nil, 0)
	s.ErrorIs(err, law.ErrMalformedLaw)
}

// ------------------------------------------------------------------------
// Local indexing
// ------------------------------------------------------------------------

func (s *RadialSuite) TestLocalIndex() {
	wide := s.discrete(2, 5, law.CompletionStrict,
		law.Ring{Radius: 0, Law: periodic(1, 0)},
		law.Ring{Radius: 1, Law: periodic(2, 7, 8)},
		law.Ring{Radius: 2, Law: periodic(1, 9)},
	)
	s.Equal(byte(9), s.project(wide, 0))
	s.Equal(byte(7), s.project(wide, 1))
	s.Equal(byte(0), s.project(wide, 2))
	s.Equal(byte(8), s.project(wide, 3))
	s.Equal(byte(9), s.project(wide, 4), "single-value ring collapses to local 0")
}

// ------------------------------------------------------------------------
// Parametric shapes
// ------------------------------------------------------------------------

func (s *RadialSuite) TestMeta_AffineGradient() {
	l := law.Must(law.NewParametricRadial(3, law.AffineGradient{BaseS0: 10, GradientS0: 2, Delta: 100}, 7))
	s.Equal(byte(16), s.project(l, 0))
	s.Equal(byte(10), s.project(l, 3))
	s.Equal(byte(112), s.project(l, 4))
	s.Equal(byte(116), s.project(l, 6))
}

func (s *RadialSuite) TestMeta_AffineLinearDelta() {
	l := law.Must(law.NewParametricRadial(2, law.AffineLinearDelta{GradientS0: 1, BaseDelta: 10, GradientDelta: 1}, 5))
	s.Equal(byte(2), s.project(l, 0))
	s.Equal(byte(12), s.project(l, 3))
	s.Equal(byte(14), s.project(l, 4))
}

func (s *RadialSuite) TestMeta_AffineQuadratic() {
	l := law.Must(law.NewParametricRadial(3, law.AffineQuadratic{Alpha0: 1, Alpha1: 2, Beta1: 1}, 7))
	s.Equal(byte(9), s.project(l, 0))  // r=3: 3 + 2·3
	s.Equal(byte(12), s.project(l, 6)) // + δ(3) = 3
	s.Equal(byte(5), s.project(l, 5))  // r=2: 4 + δ(2) = 1
}

func (s *RadialSuite) TestMeta_LeftRight() {
	l := law.Must(law.NewParametricRadial(2, law.LeftRight{Left: affine(100, 1, 3), Right: periodic(3, 7, 8, 9)}, 5))
	s.Equal([]byte{102, 101, 100, 8, 9}, all(s.T(), l))

	_, _, err := project.ResolveRing(l, 1)
	s.ErrorIs(err, law.ErrMalformedLaw)
}

// TestMeta_ResolveRingAgreesWithProjection checks that the synthesized ring
// of every parametric affine shape reproduces the direct evaluation.
func (s *RadialSuite) TestMeta_ResolveRingAgreesWithProjection() {
	metas := []law.Meta{
		law.AffineGradient{BaseS0: 3, GradientS0: 250, Delta: 9},
		law.AffineLinearDelta{BaseS0: 1, GradientS0: 2, BaseDelta: 3, GradientDelta: 4},
		law.AffineQuadratic{BaseS0: 5, Alpha0: 6, Alpha1: 7, BaseDelta: 8, Beta0: 9, Beta1: 10},
	}
	const center, n = 40, 100
	for _, meta := range metas {
		l := law.Must(law.NewParametricRadial(center, meta, n))
		for i := 0; i < n; i++ {
			r, local := i-center, 0
			if r < 0 {
				r = -r
			} else if r > 0 {
				local = 1
			}
			ring, res, err := project.ResolveRing(l, r)
			s.Require().NoError(err)
			s.Equal(project.Exact, res.Kind)
			want, err := project.Project(ring, local)
			s.Require().NoError(err)
			s.Equal(want, s.project(l, i), "%s i=%d", meta.Kind(), i)
		}
	}
}

func TestResolutionKind_String(t *testing.T) {
	require.Equal(t, "interpolated", project.Interpolated.String())
	require.Equal(t, "substituted", project.Substituted.String())
	require.Equal(t, "exact", project.Exact.String())
}
