// SPDX-License-Identifier: MIT

package law

import "sort"

// Split concatenates segments: S = seg0 ‖ seg1 ‖ … ‖ seg(k-1). Each segment
// occupies exactly its own extent.
type Split struct {
	segments []Law
	offsets  []int // offsets[k] is the first index of segment k; offsets[k+1]-offsets[k] its extent
	n        int
}

// NewSplit concatenates segments. The segment extents must sum to exactly n.
// Zero-extent segments are allowed and never selected.
func NewSplit(segments []Law, n int) (*Split, error) {
	return newSplit(FamilySplit, segments, n)
}

func newSplit(f Family, segments []Law, n int) (*Split, error) {
	if err := checkExtent(f, n); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, malformedf(f, "no segments")
	}
	segs := make([]Law, len(segments))
	offsets := make([]int, len(segments)+1)
	for k, seg := range segments {
		if seg == nil {
			return nil, malformedf(f, "segment %d is nil", k)
		}
		if seg.Extent() > n-offsets[k] {
			return nil, malformedf(f, "segments overrun extent %d at segment %d", n, k)
		}
		segs[k] = seg
		offsets[k+1] = offsets[k] + seg.Extent()
	}
	if offsets[len(segments)] != n {
		return nil, malformedf(f, "segments cover %d of %d indices", offsets[len(segments)], n)
	}
	return &Split{segments: segs, offsets: offsets, n: n}, nil
}

func (*Split) Family() Family { return FamilySplit }
func (l *Split) Extent() int { return l.n }
func (*Split) isLaw() {}

// NumSegments is the number of segments k.
func (l *Split) NumSegments() int { return len(l.segments) }

// Segment returns segment k and the index at which it starts.
func (l *Split) Segment(k int) (seg Law, offset int) {
	return l.segments[k], l.offsets[k]
}

// Locate returns the segment owning index i together with its start offset.
// ok is false when i ∉ [0, n).
//
// Binary search over the cumulative offsets; O(log k).
func (l *Split) Locate(i int) (k, offset int, ok bool) {
	if i < 0 || i >= l.n {
		return 0, 0, false
	}
	k = sort.Search(len(l.segments), func(j int) bool { return l.offsets[j+1] > i })
	return k, l.offsets[k], true
}
