// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/genlaw/law"
	"github.com/katalvlaran/genlaw/project"
)

// writeChunk is the buffer size used by WriteTo.
const writeChunk = 4096

// Source is anything that can be read one byte at a time by index.
type Source interface {
	Len() int
	At(i int) (byte, error)
}

// Bytes adapts a plain byte slice to Source.
type Bytes []byte

func (b Bytes) Len() int { return len(b) }

func (b Bytes) At(i int) (byte, error) {
	if i < 0 || i >= len(b) {
		return 0, fmt.Errorf("sequence: %w: index %d outside [0, %d)", law.ErrIndexOutOfRange, i, len(b))
	}
	return b[i], nil
}

// View is the lazy sequence of a law. It is immutable and safe for
// concurrent use.
type View struct {
	l law.Law
}

var (
	_ Source      = (*View)(nil)
	_ io.ReaderAt = (*View)(nil)
	_ io.WriterTo = (*View)(nil)
)

// New returns the view of l over [0, l.Extent()).
func New(l law.Law) (*View, error) {
	if l == nil {
		return nil, fmt.Errorf("sequence: %w: nil law", law.ErrMalformedLaw)
	}
	return &View{l: l}, nil
}

// Law returns the underlying law.
func (v *View) Law() law.Law { return v.l }

// Len is the declared extent n.
func (v *View) Len() int { return v.l.Extent() }

// At projects index i.
func (v *View) At(i int) (byte, error) { return project.Project(v.l, i) }

// Slice materializes [lo, hi).
func (v *View) Slice(lo, hi int) ([]byte, error) {
	if lo < 0 || hi < lo || hi > v.Len() {
		return nil, fmt.Errorf("sequence: %w: slice [%d:%d] of length %d", law.ErrIndexOutOfRange, lo, hi, v.Len())
	}
	out := make([]byte, hi-lo)
	if _, err := project.Into(v.l, out, lo); err != nil {
		return nil, err
	}
	return out, nil
}

// Bytes materializes the whole sequence. It is the only operation that
// allocates n bytes.
func (v *View) Bytes() ([]byte, error) { return v.Slice(0, v.Len()) }

// ReadAt implements io.ReaderAt.
func (v *View) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("sequence: %w: negative offset %d", law.ErrIndexOutOfRange, off)
	}
	n := int64(v.Len())
	if off >= n {
		return 0, io.EOF
	}
	want := p
	if rem := n - off; int64(len(p)) > rem {
		want = p[:rem]
	}
	k, err := project.Into(v.l, want, int(off))
	if err != nil {
		return k, err
	}
	if k < len(p) {
		return k, io.EOF
	}
	return k, nil
}

// WriteTo implements io.WriterTo, projecting in fixed-size chunks.
func (v *View) WriteTo(w io.Writer) (int64, error) {
	var (
		buf   = make([]byte, min(writeChunk, v.Len()))
		total int64
	)
	for off := 0; off < v.Len(); off += len(buf) {
		chunk := buf[:min(len(buf), v.Len()-off)]
		if _, err := project.Into(v.l, chunk, off); err != nil {
			return total, err
		}
		k, err := w.Write(chunk)
		total += int64(k)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// All yields (i, S[i]) in order. Iteration stops at the first index that
// fails to project; use Bytes or Mismatch to observe the error.
func (v *View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < v.Len(); i++ {
			b, err := project.Project(v.l, i)
			if err != nil || !yield(i, b) {
				return
			}
		}
	}
}

// Mismatch returns the first index where v and src differ, or -1 when they
// are identical. Sequences of different length differ at the shorter length.
func (v *View) Mismatch(src Source) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("sequence: %w: nil source", law.ErrMalformedLaw)
	}
	n := min(v.Len(), src.Len())
	for i := 0; i < n; i++ {
		a, err := v.At(i)
		if err != nil {
			return i, err
		}
		b, err := src.At(i)
		if err != nil {
			return i, err
		}
		if a != b {
			return i, nil
		}
	}
	if v.Len() != src.Len() {
		return n, nil
	}
	return -1, nil
}

// Equal reports whether v and src hold the same bytes, checking every index.
func (v *View) Equal(src Source) (bool, error) {
	k, err := v.Mismatch(src)
	return err == nil && k < 0, err
}

// SampleEqual compares only k evenly spaced positions and the lengths. The
// first index is always sampled, the last one whenever k ≥ 2. It is a
// weaker, diagnostic check: true does not imply Equal.
func (v *View) SampleEqual(src Source, k int) (bool, error) {
	if src == nil {
		return false, fmt.Errorf("sequence: %w: nil source", law.ErrMalformedLaw)
	}
	n := v.Len()
	if n != src.Len() {
		return false, nil
	}
	if n == 0 || k <= 0 {
		return true, nil
	}
	for _, i := range samplePositions(n, k) {
		a, err := v.At(i)
		if err != nil {
			return false, err
		}
		b, err := src.At(i)
		if err != nil {
			return false, err
		}
		if a != b {
			return false, nil
		}
	}
	return true, nil
}

// samplePositions returns min(k, n) distinct indices spread over [0, n).
func samplePositions(n, k int) []int {
	if k >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if k == 1 {
		return []int{0}
	}
	out := make([]int, 0, k)
	for j := 0; j < k; j++ {
		out = append(out, j*(n-1)/(k-1))
	}
	return out
}

// String describes the view without projecting it.
func (v *View) String() string {
	return fmt.Sprintf("View(%s, n=%d)", v.l.Family(), v.Len())
}
