// SPDX-License-Identifier: MIT

package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per rejection kind. Branch with errors.Is.
var (
	// ErrNotMinimal: the encoded law is not strictly smaller than the
	// sequence it describes.
	ErrNotMinimal = errors.New("validator: law not minimal")

	// ErrLiteralLeakage: a parameter stores a verbatim block of bytes.
	ErrLiteralLeakage = errors.New("validator: literal leakage")

	// ErrBijectionViolation: projection disagrees with the original sequence.
	ErrBijectionViolation = errors.New("validator: bijection violation")
)

// Rejection is one failed check. Kind is one of the package sentinels (or
// law.ErrMalformedLaw for a nil law); Cause, when set, is the underlying
// projection error. Index is -1 when no position applies.
type Rejection struct {
	Kind   error
	Path   string
	Index  int
	Detail string
	Cause  error
}

func (r *Rejection) Error() string {
	var b strings.Builder
	b.WriteString(r.Kind.Error())
	if r.Path != "" {
		fmt.Fprintf(&b, " at %s", r.Path)
	}
	if r.Index >= 0 {
		fmt.Fprintf(&b, " index %d", r.Index)
	}
	if r.Detail != "" {
		b.WriteString(": ")
		b.WriteString(r.Detail)
	}
	if r.Cause != nil {
		b.WriteString(": ")
		b.WriteString(r.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the rejection kind and its cause to errors.Is/As.
func (r *Rejection) Unwrap() []error {
	if r.Cause == nil {
		return []error{r.Kind}
	}
	return []error{r.Kind, r.Cause}
}
