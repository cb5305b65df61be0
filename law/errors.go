// SPDX-License-Identifier: MIT

package law

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every package that evaluates or inspects laws.
// Callers branch with errors.Is; context is attached with %w at the call site.
var (
	// ErrIndexOutOfRange indicates a projection index outside [0, n).
	ErrIndexOutOfRange = errors.New("law: index out of range")

	// ErrMalformedLaw indicates missing or internally inconsistent parameters.
	ErrMalformedLaw = errors.New("law: malformed law")

	// ErrUnsupportedDeltaLaw indicates a ReactiveDifferential whose difference
	// law has no closed-form partial sum. Always reported together with
	// ErrMalformedLaw.
	ErrUnsupportedDeltaLaw = errors.New("law: unsupported delta law")

	// ErrNonInvertible indicates a multiplier with no inverse modulo the
	// extent. Always reported together with ErrMalformedLaw.
	ErrNonInvertible = errors.New("law: multiplier not invertible")

	// ErrCompletion indicates a radial ring that the completion policy
	// refuses to fill.
	ErrCompletion = errors.New("law: ring completion failed")

	// ErrUnknownName indicates an unrecognized family, completion policy or
	// meta shape name.
	ErrUnknownName = errors.New("law: unknown name")

	// ErrUnknownFamily indicates an unrecognized family name. It also matches
	// ErrUnknownName.
	ErrUnknownFamily = fmt.Errorf("%w: family", ErrUnknownName)
)

// malformedf returns "<family>: law: malformed law: <message>".
func malformedf(f Family, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", f, ErrMalformedLaw, fmt.Sprintf(format, args...))
}

// malformedKindf is malformedf with a second, more specific sentinel attached.
func malformedKindf(f Family, kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %w: %s", f, ErrMalformedLaw, kind, fmt.Sprintf(format, args...))
}
