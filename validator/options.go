// SPDX-License-Identifier: MIT

package validator

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLiteralThreshold is the longest Periodic pattern, in bytes, that
	// is accepted as a parameter rather than a copied block.
	DefaultLiteralThreshold = 16

	// DefaultAffinePrefix is how many leading positions of an Affine or
	// InstantDeduction law are compared with the original.
	DefaultAffinePrefix = 10

	// DefaultFullVerification leaves composite laws to the caller.
	DefaultFullVerification = false
)

const (
	panicLiteralThreshold = "validator: WithLiteralThreshold: threshold must be ≥ 1"
	panicAffinePrefix     = "validator: WithAffinePrefix: prefix must be ≥ 1"
)

// Option configures a Validator. Constructors panic only on meaningless
// values (programmer error).
type Option func(*config)

type config struct {
	literalThreshold int
	affinePrefix     int
	fullVerification bool
}

func defaultConfig() config {
	return config{
		literalThreshold: DefaultLiteralThreshold,
		affinePrefix:     DefaultAffinePrefix,
		fullVerification: DefaultFullVerification,
	}
}

// WithLiteralThreshold sets the longest accepted Periodic pattern.
func WithLiteralThreshold(k int) Option {
	if k < 1 {
		panic(panicLiteralThreshold)
	}
	return func(c *config) { c.literalThreshold = k }
}

// WithAffinePrefix sets how many Affine positions are compared.
func WithAffinePrefix(k int) Option {
	if k < 1 {
		panic(panicAffinePrefix)
	}
	return func(c *config) { c.affinePrefix = k }
}

// WithFullVerification projects every byte of composite laws and compares
// it with the original. O(n · depth).
func WithFullVerification() Option {
	return func(c *config) { c.fullVerification = true }
}
