package ring

import "errors"

// ErrNotInvertible indicates that a negative power of a non-unit was requested.
var ErrNotInvertible = errors.New("ring: element is not invertible")

// Ring is the arithmetic capability consumed by the state-sum engine.
// Implementations must treat values of E as immutable: every operation
// returns a fresh value and never modifies its arguments.
type Ring[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Int returns the constant n.
	Int(n int64) E
	// A returns the indeterminate A.
	A() E
	// K returns the auxiliary indeterminate Kᵢ, i ≥ 1.
	K(i int) E

	Add(x, y E) E
	Sub(x, y E) E
	Mul(x, y E) E
	Neg(x E) E

	// Pow returns xⁿ. Negative n requires x to be a unit and returns
	// ErrNotInvertible otherwise.
	Pow(x E, n int) (E, error)

	// Normalize returns the canonical form of x.
	Normalize(x E) E

	// Equal reports whether x and y denote the same element.
	Equal(x, y E) bool
}
