// Package ring supplies the symbolic arithmetic used by the arrow polynomial
// state sum: Laurent polynomials in the variable A with integer coefficients,
// extended by the auxiliary variables K₁, K₂, … that record loop windings.
//
// What:
//
//   - Ring[E] is the minimal capability the diagram engine depends on:
//     constants, the indeterminates A and Kᵢ, ring operations, integer
//     powers (negative powers only for units) and one Normalize call.
//   - Laurent implements Ring[Poly] over ℤ[A, A⁻¹, K₁, K₂, …].
//   - Poly is an immutable, sparse polynomial; coefficients are
//     arbitrary-precision integers (apd.BigInt), so no state sum overflows.
//
// Why:
//
//   - The engine composes ring operations but never inspects terms, so any
//     ring with the same operations (for example a numeric evaluator used
//     in tests) can be injected.
//
// Complexity:
//
//   - Add/Sub/Neg: O(t) for t terms.
//   - Mul:         O(t₁·t₂·k) where k = number of K variables in use.
//   - Pow:         O(log n) multiplications.
//
// Errors:
//
//   - ErrNotInvertible: a negative power was requested of a non-unit.
//
// Formatting:
//
//	Poly.String() renders plain ASCII ("-A^4 - A^-4 + A^-2 K_1");
//	Poly.Format(UnicodeNotation) renders superscripts ("−A⁴ − A⁻⁴ + A⁻² K₁").
package ring
