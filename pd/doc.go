// Package pd implements the planar-diagram state sum behind the arrow
// polynomial of a virtual knot.
//
// What:
//
//   - Arc and Crossing: the edge and vertex records of a signed planar
//     diagram. Crossing labels run clockwise from the end of the over-strand.
//   - State: one term of the state sum, a ring-valued weight plus the arcs
//     produced by one choice of smoothing at every crossing. Reduce merges
//     arcs at shared endpoints until only whole loops remain; Loops reports
//     the loop count and how many loops sit at each winding level.
//   - Diagram: owns the crossings and all 2ⁿ reduced states, and assembles
//     the normalized arrow polynomial.
//
// Why:
//
//   - The arrow polynomial refines the Kauffman bracket: oriented smoothings
//     leave cusps on the loops, and surviving cusp pairs are recorded by the
//     auxiliary variables Kᵢ, which detect virtual crossings.
//
// Algorithm:
//
//  1. Expansion: a layered worklist; every crossing doubles the list, the
//     A-smoothing first, and every branch owns a private copy of its arcs.
//  2. Reduction: single local merges (see State.Reduce) until fixpoint.
//  3. Profiling: loops are traced greedily; a loop with c arcs contributes
//     to level ⌊c/2⌋.
//  4. Assembly: Σ weight·d^(L−1)·Π Kᵢ^pᵢ with d = −A² − A⁻², multiplied by
//     (−A³)^(−writhe).
//
// Complexity:
//
//   - NewDiagram:      O(2ⁿ·n³) time, O(2ⁿ·n) memory (n = crossings).
//   - ArrowPolynomial: O(2ⁿ) ring operations.
//
// Options:
//
//   - WithWorkers(n):       reduce and profile states on n goroutines.
//   - WithContext(ctx):     cancel the reduction phase.
//   - WithLogger(l):        debug logging through log/slog.
//   - WithMaxCrossings(n):  refuse diagrams with more than n crossings.
//
// Errors:
//
//   - ErrNilRing:            no ring supplied.
//   - ErrRingNotLaurent:     the ring cannot invert A.
//   - ErrTooManyCrossings:   more crossings than Options.MaxCrossings.
//   - ErrNegativeLabel:      a crossing carries a negative label.
//   - ErrLabelMultiplicity:  a label does not occur in exactly two slots.
//   - context errors from WithContext.
package pd
