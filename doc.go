// Package arrowpoly computes the arrow polynomial, an invariant of virtual
// knots, from a signed Gauss code.
//
// What is the arrow polynomial?
//
//	A refinement of the Kauffman bracket for virtual knots. Every crossing
//	is smoothed in two ways; the oriented smoothing leaves cusps on the
//	resulting loops, and loops whose cusps cannot cancel contribute
//	auxiliary variables K₁, K₂, … The result lives in ℤ[A, A⁻¹, K₁, K₂, …].
//	Terms in K certify that a knot is not classical.
//
// Layout:
//
//	ring/           Ring[E] capability and the Laurent polynomial ring (apd.BigInt coefficients)
//	pd/             signed planar diagrams, state expansion, reduction, state sum
//	gauss/          Gauss code parsing, validation and conversion to pd
//	render/         plain, Unicode and lipgloss-styled output
//	cmd/arrowpoly/  interactive prompt
//
// Quick example:
//
//	p, err := arrowpoly.Compute("O1-O2-U1-U2-")
//	// p.String() == "A^4 - A^10 K_1 + A^6 K_1"
//
// Large diagrams: the expansion visits 2ⁿ states. pd.WithWorkers spreads the
// reduction over goroutines, pd.WithMaxCrossings bounds n.
//
//	go install github.com/katalvlaran/arrowpoly/cmd/arrowpoly@latest
package arrowpoly
