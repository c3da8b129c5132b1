// Package gauss parses signed Gauss codes of virtual knots and converts them
// into the signed planar diagrams consumed by package pd.
//
// What:
//
//   - CrossingCode: one symbol of a Gauss code, e.g. "O1+" (over, label '1',
//     positive crossing) or "Ua-".
//   - GaussCode: the cyclic sequence of crossing codes met while walking the
//     knot once. Labels are arbitrary runes; each must appear exactly twice,
//     once over and once under, with the same sign.
//   - Parse: text → *GaussCode, rejecting malformed and invalid input.
//   - Crossings / ToDiagram / ArrowPolynomial: conversion to pd.Crossing
//     records and the full invariant computation.
//
// Text format:
//
//	code   := triple*
//	triple := ('O' | 'U') label ('+' | '-')
//	label  := any single rune
//
// The empty text is the trivial diagram (the unknot).
//
// Conversion:
//
// Walking the code, position i is entered along arc i and left along arc
// (i+1) mod n. Crossing labels are numbered clockwise starting from the
// outgoing end of the over-strand:
//
//	over code:           slot0 = outgoing, slot2 = incoming
//	positive under code: slot1 = incoming, slot3 = outgoing
//	negative under code: slot1 = outgoing, slot3 = incoming
//
// Crossings are emitted in the order their labels are first seen, so equal
// inputs always produce equal diagrams.
//
// Complexity:
//
//   - Parse, Validate, Crossings: O(n) time and memory, n = number of codes.
//   - ArrowPolynomial: see package pd, O(2ᶜ·c³) for c crossings.
//
// Errors:
//
//   - ErrFormat        text is not a sequence of well-formed triples
//   - ErrInvalidCode   well-formed, but not a Gauss code; always joined with
//     one of ErrLabelCount, ErrSameOverUnder, ErrSignMismatch
//   - pd errors        propagated from diagram construction
package gauss
