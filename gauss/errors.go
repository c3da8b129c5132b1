package gauss

import "errors"

// ErrFormat indicates the text is not a sequence of O|U, label, +|- triples.
// Usage: if errors.Is(err, ErrFormat) { /* re-prompt for input */ }.
var ErrFormat = errors.New("gauss: malformed code")

// ErrInvalidCode indicates a well-formed code that does not describe a knot
// diagram. Validate joins it with the specific reason below.
// Usage: if errors.Is(err, ErrInvalidCode) { /* reject input */ }.
var ErrInvalidCode = errors.New("gauss: invalid code")

// ErrLabelCount indicates a label that does not occur exactly twice.
var ErrLabelCount = errors.New("gauss: label must occur exactly twice")

// ErrSameOverUnder indicates both occurrences of a label are over, or both under.
var ErrSameOverUnder = errors.New("gauss: label must be over once and under once")

// ErrSignMismatch indicates the two occurrences of a label disagree on sign.
var ErrSignMismatch = errors.New("gauss: label occurrences have different signs")
