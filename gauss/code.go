package gauss

import (
	"fmt"
	"strings"
)

// CrossingCode is one symbol of a Gauss code.
type CrossingCode struct {
	Over     bool // passing over (O) or under (U) the crossing
	Label    rune // crossing identifier
	Positive bool // crossing sign
}

// String renders c as "O1+", "Ub-", ...
func (c CrossingCode) String() string {
	over, sign := 'U', '-'
	if c.Over {
		over = 'O'
	}
	if c.Positive {
		sign = '+'
	}

	return string([]rune{over, c.Label, sign})
}

// GaussCode is the cyclic sequence of crossing codes along the knot.
type GaussCode struct {
	Codes []CrossingCode
}

// Len returns the number of crossing codes (twice the number of crossings
// for a valid code).
func (g *GaussCode) Len() int { return len(g.Codes) }

// Labels returns the distinct labels in first-seen order.
func (g *GaussCode) Labels() []rune {
	seen := make(map[rune]struct{}, len(g.Codes)/2)
	out := make([]rune, 0, len(g.Codes)/2)
	for _, c := range g.Codes {
		if _, ok := seen[c.Label]; ok {
			continue
		}
		seen[c.Label] = struct{}{}
		out = append(out, c.Label)
	}

	return out
}

// String re-serialises g; Parse(g.String()) reproduces g.
func (g *GaussCode) String() string {
	var sb strings.Builder
	for _, c := range g.Codes {
		sb.WriteString(c.String())
	}

	return sb.String()
}

// IsValid reports whether Validate succeeds.
func (g *GaussCode) IsValid() bool { return g.Validate() == nil }

// Validate checks that every label occurs exactly twice, once over and once
// under, with the same sign. Labels are checked in first-seen order and the
// first failure is returned, joined with ErrInvalidCode.
//
// Complexity: O(n) time and memory.
func (g *GaussCode) Validate() error {
	// 1. Collect occurrences per label
	occ := make(map[rune][]CrossingCode, len(g.Codes)/2)
	for _, c := range g.Codes {
		occ[c.Label] = append(occ[c.Label], c)
	}

	// 2. Check each label in deterministic order
	for _, l := range g.Labels() {
		cs := occ[l]
		switch {
		case len(cs) != 2:
			return invalid(l, ErrLabelCount, "found %d occurrences", len(cs))
		case cs[0].Over == cs[1].Over:
			return invalid(l, ErrSameOverUnder, "%s and %s", cs[0], cs[1])
		case cs[0].Positive != cs[1].Positive:
			return invalid(l, ErrSignMismatch, "%s and %s", cs[0], cs[1])
		}
	}

	return nil
}

// invalid builds "label 'x': <detail>: gauss: invalid code: <reason>".
func invalid(label rune, reason error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)

	return fmt.Errorf("label %q: %s: %w: %w", label, detail, ErrInvalidCode, reason)
}
