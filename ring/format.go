package ring

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Notation controls how a Poly is written out.
type Notation struct {
	Minus string           // sign glyph between and before terms
	Pow   func(int) string // exponent suffix for e ≠ 1
	Index func(int) string // Kᵢ subscript
	Sep   string           // separator between factors of one term
}

// PlainNotation is ASCII output: -A^-2 K_1^2.
var PlainNotation = Notation{
	Minus: "-",
	Pow:   func(e int) string { return "^" + strconv.Itoa(e) },
	Index: func(i int) string { return "_" + strconv.Itoa(i) },
	Sep:   " ",
}

// UnicodeNotation uses superscript exponents and subscript indices: −A⁻² K₁².
var UnicodeNotation = Notation{
	Minus: "−",
	Pow:   func(e int) string { return mapDigits(strconv.Itoa(e), superscripts) },
	Index: func(i int) string { return mapDigits(strconv.Itoa(i), subscripts) },
	Sep:   " ",
}

var (
	superscripts = map[rune]rune{
		'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
		'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
	}
	subscripts = map[rune]rune{
		'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
		'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	}
)

func mapDigits(s string, table map[rune]rune) string {
	var sb strings.Builder
	for _, r := range s {
		if m, ok := table[r]; ok {
			sb.WriteRune(m)
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// String renders p in PlainNotation.
func (p Poly) String() string {
	return p.Format(PlainNotation)
}

// Format renders p in canonical term order using n.
func (p Poly) Format(n Notation) string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		neg := t.Coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			sb.WriteString(n.Minus)
		case i > 0 && neg:
			sb.WriteString(" " + n.Minus + " ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(formatTerm(t, n))
	}

	return sb.String()
}

func formatTerm(t Term, n Notation) string {
	abs := new(apd.BigInt).Abs(t.Coeff)
	var parts []string
	if t.Mono.IsConstant() || abs.Cmp(apd.NewBigInt(1)) != 0 {
		parts = append(parts, abs.String())
	}
	if t.Mono.A != 0 {
		parts = append(parts, "A"+exponent(t.Mono.A, n))
	}
	for i, e := range t.Mono.K {
		if e == 0 {
			continue
		}
		parts = append(parts, "K"+n.Index(i+1)+exponent(e, n))
	}

	return strings.Join(parts, n.Sep)
}

func exponent(e int, n Notation) string {
	if e == 1 {
		return ""
	}

	return n.Pow(e)
}
