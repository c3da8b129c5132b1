package gauss

import "fmt"

// Parse reads a Gauss code such as "O1-O2-U1-U2-". The text is taken rune by
// rune, so labels may be any single character. The result is validated; on
// any failure no code is returned.
//
// Errors: ErrFormat (wrapped with the offending rune position) or the
// Validate error (ErrInvalidCode).
func Parse(text string) (*GaussCode, error) {
	runes := []rune(text)
	if len(runes)%3 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 3: %w", len(runes), ErrFormat)
	}

	g := &GaussCode{Codes: make([]CrossingCode, 0, len(runes)/3)}
	for i := 0; i < len(runes); i += 3 {
		var c CrossingCode
		switch runes[i] {
		case 'O':
			c.Over = true
		case 'U':
		default:
			return nil, fmt.Errorf("position %d: got %q, want 'O' or 'U': %w", i, runes[i], ErrFormat)
		}
		c.Label = runes[i+1]
		switch runes[i+2] {
		case '+':
			c.Positive = true
		case '-':
		default:
			return nil, fmt.Errorf("position %d: got %q, want '+' or '-': %w", i+2, runes[i+2], ErrFormat)
		}
		g.Codes = append(g.Codes, c)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(text string) *GaussCode {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return g
}
