package ring

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/apd/v3"
)

// Term is one coefficient·monomial pair of a Poly.
type Term struct {
	Coeff *apd.BigInt
	Mono  Monomial
}

// Poly is an element of ℤ[A, A⁻¹, K₁, K₂, …].
// The zero value is the zero polynomial. A Poly is never mutated after
// construction; terms with a zero coefficient are never stored.
type Poly struct {
	terms map[string]Term
}

// Laurent is the Ring implementation over Poly. It carries no state.
type Laurent struct{}

var _ Ring[Poly] = Laurent{}

// NewLaurent returns the Laurent polynomial ring.
func NewLaurent() Laurent { return Laurent{} }

// Zero implements Ring.
func (Laurent) Zero() Poly { return Poly{} }

// One implements Ring.
func (Laurent) One() Poly { return Monic(Monomial{}) }

// Int implements Ring.
func (Laurent) Int(n int64) Poly {
	return single(apd.NewBigInt(n), Monomial{})
}

// A implements Ring.
func (Laurent) A() Poly { return Monic(Monomial{A: 1}) }

// K implements Ring. It panics when i < 1.
func (Laurent) K(i int) Poly {
	if i < 1 {
		panic(fmt.Sprintf("ring: K index must be ≥ 1, got %d", i))
	}
	k := make([]int, i)
	k[i-1] = 1

	return Monic(Monomial{K: k})
}

// Add implements Ring.
func (Laurent) Add(x, y Poly) Poly {
	out := make(map[string]Term, len(x.terms)+len(y.terms))
	for k, t := range x.terms {
		out[k] = t
	}
	for k, t := range y.terms {
		accumulate(out, k, t.Coeff, t.Mono)
	}

	return Poly{terms: out}
}

// Sub implements Ring.
func (r Laurent) Sub(x, y Poly) Poly {
	return r.Add(x, r.Neg(y))
}

// Neg implements Ring.
func (Laurent) Neg(x Poly) Poly {
	out := make(map[string]Term, len(x.terms))
	for k, t := range x.terms {
		out[k] = Term{Coeff: new(apd.BigInt).Neg(t.Coeff), Mono: t.Mono}
	}

	return Poly{terms: out}
}

// Mul implements Ring.
func (Laurent) Mul(x, y Poly) Poly {
	out := make(map[string]Term, len(x.terms)*len(y.terms))
	for _, a := range x.terms {
		for _, b := range y.terms {
			m := a.Mono.mul(b.Mono)
			accumulate(out, m.key(), new(apd.BigInt).Mul(a.Coeff, b.Coeff), m)
		}
	}

	return Poly{terms: out}
}

// Pow implements Ring. Only ±A^n is invertible: K variables carry
// non-negative exponents.
func (r Laurent) Pow(x Poly, n int) (Poly, error) {
	if n < 0 {
		inv, err := r.inverse(x)
		if err != nil {
			return Poly{}, err
		}
		x, n = inv, -n
	}
	// 1. Square-and-multiply
	result := r.One()
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = r.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = r.Mul(base, base)
		}
	}

	return result, nil
}

func (Laurent) inverse(x Poly) (Poly, error) {
	if len(x.terms) != 1 {
		return Poly{}, fmt.Errorf("inverse of %s: %w", x, ErrNotInvertible)
	}
	for _, t := range x.terms {
		if len(t.Mono.K) != 0 || t.Coeff.CmpAbs(apd.NewBigInt(1)) != 0 {
			return Poly{}, fmt.Errorf("inverse of %s: %w", x, ErrNotInvertible)
		}

		return single(new(apd.BigInt).Set(t.Coeff), Monomial{A: -t.Mono.A}), nil
	}

	return Poly{}, ErrNotInvertible
}

// Normalize implements Ring. Poly is kept canonical by every operation,
// so Normalize only rebuilds the term map without spare capacity.
func (Laurent) Normalize(x Poly) Poly {
	out := make(map[string]Term, len(x.terms))
	for k, t := range x.terms {
		if t.Coeff.Sign() != 0 {
			out[k] = t
		}
	}

	return Poly{terms: out}
}

// Equal implements Ring.
func (Laurent) Equal(x, y Poly) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for k, t := range x.terms {
		u, ok := y.terms[k]
		if !ok || t.Coeff.Cmp(u.Coeff) != 0 {
			return false
		}
	}

	return true
}

// Monic returns the polynomial consisting of the single monomial m.
func Monic(m Monomial) Poly {
	return single(apd.NewBigInt(1), m)
}

// IsZero reports whether p has no terms.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of non-zero terms.
func (p Poly) Len() int { return len(p.terms) }

// Terms returns the terms of p in canonical order. The returned
// coefficients must not be modified.
func (p Poly) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareMonomial(out[i].Mono, out[j].Mono) < 0
	})

	return out
}

// Coeff returns the coefficient of m in p as an int64 and whether it fits.
func (p Poly) Coeff(m Monomial) (int64, bool) {
	m.K = trimK(append([]int(nil), m.K...))
	t, ok := p.terms[m.key()]
	if !ok {
		return 0, true
	}
	if !t.Coeff.IsInt64() {
		return 0, false
	}

	return t.Coeff.Int64(), true
}

// HasK reports whether any term of p involves a K variable.
func (p Poly) HasK() bool {
	for _, t := range p.terms {
		if len(t.Mono.K) > 0 {
			return true
		}
	}

	return false
}

func single(c *apd.BigInt, m Monomial) Poly {
	if c.Sign() == 0 {
		return Poly{}
	}
	m.K = trimK(m.K)

	return Poly{terms: map[string]Term{m.key(): {Coeff: c, Mono: m}}}
}

// accumulate adds c·m into out, dropping the entry if it cancels.
func accumulate(out map[string]Term, key string, c *apd.BigInt, m Monomial) {
	if prev, ok := out[key]; ok {
		sum := new(apd.BigInt).Add(prev.Coeff, c)
		if sum.Sign() == 0 {
			delete(out, key)

			return
		}
		out[key] = Term{Coeff: sum, Mono: prev.Mono}

		return
	}
	if c.Sign() != 0 {
		out[key] = Term{Coeff: c, Mono: m}
	}
}
