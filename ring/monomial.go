package ring

import (
	"strconv"
	"strings"
)

// Monomial is A^A · K₁^K[0] · K₂^K[1] · …
// K never carries trailing zero exponents, so equal monomials have equal keys.
type Monomial struct {
	A int   // exponent of A, any sign
	K []int // K[i-1] is the exponent of Kᵢ, all ≥ 0
}

// KDegree returns the total degree in the K variables.
func (m Monomial) KDegree() int {
	d := 0
	for _, e := range m.K {
		d += e
	}

	return d
}

// KExp returns the exponent of Kᵢ (0 when absent).
func (m Monomial) KExp(i int) int {
	if i < 1 || i > len(m.K) {
		return 0
	}

	return m.K[i-1]
}

// IsConstant reports whether m is the empty monomial 1.
func (m Monomial) IsConstant() bool {
	return m.A == 0 && len(m.K) == 0
}

func (m Monomial) mul(o Monomial) Monomial {
	n := len(m.K)
	if len(o.K) > n {
		n = len(o.K)
	}
	k := make([]int, n)
	copy(k, m.K)
	for i, e := range o.K {
		k[i] += e
	}

	return Monomial{A: m.A + o.A, K: trimK(k)}
}

// key is the map key of m inside a Poly.
func (m Monomial) key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.A))
	for _, e := range m.K {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// trimK drops trailing zero exponents.
func trimK(k []int) []int {
	n := len(k)
	for n > 0 && k[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}

	return k[:n]
}

// compareK orders K parts: lower total degree first, then the larger
// exponent at the lowest index first (K₁² < K₁K₂ < K₂²).
func compareK(a, b Monomial) int {
	da, db := a.KDegree(), b.KDegree()
	if da != db {
		if da < db {
			return -1
		}

		return 1
	}
	n := len(a.K)
	if len(b.K) > n {
		n = len(b.K)
	}
	for i := 1; i <= n; i++ {
		ea, eb := a.KExp(i), b.KExp(i)
		if ea != eb {
			if ea > eb {
				return -1
			}

			return 1
		}
	}

	return 0
}

// compareMonomial is the canonical term order: grouped by K part, and
// within a group by descending power of A.
func compareMonomial(a, b Monomial) int {
	if c := compareK(a, b); c != 0 {
		return c
	}
	switch {
	case a.A > b.A:
		return -1
	case a.A < b.A:
		return 1
	}

	return 0
}
