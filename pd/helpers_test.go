package pd_test

import (
	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/ring"
)

// kinkChain returns n Reidemeister-I kinks of the given handedness strung
// along one component: a diagram of the unknot with writhe ±n.
func kinkChain(n int, h pd.Handedness) []pd.Crossing {
	size := 2 * n
	out := make([]pd.Crossing, n)
	for k := 0; k < n; k++ {
		in, mid, next := 2*k, 2*k+1, (2*k+2)%size
		if h == pd.Positive {
			out[k] = pd.Crossing{Handedness: h, Labels: [4]int{mid, mid, in, next}}
		} else {
			out[k] = pd.Crossing{Handedness: h, Labels: [4]int{mid, next, in, mid}}
		}
	}

	return out
}

// rightTrefoil is the positive classical trefoil (Gauss code O1+U2+O3+U1+O2+U3+).
func rightTrefoil() []pd.Crossing {
	return []pd.Crossing{
		{Handedness: pd.Positive, Labels: [4]int{1, 3, 0, 4}},
		{Handedness: pd.Positive, Labels: [4]int{5, 1, 4, 2}},
		{Handedness: pd.Positive, Labels: [4]int{3, 5, 2, 0}},
	}
}

// virtualTrefoil has Gauss code O1-O2-U1-U2-.
func virtualTrefoil() []pd.Crossing {
	return []pd.Crossing{
		{Handedness: pd.Negative, Labels: [4]int{1, 3, 0, 2}},
		{Handedness: pd.Negative, Labels: [4]int{2, 0, 1, 3}},
	}
}

// opposingKinks has Gauss code O1+U1+O2-U2-: an unknot with writhe 0.
func opposingKinks() []pd.Crossing {
	return []pd.Crossing{
		{Handedness: pd.Positive, Labels: [4]int{1, 1, 0, 2}},
		{Handedness: pd.Negative, Labels: [4]int{3, 0, 2, 3}},
	}
}

// noInverse is a Laurent ring that refuses negative powers.
type noInverse struct {
	ring.Laurent
}

func (noInverse) Pow(x ring.Poly, n int) (ring.Poly, error) {
	if n < 0 {
		return ring.Poly{}, ring.ErrNotInvertible
	}

	return ring.NewLaurent().Pow(x, n)
}

// evalRing evaluates at A = a and Kᵢ = k(i) over float64.
type evalRing struct {
	a float64
	k func(i int) float64
}

func (e evalRing) Zero() float64 { return 0 }
func (e evalRing) One() float64 { return 1 }
func (e evalRing) Int(n int64) float64 { return float64(n) }
func (e evalRing) A() float64 { return e.a }
func (e evalRing) K(i int) float64 { return e.k(i) }
func (e evalRing) Add(x, y float64) float64 { return x + y }
func (e evalRing) Sub(x, y float64) float64 { return x - y }
func (e evalRing) Mul(x, y float64) float64 { return x * y }
func (e evalRing) Neg(x float64) float64 { return -x }
func (e evalRing) Normalize(x float64) float64 { return x }
func (e evalRing) Equal(x, y float64) bool { return x == y }

func (e evalRing) Pow(x float64, n int) (float64, error) {
	if n < 0 {
		if x == 0 {
			return 0, ring.ErrNotInvertible
		}
		x, n = 1/x, -n
	}
	out := 1.0
	for ; n > 0; n-- {
		out *= x
	}

	return out, nil
}

// evaluate substitutes the evalRing values into p.
func evaluate(p ring.Poly, e evalRing) float64 {
	sum := 0.0
	for _, t := range p.Terms() {
		v := float64(t.Coeff.Int64())
		ap, _ := e.Pow(e.a, t.Mono.A)
		v *= ap
		for i, exp := range t.Mono.K {
			kp, _ := e.Pow(e.k(i+1), exp)
			v *= kp
		}
		sum += v
	}

	return sum
}
