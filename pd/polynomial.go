package pd

// ArrowPolynomial assembles the normalized arrow polynomial
//
//	(−A³)^(−w) · Σₛ weight(s) · d^(L(s)−1) · Π Kᵢ^pᵢ(s),   d = −A² − A⁻²,
//
// where w is the writhe and [L, p₁, …] the profile of state s. The result
// is passed through the ring's Normalize.
// Complexity: O(2ⁿ·(L+Σpᵢ)) ring multiplications.
func (d *Diagram[E]) ArrowPolynomial() E {
	r := d.ring
	a := r.A()

	// 1. Loop factor d = −A² − A⁻² and its powers, built on demand
	loop := r.Neg(r.Add(r.Mul(a, a), r.Mul(d.aInv, d.aInv)))
	loopPow := []E{r.One()}
	kVars := []E{}

	sum := r.Zero()
	for i, s := range d.states {
		p := d.profiles[i]

		// 2. weight · d^(L−1)
		for len(loopPow) < p.Loops() {
			loopPow = append(loopPow, r.Mul(loopPow[len(loopPow)-1], loop))
		}
		term := s.Weight
		if p.Loops() > 0 {
			term = r.Mul(term, loopPow[p.Loops()-1])
		}

		// 3. Π Kᵢ^pᵢ
		for lvl := 1; lvl <= p.MaxLevel(); lvl++ {
			for len(kVars) < lvl {
				kVars = append(kVars, r.K(len(kVars)+1))
			}
			for e := 0; e < p.Level(lvl); e++ {
				term = r.Mul(term, kVars[lvl-1])
			}
		}
		sum = r.Add(sum, term)
	}

	// 4. Writhe normalization by (−A³)^(−w)
	w := d.Writhe()
	unit := r.Neg(r.Mul(r.Mul(a, a), a)) // −A³
	if w > 0 {
		unit = r.Neg(r.Mul(r.Mul(d.aInv, d.aInv), d.aInv)) // (−A³)⁻¹ = −A⁻³
	}
	for n := abs(w); n > 0; n-- {
		sum = r.Mul(sum, unit)
	}
	d.opts.Logger.Debug("assembled arrow polynomial",
		"states", len(d.states), "writhe", w, "levels", len(kVars))

	return r.Normalize(sum)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
