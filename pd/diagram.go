package pd

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arrowpoly/ring"
)

// Diagram is a signed planar diagram together with its fully reduced
// states. It is immutable once NewDiagram returns.
type Diagram[E any] struct {
	ring      ring.Ring[E]
	aInv      E
	crossings []Crossing
	states    []State[E]
	profiles  []Profile
	opts      Options
}

// NewDiagram builds the diagram for crossings over ring r: it expands all
// 2ⁿ smoothings, reduces every state and records its loop profile.
//
// Preconditions and validation (in order):
//  1. r must be non-nil (ErrNilRing).
//  2. len(crossings) ≤ MaxCrossings (ErrTooManyCrossings).
//  3. crossings pass ValidateCrossings.
//  4. r must invert A (ErrRingNotLaurent).
//
// State order follows the smoothing choices in crossing order, crossing 0
// being the most significant choice and the A-smoothing preceding the
// A⁻¹-smoothing.
func NewDiagram[E any](r ring.Ring[E], crossings []Crossing, opts ...Option) (*Diagram[E], error) {
	// 1. Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate input
	if r == nil {
		return nil, ErrNilRing
	}
	if len(crossings) > cfg.MaxCrossings {
		return nil, fmt.Errorf("%d crossings, limit %d: %w", len(crossings), cfg.MaxCrossings, ErrTooManyCrossings)
	}
	if err := ValidateCrossings(crossings); err != nil {
		return nil, err
	}
	aInv, err := r.Pow(r.A(), -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRingNotLaurent, err)
	}

	d := &Diagram[E]{
		ring:      r,
		aInv:      aInv,
		crossings: append([]Crossing(nil), crossings...),
		opts:      cfg,
	}

	// 3. Expand, then reduce and profile
	d.states = d.expand()
	cfg.Logger.Debug("expanded diagram",
		"crossings", len(d.crossings), "states", len(d.states))
	if err = d.reduceAll(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("reduced states", "states", len(d.states), "workers", cfg.Workers)

	return d, nil
}

// expand enumerates the smoothings layer by layer: each crossing replaces
// every partial state by its A-branch followed by its A⁻¹-branch.
func (d *Diagram[E]) expand() []State[E] {
	r := d.ring
	a := r.A()
	layer := []State[E]{{Weight: r.One()}}
	for _, c := range d.crossings {
		aArcs, bArcs := c.smoothings()
		next := make([]State[E], 0, 2*len(layer))
		for _, s := range layer {
			next = append(next,
				State[E]{Weight: r.Mul(s.Weight, a), Arcs: extend(s.Arcs, aArcs)},
				State[E]{Weight: r.Mul(s.Weight, d.aInv), Arcs: extend(s.Arcs, bArcs)},
			)
		}
		layer = next
	}

	return layer
}

// extend returns a fresh slice holding arcs followed by add.
func extend(arcs []Arc, add [2]Arc) []Arc {
	out := make([]Arc, len(arcs), len(arcs)+2)
	copy(out, arcs)

	return append(out, add[0], add[1])
}

// reduceAll reduces every state and records its profile, sequentially or
// on Options.Workers goroutines. States are disjoint, so chunks need no
// locking.
func (d *Diagram[E]) reduceAll() error {
	d.profiles = make([]Profile, len(d.states))
	work := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := d.opts.Ctx.Err(); err != nil {
				return err
			}
			d.states[i].Reduce()
			d.profiles[i] = d.states[i].Loops()
		}

		return nil
	}

	n := len(d.states)
	if d.opts.Workers <= 1 || n < 2 {
		return work(0, n)
	}

	g, ctx := errgroup.WithContext(d.opts.Ctx)
	g.SetLimit(d.opts.Workers)
	chunk := (n + 4*d.opts.Workers - 1) / (4 * d.opts.Workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return work(lo, hi)
		})
	}

	return g.Wait()
}

// Crossings returns a copy of the diagram's crossings.
func (d *Diagram[E]) Crossings() []Crossing {
	return append([]Crossing(nil), d.crossings...)
}

// States returns copies of the reduced states in expansion order.
func (d *Diagram[E]) States() []State[E] {
	out := make([]State[E], len(d.states))
	for i, s := range d.states {
		out[i] = s.Clone()
	}

	return out
}

// Profiles returns the loop profile of every state, aligned with States.
func (d *Diagram[E]) Profiles() []Profile {
	out := make([]Profile, len(d.profiles))
	for i, p := range d.profiles {
		out[i] = append(Profile(nil), p...)
	}

	return out
}

// Len returns the number of crossings.
func (d *Diagram[E]) Len() int { return len(d.crossings) }

// Writhe returns #positive − #negative crossings.
func (d *Diagram[E]) Writhe() int {
	w := 0
	for _, c := range d.crossings {
		w += c.Sign()
	}

	return w
}
