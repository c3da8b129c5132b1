package gauss

import (
	"fmt"

	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/ring"
)

// ToDiagram converts g into a fully expanded and reduced pd.Diagram over r.
func ToDiagram[E any](g *GaussCode, r ring.Ring[E], opts ...pd.Option) (*pd.Diagram[E], error) {
	crossings, err := g.Crossings()
	if err != nil {
		return nil, err
	}
	d, err := pd.NewDiagram[E](r, crossings, opts...)
	if err != nil {
		return nil, fmt.Errorf("diagram of %s: %w", g, err)
	}

	return d, nil
}

// ArrowPolynomial returns the normalised arrow polynomial of the knot g
// describes, computed over r.
func ArrowPolynomial[E any](g *GaussCode, r ring.Ring[E], opts ...pd.Option) (E, error) {
	d, err := ToDiagram[E](g, r, opts...)
	if err != nil {
		var zero E

		return zero, err
	}

	return d.ArrowPolynomial(), nil
}
