package arrowpoly

import (
	"github.com/katalvlaran/arrowpoly/gauss"
	"github.com/katalvlaran/arrowpoly/pd"
	"github.com/katalvlaran/arrowpoly/ring"
)

// Compute parses text as a Gauss code and returns its arrow polynomial over
// the Laurent ring.
//
// Errors: gauss.ErrFormat, gauss.ErrInvalidCode, and pd construction errors
// (pd.ErrTooManyCrossings, context cancellation).
func Compute(text string, opts ...pd.Option) (ring.Poly, error) {
	g, err := gauss.Parse(text)
	if err != nil {
		return ring.Poly{}, err
	}

	return gauss.ArrowPolynomial[ring.Poly](g, ring.NewLaurent(), opts...)
}
