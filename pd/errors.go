package pd

import "errors"

// Sentinel errors for diagram construction.
var (
	// ErrNilRing indicates NewDiagram was called without a ring.
	ErrNilRing = errors.New("pd: ring is nil")

	// ErrRingNotLaurent indicates the supplied ring cannot invert A.
	ErrRingNotLaurent = errors.New("pd: ring must contain A⁻¹")

	// ErrTooManyCrossings indicates the diagram exceeds Options.MaxCrossings.
	ErrTooManyCrossings = errors.New("pd: too many crossings")

	// ErrNegativeLabel indicates a crossing slot holds a negative label.
	ErrNegativeLabel = errors.New("pd: negative arc label")

	// ErrLabelMultiplicity indicates a label that does not appear in exactly
	// two crossing slots, so the diagram does not close up.
	ErrLabelMultiplicity = errors.New("pd: arc label must appear exactly twice")
)
