// Package pd defines the arc and crossing records and the functional
// options shared by diagram construction.
package pd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/arrowpoly/core"
)

// Arc is a strand piece between two labels. When Oriented is set, Ends[0]
// is the tail and Ends[1] the head; otherwise Ends is an unordered pair.
type Arc struct {
	Oriented bool
	Ends     [2]int
}

// Tail returns the first end of the arc.
func (a Arc) Tail() int { return a.Ends[0] }

// Head returns the second end of the arc.
func (a Arc) Head() int { return a.Ends[1] }

// IsLoop reports whether both ends coincide, i.e. the arc closes on itself.
func (a Arc) IsLoop() bool { return a.Ends[0] == a.Ends[1] }

// String formats the arc as "[ oriented | tail, head ]".
func (a Arc) String() string {
	return fmt.Sprintf("[ %t | %d, %d ]", a.Oriented, a.Ends[0], a.Ends[1])
}

// Handedness is the sign of a classical crossing.
type Handedness int

const (
	// Positive is a right-handed crossing (+1 to the writhe).
	Positive Handedness = iota
	// Negative is a left-handed crossing (−1 to the writhe).
	Negative
)

// String returns "+" or "-".
func (h Handedness) String() string {
	if h == Positive {
		return "+"
	}

	return "-"
}

// Crossing is a signed classical crossing. Labels are listed clockwise,
// starting at the end of the over-strand.
type Crossing struct {
	Handedness Handedness
	Labels     [4]int
}

// Sign returns +1 for a positive and −1 for a negative crossing.
func (c Crossing) Sign() int {
	if c.Handedness == Positive {
		return 1
	}

	return -1
}

// String formats the crossing as "[ + | l0, l1, l2, l3 ]".
func (c Crossing) String() string {
	return fmt.Sprintf("[ %s | %d, %d, %d, %d ]",
		c.Handedness, c.Labels[0], c.Labels[1], c.Labels[2], c.Labels[3])
}

// smoothings returns the two arcs of the A-smoothing and of the
// A⁻¹-smoothing of c.
func (c Crossing) smoothings() (aArcs, bArcs [2]Arc) {
	l := c.Labels
	if c.Handedness == Positive {
		aArcs = [2]Arc{{Ends: [2]int{l[1], l[0]}}, {Ends: [2]int{l[2], l[3]}}}
		bArcs = [2]Arc{{Oriented: true, Ends: [2]int{l[2], l[1]}}, {Oriented: true, Ends: [2]int{l[0], l[3]}}}

		return aArcs, bArcs
	}
	aArcs = [2]Arc{{Oriented: true, Ends: [2]int{l[3], l[2]}}, {Oriented: true, Ends: [2]int{l[1], l[0]}}}
	bArcs = [2]Arc{{Ends: [2]int{l[2], l[1]}}, {Ends: [2]int{l[3], l[0]}}}

	return aArcs, bArcs
}

// ValidateCrossings checks that every label is non-negative and occurs in
// exactly two slots across all crossings. Labels and crossings form an
// incidence multigraph (crossing i is vertex −i−1); a label's degree is its
// slot count. The first offending label in crossing order is reported.
// Complexity: O(n).
func ValidateCrossings(crossings []Crossing) error {
	// 1. Incidence graph
	g := core.NewGraph(core.WithMultiEdges())
	for i, c := range crossings {
		for _, l := range c.Labels {
			if l < 0 {
				return fmt.Errorf("crossing %d %s: %w", i, c, ErrNegativeLabel)
			}
			_, _ = g.AddEdge(-i-1, l)
		}
	}

	// 2. Degree of each label, first seen first
	for _, c := range crossings {
		for _, l := range c.Labels {
			if _, _, n, _ := g.Degree(l); n != 2 {
				return fmt.Errorf("label %d appears %d times: %w", l, n, ErrLabelMultiplicity)
			}
		}
	}

	return nil
}

// DefaultMaxCrossings bounds the 2ⁿ expansion unless overridden.
const DefaultMaxCrossings = 24

// Options configures diagram construction.
type Options struct {
	// Ctx cancels the reduction phase; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of goroutines reducing and profiling states.
	// 1 (default) runs sequentially.
	Workers int

	// Logger receives debug records; defaults to a discarding logger.
	Logger *slog.Logger

	// MaxCrossings rejects larger diagrams with ErrTooManyCrossings.
	MaxCrossings int
}

// Option configures NewDiagram.
type Option func(*Options)

// DefaultOptions returns sequential, unlogged construction with a
// crossing limit of DefaultMaxCrossings.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Workers:      1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxCrossings: DefaultMaxCrossings,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of reduction goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pd: WithWorkers requires n ≥ 1, got %d", n))
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCrossings overrides the crossing limit. Panics if n < 0.
func WithMaxCrossings(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pd: WithMaxCrossings requires n ≥ 0, got %d", n))
	}

	return func(o *Options) {
		o.MaxCrossings = n
	}
}
