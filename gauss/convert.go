package gauss

import (
	"github.com/katalvlaran/arrowpoly/pd"
)

// Slot indices of a pd.Crossing.
const (
	slotOverOut = iota
	slotUnderA
	slotOverIn
	slotUnderB
)

// partial is a crossing under construction: handedness is known from the
// first occurrence, the label slots fill in over two visits.
type partial struct {
	handedness pd.Handedness
	labels     [4]int
	filled     [4]bool
}

func (p *partial) set(slot, label int) {
	p.labels[slot] = label
	p.filled[slot] = true
}

func (p *partial) complete() bool {
	return p.filled[0] && p.filled[1] && p.filled[2] && p.filled[3]
}

// Crossings converts g into signed planar-diagram crossings, one per label,
// ordered by first appearance of the label.
//
// Steps:
//  1. Validate g.
//  2. Walk the code; assign each new label the next dense index and fill the
//     slots of its partial crossing for the arc entering (i) and leaving
//     ((i+1) mod n) position i.
//  3. Finalise every partial into an immutable pd.Crossing.
//
// Complexity: O(n) time and memory.
func (g *GaussCode) Crossings() ([]pd.Crossing, error) {
	// 1. Reject invalid codes up front
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 2. Fill partial crossings
	n := len(g.Codes)
	index := make(map[rune]int, n/2)
	parts := make([]partial, 0, n/2)
	for i, c := range g.Codes {
		in, out := i, (i+1)%n
		k, ok := index[c.Label]
		if !ok {
			k = len(parts)
			index[c.Label] = k
			h := pd.Negative
			if c.Positive {
				h = pd.Positive
			}
			parts = append(parts, partial{handedness: h})
		}
		p := &parts[k]
		switch {
		case c.Over:
			p.set(slotOverOut, out)
			p.set(slotOverIn, in)
		case c.Positive:
			p.set(slotUnderA, in)
			p.set(slotUnderB, out)
		default:
			p.set(slotUnderA, out)
			p.set(slotUnderB, in)
		}
	}

	// 3. Finalise
	crossings := make([]pd.Crossing, len(parts))
	for k := range parts {
		if !parts[k].complete() {
			// Unreachable for a validated code.
			return nil, invalid(g.Labels()[k], ErrLabelCount, "crossing slots incomplete")
		}
		crossings[k] = pd.Crossing{Handedness: parts[k].handedness, Labels: parts[k].labels}
	}

	return crossings, nil
}
