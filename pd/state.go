package pd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/arrowpoly/bfs"
	"github.com/katalvlaran/arrowpoly/core"
)

// State is one term of the state sum: the product of the smoothing weights
// chosen so far and the arcs those smoothings produced. Arcs is rewritten
// in place by Reduce.
type State[E any] struct {
	Weight E
	Arcs   []Arc
}

// Clone returns a copy of s whose Arcs slice is independent of s.
func (s State[E]) Clone() State[E] {
	return State[E]{Weight: s.Weight, Arcs: append([]Arc(nil), s.Arcs...)}
}

// String formats the state as "weight, < arc arc … >" using fmt's %v for
// the weight.
func (s State[E]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprint(s.Weight))
	sb.WriteString(", < ")
	for _, a := range s.Arcs {
		sb.WriteString(a.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('>')

	return sb.String()
}

// Reduce merges arcs that share an endpoint until no merge applies.
// Each pass applies the first merge found over ordered pairs (i, j), i ≠ j:
//
//   - unoriented + unoriented sharing any end: unoriented arc over the free ends.
//   - oriented i + oriented j with i.head = j.tail: the two cusps cancel and
//     the result is the unoriented arc (i.tail, j.head).
//   - oriented i + unoriented j touching i.head: oriented i.tail → other end.
//   - oriented i + unoriented j touching i.tail: oriented other end → i.head.
//
// The merged arc replaces i and j is removed. Oriented pairs meeting
// tail-to-tail or head-to-head carry non-cancelling cusps and stay apart.
// Complexity: O(m³) for m arcs.
func (s *State[E]) Reduce() {
	for s.mergeOnce() {
	}
}

// Reduced reports whether no merge applies to s.
func (s *State[E]) Reduced() bool {
	for i := range s.Arcs {
		for j := range s.Arcs {
			if i == j {
				continue
			}
			if _, ok := merge(s.Arcs[i], s.Arcs[j]); ok {
				return false
			}
		}
	}

	return true
}

func (s *State[E]) mergeOnce() bool {
	for i := range s.Arcs {
		for j := range s.Arcs {
			if i == j {
				continue
			}
			m, ok := merge(s.Arcs[i], s.Arcs[j])
			if !ok {
				continue
			}
			s.Arcs[i] = m
			s.Arcs = append(s.Arcs[:j], s.Arcs[j+1:]...)

			return true
		}
	}

	return false
}

// merge combines x and y per the rules documented on Reduce.
func merge(x, y Arc) (Arc, bool) {
	switch {
	case !x.Oriented && !y.Oriented:
		switch {
		case x.Ends[1] == y.Ends[0]:
			return Arc{Ends: [2]int{x.Ends[0], y.Ends[1]}}, true
		case x.Ends[1] == y.Ends[1]:
			return Arc{Ends: [2]int{x.Ends[0], y.Ends[0]}}, true
		case x.Ends[0] == y.Ends[0]:
			return Arc{Ends: [2]int{y.Ends[1], x.Ends[1]}}, true
		case x.Ends[0] == y.Ends[1]:
			return Arc{Ends: [2]int{y.Ends[0], x.Ends[1]}}, true
		}

	case x.Oriented && y.Oriented:
		if x.Head() == y.Tail() {
			return Arc{Ends: [2]int{x.Tail(), y.Head()}}, true
		}

	case x.Oriented:
		switch {
		case x.Head() == y.Ends[0]:
			return Arc{Oriented: true, Ends: [2]int{x.Tail(), y.Ends[1]}}, true
		case x.Head() == y.Ends[1]:
			return Arc{Oriented: true, Ends: [2]int{x.Tail(), y.Ends[0]}}, true
		case x.Tail() == y.Ends[0]:
			return Arc{Oriented: true, Ends: [2]int{y.Ends[1], x.Head()}}, true
		case x.Tail() == y.Ends[1]:
			return Arc{Oriented: true, Ends: [2]int{y.Ends[0], x.Head()}}, true
		}
	}

	return Arc{}, false
}

// Loops traces the loops of a reduced state and returns its Profile.
// s is not modified. The arcs form a mixed multigraph on their labels:
// cusped arcs are directed edges, plain arcs undirected ones, closed arcs
// self-loops. In a reduced state every label ends exactly two arcs, so each
// connected component is one loop and its edge count is its arrow count;
// a loop of c arrows sits at winding level ⌊c/2⌋.
// Complexity: O(m log m) for m arcs.
func (s *State[E]) Loops() Profile {
	if len(s.Arcs) == 0 {
		return Profile{1}
	}

	// 1. Arc graph
	g := core.NewMixedGraph(core.WithLoops(), core.WithMultiEdges())
	for _, a := range s.Arcs {
		// loops and parallel edges are enabled, so AddEdge cannot fail
		_, _ = g.AddEdge(a.Ends[0], a.Ends[1], core.WithEdgeDirected(a.Oriented))
	}
	// no context or options: Components cannot fail on a non-nil graph
	comps, _ := bfs.Components(g)

	// 2. Arrows per component
	compOf := make(map[int]int, g.VertexCount())
	for i, comp := range comps {
		for _, v := range comp {
			compOf[v] = i
		}
	}
	arrows := make([]int, len(comps))
	for _, e := range g.Edges() {
		arrows[compOf[e.From]]++
	}

	// 3. Loops and winding levels
	counts := []int{len(comps)}
	for _, c := range arrows {
		if level := c / 2; level >= 1 {
			for len(counts) <= level {
				counts = append(counts, 0)
			}
			counts[level]++
		}
	}

	return Profile(counts)
}

// Profile is the loop/winding vector [L, p₁, …, pₘ] of a reduced state:
// L loops in total, pᵢ of them at winding level i. Trailing zero levels are
// never stored.
type Profile []int

// Loops returns L.
func (p Profile) Loops() int {
	if len(p) == 0 {
		return 0
	}

	return p[0]
}

// Level returns pᵢ, or 0 when level i was not observed.
func (p Profile) Level(i int) int {
	if i < 1 || i >= len(p) {
		return 0
	}

	return p[i]
}

// MaxLevel returns the highest winding level present (0 if none).
func (p Profile) MaxLevel() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}
