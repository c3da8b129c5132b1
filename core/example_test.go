package core_test

import (
	"fmt"

	"github.com/katalvlaran/arrowpoly/core"
)

// ExampleGraph_Degree builds a mixed multigraph of arcs and reads degrees.
func ExampleGraph_Degree() {
	// 1) Two cusped arcs 3→1 and a closed arc at 5.
	g := core.NewMixedGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge(3, 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge(3, 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge(5, 5)

	// 2) Inspect.
	for _, v := range g.Vertices() {
		in, out, undirected, _ := g.Degree(v)
		fmt.Printf("%d: in=%d out=%d undirected=%d\n", v, in, out, undirected)
	}

	// Output:
	// 1: in=2 out=0 undirected=0
	// 3: in=0 out=2 undirected=0
	// 5: in=0 out=0 undirected=2
}
