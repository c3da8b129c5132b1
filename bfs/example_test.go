package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/arrowpoly/bfs"
	"github.com/katalvlaran/arrowpoly/core"
)

// ExampleComponents splits arcs into closed loops and counts their edges.
func ExampleComponents() {
	// 1) Two cusped arcs 3→1, 3→1 form one loop; 5 closes on itself.
	g := core.NewMixedGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge(3, 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge(3, 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge(5, 5)

	// 2) Components ignore orientation.
	comps, _ := bfs.Components(g)
	fmt.Println(comps)

	// Output:
	// [[1 3] [5]]
}
