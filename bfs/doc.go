// Package bfs provides breadth-first search and connected components over
// a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing edge distance from a start
//     vertex and returns a BFSResult with visit Order, Depth and Parent.
//   - Components partitions all vertices into connected components,
//     ignoring edge orientation.
//   - OnVisit may abort a traversal with an error; WithContext cancels it.
//
// Mixed edges
//
//	By default directed edges are followed From→To only and undirected
//	edges both ways. WithIgnoreDirection follows every edge both ways.
//
// Determinism
//
//	core.NeighborIDs and core.AdjacentIDs are sorted, and Components seeds
//	from core.Vertices in ascending order, so results are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) for maximum degree d.
//   - Memory: O(V).
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - ctx.Err() on cancellation, or the wrapped OnVisit error.
package bfs
