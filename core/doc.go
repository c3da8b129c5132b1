// Package core provides a thread-safe in-memory multigraph over integer
// vertex IDs with a minimal API surface.
//
// What
//
//   - Vertices are ints; edges get monotonic IDs (1, 2, …).
//   - Directed vs. undirected edges (WithDirected), or per-edge orientation
//     in mixed graphs (WithMixedEdges + WithEdgeDirected).
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops).
//   - Adjacency in nested maps: adjacency[from][to][edgeID] = struct{}{}.
//   - Separate sync.RWMutex for vertices and for edges+adjacency.
//
// Why
//
//	Arc diagrams are mixed multigraphs: arc labels are vertices, cusped
//	arcs are directed edges, plain arcs undirected ones, and closed arcs are
//	self-loops. Incidence of labels on crossings is a multigraph too, so
//	one type serves both.
//
// Determinism
//
//	Vertices, Edges, NeighborIDs and AdjacentIDs return sorted results.
//
// Complexity
//
//   - AddVertex, AddEdge, HasVertex: O(1) amortized.
//   - NeighborIDs, AdjacentIDs: O(d log d) for d incident edges.
//   - Degree: O(E).
//
// Errors
//
//   - ErrVertexNotFound: query on an absent vertex.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: parallel edge without WithMultiEdges.
//   - ErrMixedEdgesNotAllowed: WithEdgeDirected without WithMixedEdges.
package core
