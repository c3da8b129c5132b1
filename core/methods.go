package core

import "sort"

// AddVertex inserts id if absent. Idempotent.
func (g *Graph) AddVertex(id int) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// new edge ID.
//
// Steps:
//  1. Reject loops and per-edge overrides the graph does not allow.
//  2. Ensure both endpoints exist.
//  3. Under muEdgeAdj: reject parallel edges unless allowed, then store the
//     edge and index it (mirrored when undirected, reversed when directed).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, opts ...EdgeOption) (int, error) {
	// 1) Policy checks
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return 0, ErrMixedEdgesNotAllowed
	}

	// 2) Endpoints
	g.AddVertex(from)
	g.AddVertex(to)

	// 3) Edge catalog and adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}
	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: from, To: to, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	link(g.adjacency, from, to, e.ID)
	switch {
	case e.Directed:
		link(g.incoming, to, from, e.ID)
	case from != to:
		link(g.adjacency, to, from, e.ID)
	}

	return e.ID, nil
}

// Edges returns copies of all edges in ascending ID order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the distinct vertices reachable from id over one
// edge: heads of outgoing directed edges and far ends of undirected ones,
// sorted ascending.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	ids := keys(g.adjacency[id], nil)
	g.muEdgeAdj.RUnlock()

	return ids, nil
}

// AdjacentIDs returns the distinct vertices joined to id by any edge,
// ignoring orientation, sorted ascending.
func (g *Graph) AdjacentIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	ids := keys(g.adjacency[id], g.incoming[id])
	g.muEdgeAdj.RUnlock()

	return ids, nil
}

// Degree returns the directed in/out degree and the undirected degree of
// id. A directed self-loop adds one to in and to out; an undirected
// self-loop adds two to undirected.
// Complexity: O(d) for d incident edges.
func (g *Graph) Degree(id int) (in, out, undirected int, err error) {
	if !g.HasVertex(id) {
		return 0, 0, 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for to, bucket := range g.adjacency[id] {
		for eid := range bucket {
			switch {
			case g.edges[eid].Directed:
				out++
			case to == id:
				undirected += 2
			default:
				undirected++
			}
		}
	}
	for _, bucket := range g.incoming[id] {
		in += len(bucket)
	}

	return in, out, undirected, nil
}

func link(adj map[int]map[int]map[int]struct{}, from, to, eid int) {
	if adj[from] == nil {
		adj[from] = make(map[int]map[int]struct{})
	}
	if adj[from][to] == nil {
		adj[from][to] = make(map[int]struct{})
	}
	adj[from][to][eid] = struct{}{}
}

// keys returns the sorted union of the non-empty buckets of a and b.
func keys(a, b map[int]map[int]struct{}) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	for _, m := range []map[int]map[int]struct{}{a, b} {
		for v, bucket := range m {
			if len(bucket) > 0 {
				seen[v] = struct{}{}
			}
		}
	}
	ids := make([]int, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}
