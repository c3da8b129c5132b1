package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge override without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Edge is a connection From → To. Undirected edges are mirrored in the
// adjacency of To.
type Edge struct {
	ID       int
	From     int
	To       int
	Directed bool
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets the default orientation of new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits edges whose endpoints coincide.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges permits per-edge orientation via WithEdgeDirected.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures a single edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default orientation for one edge.
// Requires WithMixedEdges.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is a concurrency-safe multigraph over int vertex IDs.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency, nextEdgeID

	directed   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID int
	vertices   map[int]struct{}
	edges      map[int]*Edge

	// adjacency[from][to][edgeID]; undirected edges appear under both ends.
	adjacency map[int]map[int]map[int]struct{}

	// incoming[to][from][edgeID] for directed edges only.
	incoming map[int]map[int]map[int]struct{}
}

// NewGraph returns an empty graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		edges:     make(map[int]*Edge),
		adjacency: make(map[int]map[int]map[int]struct{}),
		incoming:  make(map[int]map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMixedGraph returns a graph that accepts per-edge orientation.
func NewMixedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMixedEdges()}, opts...)...)
}
