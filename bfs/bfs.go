package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/arrowpoly/core"
)

type queueItem struct {
	id, depth int
}

type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or the OnVisit error.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o, make(map[int]bool, g.VertexCount()))
	w.enqueue(startID, 0, startID)

	return w.res, w.loop()
}

// Components returns the connected components of g with orientation
// ignored. Each component lists its vertices in visit order; components
// are ordered by their smallest vertex.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	o, err := build(g, append(opts, WithIgnoreDirection()))
	if err != nil {
		return nil, err
	}

	visited := make(map[int]bool, g.VertexCount())
	var comps [][]int
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		w := newWalker(g, o, visited)
		w.enqueue(v, 0, v)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order)
	}

	return comps, nil
}

func build(g *core.Graph, opts []Option) (BFSOptions, error) {
	if g == nil {
		return BFSOptions{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *core.Graph, o BFSOptions, visited map[int]bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &BFSResult{
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
}

// enqueue marks id visited at depth d and records its parent; the start
// vertex is its own parent and gets none.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != id {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	lookup := w.graph.NeighborIDs
	if w.opts.IgnoreDirection {
		lookup = w.graph.AdjacentIDs
	}
	neighbors, err := lookup(item.id)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
