package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heaps/pqueue"
)

// ShortestPath computes the minimum-cost path from source to dest in g,
// using newHeap to build the frontier priority queue. H is fixed by the
// caller's choice of constructor — pass binaryheap.New[Key] or
// fibheap.New[Key] with dijkstra.ByDistance, or any other pqueue.Heap[Key]
// implementation.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. source and dest must be within [0, len(g.Adj)); violating this panics
//     with ErrOutOfRange rather than returning it, since an out-of-range
//     vertex index reflects a bug in the caller, not a runtime condition.
//  4. No edge in g may have a negative weight (ErrNegativeWeight), detected
//     by an O(E) pre-scan before any relaxation happens.
//
// When dest is unreachable from source, ShortestPath returns a Result with
// Path == []int{dest} and Distance == math.MaxInt64; this is not an error.
//
// Complexity: O((V + E) log V) where V and E are the vertex and edge counts
// reachable from source, dominated by the heap's Insert/ExtractMin costs.
func ShortestPath[H pqueue.Heap[Key]](g *Graph, source, dest int, newHeap func() H, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	V := len(g.Adj)
	if V == 0 {
		return nil, ErrEmptyGraph
	}
	if source < 0 || source >= V || dest < 0 || dest >= V {
		panic(ErrOutOfRange.Error())
	}
	for u, edges := range g.Adj {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	r := &runner[H]{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		heap:    newHeap(),
	}
	for v := 0; v < V; v++ {
		r.dist[v] = math.MaxInt64
		r.prev[v] = -1
	}
	r.dist[source] = 0
	r.heap.Insert(Key{Vertex: source, Dist: 0})

	r.run(dest)

	if r.dist[dest] == math.MaxInt64 {
		return &Result{Path: []int{dest}, Distance: math.MaxInt64}, nil
	}

	return &Result{Path: reconstruct(r.prev, source, dest), Distance: r.dist[dest]}, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[H pqueue.Heap[Key]] struct {
	g       *Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	heap    H
}

// run drains the frontier, relaxing edges in increasing distance order,
// until either the heap empties or dest surfaces as the current minimum.
func (r *runner[H]) run(dest int) {
	for !r.heap.Empty() {
		top, err := r.heap.FindMin()
		if err != nil {
			return
		}
		if top.Vertex == dest {
			return
		}

		cur, err := r.heap.ExtractMin()
		if err != nil {
			return
		}
		if r.visited[cur.Vertex] || cur.Dist > r.dist[cur.Vertex] {
			continue // stale lazy entry: a cheaper path already finalized this vertex
		}
		if cur.Dist > r.options.MaxDistance {
			return
		}
		r.visited[cur.Vertex] = true

		for _, e := range r.g.Adj[cur.Vertex] {
			if e.Weight >= r.options.InfEdgeThreshold {
				continue
			}
			next := cur.Dist + e.Weight
			if next > r.options.MaxDistance || next >= r.dist[e.To] {
				continue
			}
			r.dist[e.To] = next
			r.prev[e.To] = cur.Vertex
			r.heap.Insert(Key{Vertex: e.To, Dist: next})
		}
	}
}

// reconstruct walks prev backwards from dest to source and returns the
// path in source-to-dest order.
func reconstruct(prev []int, source, dest int) []int {
	path := []int{dest}
	for v := dest; v != source; {
		p := prev[v]
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
