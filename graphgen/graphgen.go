package graphgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/heaps/dijkstra"
)

// Generate draws numEdges arcs over numNodes vertices, each endpoint chosen
// uniformly at random and each weight drawn uniformly from [0, maxWeight],
// and returns the result as an adjacency list. Self-loops and parallel arcs
// are not filtered out.
//
// Panics with ErrImpossibleParameters if (numNodes, numEdges) violates the
// simple-graph edge bound: see package doc.
//
// Returns ErrNegativeWeight if maxWeight < 0.
func Generate(numNodes, numEdges int, maxWeight int64, opts ...Option) ([][]dijkstra.Edge, error) {
	if (numNodes != 0 || numEdges != 0) && int64(numEdges) > maxSimpleEdges(numNodes) {
		panic(ErrImpossibleParameters.Error())
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeWeight, maxWeight)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	adj := make([][]dijkstra.Edge, numNodes)
	if numNodes == 0 {
		return adj, nil
	}

	for i := 0; i < numEdges; i++ {
		src := rng.Intn(numNodes)
		dst := rng.Intn(numNodes)
		weight := cfg.weightFn(rng, maxWeight)
		adj[src] = append(adj[src], dijkstra.Edge{To: dst, Weight: weight})
		if !cfg.directed {
			adj[dst] = append(adj[dst], dijkstra.Edge{To: src, Weight: weight})
		}
	}

	return adj, nil
}

// GenerateGraph is a thin wrapper around Generate that returns a
// *dijkstra.Graph directly, for callers who want to hand the result
// straight to dijkstra.ShortestPath without wrapping it themselves.
func GenerateGraph(numNodes, numEdges int, maxWeight int64, opts ...Option) (*dijkstra.Graph, error) {
	adj, err := Generate(numNodes, numEdges, maxWeight, opts...)
	if err != nil {
		return nil, err
	}
	return &dijkstra.Graph{Adj: adj}, nil
}

// maxSimpleEdges returns numNodes*(numNodes-1)/2 as an int64, avoiding
// overflow for the numNodes values this package expects to see.
func maxSimpleEdges(numNodes int) int64 {
	n := int64(numNodes)
	return n * (n - 1) / 2
}
