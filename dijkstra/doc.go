// Package dijkstra computes single-source shortest paths on weighted graphs
// with non-negative edge weights, generic over which pqueue.Heap
// implementation drives the frontier.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from a source vertex to a
//     destination vertex in O((V + E) log V) time, where V and E are the
//     vertex and edge counts reachable from source.
//   - The frontier is any pqueue.Heap[Key] — binaryheap and fibheap both
//     satisfy it, so callers choose the heap by passing its constructor.
//   - Neither heap in this module exposes a decrease-key call this package
//     could use blindly without tracking per-vertex handles across two
//     different heap implementations, so relaxation uses insert-on-improve:
//     a vertex may be pushed more than once, and a stale entry (popped
//     after a cheaper one already finalized that vertex) is discarded on
//     extraction rather than acted on.
//
// Key features:
//
//   - Functional options tune exploration without changing the call shape:
//     WithMaxDistance caps how far the frontier expands, WithInfEdgeThreshold
//     treats any edge at or above a weight as impassable.
//   - Vertices are plain ints (adjacency-list indices), not string IDs —
//     callers that need labels keep their own vertex-to-label mapping.
//   - Graph.UndirectedClosure builds a new Graph with every edge mirrored,
//     for callers who built a directed edge list but want symmetric routing.
//
// Error handling:
//
//   - ErrNilGraph: g is nil.
//   - ErrEmptyGraph: g has zero vertices.
//   - ErrNegativeWeight: some edge has a negative weight, detected by an
//     O(E) pre-scan before any relaxation happens.
//   - ErrOutOfRange: source or destination is outside [0, len(g.Adj)). This
//     is a programmer error, not a runtime condition — ShortestPath panics
//     rather than returning it, matching the other out-of-range assertions
//     in this module.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics raised by the matching
//     Option constructor when given a nonsensical bound, before the heap is
//     ever touched.
//
// A destination with no path from source is not an error: ShortestPath
// returns a Result whose Path is []int{dest} and whose Distance is
// math.MaxInt64, the same shape a caller gets for the degenerate
// source == dest case but with a real zero distance.
package dijkstra
