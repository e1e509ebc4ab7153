// Package graphgen builds random weighted graphs for exercising dijkstra
// and benchmarking binaryheap against fibheap.
//
// Generate samples num_edges directed arcs uniformly over num_nodes
// vertices, each with an independent uniform weight in [0, maxWeight]. It
// does not dedupe or forbid self-loops or parallel edges — it is a sampler,
// not a simple-graph builder — mirroring the reference generator this
// package is grounded on, which draws (src, dst, weight) triples
// independently num_edges times rather than enumerating distinct pairs.
//
// Precondition: num_nodes == 0 && num_edges == 0, or
// num_edges <= num_nodes*(num_nodes-1)/2. Violating it panics rather than
// returning an error — this is a programmer error in the caller's choice
// of parameters, not a runtime condition.
//
// Determinism: WithSeed or WithRand fixes the *rand.Rand driving every
// draw; without either, Generate seeds its own source from the current
// time and two runs may differ.
package graphgen
