// Package heaps is a toolbox of mergeable, addressable priority queues —
// from a baseline binary heap to a Fibonacci heap with amortized O(1)
// insert/merge/decrease-key — plus a shortest-path driver that consumes
// either one generically.
//
// What is heaps?
//
//	A pure-Go, zero-runtime-dependency library that brings together:
//		• Addressable contract: handle-returning insert, decrease-key, delete, merge
//		• Binary heap: array-backed baseline implementation of that contract
//		• Fibonacci heap: lazy-forest implementation with amortized guarantees
//		• Dijkstra: generic single-source shortest path over either heap
//		• Graph generation: seeded random adjacency lists for benchmarks and tests
//		• Rendering: S-expression / flat textual dumps used by fixtures
//
// Why choose heaps?
//
//   - Handle-addressable – decrease-key and delete take the handle Insert
//     returned, not a key lookup, so callers never pay for a secondary index.
//   - Implementation-agnostic clients – dijkstra.ShortestPath accepts any
//     pqueue.Heap, so swapping binaryheap for fibheap never touches call sites.
//   - Pure Go – no cgo, no hidden deps; testify is a test-only dependency.
//
// Under the hood, everything is organized under six subpackages:
//
//	pqueue/     — shared contract, handle type, sentinel errors
//	binaryheap/ — baseline array-backed implementation
//	fibheap/    — Fibonacci heap: the amortized-O(1) core
//	dijkstra/   — generic shortest-path driver
//	graphgen/   — seeded random adjacency-list generator
//	render/     — textual rendering of heap state for tests and debugging
//
// Non-goals: thread-safe concurrent mutation of a single heap instance,
// persistence to disk, key types without a total order, and generic
// decrease-key by value (retain the handle Insert returns).
//
//	go get github.com/katalvlaran/heaps
package heaps
