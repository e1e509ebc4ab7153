// Package pqueue defines the addressable-heap contract shared by binaryheap
// and fibheap: handle-returning insert, find-minimum, extract-minimum,
// decrease-key, arbitrary delete, and merge.
//
// A "handle" is an opaque, stable reference to a node, returned by Insert and
// required by DecreaseKey/Delete. It remains valid until the node is removed
// from the heap that produced it (via ExtractMin or Delete); using it
// afterwards, or against a different heap instance, is a contract violation
// and implementations are expected to detect and report it as
// ErrCorruptHandle rather than corrupt internal state.
//
// Key ordering is supplied by the caller as a Comparator, not discovered via
// a type constraint on K: Dijkstra's key is a composite (vertex, distance)
// pair, and forcing every key type to implement a Compare method would make
// that composite awkward to express at call sites. This mirrors how
// container/heap takes a Less method on the caller's type, generalized to a
// free two-argument comparator so the same key type can be ordered
// differently by different heap instances (e.g. binaryheap and fibheap
// benchmarks sharing one key type under the same comparator).
//
// Concurrency: none of the types in this package, nor any implementation of
// Heap in this module, are safe for concurrent use. A heap instance must be
// accessed by a single goroutine at a time, or externally serialized by the
// caller (sync.Mutex, channel-owned worker, etc).
package pqueue
