// Package binaryheap implements pqueue.Heap as a contiguous, array-backed
// binary min-heap — the baseline implementation fibheap is benchmarked
// against.
//
// Handles stay valid across internal sifts: each node is heap-allocated and
// carries its own current index into the backing slice, updated on every
// swap. That is what lets DecreaseKey sift up from a known position in
// O(log n) instead of the O(n) a positionless implementation would need to
// re-locate the node first.
//
// Complexity:
//
//   - Insert:      O(log n) — append, sift up.
//   - FindMin:     O(1).
//   - ExtractMin:  O(log n) — swap root with last, truncate, sift down.
//   - DecreaseKey: O(log n) — write key, sift up from current index.
//   - Delete:      O(log n) — mark removed (sorts minimal), sift to root,
//     extract-min.
//   - Merge:       O(n) — append both backing slices, re-heapify bottom-up.
//
// Not safe for concurrent use.
package binaryheap
