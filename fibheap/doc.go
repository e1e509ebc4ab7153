// Package fibheap implements pqueue.Heap as a Fibonacci heap: a forest of
// heap-ordered trees with deferred consolidation, giving amortized O(1)
// Insert, DecreaseKey and Merge and amortized O(log n) ExtractMin.
//
// Structure. Every node sits in exactly one doubly-linked list at a time:
// either the heap's root list, or some other node's children list. Each
// root tree is heap-ordered and has a rank (its number of children);
// ExtractMin is the only operation that pays down the deferred bookkeeping,
// by consolidating same-rank root trees pairwise until no two roots share
// a rank.
//
// DecreaseKey cuts a node whose key now violates heap order away from its
// parent and into the root list; if the parent was already marked (it lost
// a child since it was last attached to ITS parent), the cut cascades
// upward. Delete reuses this machinery rather than needing a distinct code
// path: flagging the target node "removed" makes pqueue.AugmentedCompare
// treat it as strictly minimal, so the same cut/cascade logic floats it to
// the root and ExtractMin carries it away — the generic, sentinel-free
// analogue of "decrease key to −∞, then extract-min".
//
// Not safe for concurrent use.
package fibheap
