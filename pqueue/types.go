// types.go — the addressable-heap contract (Heap), the handle marker
// (Handle), and the comparator type every implementation is parametric over.

package pqueue

// Comparator orders two keys of type K. It must return a negative number if
// a < b, zero if a == b, and a positive number if a > b, and it must define
// a strict total order over every key the caller ever inserts — ties are
// permitted (the Comparator returns 0) but the relation itself must be total and
// transitive. Comparator is supplied once, at heap construction, and is
// never expected to change afterwards.
type Comparator[K any] func(a, b K) int

// Handle is an opaque, stable reference to a node inside some Heap[K]. It is
// returned by Insert and consumed by DecreaseKey and Delete. Key reports the
// node's current key without requiring the caller to track it separately;
// it is safe to call at any time before the handle is invalidated.
//
// A Handle remains valid until the node it references is removed from its
// owning heap (by ExtractMin or Delete). Using it afterwards, or passing it
// to a different Heap instance, is a contract violation; implementations
// report ErrCorruptHandle rather than silently operating on unrelated state.
type Handle[K any] interface {
	Key() K
}

// Heap is the addressable priority-queue contract implemented by both
// binaryheap.Heap and fibheap.Heap. Every mutating operation either succeeds
// or leaves the heap exactly as it was: decrease-key validates before
// writing, delete and extract-min never partially unlink a node.
//
// No implementation of Heap in this module is safe for concurrent use.
type Heap[K any] interface {
	// Insert adds key to the heap and returns a stable handle to it.
	Insert(key K) Handle[K]

	// FindMin returns the current minimum key without modifying the heap.
	// Returns ErrEmpty if the heap has no elements.
	FindMin() (K, error)

	// ExtractMin removes and returns the current minimum key.
	// Returns ErrEmpty if the heap has no elements.
	ExtractMin() (K, error)

	// DecreaseKey updates the key referenced by h to newKey, which must
	// compare no greater than h's current key under the heap's comparator.
	// Returns ErrKeyIncreased (heap unchanged) if newKey is strictly
	// greater, or ErrCorruptHandle if h is stale or foreign.
	DecreaseKey(h Handle[K], newKey K) error

	// Delete removes the node referenced by h regardless of its position.
	// Returns ErrCorruptHandle if h is stale or foreign.
	Delete(h Handle[K]) error

	// Merge absorbs every element of other into the receiver. other is left
	// empty. Returns ErrHeterogeneousMerge if the two heaps were built with
	// incompatible comparators.
	Merge(other Heap[K]) error

	// Size returns the number of elements currently stored.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool
}

// AugmentedCompare composes a base Comparator with per-side "removed" flags
// so that a removed node always compares strictly smaller than any node that
// is not removed, and two removed nodes compare equal. Delete uses this to
// float an arbitrary node to the root/top of the heap and reuse the existing
// decrease-key/cut machinery, without requiring a numeric −∞ sentinel that a
// generic key type cannot always supply (see fibheap.Heap.Delete and
// binaryheap.Heap.Delete).
func AugmentedCompare[K any](cmp Comparator[K], aRemoved, bRemoved bool, a, b K) int {
	switch {
	case aRemoved && bRemoved:
		return 0
	case aRemoved:
		return -1
	case bRemoved:
		return 1
	default:
		return cmp(a, b)
	}
}
