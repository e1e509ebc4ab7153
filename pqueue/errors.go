// errors.go — sentinel errors for the pqueue package.
//
// Error policy (shared by every Heap implementation in this module):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context with %w (DecreaseKey wraps ErrKeyIncreased
//     with the offending new and current keys).
//   - Recoverable errors (Empty, KeyIncreased, CorruptHandle, HeterogeneousMerge)
//     never leave the heap partially mutated: validation happens before any write.

package pqueue

import "errors"

// ErrEmpty indicates FindMin or ExtractMin was called on a heap with no
// elements. Recoverable; the heap is left unchanged.
var ErrEmpty = errors.New("pqueue: heap is empty")

// ErrKeyIncreased indicates DecreaseKey was called with a key strictly
// greater than the handle's current key. Recoverable; the heap is left
// unchanged — implementations validate before writing.
var ErrKeyIncreased = errors.New("pqueue: new key is greater than current key")

// ErrCorruptHandle indicates a handle was used after its node was removed
// (via ExtractMin or Delete), or against a heap instance that did not
// produce it. This is a contract violation by the caller; implementations
// detect it defensively rather than allow silent corruption.
var ErrCorruptHandle = errors.New("pqueue: handle is stale or belongs to a different heap")

// ErrHeterogeneousMerge indicates Merge was called on two heaps built with
// incompatible comparators. Go cannot structurally verify "same ordering",
// so implementations compare a comparator identity token recorded at
// construction and report this sentinel on mismatch rather than silently
// producing a forest or array that is not heap-ordered under either side's
// comparator.
var ErrHeterogeneousMerge = errors.New("pqueue: cannot merge heaps with incompatible comparators")
