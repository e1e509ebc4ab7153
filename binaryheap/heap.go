package binaryheap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/heaps/pqueue"
)

// node is a single heap-allocated slot. idx tracks the node's current
// position in Heap.nodes so DecreaseKey can sift up without a linear scan.
type node[K any] struct {
	key     K
	idx     int
	owner   *Heap[K]
	removed bool
	gone    bool
}

// Key returns the node's current key. Satisfies pqueue.Handle[K].
func (n *node[K]) Key() K { return n.key }

// Heap is an array-backed binary min-heap implementing pqueue.Heap[K].
type Heap[K any] struct {
	cmp   pqueue.Comparator[K]
	nodes []*node[K]
}

// New constructs an empty Heap ordered by cmp.
func New[K any](cmp pqueue.Comparator[K]) *Heap[K] {
	return &Heap[K]{cmp: cmp}
}

// Size returns the number of elements currently stored.
func (h *Heap[K]) Size() int { return len(h.nodes) }

// Empty reports whether Size() == 0.
func (h *Heap[K]) Empty() bool { return len(h.nodes) == 0 }

// Insert adds key and returns a stable handle to it. O(log n).
func (h *Heap[K]) Insert(key K) pqueue.Handle[K] {
	n := &node[K]{key: key, owner: h}
	h.nodes = append(h.nodes, n)
	n.idx = len(h.nodes) - 1
	h.siftUp(n.idx)

	return n
}

// FindMin returns the current minimum key without modifying the heap.
func (h *Heap[K]) FindMin() (K, error) {
	if h.Empty() {
		var zero K
		return zero, pqueue.ErrEmpty
	}

	return h.nodes[0].key, nil
}

// ExtractMin removes and returns the current minimum key. O(log n).
func (h *Heap[K]) ExtractMin() (K, error) {
	if h.Empty() {
		var zero K
		return zero, pqueue.ErrEmpty
	}

	min := h.nodes[0]
	result := min.key
	h.removeAt(0)
	min.gone = true

	return result, nil
}

// DecreaseKey writes newKey and sifts h's node up from its current index.
// Validates before writing: on ErrKeyIncreased the heap is unchanged.
func (h *Heap[K]) DecreaseKey(handle pqueue.Handle[K], newKey K) error {
	n, err := h.resolve(handle)
	if err != nil {
		return err
	}
	if h.cmp(newKey, n.key) > 0 {
		return fmt.Errorf("%w: new key %v, current key %v", pqueue.ErrKeyIncreased, newKey, n.key)
	}

	n.key = newKey
	h.siftUp(n.idx)

	return nil
}

// Delete removes the node referenced by handle regardless of its position.
// It marks the node "removed" (which the augmented comparator treats as
// strictly minimal, see pqueue.AugmentedCompare), sifts it to the root, and
// extracts it — the same −∞-sentinel strategy spec'd for a generic key type
// that cannot always synthesize a real minimal value.
func (h *Heap[K]) Delete(handle pqueue.Handle[K]) error {
	n, err := h.resolve(handle)
	if err != nil {
		return err
	}

	n.removed = true
	h.siftUp(n.idx)
	h.removeAt(0)
	n.gone = true

	return nil
}

// Merge absorbs every element of other into h. other is left empty.
// O(n) — appends both backing slices and re-heapifies bottom-up.
func (h *Heap[K]) Merge(other pqueue.Heap[K]) error {
	o, ok := other.(*Heap[K])
	if !ok {
		return pqueue.ErrHeterogeneousMerge
	}
	if !pqueue.SameComparator(h.cmp, o.cmp) {
		return pqueue.ErrHeterogeneousMerge
	}

	for _, n := range o.nodes {
		n.owner = h
		n.idx = len(h.nodes)
		h.nodes = append(h.nodes, n)
	}
	o.nodes = nil

	for i := len(h.nodes)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return nil
}

// resolve validates that handle was produced by h and is still live.
func (h *Heap[K]) resolve(handle pqueue.Handle[K]) (*node[K], error) {
	n, ok := handle.(*node[K])
	if !ok || n.owner != h || n.gone {
		return nil, pqueue.ErrCorruptHandle
	}

	return n, nil
}

// less compares nodes at positions i and j under the augmented comparator,
// so a removed node always sorts first regardless of its stored key.
func (h *Heap[K]) less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]

	return pqueue.AugmentedCompare(h.cmp, a.removed, b.removed, a.key, b.key) < 0
}

func (h *Heap[K]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].idx = i
	h.nodes[j].idx = j
}

// siftUp repeatedly swaps the node at i with its parent while heap order is
// violated. Tie-break is irrelevant here: equal keys never trigger a swap.
func (h *Heap[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the node at i downward, always choosing the smaller child
// and tie-breaking toward the left child, until heap order holds.
// Returns true if the node moved at least one level.
func (h *Heap[K]) siftDown(i int) bool {
	n := len(h.nodes)
	start := i
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}

	return i > start
}

// removeAt deletes the node at position i, swapping the last element into
// its place and restoring heap order by sifting down then (if it did not
// move) up — container/heap's own strategy for Remove, generalized to a
// handle-addressable heap.
func (h *Heap[K]) removeAt(i int) {
	last := len(h.nodes) - 1
	if last != i {
		h.swap(i, last)
		h.nodes = h.nodes[:last]
		if !h.siftDown(i) {
			h.siftUp(i)
		}

		return
	}
	h.nodes = h.nodes[:last]
}

// Render formats the heap's array order as fmtKey(key) joined by spaces, for
// use by the render package. An empty heap renders as "".
func (h *Heap[K]) Render(fmtKey func(K) string) string {
	if h.Empty() {
		return ""
	}

	parts := make([]string, len(h.nodes))
	for i, n := range h.nodes {
		parts[i] = fmtKey(n.key)
	}

	return strings.Join(parts, " ")
}
