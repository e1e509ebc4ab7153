package fibheap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heaps/pqueue"
)

// node is a single tree node. rank is derived (len(children)) rather than
// stored redundantly, since children is already the single source of
// truth for which nodes are attached and a cached count would just be
// one more field to keep in sync with every link/cut.
type node[K any] struct {
	key      K
	parent   *node[K]
	children *dlist[K]
	prev, next *node[K] // this node's position within its current list.
	marked     bool
	removed    bool
	owner      *Heap[K]
	gone       bool
}

func newNode[K any](key K, owner *Heap[K]) *node[K] {
	return &node[K]{key: key, owner: owner, children: newDList[K]()}
}

// Key returns the node's current key. Satisfies pqueue.Handle[K].
func (n *node[K]) Key() K    { return n.key }
func (n *node[K]) rank() int { return n.children.len() }

// Heap is a Fibonacci heap implementing pqueue.Heap[K].
type Heap[K any] struct {
	cmp   pqueue.Comparator[K]
	roots *dlist[K]
	min   *node[K]
	n     int
}

// New constructs an empty Heap ordered by cmp.
func New[K any](cmp pqueue.Comparator[K]) *Heap[K] {
	return &Heap[K]{cmp: cmp, roots: newDList[K]()}
}

// Size returns the number of elements currently stored.
func (h *Heap[K]) Size() int { return h.n }

// Empty reports whether Size() == 0.
func (h *Heap[K]) Empty() bool { return h.n == 0 }

// Insert adds key as a new singleton root. Amortized O(1).
func (h *Heap[K]) Insert(key K) pqueue.Handle[K] {
	nd := newNode(key, h)
	h.roots.pushBack(nd)
	h.n++
	if h.min == nil || h.less(nd, h.min) {
		h.min = nd
	}

	return nd
}

// FindMin returns the current minimum key without modifying the heap.
func (h *Heap[K]) FindMin() (K, error) {
	if h.n == 0 {
		var zero K
		return zero, pqueue.ErrEmpty
	}

	return h.min.key, nil
}

// ExtractMin removes and returns the current minimum key, promotes its
// children to the root list, and pays down deferred bookkeeping by
// consolidating same-rank root trees. Amortized O(log n).
func (h *Heap[K]) ExtractMin() (K, error) {
	if h.n == 0 {
		var zero K
		return zero, pqueue.ErrEmpty
	}

	deleted := h.min
	result := deleted.key

	h.roots.remove(deleted)
	for c := deleted.children.head; c != nil; {
		next := c.next
		c.parent = nil
		c.marked = false
		h.roots.pushBack(c)
		c = next
	}
	deleted.children = newDList[K]()
	deleted.owner = nil
	deleted.gone = true
	h.n--

	h.consolidate()
	h.rescanMin()

	return result, nil
}

// DecreaseKey writes newKey and, if heap order is now violated, cuts the
// node to the root list and cascades the cut upward. Validates before
// writing: on ErrKeyIncreased the heap is unchanged. Amortized O(1).
func (h *Heap[K]) DecreaseKey(handle pqueue.Handle[K], newKey K) error {
	n, err := h.resolve(handle)
	if err != nil {
		return err
	}
	if h.cmp(newKey, n.key) > 0 {
		return fmt.Errorf("%w: new key %v, current key %v", pqueue.ErrKeyIncreased, newKey, n.key)
	}

	n.key = newKey
	h.floatUp(n)

	return nil
}

// Delete removes the node referenced by handle regardless of its position.
// Flagging it removed makes the augmented comparator treat it as strictly
// minimal, so floatUp's existing cut/cascade path carries it to the root
// and ExtractMin does the rest — the sentinel-free generalization of
// "decrease key to −∞, then extract-min".
func (h *Heap[K]) Delete(handle pqueue.Handle[K]) error {
	n, err := h.resolve(handle)
	if err != nil {
		return err
	}

	n.removed = true
	h.floatUp(n)
	_, err = h.ExtractMin()

	return err
}

// floatUp refreshes the cached minimum and, if n now violates heap order
// relative to its parent, cuts n to the root list and cascades upward.
func (h *Heap[K]) floatUp(n *node[K]) {
	if h.min == nil || h.less(n, h.min) {
		h.min = n
	}
	if n.parent == nil {
		return // already a root.
	}
	if !h.less(n, n.parent) {
		return // heap order intact.
	}

	parent := n.parent
	h.cut(n)
	h.cascadingCut(parent)
}

// cut detaches n from its parent's children list, clears its mark, and
// appends it to the root list. O(1).
func (h *Heap[K]) cut(n *node[K]) {
	n.parent.children.remove(n)
	n.parent = nil
	n.marked = false
	h.roots.pushBack(n)
}

// cascadingCut walks up from p: a root stops the walk; an unmarked node is
// marked and stops the walk; a marked node is itself cut (becoming a root)
// and the walk continues from its former parent.
func (h *Heap[K]) cascadingCut(p *node[K]) {
	for {
		if p.parent == nil {
			return
		}
		if !p.marked {
			p.marked = true
			return
		}

		gp := p.parent
		h.cut(p)
		p = gp
	}
}

// Merge absorbs every element of other into h in O(1): root lists are
// spliced, not copied. other is left empty.
func (h *Heap[K]) Merge(other pqueue.Heap[K]) error {
	o, ok := other.(*Heap[K])
	if !ok {
		return pqueue.ErrHeterogeneousMerge
	}
	if !pqueue.SameComparator(h.cmp, o.cmp) {
		return pqueue.ErrHeterogeneousMerge
	}

	for cur := o.roots.head; cur != nil; cur = cur.next {
		cur.owner = h
	}
	h.roots.spliceBack(o.roots)
	h.n += o.n
	if o.min != nil && (h.min == nil || h.less(o.min, h.min)) {
		h.min = o.min
	}
	o.n = 0
	o.min = nil

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

func (h *Heap[K]) less(a, b *node[K]) bool {
	return pqueue.AugmentedCompare(h.cmp, a.removed, b.removed, a.key, b.key) < 0
}

func (h *Heap[K]) lessOrEqual(a, b *node[K]) bool {
	return pqueue.AugmentedCompare(h.cmp, a.removed, b.removed, a.key, b.key) <= 0
}

// consolidate scans the root list once, maintaining a rank-indexed table of
// at-most-one tree per rank; whenever a newly-visited tree collides with an
// occupied slot, the two are linked and the (possibly cascading) winner is
// re-checked against the table. On equal keys the tree being scanned (cur)
// wins the link, via lessOrEqual(cur, other). The winner always keeps the
// list position of whichever tree already occupied the colliding slot — so
// a small root born early in the scan can accumulate many children while
// never moving in the root list.
//
// The table starts sized to the golden-ratio rank bound (the true bound on
// a Fibonacci heap's maximum rank, floor(log_phi(n))+1) and grows on
// demand. The looser floor(log2(n))+1 bound only holds for a purely
// binomial forest: Delete cuts a leaf without reducing its root's rank,
// so a rank-k root can survive over as few as F(k+2) nodes, below the
// binomial bound for small n.
func (h *Heap[K]) consolidate() {
	if h.n == 0 {
		return
	}

	table := make([]*node[K], goldenRankBound(h.n)+1)

	next := h.roots.head
	for next != nil {
		cur := next
		next = next.next

		for {
			rank := cur.rank()
			table = growRankTable(table, rank)
			if table[rank] == nil {
				break
			}

			other := table[rank]
			table[rank] = nil

			h.roots.remove(cur)

			var winner, loser *node[K]
			if h.lessOrEqual(cur, other) {
				winner, loser = cur, other
			} else {
				winner, loser = other, cur
			}
			if winner == cur {
				h.roots.replace(other, cur)
			}

			loser.parent = winner
			winner.children.pushBack(loser)

			cur = winner
		}

		rank := cur.rank()
		table = growRankTable(table, rank)
		table[rank] = cur
	}
}

// goldenRankBound returns floor(log_phi(n)), the maximum rank a Fibonacci
// heap node can reach over n total nodes.
func goldenRankBound(n int) int {
	return int(math.Floor(math.Log(float64(n)) / math.Log(math.Phi)))
}

// growRankTable extends table so index rank is valid, preserving existing
// entries. consolidate's table starts at the golden-ratio bound for the
// current n; growing on demand is a safeguard, so a rank past that
// starting size extends the table instead of indexing out of range.
func growRankTable[K any](table []*node[K], rank int) []*node[K] {
	if rank < len(table) {
		return table
	}

	grown := make([]*node[K], rank+1)
	copy(grown, table)

	return grown
}

func (h *Heap[K]) rescanMin() {
	h.min = nil
	for cur := h.roots.head; cur != nil; cur = cur.next {
		if h.min == nil || h.less(cur, h.min) {
			h.min = cur
		}
	}
}
