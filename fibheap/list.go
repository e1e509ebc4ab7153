package fibheap

// dlist is an intrusive doubly-linked list of *node[K]: each node carries
// its own prev/next pointers describing its position in whichever list
// currently owns it (a heap's root list, or some node's children list), so
// remove is O(1) given the node pointer — no linear search, unlike the
// value-based std::list::remove this package's algorithms are otherwise
// modeled on.
type dlist[K any] struct {
	head, tail *node[K]
	size       int
}

func newDList[K any]() *dlist[K] { return &dlist[K]{} }

func (l *dlist[K]) len() int   { return l.size }
func (l *dlist[K]) empty() bool { return l.size == 0 }

// pushBack appends n, which must not currently belong to any list.
func (l *dlist[K]) pushBack(n *node[K]) {
	n.prev, n.next = l.tail, nil
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// remove unlinks n from l in O(1). n must currently belong to l.
func (l *dlist[K]) remove(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// replace splices repl into the exact slot old currently occupies, using
// old's current prev/next — so it must be called before anything else
// mutates old's links. old is left fully detached; l's length is unchanged.
func (l *dlist[K]) replace(old, repl *node[K]) {
	repl.prev, repl.next = old.prev, old.next
	if old.prev != nil {
		old.prev.next = repl
	} else {
		l.head = repl
	}
	if old.next != nil {
		old.next.prev = repl
	} else {
		l.tail = repl
	}
	old.prev, old.next = nil, nil
}

// spliceBack concatenates other onto the back of l in O(1); other is left
// empty. This is the primitive that makes fibheap's Merge O(1): container/
// list exposes no equivalent, only a copying PushBackList, which is why
// this package rolls its own minimal list instead.
func (l *dlist[K]) spliceBack(other *dlist[K]) {
	if other.head == nil {
		return
	}
	if l.tail != nil {
		l.tail.next = other.head
		other.head.prev = l.tail
	} else {
		l.head = other.head
	}
	l.tail = other.tail
	l.size += other.size
	other.head, other.tail, other.size = nil, nil, 0
}
