// Package list implements the doubly linked list backing the cache's
// recency order. It is a trimmed-down, generic variant of container/list:
// only the operations the cache needs, with no interface{} boxing.
package list

// Node is a list node. Nodes are created by List.PushFront.
type Node[V any] struct {
	Value V
	next  *Node[V]
	prev  *Node[V]
	root  bool
}

// Next returns the next node or nil if n is the last node.
func (n *Node[V]) Next() *Node[V] {
	if n.next.root {
		return nil
	}

	return n.next
}

// Prev returns the previous node or nil if n is the first node.
func (n *Node[V]) Prev() *Node[V] {
	if n.prev.root {
		return nil
	}

	return n.prev
}

// List is a doubly linked list with a sentinel root. Use New to create one.
type List[V any] struct {
	n    int
	root Node[V]
}

// New returns an empty list.
func New[V any]() *List[V] {
	l := new(List[V])

	l.root.root = true
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

// Len returns the number of nodes in the list.
func (l *List[V]) Len() int { return l.n }

// Front returns the first node or nil if the list is empty.
func (l *List[V]) Front() *Node[V] {
	if l.root.next == &l.root {
		return nil
	}

	return l.root.next
}

// Back returns the last node or nil if the list is empty.
func (l *List[V]) Back() *Node[V] {
	if l.root.prev == &l.root {
		return nil
	}

	return l.root.prev
}

// PushFront inserts a new node carrying v at the front and returns it.
func (l *List[V]) PushFront(v V) *Node[V] {
	n := &Node[V]{Value: v}

	n.prev = &l.root
	n.next = l.root.next
	n.prev.next = n
	n.next.prev = n
	l.n++

	return n
}

// MoveToFront moves n to the front. n must be a node of l.
func (l *List[V]) MoveToFront(n *Node[V]) {
	if l.root.next == n {
		return
	}

	n.prev.next = n.next
	n.next.prev = n.prev

	n.prev = &l.root
	n.next = l.root.next
	n.prev.next = n
	n.next.prev = n
}

// Remove removes n from l and returns its value. n must be a node of l.
func (l *List[V]) Remove(n *Node[V]) V { //nolint:ireturn
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil

	l.n--

	return n.Value
}
