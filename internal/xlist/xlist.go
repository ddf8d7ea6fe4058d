// Package xlist is a plain doubly linked list that wraps each value in its own node. memberlist's
// tests replay operations against it and compare the results.
package xlist

type List[T any] struct {
	front *Node[T]
	back  *Node[T]
	size  int
}

func (l *List[T]) Len() int        { return l.size }
func (l *List[T]) Front() *Node[T] { return l.front }
func (l *List[T]) Back() *Node[T]  { return l.back }

func (l *List[T]) Clear() { l.front = nil; l.back = nil; l.size = 0 }

func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{
		next:  l.front,
		Value: value,
	}
	if l.front != nil {
		l.front.prev = node
	}
	l.front = node
	if l.back == nil {
		l.back = node
	}
	l.size++
	return node
}

func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{
		prev:  l.back,
		Value: value,
	}
	if l.back != nil {
		l.back.next = node
	}
	l.back = node
	if l.front == nil {
		l.front = node
	}
	l.size++
	return node
}

// InsertBefore inserts value before mark, or at the back if mark is nil.
func (l *List[T]) InsertBefore(value T, mark *Node[T]) *Node[T] {
	if mark == nil {
		return l.PushBack(value)
	}
	node := &Node[T]{prev: mark.prev, next: mark, Value: value}
	if mark.prev == nil {
		l.front = node
	} else {
		mark.prev.next = node
	}
	mark.prev = node
	l.size++
	return node
}

func (l *List[T]) Remove(node *Node[T]) {
	if node.prev == nil {
		l.front = node.next
	} else {
		node.prev.next = node.next
	}
	if node.next == nil {
		l.back = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev, node.next = nil, nil
	l.size--
}

// At returns the node i steps from the front, or nil if the list is shorter than that.
func (l *List[T]) At(i int) *Node[T] {
	node := l.front
	for ; node != nil && i > 0; i-- {
		node = node.next
	}
	return node
}

// Values returns the values in the list from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for node := l.front; node != nil; node = node.next {
		out = append(out, node.Value)
	}
	return out
}

type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	Value T
}

func (n *Node[T]) Next() *Node[T] { return n.next }
