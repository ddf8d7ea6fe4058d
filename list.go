package memberlist

import (
	"github.com/bradenaw/juniper/iterator"
)

// List is an intrusive doubly linked list of *T. Rather than wrapping each value in a separately
// allocated node, List stores its links in a Link field inside T itself, chosen by L. No method of
// List allocates.
//
// The zero value is an empty list ready to use. The list does not own its elements: the caller
// keeps them alive while they are linked, and must not link an element into a second list through
// the same field without erasing it from the first. Dropping a List leaves its former elements'
// links as they were; call Clear first if they will be linked again.
//
// To iterate over a list:
//
//	for it := l.Begin(); !it.IsEnd(); it = it.Next() {
//		// do something with it.Item()
//	}
//
// List's methods must not be called concurrently with each other, or with methods of another List
// sharing elements with it.
type List[T any, L Linker[T]] struct {
	first *T
	last  *T
}

// New returns a new empty list. It is equivalent to new(List[T, L]).
func New[T any, L Linker[T]]() *List[T, L] {
	return &List[T, L]{}
}

// First returns the first element of l, or nil if l is empty.
func (l *List[T, L]) First() *T { return l.first }

// Last returns the last element of l, or nil if l is empty.
func (l *List[T, L]) Last() *T { return l.last }

// Empty returns true if l has no elements.
func (l *List[T, L]) Empty() bool { return l.first == nil }

// Len returns the number of elements in l. The length is not stored, so this walks the whole
// list.
func (l *List[T, L]) Len() int {
	n := 0
	for e := l.first; e != nil; e = l.LinkOf(e).next {
		n++
	}
	return n
}

// LinkOf returns the Link field of e that lists of this type use.
func (l *List[T, L]) LinkOf(e *T) *Link[T] {
	var linker L
	return linker.Link(e)
}

// PushFront inserts e at the front of l.
func (l *List[T, L]) PushFront(e *T) {
	if e == nil {
		violation("PushFront", ErrNilElement)
	}
	link := l.LinkOf(e)
	link.prev = nil
	link.next = l.first
	if l.first != nil {
		l.LinkOf(l.first).prev = e
	} else {
		l.last = e
	}
	l.first = e
}

// PushBack inserts e at the back of l.
func (l *List[T, L]) PushBack(e *T) {
	if e == nil {
		violation("PushBack", ErrNilElement)
	}
	l.pushBack(e)
}

func (l *List[T, L]) pushBack(e *T) {
	link := l.LinkOf(e)
	link.next = nil
	link.prev = l.last
	if l.last != nil {
		l.LinkOf(l.last).next = e
	} else {
		l.first = e
	}
	l.last = e
}

// PopFront removes the first element of l and returns it. The removed element is unlinked. Panics
// if l is empty.
func (l *List[T, L]) PopFront() *T {
	e := l.first
	if e == nil {
		violation("PopFront", ErrEmptyList)
	}
	link := l.LinkOf(e)
	l.first = link.next
	if l.first != nil {
		l.LinkOf(l.first).prev = nil
	} else {
		l.last = nil
	}
	link.reset()
	return e
}

// PopBack removes the last element of l and returns it. The removed element is unlinked. Panics
// if l is empty.
func (l *List[T, L]) PopBack() *T {
	e := l.last
	if e == nil {
		violation("PopBack", ErrEmptyList)
	}
	link := l.LinkOf(e)
	l.last = link.prev
	if l.last != nil {
		l.LinkOf(l.last).next = nil
	} else {
		l.first = nil
	}
	link.reset()
	return e
}

// Insert inserts e immediately before the element at it, or at the back of l if it is End. It
// returns an iterator at e.
func (l *List[T, L]) Insert(it Iterator[T, L], e *T) Iterator[T, L] {
	l.checkOwner("Insert", it)
	if e == nil {
		violation("Insert", ErrNilElement)
	}
	if it.current == nil {
		l.pushBack(e)
		return Iterator[T, L]{current: e, list: l}
	}
	link := l.LinkOf(e)
	mark := l.LinkOf(it.current)
	if mark.prev != nil {
		l.LinkOf(mark.prev).next = e
	} else {
		l.first = e
	}
	link.prev = mark.prev
	link.next = it.current
	mark.prev = e
	return Iterator[T, L]{current: e, list: l}
}

// Erase removes the element at it from l and returns an iterator at the element that followed it,
// or End if it was the last. The removed element is unlinked.
func (l *List[T, L]) Erase(it Iterator[T, L]) Iterator[T, L] {
	l.checkOwner("Erase", it)
	if it.current == nil {
		violation("Erase", ErrEndIterator)
	}
	link := l.LinkOf(it.current)
	next := link.next
	if link.prev != nil {
		l.LinkOf(link.prev).next = link.next
	} else {
		l.first = link.next
	}
	if link.next != nil {
		l.LinkOf(link.next).prev = link.prev
	} else {
		l.last = link.prev
	}
	link.reset()
	return Iterator[T, L]{current: next, list: l}
}

// MoveList moves every element of other into l immediately before the element at it, or at the
// back of l if it is End, keeping their order. other is empty afterwards. Only the ends of the
// moved run are relinked, so this takes constant time however long other is.
//
// Returns an iterator at the first moved element, or it if other was empty.
func (l *List[T, L]) MoveList(it Iterator[T, L], other *List[T, L]) Iterator[T, L] {
	l.checkOwner("MoveList", it)
	if other == nil {
		violation("MoveList", ErrNilList)
	}
	if other == l {
		violation("MoveList", ErrSelfMove)
	}
	if other.first == nil {
		return it
	}
	head, tail := other.first, other.last
	other.first = nil
	other.last = nil

	if it.current == nil {
		if l.last == nil {
			l.first = head
		} else {
			l.LinkOf(l.last).next = head
			l.LinkOf(head).prev = l.last
		}
		l.last = tail
		return Iterator[T, L]{current: head, list: l}
	}

	mark := l.LinkOf(it.current)
	if mark.prev != nil {
		l.LinkOf(mark.prev).next = head
	} else {
		l.first = head
	}
	l.LinkOf(head).prev = mark.prev
	l.LinkOf(tail).next = it.current
	mark.prev = tail
	return Iterator[T, L]{current: head, list: l}
}

// Clear removes every element from l, unlinking each of them so that they may be linked into any
// list again. Unlike the rest of List's methods this takes time proportional to the length of l.
func (l *List[T, L]) Clear() {
	for e := l.first; e != nil; {
		link := l.LinkOf(e)
		e = link.next
		link.reset()
	}
	l.first = nil
	l.last = nil
}

// Begin returns an iterator at the first element of l, or End if l is empty.
func (l *List[T, L]) Begin() Iterator[T, L] { return Iterator[T, L]{current: l.first, list: l} }

// End returns the iterator one past the last element of l. Stepping back from End reaches
// l.Last().
func (l *List[T, L]) End() Iterator[T, L] { return Iterator[T, L]{list: l} }

// IteratorAt returns an iterator at e, which must be an element of l. Whether it is cannot be
// checked.
func (l *List[T, L]) IteratorAt(e *T) Iterator[T, L] { return Iterator[T, L]{current: e, list: l} }

// All returns an iterator over the elements of l from front to back.
//
// Each element's successor is read before the element is returned, so the element most recently
// returned may be erased from l without disturbing iteration. Other changes to l during iteration
// have unspecified effects.
func (l *List[T, L]) All() iterator.Iterator[*T] {
	return &walker[T, L]{l: l, pending: l.first, forward: true}
}

// Backward returns an iterator over the elements of l from back to front. The same rules for
// changing l during iteration apply as for All.
func (l *List[T, L]) Backward() iterator.Iterator[*T] {
	return &walker[T, L]{l: l, pending: l.last}
}

func (l *List[T, L]) checkOwner(op string, it Iterator[T, L]) {
	if it.list != l {
		violation(op, ErrForeignIterator)
	}
}

type walker[T any, L Linker[T]] struct {
	l       *List[T, L]
	pending *T
	forward bool
}

func (w *walker[T, L]) Next() (*T, bool) {
	e := w.pending
	if e == nil {
		return nil, false
	}
	if w.forward {
		w.pending = w.l.LinkOf(e).next
	} else {
		w.pending = w.l.LinkOf(e).prev
	}
	return e, true
}
