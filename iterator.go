package memberlist

// Iterator is a position in a List: either at one of its elements, or at End. An iterator at End
// remembers its list, so stepping back from End reaches the list's last element.
//
// An Iterator stays valid until the element it is at is erased or moved to another list. No other
// change to the list affects it.
type Iterator[T any, L Linker[T]] struct {
	current *T
	list    *List[T, L]
}

// Item returns the element it is at, or nil if it is at End.
func (it Iterator[T, L]) Item() *T { return it.current }

// Neighbors returns the elements before and after the element it is at. Panics if it is at End.
func (it Iterator[T, L]) Neighbors() (prev, next *T) {
	if it.current == nil {
		violation("Neighbors", ErrEndIterator)
	}
	link := it.list.LinkOf(it.current)
	return link.prev, link.next
}

// IsEnd returns true if it is one past the last element of its list.
func (it Iterator[T, L]) IsEnd() bool { return it.current == nil }

// Equal returns true if it and other are at the same element. Two iterators at End are equal even
// if they came from different lists.
func (it Iterator[T, L]) Equal(other Iterator[T, L]) bool { return it.current == other.current }

// Next returns an iterator at the element after it, or End. Panics if it is already at End.
func (it Iterator[T, L]) Next() Iterator[T, L] {
	if it.current == nil {
		violation("Iterator.Next", ErrEndIterator)
	}
	return Iterator[T, L]{current: it.list.LinkOf(it.current).next, list: it.list}
}

// Prev returns an iterator at the element before it. From End this is the last element of the
// list; from the first element it is End.
func (it Iterator[T, L]) Prev() Iterator[T, L] {
	if it.current != nil {
		return Iterator[T, L]{current: it.list.LinkOf(it.current).prev, list: it.list}
	}
	if it.list == nil {
		return it
	}
	return Iterator[T, L]{current: it.list.last, list: it.list}
}
