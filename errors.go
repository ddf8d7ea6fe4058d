package memberlist

import (
	"errors"
	"fmt"
)

// List panics with an error wrapping one of these when a caller breaks a precondition. None of
// them is recoverable in the sense of leaving the program correct: they all indicate a bug in the
// caller. The list is left exactly as it was before the call.
var (
	// ErrNilElement is the panic cause when a nil element is pushed or inserted.
	ErrNilElement = errors.New("element is nil")
	// ErrEmptyList is the panic cause when popping from an empty list.
	ErrEmptyList = errors.New("list is empty")
	// ErrForeignIterator is the panic cause when an iterator from another list is passed to a
	// mutating method.
	ErrForeignIterator = errors.New("iterator belongs to a different list")
	// ErrEndIterator is the panic cause when erasing at, or stepping forward from, End.
	ErrEndIterator = errors.New("iterator is at end")
	// ErrSelfMove is the panic cause when a list is moved into itself.
	ErrSelfMove = errors.New("cannot move a list into itself")
	// ErrNilList is the panic cause when MoveList is given a nil list to move from.
	ErrNilList = errors.New("list is nil")
)

func violation(op string, err error) {
	panic(fmt.Errorf("memberlist: %s: %w", op, err))
}
