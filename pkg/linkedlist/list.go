// Package linkedlist is a singly linked list with an external iterator.
//
// The Iterator follows the pull protocol:
// Next moves to the next element, Value returns the current one,
// Err reports the cause when Next returns false early, and Close releases the iterator.
package linkedlist

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrClosed is the value that will be returned if an iterator has been closed but Set is called.
const ErrClosed errorkit.Error = "linkedlist: iterator is closed"

// ErrNoCurrent is returned by Set when Next was not called yet, or it returned false.
const ErrNoCurrent errorkit.Error = "linkedlist: iterator has no current element"

type node[T any] struct {
	value T
	next  *node[T]
}

type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

func New[T any](vs ...T) *List[T] {
	var l List[T]
	for _, v := range vs {
		l.Push(v)
	}
	return &l
}

// Push appends v to the end of the list.
func (l *List[T]) Push(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

func (l *List[T]) Len() int { return l.len }

func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// All yields every element from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

type Iterator[T any] struct {
	list    *List[T]
	current *node[T]
	started bool
	closed  bool
}

func (i *Iterator[T]) Next() bool {
	if i.closed {
		return false
	}
	if !i.started {
		i.started = true
		i.current = i.list.head
	} else if i.current != nil {
		i.current = i.current.next
	}
	return i.current != nil
}

func (i *Iterator[T]) Value() T {
	if i.current == nil {
		var zero T
		return zero
	}
	return i.current.value
}

// Set overwrites the current element in the list.
func (i *Iterator[T]) Set(v T) error {
	if i.closed {
		return ErrClosed
	}
	if i.current == nil {
		return ErrNoCurrent
	}
	i.current.value = v
	return nil
}

func (i *Iterator[T]) Err() error { return nil }

func (i *Iterator[T]) Close() error {
	i.closed = true
	i.current = nil
	return nil
}
