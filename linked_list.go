// Package simplelist is a small generic singly linked list with head
// insertion, tail copies and an iterator that can insert while iterating.
//
// A LinkedList is not safe for concurrent use. Lists returned by Tail never
// share cells with the list they were taken from.
package simplelist

import (
	"iter"

	"go.uber.org/atomic"
)

func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// region Node
type node[T any] struct {
	value T
	next  *node[T]
}

// copy returns a copy of the chain starting at n, along with the number of
// cells copied. Values are assigned, not deep copied.
func (n *node[T]) copy() (*node[T], int) {
	head := &node[T]{value: n.value}
	count := 1
	for src, dst := n.next, head; src != nil; src, dst = src.next, dst.next {
		dst.next = &node[T]{value: src.value}
		count++
	}

	return head, count
}

// endregion

// region LinkedList
type LinkedList[T any] struct {
	head *node[T]

	len atomic.Int32
}

func fromchain[T any](head *node[T], count int) *LinkedList[T] {
	l := &LinkedList[T]{head: head}
	l.len.Store(int32(count))
	return l
}

func (l *LinkedList[T]) Len() int {
	return int(l.len.Load())
}

func (l *LinkedList[T]) InsertAtHead(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.len.Inc()
}

// Head returns the value at the head of the list, or false if the list is
// empty. The list is unchanged.
func (l *LinkedList[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Tail returns a new list holding a copy of every cell but the head. An empty
// or single element list has an empty tail.
func (l *LinkedList[T]) Tail() *LinkedList[T] {
	if l.head == nil || l.head.next == nil {
		return New[T]()
	}

	head, count := l.head.next.copy()
	return fromchain(head, count)
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *LinkedList[T]) Iterator() Iterator[T] {
	return newiterator(l)
}

func (l *LinkedList[T]) InsertIterator() InsertIterator[T] {
	return &insertiterator[T]{iterator: *newiterator(l)}
}

// All returns a sequence over the values of the list, head first.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) ToSlice() []T {
	values := make([]T, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

// endregion
