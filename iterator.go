package simplelist

import (
	"github.com/pkg/errors"
)

// ErrUnsupported is returned by operations an iterator deliberately does not
// implement.
var ErrUnsupported = errors.New("unsupported operation")

// Iterator visits the values of a list in order. Next returns false once the
// sequence is exhausted.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, bool)
	Remove() error
}

// InsertIterator is an Iterator that can insert a value immediately after
// its current position. The inserted value is the next one returned by Next.
type InsertIterator[T any] interface {
	Iterator[T]
	Insert(v T)
}

type Iterable[T any] interface {
	Iterator() Iterator[T]
}

type InsertIterable[T any] interface {
	Iterable[T]
	InsertIterator() InsertIterator[T]
}

var (
	_ InsertIterable[int] = (*LinkedList[int])(nil)
	_ InsertIterator[int] = (*insertiterator[int])(nil)
)

// region Iterator
// WARN: head inserts made on the list after the iterator was created are
// not visible to it.
type iterator[T any] struct {
	dummy *node[T] // sits before the head
	curr  *node[T]
	list  *LinkedList[T]
}

func newiterator[T any](list *LinkedList[T]) *iterator[T] {
	dummy := &node[T]{next: list.head}
	return &iterator[T]{
		dummy: dummy,
		curr:  dummy,
		list:  list,
	}
}

func (it *iterator[T]) HasNext() bool {
	return it.curr.next != nil
}

func (it *iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}

	it.curr = it.curr.next
	return it.curr.value, true
}

func (it *iterator[T]) Remove() error {
	return errors.WithStack(ErrUnsupported)
}

// endregion

// region InsertIterator
type insertiterator[T any] struct {
	iterator[T]
}

func (it *insertiterator[T]) Insert(v T) {
	// Before the first Next the new value becomes the list head, and the dummy
	// has to follow it so the value is still ahead of the cursor.
	if it.curr == it.dummy {
		it.list.InsertAtHead(v)
		it.dummy.next = it.list.head
		return
	}

	it.curr.next = &node[T]{value: v, next: it.curr.next}
	it.list.len.Inc()
}

// endregion
