package sinchan

import "sync"

type node[T any] struct {
	val  T
	next *node[T]
}

// linkedList is a FIFO queue; it is not safe for concurrent use.
type linkedList[T any] struct {
	head  *node[T]
	rear  *node[T]
	size  int
	nodes sync.Pool
}

func newList[T any]() *linkedList[T] {
	return &linkedList[T]{
		nodes: sync.Pool{New: func() interface{} { return new(node[T]) }},
	}
}

func (l *linkedList[T]) len() int {
	return l.size
}

func (l *linkedList[T]) push(v T) {
	n := l.nodes.Get().(*node[T])
	n.val = v
	n.next = nil
	if l.rear == nil {
		l.head = n
		l.rear = n
	} else {
		l.rear.next = n
		l.rear = n
	}
	l.size++
}

func (l *linkedList[T]) pop() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	if l.head == l.rear {
		l.head = nil
		l.rear = nil
	} else {
		l.head = l.head.next
	}
	l.size--
	val := n.val
	n.next = nil
	n.val = zero
	l.nodes.Put(n)
	return val, true
}
