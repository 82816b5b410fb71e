package sinchan

// result is what a suspended operation wakes up with.
// For reads ok is false on end of stream; for writes only err matters.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// waiter is a one-shot completion handle for a suspended Read or Write.
// It is resolved exactly once, by whoever pops it from its queue while
// holding the channel lock, so resolve never blocks.
type waiter[T any] struct {
	val T
	ch  chan result[T]
}

func newWaiter[T any](v T) *waiter[T] {
	return &waiter[T]{val: v, ch: make(chan result[T], 1)}
}

func (w *waiter[T]) resolve(r result[T]) {
	w.ch <- r
}

func (w *waiter[T]) wait() result[T] {
	return <-w.ch
}
