package sinchan

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrClosedChannel is returned by Write on a closed channel, and by a
	// blocked Write whose value was abandoned because the channel got closed.
	ErrClosedChannel = errors.New("sinchan: write on closed channel")

	// ErrWouldBlock is returned by TryWrite and TryRead when the blocking
	// variant would have suspended.
	ErrWouldBlock = errors.New("sinchan: operation would block")
)

// Channel is a FIFO handoff between producers and consumers, holding at
// most Cap() accepted values. A zero capacity makes every Write
// rendezvous with a Read.
//
// Blocked readers and writers are queued and served strictly in arrival
// order. Close abandons blocked writers with ErrClosedChannel and
// releases blocked readers; values already buffered stay readable.
//
// A Channel must be created with New; the zero value is not usable.
type Channel[T any] struct {
	mu       sync.Mutex
	closed   bool
	capacity int
	buffer   *linkedList[T]
	reads    *linkedList[*waiter[T]]
	writes   *linkedList[*waiter[T]]
	done     chan struct{}

	log logrus.FieldLogger
}

// New creates a channel buffering up to capacity values.
// A capacity of zero or below creates an unbuffered channel.
func New[T any](capacity int, opts ...Option) *Channel[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < 0 {
		capacity = 0
	}
	log := cfg.logger.WithField("capacity", capacity)
	if cfg.name != "" {
		log = log.WithField("channel", cfg.name)
	}
	return &Channel[T]{
		capacity: capacity,
		buffer:   newList[T](),
		reads:    newList[*waiter[T]](),
		writes:   newList[*waiter[T]](),
		done:     make(chan struct{}),
		log:      log,
	}
}

// Write sends v. It returns once v was handed to a reader or accepted into
// the buffer, blocking while neither is possible.
func (ch *Channel[T]) Write(v T) error {
	ch.mu.Lock()
	if err := ch.writeLocked(v); err != ErrWouldBlock {
		ch.mu.Unlock()
		return err
	}
	w := newWaiter(v)
	ch.writes.push(w)
	ch.mu.Unlock()
	return w.wait().err
}

// TryWrite is Write without blocking: where Write would suspend it
// returns ErrWouldBlock and v is not queued.
func (ch *Channel[T]) TryWrite(v T) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.writeLocked(v)
}

func (ch *Channel[T]) writeLocked(v T) error {
	if ch.closed {
		return ErrClosedChannel
	}
	if r, ok := ch.reads.pop(); ok {
		r.resolve(result[T]{val: v, ok: true})
		return nil
	}
	if ch.buffer.len() < ch.capacity {
		ch.buffer.push(v)
		return nil
	}
	return ErrWouldBlock
}

// Read receives the oldest value, blocking until one is available.
// ok is false once the channel is closed and drained; v is then the zero
// value of T.
func (ch *Channel[T]) Read() (v T, ok bool) {
	ch.mu.Lock()
	v, ok, err := ch.readLocked()
	if err != ErrWouldBlock {
		ch.mu.Unlock()
		return v, ok
	}
	var zero T
	r := newWaiter(zero)
	ch.reads.push(r)
	ch.mu.Unlock()
	res := r.wait()
	return res.val, res.ok
}

// TryRead is Read without blocking: where Read would suspend it returns
// ErrWouldBlock. On a closed and drained channel it returns ok == false
// and a nil error.
func (ch *Channel[T]) TryRead() (v T, ok bool, err error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.readLocked()
}

func (ch *Channel[T]) readLocked() (T, bool, error) {
	var zero T
	if v, ok := ch.buffer.pop(); ok {
		// a slot was freed, admit the oldest blocked writer into it
		if w, ok := ch.writes.pop(); ok {
			ch.buffer.push(w.val)
			w.resolve(result[T]{})
		}
		return v, true, nil
	}
	if ch.closed {
		return zero, false, nil
	}
	if w, ok := ch.writes.pop(); ok {
		w.resolve(result[T]{})
		return w.val, true, nil
	}
	return zero, false, ErrWouldBlock
}

// Close marks the channel closed. Blocked writers fail with
// ErrClosedChannel and their values are dropped; blocked readers get the
// end-of-stream result. Buffered values remain readable.
// Only the first call has any effect.
func (ch *Channel[T]) Close() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return
	}
	ch.closed = true
	close(ch.done)

	var abandoned, released int
	for w, ok := ch.writes.pop(); ok; w, ok = ch.writes.pop() {
		w.resolve(result[T]{err: ErrClosedChannel})
		abandoned++
	}
	for r, ok := ch.reads.pop(); ok; r, ok = ch.reads.pop() {
		r.resolve(result[T]{})
		released++
	}
	ch.log.WithFields(logrus.Fields{
		"buffered":         ch.buffer.len(),
		"abandoned_writes": abandoned,
		"released_reads":   released,
	}).Debug("channel closed")
}

// IsClosed reports whether Close has been called.
func (ch *Channel[T]) IsClosed() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.closed
}

// Done returns a channel that is closed when Close is first called.
func (ch *Channel[T]) Done() <-chan struct{} {
	return ch.done
}

// NumQueued returns the number of buffered values. Blocked writers are
// not counted, so the result never exceeds Cap().
func (ch *Channel[T]) NumQueued() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.buffer.len()
}

// Cap returns the capacity fixed at construction.
func (ch *Channel[T]) Cap() int {
	return ch.capacity
}

// Range calls fn with every value read from the channel until the
// channel is closed and drained, or fn returns false.
func (ch *Channel[T]) Range(fn func(T) bool) {
	for {
		v, ok := ch.Read()
		if !ok || !fn(v) {
			return
		}
	}
}

func (ch *Channel[T]) pendingReads() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.reads.len()
}

func (ch *Channel[T]) pendingWrites() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.writes.len()
}
