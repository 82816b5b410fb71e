package sinchan

// Pipe forwards every value received from in to ch, in order, and closes
// ch once in is closed. If ch gets closed first, forwarding stops, even
// while in is idle, and a value whose Write failed is dropped; in itself
// is left as is.
//
// The returned channel is closed when the forwarding goroutine exits.
func Pipe[T any](in <-chan T, ch *Channel[T]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		var n int
		for {
			select {
			case v, ok := <-in:
				if !ok {
					ch.Close()
					ch.log.WithField("forwarded", n).Debug("pipe input closed")
					return
				}
				if err := ch.Write(v); err != nil {
					ch.log.WithField("forwarded", n).WithError(err).Debug("pipe stopped")
					return
				}
				n++
			case <-ch.Done():
				ch.log.WithField("forwarded", n).Debug("pipe stopped, channel closed")
				return
			}
		}
	}()
	return done
}
