// Package sinchan provides a closable, FIFO-fair message channel.
//
// A [Channel] behaves like a Go channel whose edges are softened: writing
// to a closed channel returns [ErrClosedChannel] instead of panicking,
// closing twice is harmless, and closing releases every goroutine parked
// in [Channel.Read] or [Channel.Write].
//
//	ch := sinchan.New[string](2)
//	go func() {
//	    defer ch.Close()
//	    for _, job := range jobs {
//	        if err := ch.Write(job); err != nil {
//	            return
//	        }
//	    }
//	}()
//	ch.Range(func(job string) bool {
//	    handle(job)
//	    return true
//	})
//
// Values accepted into the buffer before Close stay readable afterwards;
// a writer that was still blocked when Close ran gets [ErrClosedChannel]
// and its value is dropped. Once the buffer is drained, Read returns
// ok == false.
//
// [Pipe] bridges a native Go channel into a Channel.
package sinchan
