package loop

import (
	"context"

	"github.com/tomz197/invaders/internal/frame"
)

// relay forwards frames from in to out in order, keeping any backlog in memory so
// a send on in never waits for the renderer. out is closed once in is closed and
// the backlog has been delivered, or as soon as ctx is done.
func relay(ctx context.Context, in <-chan *frame.Frame, out chan<- *frame.Frame) {
	defer close(out)

	var backlog []*frame.Frame
	for in != nil || len(backlog) > 0 {
		var (
			send chan<- *frame.Frame
			next *frame.Frame
		)
		if len(backlog) > 0 {
			send, next = out, backlog[0]
		}

		select {
		case f, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, f)
		case send <- next:
			backlog[0] = nil
			backlog = backlog[1:]
		case <-ctx.Done():
			return
		}
	}
}
