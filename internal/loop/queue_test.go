package loop

import (
	"context"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/frame"
)

func TestRelayNeverBlocksProducer(t *testing.T) {
	in := make(chan *frame.Frame)
	out := make(chan *frame.Frame)
	go relay(context.Background(), in, out)

	sent := make([]*frame.Frame, 200)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range sent {
			sent[i] = frame.New()
			in <- sent[i]
		}
		close(in)
	}()

	// nobody reads out until every frame is queued
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer blocked on a slow consumer")
	}

	var got []*frame.Frame
	for f := range out {
		got = append(got, f)
	}
	if len(got) != len(sent) {
		t.Fatalf("received %d frames, want %d", len(got), len(sent))
	}
	for i := range sent {
		if got[i] != sent[i] {
			t.Fatalf("frame %d out of order", i)
		}
	}
}

func TestRelayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan *frame.Frame)
	out := make(chan *frame.Frame)
	finished := make(chan struct{})
	go func() {
		relay(ctx, in, out)
		close(finished)
	}()

	in <- frame.New()
	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("relay still running after cancel")
	}
	for range out {
	}
}
