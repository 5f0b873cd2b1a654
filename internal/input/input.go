// Package input turns raw terminal bytes into game key events.
package input

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Key is a recognized game key.
type Key int

const (
	KeyQuit  Key = iota + 1 // Esc, q, Ctrl-C
	KeyLeft                 // Left arrow
	KeyRight                // Right arrow
	KeyFire                 // Space, Enter
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ErrClosed is returned by Poll once the input reached end of file.
var ErrClosed = errors.New("input: stream closed")

const (
	byteCtrlC = 0x03
	byteEsc   = 0x1b
)

// Stream delivers input bytes via a channel so they can be polled without blocking.
type Stream struct {
	ch      chan byte
	err     error         // Read error; valid once ch is closed
	done    chan struct{} // Closed by Close
	exited  chan struct{} // Closed when the reader goroutine returns
	stop    sync.Once
	closed  bool
	pending []byte // Incomplete escape sequence carried over from the previous poll
	carried bool   // pending has already waited one poll
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine runs until r fails or, after Close, until its next read returns.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				s.err = err
				close(s.ch)
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close tells the reader goroutine to stop instead of queueing bytes nobody will poll.
// A read already in progress is not interrupted. Close is safe to call more than once.
func (s *Stream) Close() {
	s.stop.Do(func() { close(s.done) })
}

// Poll drains every byte available right now and returns the recognized keys in
// arrival order. It never blocks. Unrecognized bytes are dropped.
// Once the reader fails, the remaining keys are returned together with the error;
// end of file is reported as ErrClosed.
func (s *Stream) Poll() ([]Key, error) {
	buf := s.pending
	s.pending = nil
	fresh := false

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh = true
		default:
			break drain
		}
	}

	// An escape sequence split across polls gets one more poll to complete.
	// After that a lone Esc counts as a key press.
	final := s.closed || (s.carried && !fresh)
	keys, rest := parse(buf, final)
	if len(rest) > 0 {
		s.pending = append(s.pending, rest...)
		s.carried = true
	} else {
		s.carried = false
	}

	if s.closed {
		if errors.Is(s.err, io.EOF) {
			return keys, ErrClosed
		}
		return keys, fmt.Errorf("read input: %w", s.err)
	}
	return keys, nil
}

// parse decodes buf into keys. Unless final is set, a trailing incomplete escape
// sequence is returned as rest instead of being decoded.
func parse(buf []byte, final bool) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != byteEsc {
			if k, ok := byteKey(b); ok {
				keys = append(keys, k)
			}
			continue
		}

		// CSI (ESC [) or SS3 (ESC O) cursor keys
		if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if i+2 >= len(buf) {
				if !final {
					return keys, buf[i:]
				}
				return keys, nil
			}
			switch buf[i+2] {
			case 'C':
				keys = append(keys, KeyRight)
			case 'D':
				keys = append(keys, KeyLeft)
			}
			i += 2
			continue
		}

		if i+1 == len(buf) && !final {
			return keys, buf[i:]
		}
		keys = append(keys, KeyQuit)
	}
	return keys, nil
}

// byteKey maps a single byte to a key.
func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', byteCtrlC:
		return KeyQuit, true
	case ' ', '\r', '\n':
		return KeyFire, true
	}
	return 0, false
}
