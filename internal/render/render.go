// Package render turns frames into terminal output, writing only the cells that changed.
package render

import (
	"errors"
	"fmt"

	"github.com/tomz197/invaders/internal/frame"
)

// ErrSizeMismatch is returned when two frames of different dimensions are diffed.
var ErrSizeMismatch = errors.New("render: frame dimensions differ")

// Surface is the output device the renderer paints on.
// Writes are accumulated until Flush; nothing reaches the terminal before that.
type Surface interface {
	// Clear wipes the whole surface with the background used for forced redraws
	// and selects the cell background for subsequent writes.
	Clear()
	// MoveCursor positions the cursor. col and row are 1-based.
	MoveCursor(col, row int)
	// WriteRune writes a glyph at the cursor.
	WriteRune(r rune)
	// Flush sends everything accumulated since the last flush.
	Flush() error
}

// Render draws curr on s. With force set the surface is cleared and every cell is written;
// otherwise only cells that differ from prev are touched. The surface is flushed exactly once.
func Render(s Surface, prev, curr *frame.Frame, force bool) error {
	if !force && !prev.SameSize(curr) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			prev.Width(), prev.Height(), curr.Width(), curr.Height())
	}

	if force {
		s.Clear()
	}

	for col := 0; col < curr.Width(); col++ {
		for row := 0; row < curr.Height(); row++ {
			glyph := curr.At(col, row)
			if !force && glyph == prev.At(col, row) {
				continue
			}
			s.MoveCursor(col+1, row+1)
			s.WriteRune(glyph)
		}
	}

	if err := s.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}

// Mover is implemented by surfaces whose placement on the terminal can change
// between frames. Moved reports whether it changed since the previous call.
type Mover interface {
	Moved() bool
}

// moved asks s whether it was repositioned. Surfaces that cannot move never were.
func moved(s Surface) bool {
	if m, ok := s.(Mover); ok {
		return m.Moved()
	}
	return false
}

// Loop owns s until frames is closed. It paints a blank frame with a forced redraw,
// then renders each received frame against the previous one, in order.
// A frame of a different size, or a surface that moved, gets a forced redraw.
// It returns nil once frames is closed and drained, or the first render error.
func Loop(s Surface, frames <-chan *frame.Frame) error {
	moved(s)
	last := frame.New()
	if err := Render(s, last, last, true); err != nil {
		return err
	}

	for curr := range frames {
		force := moved(s)
		if !last.SameSize(curr) {
			force = true
		}
		if err := Render(s, last, curr, force); err != nil {
			return err
		}
		last = curr
	}
	return nil
}
