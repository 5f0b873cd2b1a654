// Package frame provides the fixed-size glyph grid built once per tick.
package frame

import "github.com/tomz197/invaders/internal/loop/config"

// Blank is the glyph of an empty cell.
const Blank = ' '

// Frame is one rendered instant: a Width x Height grid of glyphs addressed by (col, row).
// A frame is owned by exactly one side at a time. The simulation builds it, hands it to the
// renderer and never touches it again.
type Frame struct {
	width  int
	height int
	cells  []rune // Flat slice: [col*height + row]
}

// Drawable is implemented by everything that paints itself into a frame.
type Drawable interface {
	Draw(f *Frame)
}

// New returns a blank frame of the playfield dimensions.
func New() *Frame {
	return NewSized(config.FieldWidth, config.FieldHeight)
}

// NewSized returns a blank frame of the given dimensions.
// Negative dimensions are treated as zero.
func NewSized(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = Blank
	}
	return &Frame{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// InBounds reports whether (col, row) addresses a cell of the frame.
func (f *Frame) InBounds(col, row int) bool {
	return col >= 0 && col < f.width && row >= 0 && row < f.height
}

// Set writes a glyph at (col, row). Out-of-bounds writes are ignored.
func (f *Frame) Set(col, row int, glyph rune) {
	if !f.InBounds(col, row) {
		return
	}
	f.cells[col*f.height+row] = glyph
}

// At returns the glyph at (col, row), or Blank when out of bounds.
func (f *Frame) At(col, row int) rune {
	if !f.InBounds(col, row) {
		return Blank
	}
	return f.cells[col*f.height+row]
}

// SameSize reports whether both frames have identical dimensions.
func (f *Frame) SameSize(other *Frame) bool {
	return f.width == other.width && f.height == other.height
}

// DrawAll paints each drawable in order. Later drawables win on shared cells.
func (f *Frame) DrawAll(drawables ...Drawable) {
	for _, d := range drawables {
		d.Draw(f)
	}
}
