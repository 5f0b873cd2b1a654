// Package draw holds the ANSI terminal surface the renderer paints on.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// ANSI sequences used by the game.
const (
	seqClearScreen     = "\033[H\033[2J"
	seqHideCursor      = "\033[?25l"
	seqShowCursor      = "\033[?25h"
	seqEnterAltScreen  = "\033[?1049h"
	seqLeaveAltScreen  = "\033[?1049l"
	seqResetStyle      = "\033[0m"
	seqBackgroundBlue  = "\033[44m"
	seqBackgroundBlack = "\033[40m"
)

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Use MoveCursor, WriteString, WriteRune to accumulate,
// then Flush to write to the underlying writer. It implements render.Surface.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for centering the playfield).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// Clear paints the whole terminal blue, then selects black for the cells written after it.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(seqBackgroundBlue)
	cw.buf.WriteString(seqClearScreen)
	cw.buf.WriteString(seqBackgroundBlack)
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// playfield coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// Setup switches w to the alternate screen and hides the cursor.
func Setup(w io.Writer) error {
	if _, err := io.WriteString(w, seqEnterAltScreen+seqHideCursor+seqClearScreen); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	return nil
}

// Restore undoes Setup: styles reset, cursor shown, alternate screen left.
func Restore(w io.Writer) error {
	if _, err := io.WriteString(w, seqResetStyle+seqShowCursor+seqLeaveAltScreen); err != nil {
		return fmt.Errorf("leave alternate screen: %w", err)
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// CenterOffset returns the 0-based column and row offset that centers a
// width x height playfield in a termWidth x termHeight terminal.
// A terminal smaller than the playfield gets no offset.
func CenterOffset(termWidth, termHeight, width, height int) (offsetCol, offsetRow int) {
	offsetCol = max((termWidth-width)/2, 0)
	offsetRow = max((termHeight-height)/2, 0)
	return offsetCol, offsetRow
}
