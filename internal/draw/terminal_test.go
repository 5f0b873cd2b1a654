package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/render"
)

var _ render.Surface = (*ChunkWriter)(nil)

func TestChunkWriterBuffersUntilFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.MoveCursor(3, 2)
	cw.WriteRune('A')
	if out.Len() != 0 {
		t.Fatalf("wrote %q before Flush", out.String())
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[2;3HA"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 10, 5)
	cw.MoveCursor(1, 1)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[6;11H"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterClearUsesBlueThenBlack(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.Clear()
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	s := out.String()
	blue := strings.Index(s, seqBackgroundBlue)
	wipe := strings.Index(s, seqClearScreen)
	black := strings.Index(s, seqBackgroundBlack)
	if blue < 0 || wipe < blue || black < wipe {
		t.Fatalf("clear sequence out of order: %q", s)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("x", maxChunkSize*3+17)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.String() != payload {
		t.Fatalf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestChunkWriterFlushError(t *testing.T) {
	cw := NewChunkWriter(failingWriter{}, 0, 0)
	cw.WriteRune('A')
	if err := cw.Flush(); err == nil {
		t.Fatal("Flush on a failing writer returned nil")
	}
}

func TestRenderThroughChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	prev := frame.NewSized(2, 2)
	curr := frame.NewSized(2, 2)
	curr.Set(1, 0, 'A')
	if err := render.Render(cw, prev, curr, false); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := out.String(), "\033[1;2HA"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSetupRestore(t *testing.T) {
	var out bytes.Buffer
	if err := Setup(&out); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !strings.Contains(out.String(), seqEnterAltScreen) || !strings.Contains(out.String(), seqHideCursor) {
		t.Fatalf("Setup output %q lacks alternate screen or hidden cursor", out.String())
	}
	out.Reset()
	if err := Restore(&out); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !strings.Contains(out.String(), seqLeaveAltScreen) || !strings.Contains(out.String(), seqShowCursor) {
		t.Fatalf("Restore output %q lacks alternate screen exit or cursor", out.String())
	}
	if err := Setup(failingWriter{}); err == nil {
		t.Fatal("Setup on a failing writer returned nil")
	}
}

func TestCenterOffset(t *testing.T) {
	cases := []struct {
		tw, th, w, h int
		wantC, wantR int
	}{
		{80, 24, 40, 20, 20, 2},
		{40, 20, 40, 20, 0, 0},
		{30, 10, 40, 20, 0, 0},
		{41, 21, 40, 20, 0, 0},
	}
	for _, c := range cases {
		col, row := CenterOffset(c.tw, c.th, c.w, c.h)
		if col != c.wantC || row != c.wantR {
			t.Errorf("CenterOffset(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				c.tw, c.th, c.w, c.h, col, row, c.wantC, c.wantR)
		}
	}
}
