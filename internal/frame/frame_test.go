package frame

import (
	"testing"

	"github.com/tomz197/invaders/internal/loop/config"
)

func TestNewIsBlank(t *testing.T) {
	f := New()
	if f.Width() != config.FieldWidth || f.Height() != config.FieldHeight {
		t.Fatalf("size = %dx%d, want %dx%d", f.Width(), f.Height(), config.FieldWidth, config.FieldHeight)
	}
	for col := 0; col < f.Width(); col++ {
		for row := 0; row < f.Height(); row++ {
			if got := f.At(col, row); got != Blank {
				t.Fatalf("cell (%d,%d) = %q, want blank", col, row, got)
			}
		}
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	f := NewSized(3, 2)
	cases := []struct{ col, row int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100},
	}
	for _, c := range cases {
		f.Set(c.col, c.row, 'Z')
		if got := f.At(c.col, c.row); got != Blank {
			t.Errorf("At(%d,%d) = %q after out-of-bounds Set, want blank", c.col, c.row, got)
		}
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 2; row++ {
			if got := f.At(col, row); got != Blank {
				t.Fatalf("in-bounds cell (%d,%d) changed to %q", col, row, got)
			}
		}
	}
}

func TestSetAndAtAreColumnRowAddressed(t *testing.T) {
	f := NewSized(4, 3)
	f.Set(3, 0, 'a')
	f.Set(0, 2, 'b')
	if got := f.At(3, 0); got != 'a' {
		t.Fatalf("At(3,0) = %q, want 'a'", got)
	}
	if got := f.At(0, 2); got != 'b' {
		t.Fatalf("At(0,2) = %q, want 'b'", got)
	}
}

type stamp struct {
	col, row int
	glyph    rune
}

func (s stamp) Draw(f *Frame) {
	f.Set(s.col, s.row, s.glyph)
}

func TestDrawAllLastWriteWins(t *testing.T) {
	f := NewSized(2, 2)
	f.DrawAll(stamp{1, 1, 'p'}, stamp{1, 1, 's'}, stamp{0, 0, 'o'})
	if got := f.At(1, 1); got != 's' {
		t.Fatalf("shared cell = %q, want later drawable 's'", got)
	}
	if got := f.At(0, 0); got != 'o' {
		t.Fatalf("At(0,0) = %q, want 'o'", got)
	}
}

func TestNewSizedNegative(t *testing.T) {
	f := NewSized(-2, 5)
	if f.Width() != 0 || f.Height() != 5 {
		t.Fatalf("size = %dx%d, want 0x5", f.Width(), f.Height())
	}
	if f.InBounds(0, 0) {
		t.Fatal("zero-width frame reports (0,0) in bounds")
	}
}
