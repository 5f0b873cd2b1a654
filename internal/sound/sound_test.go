package sound

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

var quietLogger = log.New(io.Discard)

func TestCueNames(t *testing.T) {
	want := []string{"startup", "move", "pew", "explode", "win", "lose"}
	if len(Cues) != len(want) {
		t.Fatalf("cues = %d, want %d", len(Cues), len(want))
	}
	for i, c := range Cues {
		if c.String() != want[i] {
			t.Errorf("cue %d = %q, want %q", i, c, want[i])
		}
	}
	if Cue(99).String() != "unknown" {
		t.Errorf("Cue(99) = %q, want unknown", Cue(99))
	}
}

func TestNopNeverBlocks(t *testing.T) {
	var p Player = Nop{}
	for _, c := range Cues {
		p.Play(c)
	}
	p.Wait()
}

func TestLoadCuesSynthesizesEveryCue(t *testing.T) {
	buffers, err := loadCues("", quietLogger)
	if err != nil {
		t.Fatalf("loadCues: %v", err)
	}
	for _, c := range Cues {
		buf, ok := buffers[c]
		if !ok || buf.Len() == 0 {
			t.Fatalf("cue %s has no samples", c)
		}
	}
	if got, want := buffers[Pew].Len(), SampleRate.N(80*time.Millisecond); got != want {
		t.Fatalf("pew samples = %d, want %d", got, want)
	}
}

func TestLoadCuesPrefersWAV(t *testing.T) {
	dir := t.TempDir()
	rate := beep.SampleRate(22050)
	sine, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatalf("SineTone: %v", err)
	}
	f, err := os.Create(filepath.Join(dir, "win.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	wavFormat := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(time.Second), sine), wavFormat); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	buffers, err := loadCues(dir, quietLogger)
	if err != nil {
		t.Fatalf("loadCues: %v", err)
	}

	// one second at the speaker rate, give or take resampler edges
	got, want := buffers[Win].Len(), SampleRate.N(time.Second)
	if got < want*9/10 || got > want*11/10 {
		t.Fatalf("win samples = %d, want about %d", got, want)
	}
	// cues without a file still get a synthesized tone
	if buffers[Lose].Len() == 0 {
		t.Fatal("lose cue missing")
	}
}

func TestLoadCuesRejectsBrokenWAV(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pew.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadCues(dir, quietLogger); err == nil {
		t.Fatal("loadCues accepted a broken wav")
	}
}

// TestBeepGracefulWithoutDevice opens the speaker when one exists.
// Test environments often have no audio device; that is not a failure.
func TestBeepGracefulWithoutDevice(t *testing.T) {
	b, err := NewBeep("", nil)
	if err != nil {
		t.Logf("speaker unavailable (expected without audio device): %v", err)
		return
	}
	defer b.Close()
	b.Play(Move)
	b.Wait()
}
