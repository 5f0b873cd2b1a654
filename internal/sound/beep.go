package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate the speaker runs at. WAV files at other rates are resampled.
const SampleRate = beep.SampleRate(44100)

// maxWait bounds Wait so a stalled audio device cannot hold up shutdown.
const maxWait = 3 * time.Second

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// note is one synthesized tone.
type note struct {
	freq float64
	dur  time.Duration
}

// tones are the synthesized fallbacks used when no WAV file exists for a cue.
var tones = map[Cue][]note{
	Startup: {{440, 90 * time.Millisecond}, {554.37, 90 * time.Millisecond}, {659.25, 140 * time.Millisecond}},
	Move:    {{110, 60 * time.Millisecond}},
	Pew:     {{880, 40 * time.Millisecond}, {660, 40 * time.Millisecond}},
	Explode: {{200, 70 * time.Millisecond}, {120, 70 * time.Millisecond}, {80, 90 * time.Millisecond}},
	Win:     {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 120 * time.Millisecond}, {1046.5, 240 * time.Millisecond}},
	Lose:    {{392, 200 * time.Millisecond}, {329.63, 200 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
}

// Beep plays cues through the system speaker.
type Beep struct {
	buffers map[Cue]*beep.Buffer
	wg      sync.WaitGroup
}

// NewBeep prepares every cue and opens the speaker. For each cue, dir/<cue>.wav is
// used when present; otherwise a tone is synthesized. An empty dir synthesizes all cues.
func NewBeep(dir string, logger *log.Logger) (*Beep, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	buffers, err := loadCues(dir, logger)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Beep{buffers: buffers}, nil
}

// Play starts c and returns immediately.
func (b *Beep) Play(c Cue) {
	buf, ok := b.buffers[c]
	if !ok {
		return
	}
	b.wg.Add(1)
	speaker.Play(beep.Seq(buf.Streamer(0, buf.Len()), beep.Callback(b.wg.Done)))
}

// Wait blocks until playing cues finish, or maxWait passes.
func (b *Beep) Wait() {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(maxWait):
	}
}

// Close releases the speaker.
func (b *Beep) Close() {
	speaker.Close()
}

// loadCues builds a buffer per cue.
func loadCues(dir string, logger *log.Logger) (map[Cue]*beep.Buffer, error) {
	buffers := make(map[Cue]*beep.Buffer, len(Cues))
	for _, c := range Cues {
		if dir != "" {
			path := filepath.Join(dir, c.String()+".wav")
			buf, err := loadWAV(path)
			switch {
			case err == nil:
				logger.Debug("loaded cue", "cue", c, "path", path)
				buffers[c] = buf
				continue
			case errors.Is(err, os.ErrNotExist):
				logger.Debug("no wav for cue, synthesizing", "cue", c)
			default:
				return nil, err
			}
		}
		buf, err := synthesize(tones[c])
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", c, err)
		}
		buffers[c] = buf
	}
	return buffers, nil
}

// loadWAV decodes a WAV file into a buffer at SampleRate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != SampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, SampleRate, s)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf, nil
}

// synthesize renders notes back to back into a buffer.
func synthesize(notes []note) (*beep.Buffer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(SampleRate.N(n.dur), sine))
	}
	quiet := &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}
	buf := beep.NewBuffer(format)
	buf.Append(quiet)
	return buf, nil
}
