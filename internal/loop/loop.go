// Package loop runs a game: simulation on the calling goroutine, rendering on another.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/render"
	"github.com/tomz197/invaders/internal/sound"
)

// Options configures a game. The zero value is usable.
type Options struct {
	TickRate int               // Simulation ticks per second; <= 0 means config.TargetTickRate
	Sound    sound.Player      // nil means silent
	Logger   *log.Logger       // nil discards
	TermSize draw.TermSizeFunc // Read every frame to keep the playfield centered; nil draws at the top left
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = config.TargetTickRate
	}
	if o.Sound == nil {
		o.Sound = sound.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Run plays one game reading keys from r and drawing to w until the player quits,
// wins or loses. Cancelling ctx ends the game as a quit. The terminal surface on w
// is restored before Run returns, whatever the outcome.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) (Outcome, error) {
	opts = opts.withDefaults()
	return play(ctx, NewState(opts.Sound), r, w, opts)
}

// play runs state to completion. opts must already carry defaults.
func play(ctx context.Context, state *State, r io.ByteReader, w io.Writer, opts Options) (Outcome, error) {
	logger := opts.Logger

	if err := draw.Setup(w); err != nil {
		return OutcomeQuit, err
	}

	surface := newCentered(draw.NewChunkWriter(w, 0, 0), opts.TermSize, logger)

	frames := make(chan *frame.Frame)
	toRender := make(chan *frame.Frame)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		relay(gctx, frames, toRender)
		return nil
	})
	g.Go(func() error {
		return render.Loop(surface, toRender)
	})

	logger.Info("game started", "invaders", len(state.Swarm.Invaders()), "tick_rate", opts.TickRate)
	state.Sound.Play(sound.Startup)

	stream := input.StartStream(r)
	outcome, simErr := simulate(gctx, state, stream, frames, opts)
	stream.Close()

	close(frames)
	renderErr := g.Wait()
	if renderErr == nil && simErr == nil && ctx.Err() != nil {
		logger.Info("game cancelled", "cause", context.Cause(ctx))
	}
	state.Sound.Wait()
	restoreErr := draw.Restore(w)

	logger.Info("game over",
		"outcome", outcome,
		"ticks", state.Ticks,
		"played", state.Played.Round(time.Millisecond),
		"invaders_left", len(state.Swarm.Invaders()),
	)

	return outcome, errors.Join(simErr, renderErr, restoreErr)
}

// simulate ticks state until the game ends or ctx is done, handing each frame to the renderer.
func simulate(ctx context.Context, state *State, stream *input.Stream, frames chan<- *frame.Frame, opts Options) (Outcome, error) {
	tickTime := time.Second / time.Duration(opts.TickRate)
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return OutcomeQuit, nil
		default:
		}

		tickStart := time.Now()
		delta := tickStart.Sub(lastTime)
		lastTime = tickStart

		keys, err := stream.Poll()
		switch {
		case errors.Is(err, input.ErrClosed):
			opts.Logger.Debug("input closed")
			keys = append(keys, input.KeyQuit)
		case err != nil:
			return OutcomeQuit, err
		}

		outcome := state.step(delta, keys)
		if outcome == OutcomeQuit {
			return outcome, nil
		}

		select {
		case frames <- state.Frame():
		case <-ctx.Done():
			return OutcomeQuit, nil
		}

		if outcome.Final() {
			return outcome, nil
		}

		elapsed := time.Since(tickStart)
		if elapsed < tickTime {
			time.Sleep(tickTime - elapsed)
		}
	}
}
