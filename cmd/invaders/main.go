package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop"
	gameconfig "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/sound"
)

// Terminal mode hooks, replaced in tests.
var (
	makeRaw     = term.MakeRaw
	restoreTerm = term.Restore
)

func main() {
	os.Exit(run())
}

// withRawMode runs fn with fd in raw mode. The previous mode is restored when fn
// returns, including by panic.
func withRawMode(fd int, fn func() error) error {
	oldState, err := makeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = restoreTerm(fd, oldState)
	}()
	return fn()
}

func run() int {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	player, closeSound := newSoundPlayer(logger)
	defer closeSound()

	// Ctrl-C arrives as a key in raw mode; signals only cover kill and hangup.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	var outcome loop.Outcome
	err = withRawMode(int(os.Stdin.Fd()), func() error {
		var runErr error
		outcome, runErr = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
			TickRate: config.GetEnvInt("INVADERS_TICK_RATE", gameconfig.TargetTickRate),
			Sound:    player,
			Logger:   logger,
			TermSize: draw.DefaultTermSizeFunc,
		})
		return runErr
	})
	if err != nil {
		logger.Error("game failed", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		return 1
	}
	fmt.Println(outcome.Message())
	return 0
}

// newLogger logs to the file named by INVADERS_LOG. The terminal is the game
// screen, so without a file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	var (
		out     io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path := config.GetEnv("INVADERS_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	level, err := log.ParseLevel(config.GetEnv("INVADERS_LOG_LEVEL", "info"))
	if err != nil {
		logger.Warn("unknown log level, using info", "err", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// newSoundPlayer opens the speaker unless muted. Audio failures fall back to silence.
func newSoundPlayer(logger *log.Logger) (sound.Player, func()) {
	if config.GetEnvBool("INVADERS_MUTE", false) {
		return sound.Nop{}, func() {}
	}
	b, err := sound.NewBeep(config.GetEnv("INVADERS_SOUND_DIR", ""), logger.WithPrefix("sound"))
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return sound.Nop{}, func() {}
	}
	return b, b.Close
}
