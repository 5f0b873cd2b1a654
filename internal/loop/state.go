package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/sound"
)

// Outcome is the result of evaluating a tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota // Game goes on
	OutcomeWin                     // Every invader destroyed
	OutcomeLose                    // Swarm reached the player's row
	OutcomeQuit                    // Player quit or input closed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Message is the line printed to the player once the terminal is restored.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "You win! The swarm is gone."
	case OutcomeLose:
		return "Game over. The invaders landed."
	case OutcomeQuit:
		return "Bye."
	default:
		return ""
	}
}

// Final reports whether the game ends with this outcome.
func (o Outcome) Final() bool {
	return o != OutcomeContinue
}

// State holds everything a single game mutates. Only the simulation goroutine touches it.
type State struct {
	Player *object.Player
	Swarm  *object.Swarm
	Sound  sound.Player
	Ticks  int
	Played time.Duration
}

// NewState creates a fresh game with the full formation.
func NewState(p sound.Player) *State {
	return newStateWith(object.NewPlayer(), object.NewSwarm(), p)
}

func newStateWith(player *object.Player, swarm *object.Swarm, p sound.Player) *State {
	if p == nil {
		p = sound.Nop{}
	}
	return &State{
		Player: player,
		Swarm:  swarm,
		Sound:  p,
	}
}

// Frame draws the current state into a fresh frame.
func (s *State) Frame() *frame.Frame {
	f := frame.New()
	f.DrawAll(s.Player, s.Swarm)
	return f
}
