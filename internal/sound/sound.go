// Package sound plays the game's audio cues.
package sound

// Cue identifies a named sound event.
type Cue int

const (
	Startup Cue = iota
	Move
	Pew
	Explode
	Win
	Lose
)

// Cues lists every cue in declaration order.
var Cues = []Cue{Startup, Move, Pew, Explode, Win, Lose}

func (c Cue) String() string {
	switch c {
	case Startup:
		return "startup"
	case Move:
		return "move"
	case Pew:
		return "pew"
	case Explode:
		return "explode"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Player triggers cues. Play must not block the caller.
type Player interface {
	Play(c Cue)
	// Wait blocks until cues already started have finished.
	Wait()
}

// Nop is a silent Player.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Wait returns immediately.
func (Nop) Wait() {}
