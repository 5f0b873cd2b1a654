package object

import (
	"time"

	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Invader is one member of the swarm.
type Invader struct {
	Col, Row int
}

// Swarm is the formation of invaders moving in lockstep.
// Every move interval the whole swarm shifts one column; when that would push any
// invader off the side, it reverses and drops one row instead.
type Swarm struct {
	invaders  []Invader // Stable order; hit resolution scans it front to back
	direction int       // +1 right, -1 left
	timer     Timer
	initial   int
	descents  int
	width     int
	loseRow   int
}

// NewSwarm creates the standard formation: every other column and row inside
// the top part of the playfield, with a free margin on both sides.
func NewSwarm() *Swarm {
	var invaders []Invader
	for col := config.FormationSideGap; col < config.FieldWidth-config.FormationSideGap; col++ {
		for row := config.FormationTopRow; row <= config.FormationBotRow; row++ {
			if col%2 == 0 && row%2 == 0 {
				invaders = append(invaders, Invader{Col: col, Row: row})
			}
		}
	}
	return NewSwarmFrom(invaders)
}

// NewSwarmFrom creates a swarm from the given invaders, moving right.
func NewSwarmFrom(invaders []Invader) *Swarm {
	s := &Swarm{
		invaders:  append([]Invader(nil), invaders...),
		direction: 1,
		initial:   len(invaders),
		width:     config.FieldWidth,
		loseRow:   config.FieldHeight - 1,
	}
	s.timer = NewTimer(s.interval())
	return s
}

// interval computes the move interval from the remaining count and the number of descents.
// It never increases as invaders are removed.
func (s *Swarm) interval() time.Duration {
	d := config.BaseMoveInterval
	if s.initial > 0 {
		d = config.BaseMoveInterval * time.Duration(len(s.invaders)) / time.Duration(s.initial)
	}
	d -= time.Duration(s.descents) * config.DescentSpeedup
	return max(d, config.MinMoveInterval)
}

// Update advances the move timer and moves the swarm when it is due.
// It returns true when the swarm moved.
func (s *Swarm) Update(delta time.Duration) bool {
	s.timer.Update(delta)
	if !s.timer.Ready() || len(s.invaders) == 0 {
		return false
	}

	if s.blocked() {
		s.direction = -s.direction
		s.descents++
		for i := range s.invaders {
			s.invaders[i].Row++
		}
	} else {
		for i := range s.invaders {
			s.invaders[i].Col += s.direction
		}
	}

	s.timer.SetDuration(s.interval())
	return true
}

// blocked reports whether a sideways step would carry an invader off the playfield.
func (s *Swarm) blocked() bool {
	for _, inv := range s.invaders {
		next := inv.Col + s.direction
		if next < 0 || next >= s.width {
			return true
		}
	}
	return false
}

// KillAt removes the first invader at (col, row). It returns false if the cell is empty.
func (s *Swarm) KillAt(col, row int) bool {
	for i, inv := range s.invaders {
		if inv.Col == col && inv.Row == row {
			s.invaders = append(s.invaders[:i], s.invaders[i+1:]...)
			s.timer.Cap(s.interval())
			return true
		}
	}
	return false
}

// AllKilled reports whether the swarm is empty.
func (s *Swarm) AllKilled() bool {
	return len(s.invaders) == 0
}

// ReachedBottom reports whether any invader has reached the player's row.
func (s *Swarm) ReachedBottom() bool {
	for _, inv := range s.invaders {
		if inv.Row >= s.loseRow {
			return true
		}
	}
	return false
}

// Invaders returns the live invaders in their stable order.
func (s *Swarm) Invaders() []Invader {
	return s.invaders
}

// Direction returns +1 when moving right, -1 when moving left.
func (s *Swarm) Direction() int {
	return s.direction
}

// Descents returns how many times the swarm has stepped down a row.
func (s *Swarm) Descents() int {
	return s.descents
}

// MoveInterval returns the current time between moves.
func (s *Swarm) MoveInterval() time.Duration {
	return s.timer.Duration()
}

// Draw writes every invader. The glyph flips halfway through each move interval.
func (s *Swarm) Draw(f *frame.Frame) {
	glyph := config.InvaderAltGlyph
	if s.timer.Remaining()*2 > s.timer.Duration() {
		glyph = config.InvaderGlyph
	}
	for _, inv := range s.invaders {
		f.Set(inv.Col, inv.Row, glyph)
	}
}
