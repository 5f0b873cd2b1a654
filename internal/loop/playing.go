package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/sound"
)

// step runs one tick: input, player, swarm, collisions, outcome.
// Quit returns immediately, before anything else moves.
func (s *State) step(delta time.Duration, keys []input.Key) Outcome {
	s.Ticks++
	s.Played += delta

	for _, k := range keys {
		switch k {
		case input.KeyQuit:
			s.Sound.Play(sound.Lose)
			return OutcomeQuit
		case input.KeyLeft:
			s.Player.MoveLeft()
		case input.KeyRight:
			s.Player.MoveRight()
		case input.KeyFire:
			if s.Player.Shoot() {
				s.Sound.Play(sound.Pew)
			}
		}
	}

	s.Player.Update(delta)
	descents := s.Swarm.Descents()
	if s.Swarm.Update(delta) {
		s.Sound.Play(sound.Move)
	}
	hit := s.Player.DetectHits(s.Swarm)
	if s.Swarm.Descents() > descents && s.Player.DetectCrossings(s.Swarm) {
		hit = true
	}
	if hit {
		s.Sound.Play(sound.Explode)
	}

	outcome := Evaluate(s.Swarm)
	switch outcome {
	case OutcomeWin:
		s.Sound.Play(sound.Win)
	case OutcomeLose:
		s.Sound.Play(sound.Lose)
	}
	return outcome
}
