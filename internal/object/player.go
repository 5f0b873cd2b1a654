package object

import (
	"time"

	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Target is something projectiles can hit. KillAt removes whatever occupies
// (col, row) and reports whether anything was there.
type Target interface {
	KillAt(col, row int) bool
}

// Player is the ship on the bottom row.
type Player struct {
	Col, Row    int
	width       int
	projectiles []*Projectile
	blasts      []*Blast
}

// NewPlayer creates a player centered on the bottom row of the playfield.
func NewPlayer() *Player {
	return &Player{
		Col:   config.FieldWidth / 2,
		Row:   config.FieldHeight - 1,
		width: config.FieldWidth,
	}
}

// MoveLeft moves the ship one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	if p.Col > 0 {
		p.Col--
	}
}

// MoveRight moves the ship one column right, stopping at the edge.
func (p *Player) MoveRight() {
	if p.Col < p.width-1 {
		p.Col++
	}
}

// Shoot fires a projectile from just above the ship.
// Only one projectile may be in flight; while one is, Shoot does nothing and returns false.
func (p *Player) Shoot() bool {
	if len(p.projectiles) > 0 {
		return false
	}
	p.projectiles = append(p.projectiles, NewProjectile(p.Col, p.Row-1))
	return true
}

// Projectiles returns the projectiles currently in flight.
func (p *Player) Projectiles() []*Projectile {
	return p.projectiles
}

// Update advances projectiles and blasts, dropping those that are finished.
func (p *Player) Update(delta time.Duration) {
	kept := p.projectiles[:0]
	for _, shot := range p.projectiles {
		shot.Update(delta)
		if !shot.Gone() {
			kept = append(kept, shot)
		}
	}
	clear(p.projectiles[len(kept):])
	p.projectiles = kept

	blasts := p.blasts[:0]
	for _, b := range p.blasts {
		if !b.Update(delta) {
			blasts = append(blasts, b)
		}
	}
	clear(p.blasts[len(blasts):])
	p.blasts = blasts
}

// DetectHits checks every projectile against t. A projectile that hits is removed
// and leaves a blast behind. Each projectile removes at most one target per call.
// It returns true if anything was hit.
func (p *Player) DetectHits(t Target) bool {
	return p.detect(t, func(shot *Projectile) (int, int, bool) {
		return shot.Col, shot.Row, true
	})
}

// DetectCrossings checks the cell each projectile left during the last Update.
// Call it after the targets stepped down a row: a shot climbing into the row a
// target just left has swapped cells with it without ever sharing one.
func (p *Player) DetectCrossings(t Target) bool {
	return p.detect(t, func(shot *Projectile) (int, int, bool) {
		return shot.Col, shot.Row + 1, shot.stepped
	})
}

// detect kills whatever sits in the cell picked for each projectile and replaces
// the projectile with a blast there.
func (p *Player) detect(t Target, cell func(*Projectile) (col, row int, ok bool)) bool {
	hit := false
	kept := p.projectiles[:0]
	for _, shot := range p.projectiles {
		if col, row, ok := cell(shot); ok && t.KillAt(col, row) {
			hit = true
			p.blasts = append(p.blasts, newBlast(col, row))
			continue
		}
		kept = append(kept, shot)
	}
	clear(p.projectiles[len(kept):])
	p.projectiles = kept
	return hit
}

// Draw writes blasts, projectiles and the ship.
func (p *Player) Draw(f *frame.Frame) {
	for _, b := range p.blasts {
		b.Draw(f)
	}
	for _, shot := range p.projectiles {
		shot.Draw(f)
	}
	f.Set(p.Col, p.Row, config.PlayerGlyph)
}
