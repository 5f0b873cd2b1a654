package object

import (
	"time"

	"github.com/tomz197/invaders/internal/frame"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Projectile is a shot fired by the player. It climbs one row per step.
type Projectile struct {
	Col, Row int
	timer    Timer
	stepped  bool // Moved during the last Update
}

// NewProjectile creates a projectile at (col, row).
func NewProjectile(col, row int) *Projectile {
	return &Projectile{
		Col:   col,
		Row:   row,
		timer: NewTimer(config.ProjectileStep),
	}
}

// Update moves the projectile up one row once its step time has elapsed.
// At most one row is travelled per call so a shot can never skip over an invader.
func (p *Projectile) Update(delta time.Duration) {
	p.stepped = false
	p.timer.Update(delta)
	if p.timer.Ready() {
		p.Row--
		p.stepped = true
		p.timer.Reset()
	}
}

// Gone reports whether the projectile has left the top of the playfield.
func (p *Projectile) Gone() bool {
	return p.Row < 0
}

// Draw writes the projectile glyph.
func (p *Projectile) Draw(f *frame.Frame) {
	f.Set(p.Col, p.Row, config.ProjectileGlyph)
}

// Blast marks the cell where a projectile struck an invader.
type Blast struct {
	Col, Row int
	timer    Timer
}

func newBlast(col, row int) *Blast {
	return &Blast{Col: col, Row: row, timer: NewTimer(config.BlastDuration)}
}

// Update ages the blast. It returns true once the blast has faded.
func (b *Blast) Update(delta time.Duration) bool {
	b.timer.Update(delta)
	return b.timer.Ready()
}

// Draw writes the blast glyph.
func (b *Blast) Draw(f *frame.Frame) {
	f.Set(b.Col, b.Row, config.BlastGlyph)
}
