// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield dimensions in terminal cells.
// The player lives on the last row; the swarm loses once it reaches that row.
const (
	FieldWidth  = 40
	FieldHeight = 20
)

// Player
const (
	PlayerGlyph     = 'A'
	ProjectileGlyph = '|'
	BlastGlyph      = '*'
	ProjectileStep  = 50 * time.Millisecond  // Time per row travelled by a projectile
	BlastDuration   = 250 * time.Millisecond // How long a hit leaves its blast on screen
)

// Swarm
const (
	InvaderGlyph     = 'x'
	InvaderAltGlyph  = '+' // Shown during the second half of each move interval
	BaseMoveInterval = 2 * time.Second
	MinMoveInterval  = 250 * time.Millisecond
	DescentSpeedup   = 250 * time.Millisecond // Interval reduction applied per descent
	FormationTopRow  = 1
	FormationBotRow  = 8
	FormationSideGap = 2 // Columns kept free on each side of the formation
)

// Simulation pacing
const (
	TargetTickRate = 60
	TargetTickTime = time.Second / TargetTickRate
)
