// Package entities provides the level-placed entities handed to game collaborators.
package entities

import (
	"github.com/google/uuid"

	"roomgrid/pkg/engine/world"
)

// Player is the controllable character. A single Player is created for the
// first level and carried through every level generated afterwards.
type Player struct {
	ID uuid.UUID
	X  int
	Y  int
}

// NewPlayer creates a new player with a fresh identifier at the origin
func NewPlayer() *Player {
	return &Player{ID: uuid.New()}
}

// Position returns the player's current cell
func (p *Player) Position() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// MoveTo places the player at the given cell
func (p *Player) MoveTo(pos world.Point) {
	p.X = pos.X
	p.Y = pos.Y
}
