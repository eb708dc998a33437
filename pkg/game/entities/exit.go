package entities

import "roomgrid/pkg/engine/world"

// Exit marks the cell the player must reach to finish the level
type Exit struct {
	X int
	Y int
}

// NewExit creates an exit at the given cell
func NewExit(pos world.Point) *Exit {
	return &Exit{X: pos.X, Y: pos.Y}
}

// Position returns the exit's cell
func (e *Exit) Position() world.Point {
	return world.Point{X: e.X, Y: e.Y}
}

// Reached reports whether the player stands on the exit
func (e *Exit) Reached(p *Player) bool {
	return p != nil && p.X == e.X && p.Y == e.Y
}
