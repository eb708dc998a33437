package entities

import "roomgrid/pkg/engine/world"

// Door is the opened cell pair joining two adjacent rooms on the exit path.
// Near lies on the wall of room From facing Dir; Far lies on the opposite
// wall of room To.
type Door struct {
	From, To int
	Dir      world.Direction
	Near     world.Point
	Far      world.Point
}

// NewDoor creates the door leaving room from toward room to
func NewDoor(from, to int, dir world.Direction, near, far world.Point) Door {
	return Door{From: from, To: to, Dir: dir, Near: near, Far: far}
}

// Cells returns both opened cells
func (d Door) Cells() [2]world.Point {
	return [2]world.Point{d.Near, d.Far}
}

// DoorName returns the display name for this door
func (d Door) DoorName() string {
	return d.Dir.String() + " Door"
}
