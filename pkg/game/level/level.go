// Package level holds the generated level aggregate handed to game collaborators.
package level

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"roomgrid/pkg/engine/world"
	"roomgrid/pkg/game/entities"
)

// Level is the output of one generation run. The caller owns it exclusively.
type Level struct {
	ID    uuid.UUID
	Depth int

	Grid *world.Grid

	// Rooms is the room registry in partition order: columns outer, rows
	// inner, so the room at (col, row) has index col*Rows + row.
	Rooms   []world.Room
	Columns int
	Rows    int

	Player      *entities.Player
	PlayerSpawn world.Point
	Exit        *entities.Exit

	// Path is the exit path as registry indices, start room first.
	Path  []int
	Doors []entities.Door
}

// New creates an empty level for a columns x rows partition
func New(depth, columns, rows int, grid *world.Grid) *Level {
	return &Level{
		ID:      uuid.New(),
		Depth:   depth,
		Grid:    grid,
		Rooms:   make([]world.Room, 0, columns*rows),
		Columns: columns,
		Rows:    rows,
	}
}

// IsWalkable forwards to the grid
func (l *Level) IsWalkable(x, y int) bool {
	return l.Grid.IsWalkable(x, y)
}

// RoomIndex returns the registry index of the room at partition (col, row)
func (l *Level) RoomIndex(col, row int) int {
	return col*l.Rows + row
}

// RoomCoords returns the partition (col, row) of a registry index
func (l *Level) RoomCoords(idx int) (col, row int) {
	return idx / l.Rows, idx % l.Rows
}

// RoomAt returns the registry index of the room whose rectangle contains p
func (l *Level) RoomAt(p world.Point) (int, bool) {
	for i, r := range l.Rooms {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// StartRoom returns the registry index of the room holding the player spawn
func (l *Level) StartRoom() (int, bool) {
	return l.RoomAt(l.PlayerSpawn)
}

// ExitRoom returns the registry index of the room holding the exit
func (l *Level) ExitRoom() (int, bool) {
	if l.Exit == nil {
		return -1, false
	}
	return l.RoomAt(l.Exit.Position())
}

// Validate checks the aggregate for common issues
func (l *Level) Validate() error {
	if l.Grid == nil {
		return errors.New("level has no grid")
	}
	if want := l.Columns * l.Rows; len(l.Rooms) != want {
		return fmt.Errorf("level has %d rooms, want %d", len(l.Rooms), want)
	}
	if l.Exit == nil {
		return errors.New("level has no exit")
	}

	spawn, exit := l.PlayerSpawn, l.Exit.Position()
	if !l.Grid.InBounds(spawn.X, spawn.Y) || !l.Grid.IsWalkable(spawn.X, spawn.Y) {
		return fmt.Errorf("player spawn %v is not walkable", spawn)
	}
	if !l.Grid.InBounds(exit.X, exit.Y) || !l.Grid.IsWalkable(exit.X, exit.Y) {
		return fmt.Errorf("exit %v is not walkable", exit)
	}

	startRoom, ok := l.StartRoom()
	if !ok {
		return fmt.Errorf("player spawn %v is outside every room", spawn)
	}
	exitRoom, ok := l.ExitRoom()
	if !ok {
		return fmt.Errorf("exit %v is outside every room", exit)
	}
	if startRoom == exitRoom {
		return fmt.Errorf("exit shares room %d with the player spawn", exitRoom)
	}
	return nil
}

// Reachable reports whether to can be reached from from by 4-way steps over walkable cells
func (l *Level) Reachable(from, to world.Point) bool {
	g := l.Grid
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return false
	}
	if !g.IsWalkable(from.X, from.Y) || !g.IsWalkable(to.X, to.Y) {
		return false
	}

	visited := mapset.New[world.Point]()
	visited.Put(from)
	queue := []world.Point{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return true
		}

		for _, dir := range world.AllDirections() {
			n := current.Add(dir.Delta())
			if !g.InBounds(n.X, n.Y) || !g.IsWalkable(n.X, n.Y) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return false
}

// ExitReachable reports whether the exit can be reached from the player spawn
func (l *Level) ExitReachable() bool {
	if l.Exit == nil {
		return false
	}
	return l.Reachable(l.PlayerSpawn, l.Exit.Position())
}
