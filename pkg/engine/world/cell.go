// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based level.
package world

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Walkable cells may be occupied and traversed by entities.
	Walkable bool

	// Visibility state, consumed by rendering and field-of-view collaborators.
	Transparent bool
	Explored    bool
}

// Solid returns a blocking, opaque, unexplored cell
func Solid() Cell {
	return Cell{}
}

// Floor returns a walkable, transparent, unexplored cell
func Floor() Cell {
	return Cell{Walkable: true, Transparent: true}
}
