package world

import "fmt"

// BoundsError is the panic value raised when a grid accessor is called
// with coordinates outside the grid.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("world: cell (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Grid represents the level map with encapsulated cell storage.
// Cells are addressed by (x, y) with x in [0,width) and y in [0,height).
type Grid struct {
	width  int
	height int

	// cells is stored column-major: cells[x][y]
	cells [][]Cell
}

// NewGrid creates a new grid with the given dimensions, every cell solid
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Initialize(width, height)
	return g
}

// Initialize allocates a width x height grid with every cell solid.
// Calling it again discards the previous cells.
func (g *Grid) Initialize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height

	// one backing array keeps the columns contiguous
	backing := make([]Cell, width*height)
	g.cells = make([][]Cell, width)
	for x := range g.cells {
		g.cells[x] = backing[x*height : (x+1)*height : (x+1)*height]
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies within the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// mustCell returns a pointer to the cell at (x, y), panicking when out of bounds
func (g *Grid) mustCell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return &g.cells[x][y]
}

// CellAt returns a copy of the cell at (x, y)
func (g *Grid) CellAt(x, y int) Cell {
	return *g.mustCell(x, y)
}

// SetCellProperties sets all flags of the cell at (x, y)
func (g *Grid) SetCellProperties(x, y int, walkable, transparent, explored bool) {
	c := g.mustCell(x, y)
	c.Walkable = walkable
	c.Transparent = transparent
	c.Explored = explored
}

// IsWalkable returns true when the cell at (x, y) is walkable
func (g *Grid) IsWalkable(x, y int) bool {
	return g.mustCell(x, y).Walkable
}

// SetIsWalkable sets only the walkable flag of the cell at (x, y)
func (g *Grid) SetIsWalkable(x, y int, walkable bool) {
	g.mustCell(x, y).Walkable = walkable
}

// IsTransparent returns true when the cell at (x, y) does not block sight
func (g *Grid) IsTransparent(x, y int) bool {
	return g.mustCell(x, y).Transparent
}

// IsExplored returns true when the cell at (x, y) has been seen
func (g *Grid) IsExplored(x, y int) bool {
	return g.mustCell(x, y).Explored
}

// SetIsExplored sets only the explored flag of the cell at (x, y)
func (g *Grid) SetIsExplored(x, y int, explored bool) {
	g.mustCell(x, y).Explored = explored
}

// ForEachCell iterates over all cells row by row, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[x][y])
		}
	}
}

// WalkableCount returns the number of walkable cells
func (g *Grid) WalkableCount() int {
	n := 0
	for x := range g.cells {
		for _, c := range g.cells[x] {
			if c.Walkable {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and identical cells
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.cells {
		for y, c := range g.cells[x] {
			if other.cells[x][y] != c {
				return false
			}
		}
	}
	return true
}
