package world

// Point is an (x, y) coordinate in grid cell space
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Room is an axis-aligned rectangular region of the grid.
// Rooms are values: two rooms with the same coordinates are the same room.
// The rectangle is half-open, covering [Left, Right) x [Top, Bottom);
// the cells on Right and Bottom are the room's far walls.
type Room struct {
	X, Y          int
	Width, Height int
}

// NewRoom creates a room with its top-left corner at (x, y)
func NewRoom(x, y, width, height int) Room {
	return Room{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x coordinate of the left wall
func (r Room) Left() int { return r.X }

// Top returns the y coordinate of the top wall
func (r Room) Top() int { return r.Y }

// Right returns the x coordinate of the right wall
func (r Room) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom wall
func (r Room) Bottom() int { return r.Y + r.Height }

// Center returns the center point of the room
func (r Room) Center() Point {
	return Point{X: (r.Left() + r.Right()) / 2, Y: (r.Top() + r.Bottom()) / 2}
}

// Contains reports whether p lies inside the half-open rectangle
func (r Room) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersects reports whether the half-open rectangles of r and other overlap
func (r Room) Intersects(other Room) bool {
	return r.Left() < other.Right() && other.Left() < r.Right() &&
		r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// Interior returns the inclusive bounds of the carvable interior.
// Empty interiors have minX > maxX or minY > maxY.
func (r Room) Interior() (minX, minY, maxX, maxY int) {
	return r.Left() + 1, r.Top() + 1, r.Right() - 1, r.Bottom() - 1
}

// HasInterior reports whether at least one cell lies strictly inside the walls
func (r Room) HasInterior() bool {
	minX, minY, maxX, maxY := r.Interior()
	return minX <= maxX && minY <= maxY
}

// InInterior reports whether p lies strictly inside the walls
func (r Room) InInterior(p Point) bool {
	minX, minY, maxX, maxY := r.Interior()
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// OnRing reports whether p lies on the wall ring, Right and Bottom included
func (r Room) OnRing(p Point) bool {
	if p.X < r.Left() || p.X > r.Right() || p.Y < r.Top() || p.Y > r.Bottom() {
		return false
	}
	return !r.InInterior(p)
}

// Wall returns the door cell at the middle of the given wall
func (r Room) Wall(dir Direction) Point {
	c := r.Center()
	switch dir {
	case North:
		return Point{X: c.X, Y: r.Top()}
	case East:
		return Point{X: r.Right(), Y: c.Y}
	case South:
		return Point{X: c.X, Y: r.Bottom()}
	case West:
		return Point{X: r.Left(), Y: c.Y}
	default:
		return c
	}
}
