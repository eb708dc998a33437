package world

import "testing"

func TestRoomAccessors(t *testing.T) {
	r := NewRoom(200, 400, 199, 199)
	if r.Left() != 200 || r.Top() != 400 || r.Right() != 399 || r.Bottom() != 599 {
		t.Errorf("bounds = (%d,%d,%d,%d), want (200,400,399,599)", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Point{299, 499}) {
		t.Errorf("Center() = %v, want (299,499)", c)
	}
	minX, minY, maxX, maxY := r.Interior()
	if minX != 201 || minY != 401 || maxX != 398 || maxY != 598 {
		t.Errorf("Interior() = (%d,%d,%d,%d), want (201,401,398,598)", minX, minY, maxX, maxY)
	}
}

func TestRoomEquality(t *testing.T) {
	if NewRoom(1, 2, 3, 4) != NewRoom(1, 2, 3, 4) {
		t.Error("rooms with equal coordinates should be equal")
	}
	if NewRoom(1, 2, 3, 4) == NewRoom(1, 2, 3, 5) {
		t.Error("rooms with different sizes should differ")
	}
}

func TestRoomContains(t *testing.T) {
	r := NewRoom(0, 0, 4, 4)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{3, 3}, true},
		{Point{4, 0}, false},
		{Point{0, 4}, false},
		{Point{-1, 2}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRoomIntersects(t *testing.T) {
	a := NewRoom(0, 0, 4, 4)
	b := NewRoom(3, 3, 4, 4)
	// adjacent partition slots of width 5 shrunk to 4
	c := NewRoom(5, 0, 4, 4)
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	if c.Left()-a.Right() != 1 {
		t.Errorf("gap between a and c = %d, want 1", c.Left()-a.Right())
	}
}

func TestRoomHasInterior(t *testing.T) {
	cases := []struct {
		w, h int
		want bool
	}{
		{1, 5, false},
		{5, 1, false},
		{0, 0, false},
		{2, 2, true},
		{9, 9, true},
	}
	for _, c := range cases {
		if got := NewRoom(3, 3, c.w, c.h).HasInterior(); got != c.want {
			t.Errorf("HasInterior(%dx%d) = %v, want %v", c.w, c.h, got, c.want)
		}
	}
}

func TestRoomOnRing(t *testing.T) {
	r := NewRoom(10, 10, 4, 4)
	ring := []Point{{10, 10}, {14, 10}, {10, 14}, {14, 14}, {12, 10}, {14, 12}}
	for _, p := range ring {
		if !r.OnRing(p) {
			t.Errorf("OnRing(%v) = false, want true", p)
		}
	}
	notRing := []Point{{11, 11}, {13, 13}, {9, 10}, {15, 12}}
	for _, p := range notRing {
		if r.OnRing(p) {
			t.Errorf("OnRing(%v) = true, want false", p)
		}
	}
}

func TestRoomWall(t *testing.T) {
	r := NewRoom(0, 0, 8, 6)
	cases := map[Direction]Point{
		North: {4, 0},
		East:  {8, 3},
		South: {4, 6},
		West:  {0, 3},
	}
	for dir, want := range cases {
		if got := r.Wall(dir); got != want {
			t.Errorf("Wall(%v) = %v, want %v", dir, got, want)
		}
		if !r.OnRing(r.Wall(dir)) {
			t.Errorf("Wall(%v) not on ring", dir)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	cases := []struct {
		a, b Point
		want Direction
		ok   bool
	}{
		{Point{0, 0}, Point{5, 0}, East, true},
		{Point{5, 0}, Point{0, 0}, West, true},
		{Point{0, 0}, Point{0, 5}, South, true},
		{Point{0, 5}, Point{0, 0}, North, true},
		{Point{2, 2}, Point{2, 2}, North, false},
	}
	for _, c := range cases {
		got, ok := DirectionBetween(c.a, c.b)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("DirectionBetween(%v,%v) = %v,%v want %v,%v", c.a, c.b, got, ok, c.want, c.ok)
		}
	}
}

func TestDirectionOppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v delta (%d,%d) not opposite of (%d,%d)", d, dx, dy, ox, oy)
		}
	}
	if Direction(9).IsValid() {
		t.Error("Direction(9).IsValid() = true")
	}
}
