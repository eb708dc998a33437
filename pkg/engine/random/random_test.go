package random

import "testing"

func TestBetween_HalfOpen(t *testing.T) {
	src := New(42)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := Between(src, 3, 7)
		if v < 3 || v >= 7 {
			t.Fatalf("Between(3,7) = %d, out of [3,7)", v)
		}
		seen[v] = true
	}
	for v := 3; v < 7; v++ {
		if !seen[v] {
			t.Errorf("Between(3,7) never produced %d", v)
		}
	}
}

func TestBetween_PanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Between(5,5) did not panic")
		}
	}()
	Between(New(1), 5, 5)
}

func TestIndex_ReachesLastElement(t *testing.T) {
	src := New(7)
	const n = 16
	counts := make([]int, n)
	for i := 0; i < n*500; i++ {
		counts[Index(src, n)]++
	}
	for i, c := range counts {
		if c == 0 {
			t.Errorf("index %d never drawn", i)
		}
	}
}

func TestSequence_ReplaysAndReduces(t *testing.T) {
	s := NewSequence(5, 1, -1)
	if got := s.Intn(3); got != 2 {
		t.Errorf("first draw = %d, want 2", got)
	}
	if got := s.Intn(10); got != 1 {
		t.Errorf("second draw = %d, want 1", got)
	}
	if got := s.Intn(4); got != 3 {
		t.Errorf("third draw = %d, want 3 (negative wraps)", got)
	}
	// wraps to the start
	if got := s.Intn(100); got != 5 {
		t.Errorf("fourth draw = %d, want 5", got)
	}
	if s.Used() != 4 {
		t.Errorf("Used() = %d, want 4", s.Used())
	}
}

func TestSequence_Deterministic(t *testing.T) {
	a := NewSequence(3, 9, 4, 4)
	b := NewSequence(3, 9, 4, 4)
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(7), b.Intn(7); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestCounting(t *testing.T) {
	c := &Counting{Source: NewSequence(1)}
	Coin(c)
	Index(c, 4)
	if c.Draws != 2 {
		t.Errorf("Draws = %d, want 2", c.Draws)
	}
}
