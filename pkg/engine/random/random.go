// Package random adapts number generators for level generation.
// Every bound in this package is half-open: [lo, hi).
package random

import (
	"fmt"
	"math/rand"
)

// Source is a uniform integer generator. Intn returns a value in [0, n)
// and may panic when n <= 0, matching math/rand.
type Source interface {
	Intn(n int) int
}

// New returns an independently seeded source
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform value in [lo, hi)
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("random: empty range [%d,%d)", lo, hi))
	}
	return lo + src.Intn(hi-lo)
}

// Index returns a uniform index into a collection of length n
func Index(src Source, n int) int {
	return Between(src, 0, n)
}

// Coin returns 0 or 1 with equal probability
func Coin(src Source) int {
	return src.Intn(2)
}

// Sequence replays a fixed list of draws. Each draw is reduced modulo n,
// so a script can be written without knowing every bound in advance.
// Once exhausted it wraps around to the start.
type Sequence struct {
	draws []int
	next  int
}

// NewSequence creates a scripted source from the given draws
func NewSequence(draws ...int) *Sequence {
	if len(draws) == 0 {
		draws = []int{0}
	}
	return &Sequence{draws: append([]int(nil), draws...)}
}

// Intn returns the next scripted draw reduced into [0, n)
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Used returns how many draws have been consumed
func (s *Sequence) Used() int {
	return s.next
}

// Counting wraps a source and counts the draws made through it
type Counting struct {
	Source Source
	Draws  int
}

// Intn forwards to the wrapped source
func (c *Counting) Intn(n int) int {
	c.Draws++
	return c.Source.Intn(n)
}
