// Package rng provides the uniform integer source used by the shooter's
// spawn logic. It is seeded once per session and is not safe for concurrent use.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniform integers from an inclusive range.
type Source interface {
	Range(lo, hi int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New creates a Rand seeded with seed. A zero seed uses the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [lo, hi]. Returns lo when hi <= lo.
func (g *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Script is a Source that replays a fixed sequence of values, clamped to the
// requested range. Once exhausted it keeps returning Fallback (clamped).
type Script struct {
	Values   []int
	Fallback int
	pos      int
}

// Range returns the next scripted value clamped into [lo, hi].
func (s *Script) Range(lo, hi int) int {
	v := s.Fallback
	if s.pos < len(s.Values) {
		v = s.Values[s.pos]
		s.pos++
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remaining reports how many scripted values have not been consumed yet.
func (s *Script) Remaining() int {
	return len(s.Values) - s.pos
}
