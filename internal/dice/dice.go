// Package dice rolls six-sided dice through caller-owned random sources.
//
// # Determinism
//
// Every roll goes through a Roller owned by the caller. Two Rollers built
// from the same seed (or the same scripted faces) and called in the same
// order produce the same sequence, in any process. Nothing in this package
// keeps shared mutable state between Roller instances, so independent
// resolutions may run concurrently as long as each owns its Roller.
package dice

import (
	"fmt"
	"math/rand/v2"
)

// Roller produces single die faces in [1,6].
type Roller interface {
	D6() int
}

// ─── Roll ───────────────────────────────────────────────────────────────────

// Roll is the result of a 2d6 throw. It is created fresh for every throw.
type Roll struct {
	Dice      [2]int `json:"dice"`
	Total     int    `json:"total"`
	SnakeEyes bool   `json:"snakeEyes,omitempty"`
	Boxcars   bool   `json:"boxcars,omitempty"`
}

// NewRoll builds a Roll from two faces. Faces are clamped into [1,6].
func NewRoll(a, b int) Roll {
	a, b = clampFace(a), clampFace(b)
	return Roll{
		Dice:      [2]int{a, b},
		Total:     a + b,
		SnakeEyes: a == 1 && b == 1,
		Boxcars:   a == 6 && b == 6,
	}
}

func (r Roll) String() string {
	return fmt.Sprintf("%d+%d=%d", r.Dice[0], r.Dice[1], r.Total)
}

// RollD6 throws one die. A nil Roller falls back to Uniform.
func RollD6(r Roller) int {
	if r == nil {
		r = Uniform()
	}
	return clampFace(r.D6())
}

// Roll2d6 throws two dice, first die first.
func Roll2d6(r Roller) Roll {
	if r == nil {
		r = Uniform()
	}
	a := RollD6(r)
	b := RollD6(r)
	return NewRoll(a, b)
}

func clampFace(f int) int {
	if f < 1 {
		return 1
	}
	if f > 6 {
		return 6
	}
	return f
}

// ─── Rollers ────────────────────────────────────────────────────────────────

type uniform struct{}

func (uniform) D6() int { return rand.IntN(6) + 1 }

// Uniform returns an unseeded Roller backed by the runtime generator. It is
// safe for concurrent use but not reproducible.
func Uniform() Roller { return uniform{} }

// Seeded is a reproducible PCG-backed Roller. Not safe for concurrent use;
// give each goroutine its own.
type Seeded struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeeded returns a Roller whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{seed: seed, rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *Seeded) D6() int { return s.rng.IntN(6) + 1 }

// Seed reports the seed this Roller was built from.
func (s *Seeded) Seed() uint64 { return s.seed }

// Func adapts an injected die function to a Roller. Out-of-range faces are
// clamped into [1,6].
type Func func() int

func (f Func) D6() int { return clampFace(f()) }

// Scripted replays a fixed list of faces, wrapping around at the end.
type Scripted struct {
	faces []int
	next  int
}

// Sequence returns a Roller that yields faces in order. With no faces it
// always yields 1.
func Sequence(faces ...int) *Scripted {
	cp := make([]int, len(faces))
	copy(cp, faces)
	return &Scripted{faces: cp}
}

func (s *Scripted) D6() int {
	if len(s.faces) == 0 {
		return 1
	}
	f := s.faces[s.next%len(s.faces)]
	s.next++
	return clampFace(f)
}

// Consumed reports how many faces have been drawn so far.
func (s *Scripted) Consumed() int { return s.next }

// Recorder wraps a Roller and keeps every face it hands out, so a
// resolution can be audited or replayed with Sequence.
type Recorder struct {
	inner Roller
	faces []int
}

// Record wraps r. A nil r records from Uniform.
func Record(r Roller) *Recorder {
	if r == nil {
		r = Uniform()
	}
	return &Recorder{inner: r}
}

func (r *Recorder) D6() int {
	f := clampFace(r.inner.D6())
	r.faces = append(r.faces, f)
	return f
}

// Faces returns a copy of the faces drawn so far.
func (r *Recorder) Faces() []int {
	out := make([]int, len(r.faces))
	copy(out, r.faces)
	return out
}

// ─── 2d6 probability table ─────────────────────────────────────────────────

var pAtLeast = [13]float64{
	0, 0, 1.0, 35.0 / 36, 33.0 / 36, 30.0 / 36, 26.0 / 36,
	21.0 / 36, 15.0 / 36, 10.0 / 36, 6.0 / 36, 3.0 / 36, 1.0 / 36,
}

// ProbabilityAtLeast returns P(2d6 >= tn).
func ProbabilityAtLeast(tn int) float64 {
	if tn <= 2 {
		return 1.0
	}
	if tn >= 13 {
		return 0.0
	}
	return pAtLeast[tn]
}
