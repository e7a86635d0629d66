// Package rangelos turns shooter/target geometry into range brackets and
// line-of-sight verdicts. It reports modifiers; applying them to a target
// number is left to the caller.
package rangelos

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeDistance is returned for distances below zero.
	ErrNegativeDistance = errors.New("negative distance")
	// ErrInvalidProfile is returned for weapon range profiles whose
	// brackets are not ordered.
	ErrInvalidProfile = errors.New("invalid range profile")
)

// Impossible is the modifier reported for a target out of range. Any
// target number carrying it can never be rolled.
const Impossible = math.MaxInt32

// ─── Brackets ───────────────────────────────────────────────────────────────

type Bracket int

const (
	Short Bracket = iota
	Medium
	Long
	Extreme
	OutOfRange
)

func (b Bracket) String() string {
	switch b {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	case Extreme:
		return "extreme"
	case OutOfRange:
		return "out of range"
	}
	return "unknown"
}

func (b Bracket) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Bracket) UnmarshalText(text []byte) error {
	for v := Short; v <= OutOfRange; v++ {
		if v.String() == string(text) {
			*b = v
			return nil
		}
	}
	return fmt.Errorf("unknown range bracket %q", text)
}

// Modifier is the standard to-hit modifier for the bracket.
func (b Bracket) Modifier() int {
	switch b {
	case Short:
		return 0
	case Medium:
		return 2
	case Long:
		return 4
	case Extreme:
		return 6
	default:
		return Impossible
	}
}

// Result is a resolved range check.
type Result struct {
	Distance            int     `json:"distance"`
	Bracket             Bracket `json:"bracket"`
	Modifier            int     `json:"modifier"`
	InRange             bool    `json:"inRange"`
	MinimumRangePenalty int     `json:"minimumRangePenalty,omitempty"`
}

func newResult(dist int, b Bracket) Result {
	return Result{
		Distance: dist,
		Bracket:  b,
		Modifier: b.Modifier(),
		InRange:  b != OutOfRange,
	}
}

// GenericBracket maps a distance onto the weapon-independent brackets:
// short 0-3, medium 4-6, long 7-15, extreme 16+.
func GenericBracket(dist int) (Result, error) {
	if dist < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDistance, dist)
	}
	switch {
	case dist <= 3:
		return newResult(dist, Short), nil
	case dist <= 6:
		return newResult(dist, Medium), nil
	case dist <= 15:
		return newResult(dist, Long), nil
	default:
		return newResult(dist, Extreme), nil
	}
}

// ─── Weapon profiles ────────────────────────────────────────────────────────

// Profile is a weapon's range brackets in hexes. Zero Extreme or Minimum
// means the weapon has none.
type Profile struct {
	Minimum int `json:"minimum,omitempty"`
	Short   int `json:"short"`
	Medium  int `json:"medium"`
	Long    int `json:"long"`
	Extreme int `json:"extreme,omitempty"`
}

// Validate rejects negative or out-of-order brackets.
func (p Profile) Validate() error {
	if p.Minimum < 0 || p.Short < 0 || p.Medium < p.Short || p.Long < p.Medium {
		return fmt.Errorf("%w: %d/%d/%d/%d min %d", ErrInvalidProfile, p.Short, p.Medium, p.Long, p.Extreme, p.Minimum)
	}
	if p.Extreme != 0 && p.Extreme < p.Long {
		return fmt.Errorf("%w: extreme %d below long %d", ErrInvalidProfile, p.Extreme, p.Long)
	}
	return nil
}

// MaxRange is the farthest distance the profile reaches.
func (p Profile) MaxRange() int {
	if p.Extreme > p.Long {
		return p.Extreme
	}
	return p.Long
}

func (p Profile) String() string {
	s := fmt.Sprintf("%d/%d/%d", p.Short, p.Medium, p.Long)
	if p.Extreme > 0 {
		s += fmt.Sprintf("/%d", p.Extreme)
	}
	if p.Minimum > 0 {
		s += fmt.Sprintf(" (min %d)", p.Minimum)
	}
	return s
}

// ForWeapon resolves dist against the weapon's own brackets. Beyond the
// farthest bracket the target is out of range. Inside the minimum range
// the penalty is reported but not folded into Modifier.
func ForWeapon(p Profile, dist int) (Result, error) {
	if dist < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDistance, dist)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	switch {
	case dist <= p.Short:
		r = newResult(dist, Short)
	case dist <= p.Medium:
		r = newResult(dist, Medium)
	case dist <= p.Long:
		r = newResult(dist, Long)
	case p.Extreme > p.Long && dist <= p.Extreme:
		r = newResult(dist, Extreme)
	default:
		r = newResult(dist, OutOfRange)
	}
	r.MinimumRangePenalty = MinimumRangePenalty(p.Minimum, dist)
	return r, nil
}

// MinimumRangePenalty is minimum-dist+1 when dist falls short of a
// defined minimum, else 0.
func MinimumRangePenalty(minimum, dist int) int {
	if minimum <= 0 || dist >= minimum {
		return 0
	}
	return minimum - dist + 1
}
