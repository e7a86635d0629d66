// Package hitloc rolls BattleMech hit locations. The weapon engine asks for
// one location per hit it reports; damage application happens elsewhere.
package hitloc

import (
	"fmt"

	"github.com/JustinWhittecar/hexcombat/internal/dice"
	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
)

// ─── Location constants ─────────────────────────────────────────────────────

type Location int

const (
	Head Location = iota
	CenterTorso
	LeftTorso
	RightTorso
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

var locNames = [...]string{"HD", "CT", "LT", "RT", "LA", "RA", "LL", "RL"}

func (l Location) String() string {
	if l < Head || l > RightLeg {
		return "??"
	}
	return locNames[l]
}

func (l Location) IsTorso() bool {
	return l == CenterTorso || l == LeftTorso || l == RightTorso
}

func (l Location) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Location) UnmarshalText(b []byte) error {
	for i, n := range locNames {
		if n == string(b) {
			*l = Location(i)
			return nil
		}
	}
	return fmt.Errorf("unknown location %q", b)
}

// Side is the table column an attack rolls on.
type Side int

const (
	Front Side = iota
	Rear
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Rear:
		return "rear"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(b []byte) error {
	for v := Front; v <= Right; v++ {
		if v.String() == string(b) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", b)
}

// SideFromArc picks the table for an attack arriving in the target's arc.
func SideFromArc(a hexgrid.Arc) Side {
	switch a {
	case hexgrid.ArcRear:
		return Rear
	case hexgrid.ArcLeft:
		return Left
	case hexgrid.ArcRight:
		return Right
	default:
		return Front
	}
}

// ─── Tables ─────────────────────────────────────────────────────────────────

// 2d6 hit location tables, index 0-10 for rolls 2-12.
var (
	frontHitTable = [11]Location{
		CenterTorso, RightArm, RightArm, RightLeg, RightTorso, CenterTorso, LeftTorso, LeftLeg, LeftArm, LeftArm, Head,
	}
	// Rear uses the front column; roll 12 is still the head.
	rearHitTable = frontHitTable
	leftHitTable = [11]Location{
		LeftTorso, LeftLeg, LeftArm, LeftArm, LeftLeg, LeftTorso, CenterTorso, RightTorso, RightArm, RightLeg, Head,
	}
	rightHitTable = [11]Location{
		RightTorso, RightLeg, RightArm, RightArm, RightLeg, RightTorso, CenterTorso, LeftTorso, LeftArm, LeftLeg, Head,
	}
)

// Result is one rolled hit location. A natural 2 may cause a critical
// through intact armor.
type Result struct {
	Location         Location  `json:"location"`
	Rear             bool      `json:"rear,omitempty"`
	Roll             dice.Roll `json:"roll"`
	FloatingCritical bool      `json:"floatingCritical,omitempty"`
}

func (r Result) String() string {
	if r.Rear {
		return r.Location.String() + "(R)"
	}
	return r.Location.String()
}

// Lookup maps an already-thrown roll onto the table for side. Totals
// outside 2-12 are clamped.
func Lookup(side Side, roll dice.Roll) Result {
	idx := roll.Total - 2
	if idx < 0 {
		idx = 0
	}
	if idx > 10 {
		idx = 10
	}

	var loc Location
	switch side {
	case Rear:
		loc = rearHitTable[idx]
	case Left:
		loc = leftHitTable[idx]
	case Right:
		loc = rightHitTable[idx]
	default:
		loc = frontHitTable[idx]
	}
	return Result{
		Location:         loc,
		Rear:             side == Rear && loc.IsTorso(),
		Roll:             roll,
		FloatingCritical: roll.Total == 2,
	}
}

// Standard is the BattleMech hit location table.
type Standard struct{}

// Roll throws 2d6 on r and looks the result up.
func (Standard) Roll(r dice.Roller, side Side) Result {
	return Lookup(side, dice.Roll2d6(r))
}
