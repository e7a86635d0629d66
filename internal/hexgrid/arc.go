package hexgrid

import "fmt"

// ─── Bearings & Arcs ────────────────────────────────────────────────────────

// Arc is the sector of a unit's surroundings a point falls into.
type Arc int

const (
	ArcFront Arc = iota
	ArcLeft
	ArcRight
	ArcRear
)

func (a Arc) String() string {
	switch a {
	case ArcFront:
		return "front"
	case ArcLeft:
		return "left"
	case ArcRight:
		return "right"
	case ArcRear:
		return "rear"
	}
	return "unknown"
}

func (a Arc) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Arc) UnmarshalText(b []byte) error {
	for v := ArcFront; v <= ArcRear; v++ {
		if v.String() == string(b) {
			*a = v
			return nil
		}
	}
	return fmt.Errorf("unknown arc %q", b)
}

// DirectionTo returns the facing from `from` that points most directly at
// `to`, using integer dot products against the cube direction vectors. Ties
// go to the lower facing; identical hexes return North.
func DirectionTo(from, to Coord) Facing {
	if from == to {
		return North
	}
	dq := to.Q - from.Q
	dr := to.R - from.R
	ds := to.S() - from.S()

	best := North
	bestDot := -(1 << 30)
	for i, d := range directions {
		dot := dq*d.Q + dr*d.R + ds*d.S()
		if dot > bestDot {
			bestDot = dot
			best = Facing(i)
		}
	}
	return best
}

// ArcOf returns which arc of a unit at pos target sits in. Front covers the
// facing hexside and one either side, the remaining three hexsides are
// right, rear and left.
func ArcOf(pos Coord, facing Facing, target Coord) Arc {
	diff := mod6(int(DirectionTo(pos, target)) - int(facing))
	switch diff {
	case 2:
		return ArcRight
	case 3:
		return ArcRear
	case 4:
		return ArcLeft
	default:
		return ArcFront
	}
}
