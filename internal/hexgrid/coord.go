// Package hexgrid models a flat-topped hex map in axial coordinates, unit
// facings, and immutable unit positions.
package hexgrid

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCoordinate is returned for malformed or negative board coordinates.
var ErrInvalidCoordinate = errors.New("invalid hex coordinate")

// ─── Axial Coordinates ──────────────────────────────────────────────────────
// Flat-topped hexes. q grows to the east, r grows to the south;
// the implicit cube s = -q-r.

// Coord is an axial hex coordinate.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube component.
func (c Coord) S() int { return -c.Q - c.R }

func (c Coord) Add(o Coord) Coord { return Coord{Q: c.Q + o.Q, R: c.R + o.R} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Q, c.R) }

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// DistanceTo is the method form of Distance.
func (c Coord) DistanceTo(o Coord) int { return Distance(c, o) }

// Axial direction vectors indexed by Facing.
var directions = [6]Coord{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // NW
}

// Neighbor returns the adjacent hex across the hexside f points at.
func (c Coord) Neighbor(f Facing) Coord {
	return c.Add(directions[f.normalize()])
}

// Neighbors returns the six adjacent hexes in facing order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i := range directions {
		out[i] = c.Add(directions[i])
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ─── Offset (MegaMek XXYY) Coordinates ──────────────────────────────────────
// MegaMek boards use 1-indexed (col, row) offsets where even columns sit half
// a hex lower than odd ones (odd-q in 0-indexed terms).

// Offset is a 1-indexed board coordinate.
type Offset struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Validate rejects coordinates that cannot exist on a board.
func (o Offset) Validate() error {
	if o.Col < 1 || o.Row < 1 {
		return fmt.Errorf("%w: %02d%02d", ErrInvalidCoordinate, o.Col, o.Row)
	}
	return nil
}

func (o Offset) String() string { return fmt.Sprintf("%02d%02d", o.Col, o.Row) }

// ToAxial converts a board offset to axial.
func (o Offset) ToAxial() Coord {
	q := o.Col - 1
	r := o.Row - 1
	return Coord{Q: q, R: r - (q-(q&1))/2}
}

// ToOffset converts an axial coordinate back to a 1-indexed board offset.
func (c Coord) ToOffset() Offset {
	row := c.R + (c.Q-(c.Q&1))/2
	return Offset{Col: c.Q + 1, Row: row + 1}
}

// ParseOffset parses a MegaMek "XXYY" hex label. Longer labels split evenly,
// so "101205" is column 101 row 205.
func ParseOffset(s string) (Offset, error) {
	if len(s) < 4 || len(s)%2 != 0 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	half := len(s) / 2
	col, err := strconv.Atoi(s[:half])
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	row, err := strconv.Atoi(s[half:])
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	o := Offset{Col: col, Row: row}
	if err := o.Validate(); err != nil {
		return Offset{}, err
	}
	return o, nil
}
