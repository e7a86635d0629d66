package hexgrid

// ─── Facing ─────────────────────────────────────────────────────────────────
// Facing 0-5: 0=N, 1=NE, 2=SE, 3=S, 4=SW, 5=NW (clockwise from top)

// Facing is one of the six hexside directions.
type Facing int

const (
	North Facing = iota
	Northeast
	Southeast
	South
	Southwest
	Northwest
)

var facingNames = [6]string{"N", "NE", "SE", "S", "SW", "NW"}

func (f Facing) String() string { return facingNames[f.normalize()] }

// Valid reports whether f is one of the six defined facings.
func (f Facing) Valid() bool { return f >= North && f <= Northwest }

func (f Facing) normalize() Facing { return Facing(mod6(int(f))) }

func mod6(n int) int { return (n%6 + 6) % 6 }

// RotateClockwise turns f by n hexsides clockwise. Negative n turns the
// other way.
func (f Facing) RotateClockwise(n int) Facing { return Facing(mod6(int(f) + n)) }

// RotateCounterClockwise turns f by n hexsides counter-clockwise.
func (f Facing) RotateCounterClockwise(n int) Facing { return Facing(mod6(int(f) - n)) }

// Opposite returns the facing three hexsides away.
func (f Facing) Opposite() Facing { return f.RotateClockwise(3) }

// Difference returns the fewest hexside turns (0-3) between a and b in
// either direction.
func Difference(a, b Facing) int {
	d := mod6(int(b) - int(a))
	if d > 3 {
		d = 6 - d
	}
	return d
}

// RotationDirection returns +1 when turning clockwise from a is the shorter
// way to reach b and -1 when counter-clockwise is. A half turn counts as
// clockwise; equal facings return 0.
func RotationDirection(a, b Facing) int {
	d := mod6(int(b) - int(a))
	switch {
	case d == 0:
		return 0
	case d <= 3:
		return 1
	default:
		return -1
	}
}
