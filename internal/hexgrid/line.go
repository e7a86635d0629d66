package hexgrid

import "math"

// ─── Hex Line ───────────────────────────────────────────────────────────────
// Straight lines are drawn by sampling the cube-space segment between hex
// centers at every 1/N step and rounding each sample to its hex.

// Line returns every hex from a to b inclusive, a first.
func Line(a, b Coord) []Coord {
	dist := Distance(a, b)
	out := make([]Coord, 0, dist+1)
	out = append(out, a)
	for i := 1; i < dist; i++ {
		out = append(out, lerpHex(a, b, float64(i)/float64(dist)))
	}
	if dist > 0 {
		out = append(out, b)
	}
	return out
}

// Between returns the intervening hexes on the line from a to b, excluding
// both endpoints. Adjacent or identical hexes have none.
func Between(a, b Coord) []Coord {
	dist := Distance(a, b)
	if dist <= 1 {
		return nil
	}
	out := make([]Coord, 0, dist-1)
	for i := 1; i < dist; i++ {
		out = append(out, lerpHex(a, b, float64(i)/float64(dist)))
	}
	return out
}

func lerpHex(a, b Coord, t float64) Coord {
	q := lerp(float64(a.Q), float64(b.Q), t)
	r := lerp(float64(a.R), float64(b.R), t)
	s := lerp(float64(a.S()), float64(b.S()), t)
	return cubeRound(q, r, s)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func cubeRound(q, r, s float64) Coord {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}

	return Coord{Q: int(rq), R: int(rr)}
}
