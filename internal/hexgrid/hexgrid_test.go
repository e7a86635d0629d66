package hexgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 0}, 1},
		{Coord{0, 0}, Coord{0, -1}, 1},
		{Coord{0, 0}, Coord{3, -1}, 3},
		{Coord{0, 0}, Coord{2, 2}, 4},
		{Coord{-2, 1}, Coord{2, -1}, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "%v -> %v", tt.a, tt.b)
		assert.Equal(t, tt.want, tt.b.DistanceTo(tt.a), "symmetric %v -> %v", tt.b, tt.a)
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	c := Coord{3, -2}
	for f := North; f <= Northwest; f++ {
		n := c.Neighbor(f)
		assert.Equal(t, 1, Distance(c, n), f.String())
		assert.Equal(t, c, n.Neighbor(f.Opposite()), "back across %s", f)
	}
	assert.Equal(t, Coord{0, -1}, Coord{}.Neighbor(North))
	assert.Equal(t, Coord{0, -1}, Coord{}.Neighbor(Facing(6)), "facing wraps")
}

func TestOffsetConversion(t *testing.T) {
	tests := []struct {
		label string
		want  Coord
	}{
		{"0101", Coord{0, 0}},
		{"0201", Coord{1, 0}},
		{"0202", Coord{1, 1}},
		{"0301", Coord{2, -1}},
		{"0507", Coord{4, 4}},
		{"101205", Coord{100, 154}},
	}
	for _, tt := range tests {
		o, err := ParseOffset(tt.label)
		require.NoError(t, err, tt.label)
		got := o.ToAxial()
		assert.Equal(t, tt.want, got, tt.label)
		assert.Equal(t, o, got.ToOffset(), "round trip %s", tt.label)
	}
}

func TestOffsetAdjacencyMatchesBoard(t *testing.T) {
	// Even columns sit half a hex lower: 0201 touches 0101 and 0102.
	hex := func(s string) Coord {
		o, err := ParseOffset(s)
		require.NoError(t, err)
		return o.ToAxial()
	}
	assert.Equal(t, 1, Distance(hex("0101"), hex("0201")))
	assert.Equal(t, 1, Distance(hex("0102"), hex("0201")))
	assert.Equal(t, 2, Distance(hex("0101"), hex("0202")))
	assert.Equal(t, 1, Distance(hex("0202"), hex("0302")))
}

func TestParseOffsetErrors(t *testing.T) {
	for _, s := range []string{"", "101", "ab01", "0100", "0001", "-101"} {
		_, err := ParseOffset(s)
		assert.True(t, errors.Is(err, ErrInvalidCoordinate), "%q: %v", s, err)
	}
	assert.ErrorIs(t, Offset{Col: -1, Row: 3}.Validate(), ErrInvalidCoordinate)
}

func TestFacingRotation(t *testing.T) {
	for f := North; f <= Northwest; f++ {
		assert.Equal(t, f, f.RotateClockwise(6), "closure %s", f)
		assert.Equal(t, f, f.RotateCounterClockwise(6))
		assert.Equal(t, f, f.RotateClockwise(2).RotateCounterClockwise(2))
		assert.Equal(t, 0, Difference(f, f))
		assert.Equal(t, 3, Difference(f, f.Opposite()))
	}
	assert.Equal(t, Northwest, North.RotateCounterClockwise(1))
	assert.Equal(t, Southeast, Northwest.RotateClockwise(3))
	assert.Equal(t, Northwest, North.RotateClockwise(-1))
	assert.Equal(t, Southwest, Northeast.Opposite())
}

func TestFacingDifference(t *testing.T) {
	tests := []struct {
		a, b Facing
		diff int
		dir  int
	}{
		{North, Northeast, 1, 1},
		{North, Northwest, 1, -1},
		{Northeast, Northwest, 2, -1},
		{Northwest, Northeast, 2, 1},
		{North, South, 3, 1},
		{Southwest, Southwest, 0, 0},
		{South, North, 3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.diff, Difference(tt.a, tt.b), "%s->%s", tt.a, tt.b)
		assert.Equal(t, tt.diff, Difference(tt.b, tt.a), "%s->%s", tt.b, tt.a)
		assert.Equal(t, tt.dir, RotationDirection(tt.a, tt.b), "%s->%s", tt.a, tt.b)
	}
}

func TestFacingString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "SW", Southwest.String())
	assert.Equal(t, "NE", Facing(7).String())
	assert.True(t, Northwest.Valid())
	assert.False(t, Facing(6).Valid())
	assert.False(t, Facing(-1).Valid())
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
		want []Coord
	}{
		{"same hex", Coord{1, 1}, Coord{1, 1}, []Coord{{1, 1}}},
		{"adjacent", Coord{0, 0}, Coord{1, 0}, []Coord{{0, 0}, {1, 0}}},
		{"south", Coord{0, 0}, Coord{0, 4}, []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}},
		{"southeast", Coord{0, 0}, Coord{3, 0}, []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"northeast", Coord{0, 0}, Coord{2, -2}, []Coord{{0, 0}, {1, -1}, {2, -2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.a, tt.b))
		})
	}
}

func TestLineIsContiguous(t *testing.T) {
	a, b := Coord{-3, 5}, Coord{4, -1}
	line := Line(a, b)
	require.Len(t, line, Distance(a, b)+1)
	assert.Equal(t, a, line[0])
	assert.Equal(t, b, line[len(line)-1])
	for i := 1; i < len(line); i++ {
		assert.Equal(t, 1, Distance(line[i-1], line[i]), "step %d", i)
	}
}

func TestBetween(t *testing.T) {
	assert.Nil(t, Between(Coord{0, 0}, Coord{0, 0}))
	assert.Nil(t, Between(Coord{0, 0}, Coord{0, 1}))
	assert.Equal(t, []Coord{{0, 1}, {0, 2}}, Between(Coord{0, 0}, Coord{0, 3}))
}

func TestDirectionTo(t *testing.T) {
	tests := []struct {
		to   Coord
		want Facing
	}{
		{Coord{0, -3}, North},
		{Coord{2, -2}, Northeast},
		{Coord{2, 0}, Southeast},
		{Coord{0, 5}, South},
		{Coord{-1, 1}, Southwest},
		{Coord{-4, 0}, Northwest},
		{Coord{0, 0}, North},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DirectionTo(Coord{}, tt.to), "%v", tt.to)
	}
}

func TestArcOf(t *testing.T) {
	tests := []struct {
		facing Facing
		target Coord
		want   Arc
	}{
		{North, Coord{0, -3}, ArcFront},
		{North, Coord{-3, 0}, ArcFront},
		{North, Coord{3, -3}, ArcFront},
		{North, Coord{3, 0}, ArcRight},
		{North, Coord{0, 3}, ArcRear},
		{North, Coord{-3, 3}, ArcLeft},
		{South, Coord{0, -3}, ArcRear},
		{South, Coord{0, 3}, ArcFront},
		{Southeast, Coord{0, 3}, ArcFront},
		{Northeast, Coord{0, 3}, ArcRight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ArcOf(Coord{}, tt.facing, tt.target), "facing %s -> %v", tt.facing, tt.target)
	}
	assert.Equal(t, "rear", ArcRear.String())
}

func TestUnitPositionUpdatesReturnCopies(t *testing.T) {
	p := NewUnitPosition("atlas", Coord{1, 1}, Facing(8)).WithProne(true)
	assert.Equal(t, Southeast, p.Facing)

	moved := p.WithCoordinate(Coord{2, 2})
	assert.Equal(t, Coord{1, 1}, p.Coord)
	assert.Equal(t, Coord{2, 2}, moved.Coord)
	assert.True(t, moved.Prone, "WithCoordinate keeps posture")

	turned := p.WithFacing(South)
	assert.Equal(t, Southeast, p.Facing)
	assert.Equal(t, South, turned.Facing)

	stood := p.MoveTo(Coord{3, 0}, North)
	assert.False(t, stood.Prone)
	assert.Equal(t, Coord{3, 0}, stood.Coord)
	assert.Equal(t, North, stood.Facing)
	assert.True(t, p.Prone)
}

func TestPositionMapIsImmutable(t *testing.T) {
	var empty PositionMap
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.All())

	a := NewUnitPosition("b-hunchback", Coord{0, 0}, North)
	b := NewUnitPosition("a-atlas", Coord{0, 0}, South)
	c := NewUnitPosition("c-locust", Coord{4, 1}, North)

	m1 := empty.Insert(a)
	m2 := m1.Insert(b).Insert(c)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, m1.Len())
	assert.Equal(t, 3, m2.Len())

	here := m2.FindAt(Coord{0, 0})
	require.Len(t, here, 2)
	assert.Equal(t, "a-atlas", here[0].UnitID)
	assert.Equal(t, "b-hunchback", here[1].UnitID)
	assert.Empty(t, m2.FindAt(Coord{9, 9}))

	m3 := m2.Remove("a-atlas")
	assert.Equal(t, 3, m2.Len())
	assert.Equal(t, 2, m3.Len())
	_, ok := m3.Get("a-atlas")
	assert.False(t, ok)

	assert.Equal(t, m3.All(), m3.Remove("missing").All())

	moved := m3.Insert(c.MoveTo(Coord{5, 1}, Northeast))
	got, ok := moved.Get("c-locust")
	require.True(t, ok)
	assert.Equal(t, Coord{5, 1}, got.Coord)
	orig, _ := m3.Get("c-locust")
	assert.Equal(t, Coord{4, 1}, orig.Coord)

	all := NewPositionMap(c, a, b).All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a-atlas", "b-hunchback", "c-locust"},
		[]string{all[0].UnitID, all[1].UnitID, all[2].UnitID})
}
