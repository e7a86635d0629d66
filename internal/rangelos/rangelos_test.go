package rangelos

import (
	"errors"
	"testing"

	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericBracket(t *testing.T) {
	tests := []struct {
		dist    int
		bracket Bracket
		mod     int
	}{
		{0, Short, 0}, {3, Short, 0},
		{4, Medium, 2}, {6, Medium, 2},
		{7, Long, 4}, {15, Long, 4},
		{16, Extreme, 6}, {40, Extreme, 6},
	}
	for _, tt := range tests {
		r, err := GenericBracket(tt.dist)
		require.NoError(t, err)
		assert.Equal(t, tt.bracket, r.Bracket, "dist %d", tt.dist)
		assert.Equal(t, tt.mod, r.Modifier, "dist %d", tt.dist)
		assert.True(t, r.InRange)
		assert.Equal(t, tt.dist, r.Distance)
	}

	_, err := GenericBracket(-1)
	assert.ErrorIs(t, err, ErrNegativeDistance)
}

func TestForWeapon(t *testing.T) {
	lrm := Profile{Minimum: 6, Short: 7, Medium: 14, Long: 21}
	erLarge := Profile{Short: 7, Medium: 14, Long: 19, Extreme: 28}

	tests := []struct {
		name    string
		p       Profile
		dist    int
		bracket Bracket
		inRange bool
		minPen  int
	}{
		{"lrm point blank", lrm, 0, Short, true, 7},
		{"lrm at 3", lrm, 3, Short, true, 4},
		{"lrm at 5", lrm, 5, Short, true, 2},
		{"lrm at minimum", lrm, 6, Short, true, 0},
		{"lrm medium", lrm, 10, Medium, true, 0},
		{"lrm long edge", lrm, 21, Long, true, 0},
		{"lrm beyond", lrm, 22, OutOfRange, false, 0},
		{"er large long", erLarge, 19, Long, true, 0},
		{"er large extreme", erLarge, 20, Extreme, true, 0},
		{"er large beyond", erLarge, 29, OutOfRange, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ForWeapon(tt.p, tt.dist)
			require.NoError(t, err)
			assert.Equal(t, tt.bracket, r.Bracket)
			assert.Equal(t, tt.bracket.Modifier(), r.Modifier)
			assert.Equal(t, tt.inRange, r.InRange)
			assert.Equal(t, tt.minPen, r.MinimumRangePenalty)
		})
	}

	r, err := ForWeapon(lrm, 30)
	require.NoError(t, err)
	assert.Equal(t, Impossible, r.Modifier)
}

func TestForWeaponErrors(t *testing.T) {
	_, err := ForWeapon(Profile{Short: 3, Medium: 6, Long: 9}, -2)
	assert.ErrorIs(t, err, ErrNegativeDistance)

	_, err = ForWeapon(Profile{Short: 6, Medium: 3, Long: 9}, 2)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = ForWeapon(Profile{Short: 3, Medium: 6, Long: 9, Extreme: 7}, 2)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestProfileHelpers(t *testing.T) {
	p := Profile{Minimum: 6, Short: 7, Medium: 14, Long: 21}
	assert.Equal(t, 21, p.MaxRange())
	assert.Equal(t, "7/14/21 (min 6)", p.String())
	assert.Equal(t, 28, Profile{Short: 7, Medium: 14, Long: 19, Extreme: 28}.MaxRange())
	assert.Equal(t, 0, MinimumRangePenalty(0, 0))
	assert.Equal(t, 4, MinimumRangePenalty(3, 0))
}

func TestBracketText(t *testing.T) {
	b, err := OutOfRange.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "out of range", string(b))

	var got Bracket
	require.NoError(t, got.UnmarshalText([]byte("medium")))
	assert.Equal(t, Medium, got)
	assert.Error(t, got.UnmarshalText([]byte("far")))
}

// ─── LOS ────────────────────────────────────────────────────────────────────

type brokenSource struct{}

func (brokenSource) Hex(hexgrid.Coord) (terrain.Hex, error) {
	return terrain.Hex{}, terrain.ErrUnresolvedHex
}

func standing(c hexgrid.Coord) Endpoint { return Endpoint{Coord: c, EyeHeight: StandingEyeHeight} }

func TestAdjacentAlwaysVisible(t *testing.T) {
	origin := hexgrid.Coord{}
	for _, n := range origin.Neighbors() {
		r, err := LineOfSight(brokenSource{}, standing(origin), standing(n))
		require.NoError(t, err)
		assert.True(t, r.HasLOS, "neighbor %v", n)
		assert.Empty(t, r.Intervening)
	}

	m := terrain.NewMap(0, 0)
	m.Set(hexgrid.Coord{Q: 0, R: 1}, terrain.Hex{Elevation: 9, Features: []terrain.Feature{{Type: terrain.Building, Level: 5}}})
	r, err := LineOfSight(m, Endpoint{Coord: hexgrid.Coord{}}, Endpoint{Coord: hexgrid.Coord{Q: 0, R: 1}})
	require.NoError(t, err)
	assert.True(t, r.HasLOS)
}

// Shooter on a level-3 hill at (0,0), target on level 0 at (0,4); the only
// terrain sits at (0,3), three quarters of the way along the line.
func elevatedShot(t *testing.T, obstacle terrain.Feature) LOSResult {
	t.Helper()
	m := terrain.NewMap(0, 0)
	m.Set(hexgrid.Coord{}, terrain.Hex{Elevation: 3})
	m.Set(hexgrid.Coord{Q: 0, R: 3}, terrain.Hex{Features: []terrain.Feature{obstacle}})
	r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 0, R: 4}))
	require.NoError(t, err)
	return r
}

func TestElevatedShooterOverWoods(t *testing.T) {
	r := elevatedShot(t, terrain.Feature{Type: terrain.Woods, Level: 1})
	assert.True(t, r.HasLOS)
	assert.Nil(t, r.BlockedBy)
	assert.Equal(t, 1, r.TerrainModifier)
	assert.Equal(t, []hexgrid.Coord{{Q: 0, R: 1}, {Q: 0, R: 2}, {Q: 0, R: 3}}, r.Intervening)
}

func TestElevatedShooterBlockedByBuilding(t *testing.T) {
	bldg := terrain.Feature{Type: terrain.Building, Level: 2}
	r := elevatedShot(t, bldg)
	assert.False(t, r.HasLOS)
	require.NotNil(t, r.BlockedBy)
	assert.Equal(t, hexgrid.Coord{Q: 0, R: 3}, *r.BlockedBy)
	require.NotNil(t, r.BlockingTerrain)
	assert.Equal(t, bldg, *r.BlockingTerrain)
}

// Sight height falls linearly from 4 (hill plus eye) to 1 (target eye), so
// a two-level building blocks only where the line has dropped strictly
// below 2. On a four-hex shot that is the hex next to the target.
func TestElevatedShotBuildingPosition(t *testing.T) {
	bldg := terrain.Feature{Type: terrain.Building, Level: 2}
	tests := []struct {
		name    string
		dist    int
		at      int
		visible bool
	}{
		{"single hex between, distance 2", 2, 1, true},
		{"near shooter, distance 4", 4, 1, true},
		{"midway, distance 4", 4, 2, true},
		{"next to target, distance 4", 4, 3, false},
		{"sight exactly 2, distance 3", 3, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := terrain.NewMap(0, 0)
			m.Set(hexgrid.Coord{}, terrain.Hex{Elevation: 3})
			m.Set(hexgrid.Coord{Q: 0, R: tt.at}, terrain.Hex{Features: []terrain.Feature{bldg}})
			r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 0, R: tt.dist}))
			require.NoError(t, err)
			assert.Equal(t, tt.visible, r.HasLOS)
		})
	}
}

func TestElevatedShotSingleInterveningHex(t *testing.T) {
	shot := func(obstacle terrain.Feature) LOSResult {
		m := terrain.NewMap(0, 0)
		m.Set(hexgrid.Coord{}, terrain.Hex{Elevation: 3})
		m.Set(hexgrid.Coord{Q: 0, R: 1}, terrain.Hex{Features: []terrain.Feature{obstacle}})
		r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 0, R: 2}))
		require.NoError(t, err)
		return r
	}

	// Sight height over the middle hex is 2.5.
	woods := shot(terrain.Feature{Type: terrain.Woods, Level: 1})
	assert.True(t, woods.HasLOS)
	assert.Equal(t, 1, woods.TerrainModifier)
	assert.True(t, shot(terrain.Feature{Type: terrain.Building, Level: 2}).HasLOS)

	tall := shot(terrain.Feature{Type: terrain.Building, Level: 3})
	assert.False(t, tall.HasLOS)
	require.NotNil(t, tall.BlockedBy)
	assert.Equal(t, hexgrid.Coord{Q: 0, R: 1}, *tall.BlockedBy)
}

func TestLOSLevelGround(t *testing.T) {
	tests := []struct {
		name    string
		hex     terrain.Hex
		visible bool
		mod     int
	}{
		{"clear", terrain.Hex{}, true, 0},
		{"light woods", terrain.Hex{Features: []terrain.Feature{{Type: terrain.Woods, Level: 1}}}, true, 1},
		{"heavy woods", terrain.Hex{Features: []terrain.Feature{{Type: terrain.Woods, Level: 2}}}, false, 0},
		{"one-level building", terrain.Hex{Features: []terrain.Feature{{Type: terrain.Building, Level: 1}}}, true, 0},
		{"two-level hill", terrain.Hex{Elevation: 2}, false, 0},
		{"one-level hill", terrain.Hex{Elevation: 1}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := terrain.NewMap(0, 0)
			m.Set(hexgrid.Coord{Q: 1, R: 0}, tt.hex)
			r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 2, R: 0}))
			require.NoError(t, err)
			assert.Equal(t, tt.visible, r.HasLOS)
			assert.Equal(t, tt.mod, r.TerrainModifier)
		})
	}
}

func TestLOSStopsAtFirstBlock(t *testing.T) {
	m := terrain.NewMap(0, 0)
	heavy := terrain.Hex{Features: []terrain.Feature{{Type: terrain.Woods, Level: 2}}}
	m.Set(hexgrid.Coord{Q: 0, R: 1}, terrain.Hex{Features: []terrain.Feature{{Type: terrain.Woods, Level: 1}}})
	m.Set(hexgrid.Coord{Q: 0, R: 2}, heavy)
	m.Set(hexgrid.Coord{Q: 0, R: 3}, heavy)

	r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 0, R: 5}))
	require.NoError(t, err)
	assert.False(t, r.HasLOS)
	assert.Equal(t, hexgrid.Coord{Q: 0, R: 2}, *r.BlockedBy)
	assert.Equal(t, 1, r.TerrainModifier)
}

func TestProneTargetIsHarderToSee(t *testing.T) {
	m := terrain.NewMap(0, 0)
	m.Set(hexgrid.Coord{Q: 0, R: 1}, terrain.Hex{Elevation: 1})

	r, err := LineOfSight(m, standing(hexgrid.Coord{}), standing(hexgrid.Coord{Q: 0, R: 2}))
	require.NoError(t, err)
	assert.True(t, r.HasLOS)

	prone := EndpointFor(hexgrid.NewUnitPosition("x", hexgrid.Coord{Q: 0, R: 2}, hexgrid.North).WithProne(true))
	assert.Equal(t, ProneEyeHeight, prone.EyeHeight)
	r, err = LineOfSight(m, standing(hexgrid.Coord{}), prone)
	require.NoError(t, err)
	assert.False(t, r.HasLOS)
}

func TestLOSUnresolvedHex(t *testing.T) {
	m := terrain.NewMap(4, 4)
	_, err := LineOfSight(m, standing(hexgrid.Offset{Col: 1, Row: 1}.ToAxial()), standing(hexgrid.Offset{Col: 9, Row: 1}.ToAxial()))
	assert.True(t, errors.Is(err, terrain.ErrUnresolvedHex))
}

func TestAssess(t *testing.T) {
	m := terrain.NewMap(0, 0)
	shooter := hexgrid.NewUnitPosition("shooter", hexgrid.Coord{}, hexgrid.South)
	target := hexgrid.NewUnitPosition("target", hexgrid.Coord{Q: 0, R: 5}, hexgrid.South)

	a, err := Assess(m, shooter, target, Profile{Short: 3, Medium: 6, Long: 9})
	require.NoError(t, err)
	assert.Equal(t, Medium, a.Range.Bracket)
	assert.Equal(t, 5, a.Range.Distance)
	assert.True(t, a.LOS.HasLOS)
	assert.Equal(t, hexgrid.ArcRear, a.Arc, "shooter is behind a south-facing target")

	_, err = Assess(m, shooter, target, Profile{Short: 9, Medium: 3, Long: 1})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
