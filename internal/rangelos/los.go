package rangelos

import (
	"fmt"

	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
)

// ─── Line of Sight ──────────────────────────────────────────────────────────
// Draw the hex line between shooter and target. Sight height runs linearly
// from shooter eye level to target eye level; an intervening hex blocks
// when its blocking height strictly exceeds the sight height over it.

// Eye heights above the ground of the occupied hex.
const (
	StandingEyeHeight = 1
	ProneEyeHeight    = 0
)

// Endpoint is one end of a sight line.
type Endpoint struct {
	Coord     hexgrid.Coord `json:"coord"`
	EyeHeight int           `json:"eyeHeight"`
}

// EndpointFor builds the endpoint for a placed unit.
func EndpointFor(p hexgrid.UnitPosition) Endpoint {
	e := Endpoint{Coord: p.Coord, EyeHeight: StandingEyeHeight}
	if p.Prone {
		e.EyeHeight = ProneEyeHeight
	}
	return e
}

// LOSResult is the verdict for one sight line. TerrainModifier sums the
// woods penalties of the intervening hexes scanned; it never blocks.
type LOSResult struct {
	HasLOS          bool             `json:"hasLOS"`
	Intervening     []hexgrid.Coord  `json:"intervening,omitempty"`
	BlockedBy       *hexgrid.Coord   `json:"blockedBy,omitempty"`
	BlockingTerrain *terrain.Feature `json:"blockingTerrain,omitempty"`
	TerrainModifier int              `json:"terrainModifier,omitempty"`
}

// LineOfSight checks whether from can see to across src. Adjacent and
// identical hexes always see each other without consulting terrain.
func LineOfSight(src terrain.Source, from, to Endpoint) (LOSResult, error) {
	dist := hexgrid.Distance(from.Coord, to.Coord)
	if dist <= 1 {
		return LOSResult{HasLOS: true}, nil
	}

	fromHex, err := src.Hex(from.Coord)
	if err != nil {
		return LOSResult{}, fmt.Errorf("shooter hex: %w", err)
	}
	toHex, err := src.Hex(to.Coord)
	if err != nil {
		return LOSResult{}, fmt.Errorf("target hex: %w", err)
	}

	fromLevel := float64(fromHex.Elevation + from.EyeHeight)
	toLevel := float64(toHex.Elevation + to.EyeHeight)

	result := LOSResult{HasLOS: true, Intervening: hexgrid.Between(from.Coord, to.Coord)}
	for i, c := range result.Intervening {
		hex, err := src.Hex(c)
		if err != nil {
			return LOSResult{}, fmt.Errorf("intervening hex: %w", err)
		}

		t := float64(i+1) / float64(dist)
		sight := fromLevel + (toLevel-fromLevel)*t
		if float64(hex.BlockingHeight()) > sight {
			blocked := c
			result.HasLOS = false
			result.BlockedBy = &blocked
			if f, ok := hex.BlockingFeature(); ok {
				result.BlockingTerrain = &f
			}
			return result, nil
		}
		result.TerrainModifier += hex.WoodsModifier()
	}
	return result, nil
}

// ─── Combined geometry ──────────────────────────────────────────────────────

// Assessment is everything geometry says about one attack.
type Assessment struct {
	Range Result      `json:"range"`
	LOS   LOSResult   `json:"los"`
	Arc   hexgrid.Arc `json:"arc"`
}

// Assess resolves range against the weapon profile, line of sight, and the
// arc of the target the shot lands in.
func Assess(src terrain.Source, shooter, target hexgrid.UnitPosition, p Profile) (Assessment, error) {
	dist := hexgrid.Distance(shooter.Coord, target.Coord)
	rng, err := ForWeapon(p, dist)
	if err != nil {
		return Assessment{}, err
	}
	los, err := LineOfSight(src, EndpointFor(shooter), EndpointFor(target))
	if err != nil {
		return Assessment{}, err
	}
	return Assessment{
		Range: rng,
		LOS:   los,
		Arc:   hexgrid.ArcOf(target.Coord, target.Facing, shooter.Coord),
	}, nil
}
