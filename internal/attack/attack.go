// Package attack declares and resolves one weapon attack end to end: it
// looks the weapon up, measures range, line of sight and arc on the board,
// builds the target number and fires with a seeded, recorded roller.
package attack

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/hexcombat/internal/dice"
	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
	"github.com/JustinWhittecar/hexcombat/internal/hitloc"
	"github.com/JustinWhittecar/hexcombat/internal/rangelos"
	"github.com/JustinWhittecar/hexcombat/internal/replay"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

var (
	ErrOutOfRange     = errors.New("target out of range")
	ErrNoLineOfSight  = errors.New("no line of sight")
	ErrImpossibleShot = errors.New("target number above 12")
	ErrNoRegistry     = errors.New("no equipment registry")
)

// Request declares an attack. A positive TargetNumber replaces the one
// built from gunnery, range and terrain. A zero Seed draws a fresh one.
type Request struct {
	Weapon           string                `json:"weapon"`
	Shooter          hexgrid.UnitPosition  `json:"shooter"`
	Target           hexgrid.UnitPosition  `json:"target"`
	Gunnery          int                   `json:"gunnery"`
	AttackerMovement int                   `json:"attackerMovement,omitempty"`
	TargetMovement   int                   `json:"targetMovement,omitempty"`
	TargetNumber     int                   `json:"targetNumber,omitempty"`
	Context          weapons.AttackContext `json:"context"`
	Mode             weapons.Mode          `json:"mode,omitempty"`
	RateOfFire       int                   `json:"rateOfFire,omitempty"`
	Seed             uint64                `json:"seed,omitempty"`
}

type Resolver struct {
	registry *equipment.Registry
	board    terrain.Source
	engine   *weapons.Engine
	log      zerolog.Logger
}

// NewResolver needs a registry and an engine. A nil board is open ground
// with no edges.
func NewResolver(reg *equipment.Registry, board terrain.Source, engine *weapons.Engine, log zerolog.Logger) (*Resolver, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if engine == nil {
		return nil, weapons.ErrNoLocationTable
	}
	if board == nil {
		board = terrain.NewMap(0, 0)
	}
	return &Resolver{registry: reg, board: board, engine: engine, log: log}, nil
}

func (r *Resolver) Registry() *equipment.Registry { return r.registry }

func (r *Resolver) Engine() *weapons.Engine { return r.engine }

// ToHit builds the target number for w against the assessment.
func ToHit(req Request, w weapons.Weapon, as rangelos.Assessment) weapons.TargetNumber {
	tn := weapons.TargetNumber{
		Gunnery:          req.Gunnery,
		Range:            as.Range.Modifier,
		MinimumRange:     as.Range.MinimumRangePenalty,
		Terrain:          as.LOS.TerrainModifier,
		AttackerMovement: req.AttackerMovement,
		TargetMovement:   req.TargetMovement,
	}
	if w.Family == weapons.LBX && req.Mode == weapons.ModeCluster {
		tn.Other = weapons.LBXClusterToHit
	}
	return tn
}

// Resolve declares and fires req. Declarations that cannot be made (out
// of range, no line of sight, a target number above 12) are errors; a
// miss or a jam is a normal result.
func (r *Resolver) Resolve(req Request) (*replay.Record, error) {
	w, err := r.registry.Lookup(req.Weapon)
	if err != nil {
		return nil, err
	}
	if w.Family == weapons.AMS {
		return nil, fmt.Errorf("%w: %s", weapons.ErrNotAttackWeapon, w)
	}

	as, err := rangelos.Assess(r.board, req.Shooter, req.Target, w.Range)
	if err != nil {
		return nil, fmt.Errorf("assess %s: %w", w, err)
	}
	if !as.Range.InRange {
		return nil, fmt.Errorf("%w: %s at %d hexes (%s)", ErrOutOfRange, w, as.Range.Distance, w.Range)
	}
	if !as.LOS.HasLOS {
		return nil, fmt.Errorf("%w: blocked at %s", ErrNoLineOfSight, as.LOS.BlockedBy)
	}

	tn := ToHit(req, w, as)
	target := tn.Total()
	if req.TargetNumber > 0 {
		target = req.TargetNumber
	}
	if target >= weapons.Impossible {
		return nil, fmt.Errorf("%w: %d", ErrImpossibleShot, target)
	}

	seed := req.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return nil, err
		}
	}
	roller := dice.Record(dice.NewSeeded(seed))

	a := weapons.Attack{
		Weapon:       w,
		TargetNumber: target,
		Side:         hitloc.SideFromArc(as.Arc),
		Context:      req.Context,
		Mode:         req.Mode,
		RateOfFire:   req.RateOfFire,
	}
	res, err := r.engine.Resolve(roller, a)
	if err != nil {
		return nil, err
	}

	rec := replay.New(seed, a, res)
	rec.Shooter = req.Shooter
	rec.Target = req.Target
	rec.Assessment = &as
	rec.ToHit = &tn
	rec.Faces = roller.Faces()

	r.log.Info().
		Str("replay", rec.ID.String()).
		Str("weapon", w.String()).
		Int("distance", as.Range.Distance).
		Str("bracket", as.Range.Bracket.String()).
		Str("side", a.Side.String()).
		Int("targetNumber", target).
		Int("hits", res.HitCount()).
		Int("damage", res.DamageDealt()).
		Uint64("seed", seed).
		Msg("attack resolved")
	return rec, nil
}
