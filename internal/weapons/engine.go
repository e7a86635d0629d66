package weapons

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/hexcombat/internal/dice"
	"github.com/JustinWhittecar/hexcombat/internal/hitloc"
)

// LocationTable rolls one hit location. hitloc.Standard implements it.
type LocationTable interface {
	Roll(r dice.Roller, side hitloc.Side) hitloc.Result
}

// Mode selects LB-X ammunition. The zero value fires slugs.
type Mode int

const (
	ModeSlug Mode = iota
	ModeCluster
)

func (m Mode) String() string {
	if m == ModeCluster {
		return "cluster"
	}
	return "slug"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "slug":
		*m = ModeSlug
	case "cluster":
		*m = ModeCluster
	default:
		return fmt.Errorf("unknown LB-X mode %q", b)
	}
	return nil
}

// LBXClusterToHit is the to-hit modifier LB-X cluster rounds earn.
const LBXClusterToHit = -1

// UltraShots is the fixed number of shots an Ultra AC fires.
const UltraShots = 2

// Attack is everything the engine needs to resolve one weapon firing.
// TargetNumber is the final to-hit number; the engine applies no
// modifiers to it.
type Attack struct {
	Weapon       Weapon        `json:"weapon"`
	TargetNumber int           `json:"targetNumber"`
	Side         hitloc.Side   `json:"side"`
	Context      AttackContext `json:"context"`
	Mode         Mode          `json:"mode,omitempty"`
	RateOfFire   int           `json:"rateOfFire,omitempty"`
}

// ─── Engine ─────────────────────────────────────────────────────────────────

// Engine resolves attacks. It holds no per-attack state; one Engine may
// serve any number of goroutines as long as each passes its own Roller.
type Engine struct {
	table LocationTable
	log   zerolog.Logger
}

type Option func(*Engine)

// WithLogger makes the engine emit a debug event per resolution.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine builds an engine around a hit location table.
func NewEngine(table LocationTable, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNoLocationTable
	}
	e := &Engine{table: table, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Resolve fires a.Weapon once. Dice are drawn from r in a fixed order: the
// to-hit roll, then any cluster roll, then any AMS roll, then one hit
// location per hit. Rapid-fire shots each roll to-hit and, on a hit,
// location before the next shot.
func (e *Engine) Resolve(r dice.Roller, a Attack) (Result, error) {
	if r == nil {
		r = dice.Uniform()
	}
	if err := a.Weapon.Validate(); err != nil {
		return nil, err
	}

	var (
		res Result
		err error
	)
	switch a.Weapon.Family {
	case LRM, SRM, MRM:
		res = e.resolveCluster(r, a)
	case Streak:
		res = e.resolveStreak(r, a)
	case UltraAC:
		res = e.resolveUltra(r, a)
	case RotaryAC:
		res, err = e.resolveRotary(r, a)
	case LBX:
		res = e.resolveLBX(r, a)
	case Standard:
		res = e.resolveStandard(r, a)
	case AMS:
		return nil, fmt.Errorf("%w: %s is anti-missile", ErrNotAttackWeapon, a.Weapon)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnclassified, a.Weapon)
	}
	if err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("weapon", a.Weapon.String()).
		Str("family", a.Weapon.Family.String()).
		Str("kind", string(res.Kind())).
		Int("targetNumber", a.TargetNumber).
		Int("hits", res.HitCount()).
		Int("damage", res.DamageDealt()).
		Bool("jammed", Jammed(res)).
		Msg("weapon resolved")
	return res, nil
}

func (e *Engine) locate(r dice.Roller, side hitloc.Side, hits, dmg int) []Hit {
	if hits <= 0 {
		return nil
	}
	out := make([]Hit, hits)
	for i := range out {
		out[i] = Hit{Location: e.table.Roll(r, side), Damage: dmg}
	}
	return out
}

func (e *Engine) resolveStandard(r dice.Roller, a Attack) *StandardResult {
	res := &StandardResult{
		Weapon:       a.Weapon.String(),
		TargetNumber: a.TargetNumber,
		ToHit:        dice.Roll2d6(r),
	}
	if len(a.Weapon.AmmoFlags) > 0 {
		res.AmmoUsed = 1
	}
	if res.ToHit.Total >= a.TargetNumber {
		res.Hit = true
		loc := e.table.Roll(r, a.Side)
		res.Location = &loc
		res.Damage = a.Weapon.Damage
	}
	return res
}

func (e *Engine) resolveCluster(r dice.Roller, a Attack) *ClusterResult {
	w := a.Weapon
	res := &ClusterResult{
		Weapon:       w.String(),
		TargetNumber: a.TargetNumber,
		ToHit:        dice.Roll2d6(r),
		AmmoUsed:     1,
	}
	if res.ToHit.Total < a.TargetNumber {
		return res
	}
	res.Hit = true
	res.ClusterRoll = dice.Roll2d6(r)
	res.Modifiers = ComputeClusterModifiers(w, a.Context)
	res.ModifiedRoll = res.Modifiers.Apply(res.ClusterRoll.Total)
	res.ClusterHits = ClusterHits(res.ModifiedRoll, w.ClusterSize)
	res.Hits = res.ClusterHits

	if a.Context.TargetHasAMS && res.Hits > 0 {
		ams := Intercept(r, res.Hits)
		res.Intercept = &ams
		res.Hits = ams.Remaining
	}
	res.Locations = e.locate(r, a.Side, res.Hits, w.Damage)
	res.Damage = sumDamage(res.Locations)
	return res
}

func (e *Engine) resolveStreak(r dice.Roller, a Attack) *StreakResult {
	w := a.Weapon
	res := &StreakResult{
		Weapon:       w.String(),
		TargetNumber: a.TargetNumber,
		ToHit:        dice.Roll2d6(r),
	}
	if res.ToHit.Total < a.TargetNumber {
		return res
	}
	res.Hit = true
	res.AmmoUsed = 1
	res.ClusterRoll = dice.NewRoll(6, 6)
	res.Hits = w.ClusterSize

	if a.Context.TargetHasAMS {
		ams := Intercept(r, res.Hits)
		res.Intercept = &ams
		res.Hits = ams.Remaining
	}
	res.Locations = e.locate(r, a.Side, res.Hits, w.Damage)
	res.Damage = sumDamage(res.Locations)
	return res
}

// fireShots rolls n independent shots. A natural 2 jams the weapon and
// that shot misses whatever the target number.
func (e *Engine) fireShots(r dice.Roller, a Attack, n int) (shots []Shot, jammed bool, hits, dmg int) {
	shots = make([]Shot, n)
	for i := range shots {
		s := Shot{ToHit: dice.Roll2d6(r)}
		switch {
		case s.ToHit.SnakeEyes:
			s.Jammed = true
			jammed = true
		case s.ToHit.Total >= a.TargetNumber:
			s.Hit = true
			s.Damage = a.Weapon.Damage
			loc := e.table.Roll(r, a.Side)
			s.Location = &loc
			hits++
			dmg += s.Damage
		}
		shots[i] = s
	}
	return shots, jammed, hits, dmg
}

func (e *Engine) resolveUltra(r dice.Roller, a Attack) *UltraACResult {
	shots, jammed, hits, dmg := e.fireShots(r, a, UltraShots)
	return &UltraACResult{
		Weapon:       a.Weapon.String(),
		TargetNumber: a.TargetNumber,
		Shots:        shots,
		Jammed:       jammed,
		Hits:         hits,
		Damage:       dmg,
		Heat:         a.Weapon.RapidFireHeat(UltraShots),
		AmmoUsed:     UltraShots,
	}
}

func (e *Engine) resolveRotary(r dice.Roller, a Attack) (*RotaryACResult, error) {
	rate := a.RateOfFire
	if rate < 1 || rate > 6 {
		return nil, fmt.Errorf("%w: %d for %s", ErrInvalidRateOfFire, rate, a.Weapon)
	}
	shots, jammed, hits, dmg := e.fireShots(r, a, rate)
	return &RotaryACResult{
		Weapon:       a.Weapon.String(),
		TargetNumber: a.TargetNumber,
		RateOfFire:   rate,
		Shots:        shots,
		Jammed:       jammed,
		Hits:         hits,
		Damage:       dmg,
		Heat:         a.Weapon.RapidFireHeat(rate),
		AmmoUsed:     rate,
	}, nil
}

func (e *Engine) resolveLBX(r dice.Roller, a Attack) *LBXResult {
	w := a.Weapon
	res := &LBXResult{
		Weapon:       w.String(),
		Mode:         a.Mode,
		TargetNumber: a.TargetNumber,
		ToHit:        dice.Roll2d6(r),
		AmmoUsed:     1,
	}
	if a.Mode == ModeCluster {
		res.ToHitModifier = LBXClusterToHit
	}
	if res.ToHit.Total < a.TargetNumber {
		return res
	}
	res.Hit = true

	if a.Mode != ModeCluster {
		res.Hits = 1
		res.Locations = e.locate(r, a.Side, 1, w.Damage)
		res.Damage = w.Damage
		return res
	}

	cr := dice.Roll2d6(r)
	res.ClusterRoll = &cr
	res.Modifiers = ComputeClusterModifiers(w, a.Context)
	res.ModifiedRoll = res.Modifiers.Apply(cr.Total)
	res.Hits = ClusterHits(res.ModifiedRoll, w.ClusterSize)
	res.Locations = e.locate(r, a.Side, res.Hits, 1)
	res.Damage = sumDamage(res.Locations)
	return res
}

// ─── AMS ────────────────────────────────────────────────────────────────────

// Intercept fires an anti-missile system at incoming missile hits. It
// throws 2d6 and uses the first die as the reduction, so the interception
// shows up in the same audit trail as every other roll. The second die is
// drawn and recorded but never used. Exactly one ammo is spent.
func Intercept(r dice.Roller, incoming int) AMSResult {
	if incoming < 0 {
		incoming = 0
	}
	roll := dice.Roll2d6(r)
	remaining := incoming - roll.Dice[0]
	if remaining < 0 {
		remaining = 0
	}
	return AMSResult{
		Roll:      roll,
		Reduction: roll.Dice[0],
		Incoming:  incoming,
		Remaining: remaining,
		AmmoUsed:  1,
	}
}

// Intercept is the logged form of the package-level Intercept.
func (e *Engine) Intercept(r dice.Roller, incoming int) *AMSResult {
	res := Intercept(r, incoming)
	e.log.Debug().
		Int("incoming", res.Incoming).
		Int("reduction", res.Reduction).
		Int("remaining", res.Remaining).
		Msg("ams intercept")
	return &res
}
