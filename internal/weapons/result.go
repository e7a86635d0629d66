package weapons

import (
	"github.com/JustinWhittecar/hexcombat/internal/dice"
	"github.com/JustinWhittecar/hexcombat/internal/hitloc"
)

// Kind names the shape of a Result.
type Kind string

const (
	KindStandard Kind = "standard"
	KindCluster  Kind = "cluster"
	KindStreak   Kind = "streak"
	KindUltraAC  Kind = "ultra-ac"
	KindRotaryAC Kind = "rotary-ac"
	KindLBX      Kind = "lbx"
	KindAMS      Kind = "ams"
)

// Result is the outcome of one resolution. Misses, zero hits and jams are
// ordinary results.
type Result interface {
	Kind() Kind
	HitCount() int
	DamageDealt() int
	AmmoConsumed() int
}

// Hit is one munition that struck, with its own location.
type Hit struct {
	Location hitloc.Result `json:"location"`
	Damage   int           `json:"damage"`
}

// Shot is one independently rolled rapid-fire shot.
type Shot struct {
	ToHit    dice.Roll      `json:"toHit"`
	Hit      bool           `json:"hit"`
	Jammed   bool           `json:"jammed,omitempty"`
	Damage   int            `json:"damage,omitempty"`
	Location *hitloc.Result `json:"location,omitempty"`
}

func sumDamage(hits []Hit) int {
	total := 0
	for _, h := range hits {
		total += h.Damage
	}
	return total
}

// ─── Standard ───────────────────────────────────────────────────────────────

type StandardResult struct {
	Weapon       string         `json:"weapon"`
	TargetNumber int            `json:"targetNumber"`
	ToHit        dice.Roll      `json:"toHit"`
	Hit          bool           `json:"hit"`
	Location     *hitloc.Result `json:"location,omitempty"`
	Damage       int            `json:"damage"`
	AmmoUsed     int            `json:"ammoUsed,omitempty"`
}

func (r *StandardResult) Kind() Kind { return KindStandard }
func (r *StandardResult) HitCount() int {
	if r.Hit {
		return 1
	}
	return 0
}
func (r *StandardResult) DamageDealt() int  { return r.Damage }
func (r *StandardResult) AmmoConsumed() int { return r.AmmoUsed }

// ─── Cluster ────────────────────────────────────────────────────────────────

// ClusterResult covers LRM, SRM and MRM racks. ClusterHits is the table
// value before any AMS interception; Hits is what struck.
type ClusterResult struct {
	Weapon       string           `json:"weapon"`
	TargetNumber int              `json:"targetNumber"`
	ToHit        dice.Roll        `json:"toHit"`
	Hit          bool             `json:"hit"`
	ClusterRoll  dice.Roll        `json:"clusterRoll"`
	Modifiers    ClusterModifiers `json:"modifiers"`
	ModifiedRoll int              `json:"modifiedRoll,omitempty"`
	ClusterHits  int              `json:"clusterHits"`
	Intercept    *AMSResult       `json:"intercept,omitempty"`
	Hits         int              `json:"hits"`
	Locations    []Hit            `json:"locations,omitempty"`
	Damage       int              `json:"damage"`
	AmmoUsed     int              `json:"ammoUsed"`
}

func (r *ClusterResult) Kind() Kind        { return KindCluster }
func (r *ClusterResult) HitCount() int     { return r.Hits }
func (r *ClusterResult) DamageDealt() int  { return r.Damage }
func (r *ClusterResult) AmmoConsumed() int { return r.AmmoUsed }

// ─── Streak ─────────────────────────────────────────────────────────────────

// StreakResult reports a synthetic boxcars ClusterRoll on a hit for display;
// no cluster roll is ever thrown. A streak that fails to lock does not
// fire and spends no ammo.
type StreakResult struct {
	Weapon       string     `json:"weapon"`
	TargetNumber int        `json:"targetNumber"`
	ToHit        dice.Roll  `json:"toHit"`
	Hit          bool       `json:"hit"`
	ClusterRoll  dice.Roll  `json:"clusterRoll"`
	Intercept    *AMSResult `json:"intercept,omitempty"`
	Hits         int        `json:"hits"`
	Locations    []Hit      `json:"locations,omitempty"`
	Damage       int        `json:"damage"`
	AmmoUsed     int        `json:"ammoUsed"`
}

func (r *StreakResult) Kind() Kind        { return KindStreak }
func (r *StreakResult) HitCount() int     { return r.Hits }
func (r *StreakResult) DamageDealt() int  { return r.Damage }
func (r *StreakResult) AmmoConsumed() int { return r.AmmoUsed }

// ─── Rapid fire ─────────────────────────────────────────────────────────────

type UltraACResult struct {
	Weapon       string `json:"weapon"`
	TargetNumber int    `json:"targetNumber"`
	Shots        []Shot `json:"shots"`
	Jammed       bool   `json:"jammed"`
	Hits         int    `json:"hits"`
	Damage       int    `json:"damage"`
	Heat         int    `json:"heat"`
	AmmoUsed     int    `json:"ammoUsed"`
}

func (r *UltraACResult) Kind() Kind        { return KindUltraAC }
func (r *UltraACResult) HitCount() int     { return r.Hits }
func (r *UltraACResult) DamageDealt() int  { return r.Damage }
func (r *UltraACResult) AmmoConsumed() int { return r.AmmoUsed }

type RotaryACResult struct {
	Weapon       string `json:"weapon"`
	TargetNumber int    `json:"targetNumber"`
	RateOfFire   int    `json:"rateOfFire"`
	Shots        []Shot `json:"shots"`
	Jammed       bool   `json:"jammed"`
	Hits         int    `json:"hits"`
	Damage       int    `json:"damage"`
	Heat         int    `json:"heat"`
	AmmoUsed     int    `json:"ammoUsed"`
}

func (r *RotaryACResult) Kind() Kind        { return KindRotaryAC }
func (r *RotaryACResult) HitCount() int     { return r.Hits }
func (r *RotaryACResult) DamageDealt() int  { return r.Damage }
func (r *RotaryACResult) AmmoConsumed() int { return r.AmmoUsed }

// ─── LB-X ───────────────────────────────────────────────────────────────────

// LBXResult reports ToHitModifier (-1 in cluster mode) for the caller; it
// is not folded into TargetNumber by the engine.
type LBXResult struct {
	Weapon        string           `json:"weapon"`
	Mode          Mode             `json:"mode"`
	ToHitModifier int              `json:"toHitModifier"`
	TargetNumber  int              `json:"targetNumber"`
	ToHit         dice.Roll        `json:"toHit"`
	Hit           bool             `json:"hit"`
	ClusterRoll   *dice.Roll       `json:"clusterRoll,omitempty"`
	Modifiers     ClusterModifiers `json:"modifiers"`
	ModifiedRoll  int              `json:"modifiedRoll,omitempty"`
	Hits          int              `json:"hits"`
	Locations     []Hit            `json:"locations,omitempty"`
	Damage        int              `json:"damage"`
	AmmoUsed      int              `json:"ammoUsed"`
}

func (r *LBXResult) Kind() Kind        { return KindLBX }
func (r *LBXResult) HitCount() int     { return r.Hits }
func (r *LBXResult) DamageDealt() int  { return r.Damage }
func (r *LBXResult) AmmoConsumed() int { return r.AmmoUsed }

// ─── AMS ────────────────────────────────────────────────────────────────────

// AMSResult is one anti-missile interception. Reduction is the first die
// of Roll.
type AMSResult struct {
	Roll      dice.Roll `json:"roll"`
	Reduction int       `json:"reduction"`
	Incoming  int       `json:"incoming"`
	Remaining int       `json:"remaining"`
	AmmoUsed  int       `json:"ammoUsed"`
}

func (r *AMSResult) Kind() Kind        { return KindAMS }
func (r *AMSResult) HitCount() int     { return r.Remaining }
func (r *AMSResult) DamageDealt() int  { return 0 }
func (r *AMSResult) AmmoConsumed() int { return r.AmmoUsed }

// Jammed reports whether r left its weapon jammed.
func Jammed(r Result) bool {
	switch v := r.(type) {
	case *UltraACResult:
		return v.Jammed
	case *RotaryACResult:
		return v.Jammed
	default:
		return false
	}
}
