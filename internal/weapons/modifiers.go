package weapons

// ─── Cluster roll modifiers ─────────────────────────────────────────────────

// Artemis is the fire-control system linked to a launcher.
type Artemis int

const (
	NoArtemis Artemis = iota
	ArtemisIV
	ArtemisV
)

// AttackContext carries the per-attack flags that feed modifiers. It is
// rebuilt for every attack since ECM, Narc and TAG change turn to turn.
type AttackContext struct {
	Artemis       Artemis `json:"artemis,omitempty"`
	ECMProtected  bool    `json:"ecmProtected,omitempty"`
	NarcedTarget  bool    `json:"narcedTarget,omitempty"`
	TAGDesignated bool    `json:"tagDesignated,omitempty"`
	HullDown      bool    `json:"hullDown,omitempty"`
	ClusterHitter bool    `json:"clusterHitter,omitempty"`
	TargetHasAMS  bool    `json:"targetHasAMS,omitempty"`
}

// ClusterModifiers breaks down the modifier applied to a cluster roll.
type ClusterModifiers struct {
	Artemis       int `json:"artemis"`
	Narc          int `json:"narc"`
	SemiGuided    int `json:"semiGuided"`
	ClusterHitter int `json:"clusterHitter"`
	MRM           int `json:"mrm"`
	Total         int `json:"total"`
}

// ComputeClusterModifiers sums every source that applies to w under ctx.
// ECM cancels Artemis, Narc and TAG guidance but not the MRM penalty or
// the Cluster Hitter ability.
func ComputeClusterModifiers(w Weapon, ctx AttackContext) ClusterModifiers {
	var m ClusterModifiers
	if !ctx.ECMProtected {
		if ctx.Artemis != NoArtemis && (w.Family == LRM || w.Family == SRM) {
			m.Artemis = 2
		}
		if ctx.NarcedTarget && w.Family.IsMissile() {
			m.Narc = 2
		}
		if w.SemiGuided && w.Family == LRM && ctx.TAGDesignated {
			m.SemiGuided = 2
		}
	}
	if ctx.ClusterHitter {
		m.ClusterHitter = 1
	}
	if w.Family == MRM {
		m.MRM = -1
	}
	m.Total = m.Artemis + m.Narc + m.SemiGuided + m.ClusterHitter + m.MRM
	return m
}

// Apply adds the total to a raw roll and clamps into 2-12.
func (m ClusterModifiers) Apply(raw int) int {
	return ClampRoll(raw + m.Total)
}

// ─── Target number ──────────────────────────────────────────────────────────

// TargetNumber assembles a to-hit target from its parts. The engine never
// builds one itself; callers fold in whatever modifiers they choose.
type TargetNumber struct {
	Gunnery          int `json:"gunnery"`
	Range            int `json:"range"`
	MinimumRange     int `json:"minimumRange,omitempty"`
	Terrain          int `json:"terrain,omitempty"`
	AttackerMovement int `json:"attackerMovement,omitempty"`
	TargetMovement   int `json:"targetMovement,omitempty"`
	Other            int `json:"other,omitempty"`
}

// Impossible marks a target number that can never be rolled.
const Impossible = 13

// Total sums the parts. Anything above 12 is reported as Impossible.
func (t TargetNumber) Total() int {
	sum := t.Gunnery + t.Range + t.MinimumRange + t.Terrain +
		t.AttackerMovement + t.TargetMovement + t.Other
	if sum > 12 {
		return Impossible
	}
	return sum
}
