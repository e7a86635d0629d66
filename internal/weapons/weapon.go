package weapons

import (
	"fmt"

	"github.com/JustinWhittecar/hexcombat/internal/rangelos"
)

// Weapon is a fully-resolved weapon descriptor. For missile racks Damage
// is per missile and ClusterSize is the rack size; for LB-X it is the slug
// damage and the number of submunitions in cluster mode.
type Weapon struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Family      Family           `json:"family"`
	Damage      int              `json:"damage"`
	ClusterSize int              `json:"clusterSize,omitempty"`
	IsCluster   bool             `json:"isCluster,omitempty"`
	Heat        int              `json:"heat"`
	Range       rangelos.Profile `json:"range"`
	SemiGuided  bool             `json:"semiGuided,omitempty"`
	AmmoFlags   []string         `json:"ammoFlags,omitempty"`
}

func (w Weapon) String() string {
	if w.Name != "" {
		return w.Name
	}
	return w.ID
}

// Validate checks the descriptor for values no weapon can carry.
func (w Weapon) Validate() error {
	if w.Family == Unclassified {
		return fmt.Errorf("%w: %s", ErrUnclassified, w)
	}
	if w.Damage < 0 || w.Heat < 0 || w.ClusterSize < 0 {
		return fmt.Errorf("%w: %s has negative damage, heat or cluster size", ErrInvalidWeapon, w)
	}
	if w.Family.UsesClusterTable() || w.Family == Streak {
		if w.ClusterSize < 1 {
			return fmt.Errorf("%w: %s needs a cluster size", ErrInvalidWeapon, w)
		}
	}
	if err := w.Range.Validate(); err != nil {
		return fmt.Errorf("%s: %w", w, err)
	}
	return nil
}

// Classified returns a copy with Family filled in from the identifiers if
// it was not set explicitly.
func (w Weapon) Classified() Weapon {
	if w.Family == Unclassified {
		w.Family = Classify(w.ID, w.Name)
	}
	if w.Family.UsesClusterTable() || w.Family == Streak {
		w.IsCluster = true
	}
	return w
}

// RapidFireHeat is the heat generated for a volley: Ultra ACs add one on
// top of the base heat, Rotary ACs multiply it by the rate of fire.
func (w Weapon) RapidFireHeat(rate int) int {
	switch w.Family {
	case UltraAC:
		return w.Heat + 1
	case RotaryAC:
		return w.Heat * rate
	default:
		return w.Heat
	}
}
