// Package equipment turns weapon rows from the equipment database into
// fully-resolved weapons.Weapon values and serves them from an immutable
// registry.
package equipment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/rangelos"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

// Descriptor is one weapon as stored in the equipment table. Missile rows
// carry Damage 0 and the rack in RackSize; per-missile damage is filled in
// when the descriptor is resolved.
type Descriptor struct {
	InternalName  string         `json:"internal_name"`
	Name          string         `json:"name"`
	LookupNames   []string       `json:"lookup_names,omitempty"`
	Type          string         `json:"type"`
	Family        weapons.Family `json:"family,omitempty"`
	Damage        int            `json:"damage"`
	RackSize      int            `json:"rack_size,omitempty"`
	Heat          int            `json:"heat"`
	MinRange      int            `json:"min_range,omitempty"`
	ShortRange    int            `json:"short_range"`
	MediumRange   int            `json:"medium_range"`
	LongRange     int            `json:"long_range"`
	ExtremeRange  int            `json:"extreme_range,omitempty"`
	Tonnage       float64        `json:"tonnage"`
	CriticalSlots int            `json:"critical_slots"`
	SemiGuided    bool           `json:"semi_guided,omitempty"`
	AmmoFlags     []string       `json:"ammo_flags,omitempty"`
}

// ID is the key the descriptor is registered under.
func (d Descriptor) ID() string {
	if d.InternalName != "" {
		return d.InternalName
	}
	return d.Name
}

// Weapon resolves the descriptor. The family is classified from the
// internal name and display name unless set explicitly.
func (d Descriptor) Weapon() (weapons.Weapon, error) {
	id := d.ID()
	if id == "" {
		return weapons.Weapon{}, ErrMissingID
	}
	w := weapons.Weapon{
		ID:          id,
		Name:        d.Name,
		Family:      d.Family,
		Damage:      d.Damage,
		ClusterSize: d.RackSize,
		Heat:        d.Heat,
		Range: rangelos.Profile{
			Minimum: d.MinRange,
			Short:   d.ShortRange,
			Medium:  d.MediumRange,
			Long:    d.LongRange,
			Extreme: d.ExtremeRange,
		},
		SemiGuided: d.SemiGuided || isSemiGuided(d.InternalName, d.Name),
		AmmoFlags:  append([]string(nil), d.AmmoFlags...),
	}.Classified()

	switch w.Family {
	case weapons.LRM, weapons.SRM, weapons.MRM, weapons.Streak:
		if w.Damage == 0 {
			w.Damage = missileDamage(w)
		}
	case weapons.LBX:
		if w.ClusterSize == 0 {
			w.ClusterSize = w.Damage
		}
	}
	if len(w.AmmoFlags) == 0 && usesAmmo(d.Type, w.Family) {
		w.AmmoFlags = []string{strings.ToLower(id)}
	}

	if err := w.Validate(); err != nil {
		return weapons.Weapon{}, fmt.Errorf("descriptor %s: %w", id, err)
	}
	return w, nil
}

// missileDamage is per missile: short-range missiles do 2, the rest 1.
func missileDamage(w weapons.Weapon) int {
	if w.Family == weapons.SRM {
		return 2
	}
	if w.Family == weapons.Streak && strings.Contains(strings.ToUpper(w.ID+" "+w.Name), "SRM") {
		return 2
	}
	return 1
}

func usesAmmo(typ string, f weapons.Family) bool {
	switch f {
	case weapons.LRM, weapons.SRM, weapons.MRM, weapons.Streak,
		weapons.UltraAC, weapons.RotaryAC, weapons.LBX, weapons.AMS:
		return true
	}
	switch strings.ToLower(typ) {
	case "ballistic", "missile":
		return true
	}
	return false
}

func isSemiGuided(names ...string) bool {
	for _, n := range names {
		u := strings.ToUpper(n)
		if strings.Contains(u, "SEMI-GUIDED") || strings.Contains(u, "SEMIGUIDED") {
			return true
		}
	}
	return false
}

// ReadDescriptors decodes a JSON array of descriptors, the format the
// weapon extractor writes. Unknown fields are ignored. Each descriptor must
// resolve to a valid weapon.
func ReadDescriptors(r io.Reader) ([]Descriptor, error) {
	var descs []Descriptor
	if err := json.NewDecoder(r).Decode(&descs); err != nil {
		return nil, fmt.Errorf("decode descriptors: %w", err)
	}
	for i, d := range descs {
		if _, err := d.Weapon(); err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
	}
	return descs, nil
}
