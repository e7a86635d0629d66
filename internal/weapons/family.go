// Package weapons resolves weapon attacks: cluster hits, streak, Ultra and
// Rotary autocannon rapid fire, LB-X dual mode and anti-missile fire.
//
// Every die goes through a caller-owned dice.Roller, so two resolutions
// fed identically seeded rollers produce identical results.
package weapons

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnclassified is returned where a weapon family is required but the
	// weapon carries none.
	ErrUnclassified = errors.New("weapon family not classified")
	// ErrNotAttackWeapon is returned when a defensive system is asked to
	// resolve an attack.
	ErrNotAttackWeapon = errors.New("weapon cannot make attacks")
	// ErrInvalidRateOfFire is returned for Rotary AC rates outside 1-6.
	ErrInvalidRateOfFire = errors.New("invalid rate of fire")
	// ErrNoLocationTable is returned when an Engine is built without a hit
	// location table.
	ErrNoLocationTable = errors.New("no hit location table")
	// ErrInvalidWeapon is returned for descriptors with impossible values.
	ErrInvalidWeapon = errors.New("invalid weapon")
)

// ─── Weapon classification ──────────────────────────────────────────────────

// Family is the closed set of resolution rules a weapon follows. It is
// assigned once when a weapon is loaded.
type Family int

const (
	Unclassified Family = iota
	Standard
	LRM
	SRM
	Streak
	UltraAC
	RotaryAC
	LBX
	MRM
	AMS
)

var familyNames = [...]string{
	Unclassified: "",
	Standard:     "standard",
	LRM:          "lrm",
	SRM:          "srm",
	Streak:       "streak",
	UltraAC:      "ultra-ac",
	RotaryAC:     "rotary-ac",
	LBX:          "lbx",
	MRM:          "mrm",
	AMS:          "ams",
}

func (f Family) String() string {
	if f < Unclassified || f > AMS {
		return "unknown"
	}
	if f == Unclassified {
		return "unclassified"
	}
	return familyNames[f]
}

// ParseFamily is the inverse of String.
func ParseFamily(s string) (Family, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range familyNames {
		if n != "" && n == s {
			return Family(i), nil
		}
	}
	return Unclassified, fmt.Errorf("%w: %q", ErrUnclassified, s)
}

func (f Family) MarshalText() ([]byte, error) {
	if f == Unclassified {
		return []byte{}, nil
	}
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = Unclassified
		return nil
	}
	v, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// IsMissile reports whether the family fires guided missiles.
func (f Family) IsMissile() bool {
	switch f {
	case LRM, SRM, Streak, MRM:
		return true
	default:
		return false
	}
}

// UsesClusterTable reports whether hits are rolled on the cluster table.
// LB-X only does so in cluster mode.
func (f Family) UsesClusterTable() bool {
	switch f {
	case LRM, SRM, MRM, LBX:
		return true
	default:
		return false
	}
}

// Classify assigns a family from equipment identifiers. Any of the names
// may be empty; the first non-standard match across them wins.
func Classify(names ...string) Family {
	for _, n := range names {
		if f := classifyName(n); f != Standard {
			return f
		}
	}
	return Standard
}

func classifyName(name string) Family {
	upper := strings.ToUpper(name)
	switch {
	case upper == "":
		return Standard
	case strings.Contains(upper, "ANTI-MISSILE") || strings.Contains(upper, "ANTIMISSILE") ||
		upper == "AMS" || strings.HasSuffix(upper, " AMS") || strings.HasPrefix(upper, "ISAMS") || strings.HasPrefix(upper, "CLAMS"):
		return AMS
	case strings.Contains(upper, "STREAK"):
		return Streak
	case strings.Contains(upper, "ROTARY AC") || strings.Contains(upper, "ROTARYAC") || strings.Contains(upper, "RAC/"):
		return RotaryAC
	case strings.Contains(upper, "ULTRA AC") || strings.Contains(upper, "ULTRAAC") || strings.Contains(upper, "UAC/"):
		return UltraAC
	case strings.Contains(upper, "LB ") && strings.Contains(upper, "AC"),
		strings.Contains(upper, "LBX") && strings.Contains(upper, "AC"):
		return LBX
	case strings.Contains(upper, "MRM"):
		return MRM
	case strings.Contains(upper, "SRM"):
		return SRM
	case strings.Contains(upper, "LRM"):
		return LRM
	default:
		return Standard
	}
}
