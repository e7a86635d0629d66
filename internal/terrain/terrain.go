// Package terrain describes the per-hex data line of sight needs: ground
// elevation and the features standing on it.
package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
)

// ErrUnresolvedHex is returned when a hex's height cannot be determined,
// usually because it lies off the board.
var ErrUnresolvedHex = errors.New("unresolved terrain hex")

// ─── Terrain ────────────────────────────────────────────────────────────────

type Type int

const (
	Woods    Type = iota // level 1=light, 2=heavy, 3=ultra-heavy
	Water                // level = depth
	Rough                // level 1 or 2
	Pavement
	Road
	Building // level = height in levels
	Sand
	Swamp
	Mud
)

var typeNames = map[Type]string{
	Woods:    "woods",
	Water:    "water",
	Rough:    "rough",
	Pavement: "pavement",
	Road:     "road",
	Building: "building",
	Sand:     "sand",
	Swamp:    "swamp",
	Mud:      "mud",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseType maps a MegaMek terrain name to a Type.
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	v, ok := ParseType(string(b))
	if !ok {
		return fmt.Errorf("unknown terrain type %q", b)
	}
	*t = v
	return nil
}

// Feature is one piece of terrain in a hex.
type Feature struct {
	Type               Type `json:"type"`
	Level              int  `json:"level"`
	ConstructionFactor int  `json:"cf,omitempty"`
}

// BlockingHeight is how many levels the feature raises the hex for line of
// sight. Light woods and ground cover never block.
func (f Feature) BlockingHeight() int {
	switch f.Type {
	case Woods:
		if f.Level >= 2 {
			return 2
		}
		return 0
	case Building:
		if f.Level > 0 {
			return f.Level
		}
		return 0
	default:
		return 0
	}
}

// BlocksLOS reports whether the feature contributes any blocking height.
func (f Feature) BlocksLOS() bool { return f.BlockingHeight() > 0 }

// WoodsModifier is the to-hit penalty for firing through the feature:
// +1 light woods, +2 heavy or denser.
func (f Feature) WoodsModifier() int {
	if f.Type != Woods || f.Level <= 0 {
		return 0
	}
	if f.Level >= 2 {
		return 2
	}
	return 1
}

func (f Feature) String() string { return fmt.Sprintf("%s:%d", f.Type, f.Level) }

// Hex is the terrain of a single board hex.
type Hex struct {
	Elevation int       `json:"elevation"`
	Features  []Feature `json:"features,omitempty"`
}

// Has returns the first feature of type t.
func (h Hex) Has(t Type) (Feature, bool) {
	for _, f := range h.Features {
		if f.Type == t {
			return f, true
		}
	}
	return Feature{}, false
}

// BlockingFeature returns the feature with the largest blocking
// contribution, if any feature blocks at all.
func (h Hex) BlockingFeature() (Feature, bool) {
	var best Feature
	found := false
	for _, f := range h.Features {
		if f.BlockingHeight() > best.BlockingHeight() {
			best = f
			found = true
		}
	}
	return best, found
}

// BlockingHeight is elevation plus the tallest blocking feature.
func (h Hex) BlockingHeight() int {
	if f, ok := h.BlockingFeature(); ok {
		return h.Elevation + f.BlockingHeight()
	}
	return h.Elevation
}

// WoodsModifier sums the woods penalties of the hex.
func (h Hex) WoodsModifier() int {
	mod := 0
	for _, f := range h.Features {
		mod += f.WoodsModifier()
	}
	return mod
}

// Source resolves the terrain of a hex. Board parsers and game-state
// stores implement it.
type Source interface {
	Hex(c hexgrid.Coord) (Hex, error)
}

// ─── Map ────────────────────────────────────────────────────────────────────

// Map is an in-memory Source. A Map with zero width and height is
// unbounded and treats unset hexes as clear ground at level 0; a sized map
// rejects hexes outside its 1-indexed board bounds.
type Map struct {
	Width  int
	Height int
	hexes  map[hexgrid.Coord]Hex
}

// NewMap returns an empty map of the given board size.
func NewMap(width, height int) *Map {
	return &Map{Width: width, Height: height, hexes: make(map[hexgrid.Coord]Hex)}
}

// InBounds reports whether c lies on the board.
func (m *Map) InBounds(c hexgrid.Coord) bool {
	if m.Width == 0 && m.Height == 0 {
		return true
	}
	o := c.ToOffset()
	return o.Col >= 1 && o.Row >= 1 && o.Col <= m.Width && o.Row <= m.Height
}

// Set stores the terrain for c.
func (m *Map) Set(c hexgrid.Coord, h Hex) {
	if m.hexes == nil {
		m.hexes = make(map[hexgrid.Coord]Hex)
	}
	feats := make([]Feature, len(h.Features))
	copy(feats, h.Features)
	h.Features = feats
	m.hexes[c] = h
}

func (m *Map) Hex(c hexgrid.Coord) (Hex, error) {
	if !m.InBounds(c) {
		return Hex{}, fmt.Errorf("%w: %s off %dx%d board", ErrUnresolvedHex, c.ToOffset(), m.Width, m.Height)
	}
	return m.hexes[c], nil
}

// Len returns the number of hexes with explicit terrain.
func (m *Map) Len() int { return len(m.hexes) }
