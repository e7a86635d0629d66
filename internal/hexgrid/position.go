package hexgrid

import "sort"

// ─── Unit Positions ─────────────────────────────────────────────────────────

// UnitPosition is a unit's placement on the map. It is a value: every
// update returns a new copy.
type UnitPosition struct {
	UnitID string `json:"unitId"`
	Coord  Coord  `json:"coord"`
	Facing Facing `json:"facing"`
	Prone  bool   `json:"prone,omitempty"`
}

// NewUnitPosition places a standing unit.
func NewUnitPosition(id string, c Coord, f Facing) UnitPosition {
	return UnitPosition{UnitID: id, Coord: c, Facing: f.normalize()}
}

func (p UnitPosition) WithCoordinate(c Coord) UnitPosition {
	p.Coord = c
	return p
}

func (p UnitPosition) WithFacing(f Facing) UnitPosition {
	p.Facing = f.normalize()
	return p
}

func (p UnitPosition) WithProne(prone bool) UnitPosition {
	p.Prone = prone
	return p
}

// MoveTo relocates and turns the unit. Moving always stands it up.
func (p UnitPosition) MoveTo(c Coord, f Facing) UnitPosition {
	p.Coord = c
	p.Facing = f.normalize()
	p.Prone = false
	return p
}

// PositionMap is an immutable set of positions keyed by unit id. The zero
// value is an empty map. Insert and Remove return new maps and leave the
// receiver untouched.
type PositionMap struct {
	byID map[string]UnitPosition
}

// NewPositionMap builds a map from ps; later entries win on duplicate ids.
func NewPositionMap(ps ...UnitPosition) PositionMap {
	m := make(map[string]UnitPosition, len(ps))
	for _, p := range ps {
		m[p.UnitID] = p
	}
	return PositionMap{byID: m}
}

func (m PositionMap) clone(extra int) map[string]UnitPosition {
	out := make(map[string]UnitPosition, len(m.byID)+extra)
	for k, v := range m.byID {
		out[k] = v
	}
	return out
}

// Insert adds or replaces p.
func (m PositionMap) Insert(p UnitPosition) PositionMap {
	next := m.clone(1)
	next[p.UnitID] = p
	return PositionMap{byID: next}
}

// Remove drops the unit with id. Removing an absent id returns an equal map.
func (m PositionMap) Remove(id string) PositionMap {
	next := m.clone(0)
	delete(next, id)
	return PositionMap{byID: next}
}

// Get returns the position of unit id.
func (m PositionMap) Get(id string) (UnitPosition, bool) {
	p, ok := m.byID[id]
	return p, ok
}

// FindAt returns every unit standing in hex c, ordered by unit id.
func (m PositionMap) FindAt(c Coord) []UnitPosition {
	var out []UnitPosition
	for _, p := range m.byID {
		if p.Coord == c {
			out = append(out, p)
		}
	}
	sortByID(out)
	return out
}

// All returns every position ordered by unit id.
func (m PositionMap) All() []UnitPosition {
	out := make([]UnitPosition, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	sortByID(out)
	return out
}

func (m PositionMap) Len() int { return len(m.byID) }

func sortByID(ps []UnitPosition) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].UnitID < ps[j].UnitID })
}
