package equipment

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

var (
	ErrEmptyRegistry   = errors.New("equipment registry is empty")
	ErrUnknownWeapon   = errors.New("unknown weapon")
	ErrDuplicateWeapon = errors.New("duplicate weapon id")
	ErrMissingID       = errors.New("descriptor has neither internal name nor name")
)

// Registry is a fully-resolved, read-only set of weapons. Every weapon is
// classified and validated once at construction, so a Registry is safe to
// share between goroutines.
type Registry struct {
	byID  map[string]weapons.Weapon
	alias map[string]string
	ids   []string
}

// NewRegistry resolves every descriptor. An empty input, a duplicate id or
// a descriptor that fails to resolve is a construction error.
func NewRegistry(descs []Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyRegistry
	}
	r := &Registry{
		byID:  make(map[string]weapons.Weapon, len(descs)),
		alias: make(map[string]string, len(descs)*2),
	}
	for _, d := range descs {
		w, err := d.Weapon()
		if err != nil {
			return nil, err
		}
		if _, dup := r.byID[w.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWeapon, w.ID)
		}
		r.byID[w.ID] = w
		r.ids = append(r.ids, w.ID)
	}
	sort.Strings(r.ids)

	// Ids win over display and lookup names; among names the first
	// descriptor to claim one keeps it.
	for _, id := range r.ids {
		r.alias[normalize(id)] = id
	}
	for _, d := range descs {
		id := d.ID()
		for _, n := range append([]string{d.Name}, d.LookupNames...) {
			k := normalize(n)
			if k == "" {
				continue
			}
			if _, taken := r.alias[k]; !taken {
				r.alias[k] = id
			}
		}
	}
	return r, nil
}

// MustRegistry is NewRegistry for descriptor sets known to be valid.
func MustRegistry(descs []Descriptor) *Registry {
	r, err := NewRegistry(descs)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds a weapon by internal name, display name or lookup name,
// ignoring case and surrounding space.
func (r *Registry) Lookup(name string) (weapons.Weapon, error) {
	if w, ok := r.byID[name]; ok {
		return w, nil
	}
	if id, ok := r.alias[normalize(name)]; ok {
		return r.byID[id], nil
	}
	return weapons.Weapon{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
}

// IDs returns every registered id, sorted.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

func (r *Registry) Len() int { return len(r.ids) }

// ByFamily returns the ids of every weapon in f, sorted.
func (r *Registry) ByFamily(f weapons.Family) []string {
	var out []string
	for _, id := range r.ids {
		if r.byID[id].Family == f {
			out = append(out, id)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
