package equipment

import (
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

// Subtrees of the MegaMek weapons package with nothing a 'Mech can mount.
var nonMechTrees = []string{
	"attacks", "handlers", "unofficial",
	"infantry", "battleArmor", "bayWeapons", "capitalWeapons", "subCapitalWeapons",
	"bombs", "c3", "defensivePods", "tag",
}

var (
	// Field assignments inside a weapon constructor, one per line.
	reAssign     = regexp.MustCompile(`(?m)^\s*(?:this\.)?(\w+)\s*=\s*([^;\n]+);`)
	reInternal   = regexp.MustCompile(`setInternalName\((?:"([^"]+)"|(?:this\.)?name)\)`)
	reLookupName = regexp.MustCompile(`addLookupName\("([^"]+)"\)`)
)

// constructor holds the first value assigned to each field.
type constructor map[string]string

func scanConstructor(src string) constructor {
	c := constructor{}
	for _, m := range reAssign.FindAllStringSubmatch(src, -1) {
		if _, seen := c[m[1]]; !seen {
			c[m[1]] = strings.TrimSpace(m[2])
		}
	}
	return c
}

// str returns a quoted string literal's contents.
func (c constructor) str(field string) string {
	v, err := strconv.Unquote(c[field])
	if err != nil {
		return ""
	}
	return v
}

// num returns 0 for missing fields and symbolic values like DAMAGE_BY_RACK.
func (c constructor) num(field string) int {
	v, _ := strconv.Atoi(c[field])
	return v
}

func (c constructor) decimal(field string) float64 {
	v, _ := strconv.ParseFloat(c[field], 64)
	return v
}

var pathTypes = []struct {
	typ      string
	keywords []string
}{
	{"energy", []string{"laser", "ppc", "flamer"}},
	{"ballistic", []string{"autocannon", "gauss", "mg"}},
	{"missile", []string{"lrm", "srm", "missile", "rocketlauncher"}},
}

// weaponType is the coarse category of the extracted weapon. The resolution
// family decides where it is unambiguous; everything else goes by the
// source directory.
func weaponType(internal, name, relPath string) string {
	switch f := weapons.Classify(internal, name); {
	case f.IsMissile():
		return "missile"
	case f == weapons.UltraAC || f == weapons.RotaryAC || f == weapons.LBX:
		return "ballistic"
	}
	lower := strings.ToLower(relPath)
	for _, pt := range pathTypes {
		for _, k := range pt.keywords {
			if strings.Contains(lower, k) {
				return pt.typ
			}
		}
	}
	return "other"
}

// ParseWeaponSource reads one MegaMek weapon class. It reports false for
// abstract classes, which never set an internal name. Symbolic damage
// (rack or cluster table) is stored as 0.
func ParseWeaponSource(src, relPath string) (Descriptor, bool) {
	c := scanConstructor(src)
	name := c.str("name")

	m := reInternal.FindStringSubmatch(src)
	if m == nil || name == "" {
		return Descriptor{}, false
	}
	internal := m[1]
	if internal == "" {
		internal = name
	}

	d := Descriptor{
		InternalName:  internal,
		Name:          name,
		Type:          weaponType(internal, name, relPath),
		Damage:        c.num("damage"),
		RackSize:      c.num("rackSize"),
		Heat:          c.num("heat"),
		MinRange:      c.num("minimumRange"),
		ShortRange:    c.num("shortRange"),
		MediumRange:   c.num("mediumRange"),
		LongRange:     c.num("longRange"),
		ExtremeRange:  c.num("extremeRange"),
		Tonnage:       c.decimal("tonnage"),
		CriticalSlots: c.num("criticalSlots"),
	}
	for _, m := range reLookupName.FindAllStringSubmatch(src, -1) {
		d.LookupNames = append(d.LookupNames, m[1])
	}
	return d, true
}

// Extract walks a MegaMek weapons source tree. Classes that parse but do
// not resolve to a valid weapon are returned by internal name in skipped.
func Extract(fsys fs.FS) (descs []Descriptor, skipped []string, err error) {
	err = fs.WalkDir(fsys, ".", func(p string, e fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case e.IsDir() && slices.Contains(nonMechTrees, e.Name()):
			return fs.SkipDir
		case e.IsDir() || path.Ext(p) != ".java":
			return nil
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		d, ok := ParseWeaponSource(string(src), p)
		if !ok {
			return nil
		}
		if _, err := d.Weapon(); err != nil {
			skipped = append(skipped, d.ID())
			return nil
		}
		descs = append(descs, d)
		return nil
	})
	return descs, skipped, err
}
