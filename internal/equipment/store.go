package equipment

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

// Schema creates the equipment tables in SQLite. Column names match the
// Postgres equipment table so both loaders share one query.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS equipment (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		damage REAL,
		heat INTEGER,
		min_range INTEGER,
		short_range INTEGER,
		medium_range INTEGER,
		long_range INTEGER,
		tonnage REAL NOT NULL,
		slots INTEGER NOT NULL,
		internal_name TEXT,
		rack_size INTEGER DEFAULT 0,
		extreme_range INTEGER DEFAULT 0,
		family TEXT,
		semi_guided INTEGER DEFAULT 0,
		ammo_flags TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS equipment_lookup (
		equipment_id INTEGER NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		lookup_name TEXT NOT NULL PRIMARY KEY
	)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_internal_name ON equipment(internal_name)`,
}

// PostgresMigrations adds the classification columns to an equipment
// table that predates them. Every statement is safe to re-run.
var PostgresMigrations = []string{
	`ALTER TABLE equipment ADD COLUMN IF NOT EXISTS family TEXT`,
	`ALTER TABLE equipment ADD COLUMN IF NOT EXISTS semi_guided BOOLEAN DEFAULT FALSE`,
	`ALTER TABLE equipment ADD COLUMN IF NOT EXISTS ammo_flags TEXT`,
}

const selectEquipment = `SELECT id, internal_name, name, type, damage, heat,
	min_range, short_range, medium_range, long_range, extreme_range,
	rack_size, tonnage, slots, family, semi_guided, ammo_flags
	FROM equipment ORDER BY id`

const selectLookups = `SELECT equipment_id, lookup_name FROM equipment_lookup ORDER BY lookup_name`

type scanner interface {
	Scan(dest ...any) error
}

// scanDescriptor reads one selectEquipment row. NULL numeric columns read
// as zero; a NULL family is left for the classifier.
func scanDescriptor(s scanner) (int64, Descriptor, error) {
	var (
		id                                          int64
		internal, name, typ, family, ammo           sql.NullString
		damage, tonnage                             sql.NullFloat64
		heat, minR, shortR, medR, longR, extR, rack sql.NullInt64
		slots                                       sql.NullInt64
		semi                                        sql.NullBool
	)
	if err := s.Scan(&id, &internal, &name, &typ, &damage, &heat,
		&minR, &shortR, &medR, &longR, &extR, &rack, &tonnage, &slots,
		&family, &semi, &ammo); err != nil {
		return 0, Descriptor{}, err
	}
	var f weapons.Family
	if family.String != "" {
		var err error
		if f, err = weapons.ParseFamily(family.String); err != nil {
			return 0, Descriptor{}, fmt.Errorf("equipment %d: %w", id, err)
		}
	}
	return id, Descriptor{
		InternalName:  internal.String,
		Name:          name.String,
		Type:          typ.String,
		Damage:        int(math.Round(damage.Float64)),
		Heat:          int(heat.Int64),
		MinRange:      int(minR.Int64),
		ShortRange:    int(shortR.Int64),
		MediumRange:   int(medR.Int64),
		LongRange:     int(longR.Int64),
		ExtremeRange:  int(extR.Int64),
		RackSize:      int(rack.Int64),
		Tonnage:       tonnage.Float64,
		CriticalSlots: int(slots.Int64),
		Family:        f,
		SemiGuided:    semi.Bool,
		AmmoFlags:     splitFlags(ammo.String),
	}, nil
}

// Ammo flags are stored comma-separated; an empty list is NULL.
func joinFlags(flags []string) sql.NullString {
	if len(flags) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(flags, ","), Valid: true}
}

func splitFlags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func familyColumn(f weapons.Family) sql.NullString {
	if f == weapons.Unclassified {
		return sql.NullString{}
	}
	return sql.NullString{String: f.String(), Valid: true}
}

// collector keeps rows in id order and attaches lookup names to them.
type collector struct {
	order []int64
	byID  map[int64]*Descriptor
}

func newCollector() *collector {
	return &collector{byID: map[int64]*Descriptor{}}
}

func (c *collector) add(id int64, d Descriptor) {
	c.order = append(c.order, id)
	c.byID[id] = &d
}

func (c *collector) lookup(id int64, name string) {
	if d, ok := c.byID[id]; ok && name != d.InternalName && name != d.Name {
		d.LookupNames = append(d.LookupNames, name)
	}
}

func (c *collector) descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// LoadSQLite reads every equipment row and its lookup names.
func LoadSQLite(ctx context.Context, db *sql.DB) ([]Descriptor, error) {
	rows, err := db.QueryContext(ctx, selectEquipment)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	c := newCollector()
	for rows.Next() {
		id, d, err := scanDescriptor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		c.add(id, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment: %w", err)
	}

	lrows, err := db.QueryContext(ctx, selectLookups)
	if err != nil {
		return nil, fmt.Errorf("query equipment_lookup: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var id int64
		var name string
		if err := lrows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan equipment_lookup: %w", err)
		}
		c.lookup(id, name)
	}
	if err := lrows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment_lookup: %w", err)
	}
	return c.descriptors(), nil
}

// SaveSQLite replaces the equipment tables with descs in one transaction.
// It returns the number of rows written.
func SaveSQLite(ctx context.Context, db *sql.DB, descs []Descriptor) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{"DELETE FROM equipment_lookup", "DELETE FROM equipment"} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return 0, fmt.Errorf("clear equipment: %w", err)
		}
	}

	count := 0
	for _, d := range descs {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO equipment (name, type, damage, heat, min_range, short_range, medium_range, long_range,
				extreme_range, rack_size, tonnage, slots, internal_name, family, semi_guided, ammo_flags)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			d.Name, d.Type, d.Damage, d.Heat, d.MinRange, d.ShortRange, d.MediumRange, d.LongRange,
			d.ExtremeRange, d.RackSize, d.Tonnage, d.CriticalSlots, d.InternalName,
			familyColumn(d.Family), d.SemiGuided, joinFlags(d.AmmoFlags))
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", d.ID(), err)
		}
		equipID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", d.ID(), err)
		}

		names := append([]string{d.InternalName, d.Name}, d.LookupNames...)
		for _, n := range names {
			if n == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO equipment_lookup (equipment_id, lookup_name) VALUES (?, ?) ON CONFLICT DO NOTHING`,
				equipID, n); err != nil {
				return 0, fmt.Errorf("lookup %s: %w", n, err)
			}
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return count, nil
}

// MigratePostgres applies PostgresMigrations.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for _, q := range PostgresMigrations {
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate equipment: %w", err)
		}
	}
	return nil
}

// LoadPostgres reads the same tables from the Postgres equipment database,
// which must carry PostgresMigrations.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool) ([]Descriptor, error) {
	rows, err := pool.Query(ctx, selectEquipment)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	c := newCollector()
	for rows.Next() {
		id, d, err := scanDescriptor(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		c.add(id, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment: %w", err)
	}

	lrows, err := pool.Query(ctx, selectLookups)
	if err != nil {
		return nil, fmt.Errorf("query equipment_lookup: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var id int64
		var name string
		if err := lrows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan equipment_lookup: %w", err)
		}
		c.lookup(id, name)
	}
	if err := lrows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment_lookup: %w", err)
	}
	return c.descriptors(), nil
}
