package equipment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/hexcombat/internal/db"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "equipment.db"), Schema...)
	require.NoError(t, err)
	defer sqlDB.Close()

	n, err := SaveSQLite(ctx, sqlDB, StandardCatalog())
	require.NoError(t, err)
	assert.Equal(t, len(StandardCatalog()), n)

	loaded, err := LoadSQLite(ctx, sqlDB)
	require.NoError(t, err)
	assert.Equal(t, StandardCatalog(), loaded)

	// Saving again replaces rather than appends.
	_, err = SaveSQLite(ctx, sqlDB, StandardCatalog()[:3])
	require.NoError(t, err)
	loaded, err = LoadSQLite(ctx, sqlDB)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestSQLiteRoundTripKeepsClassification(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "equipment.db"), Schema...)
	require.NoError(t, err)
	defer sqlDB.Close()

	custom := Descriptor{
		InternalName: "Custom Launcher",
		Name:         "Custom Launcher",
		Type:         "missile",
		Family:       weapons.LRM,
		RackSize:     10,
		Heat:         4,
		ShortRange:   7,
		MediumRange:  14,
		LongRange:    21,
		Tonnage:      5,
		SemiGuided:   true,
		AmmoFlags:    []string{"lrm-semi", "lrm-standard"},
	}
	_, err = SaveSQLite(ctx, sqlDB, []Descriptor{custom})
	require.NoError(t, err)

	loaded, err := LoadSQLite(ctx, sqlDB)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, custom, loaded[0])

	w, err := loaded[0].Weapon()
	require.NoError(t, err)
	assert.Equal(t, weapons.LRM, w.Family)
	assert.True(t, w.SemiGuided)
	assert.Equal(t, []string{"lrm-semi", "lrm-standard"}, w.AmmoFlags)
	mods := weapons.ComputeClusterModifiers(w, weapons.AttackContext{TAGDesignated: true})
	assert.Equal(t, 2, mods.SemiGuided)
}

func TestLoadSQLiteRejectsUnknownFamily(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "equipment.db"), Schema...)
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = sqlDB.Exec(`INSERT INTO equipment (id, name, type, tonnage, slots, internal_name, family)
		VALUES (1, 'Plasma Rifle', 'energy', 6, 2, 'ISPlasmaRifle', 'plasma')`)
	require.NoError(t, err)

	_, err = LoadSQLite(context.Background(), sqlDB)
	assert.ErrorIs(t, err, weapons.ErrUnclassified)
}

func TestLoadSQLiteNullColumns(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "equipment.db"), Schema...)
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = sqlDB.Exec(`INSERT INTO equipment (id, name, type, damage, heat, short_range, medium_range, long_range, tonnage, slots, internal_name, rack_size)
		VALUES (7, 'LRM 10', 'missile', NULL, 4, 7, 14, 21, 5, 2, 'ISLRM10', 10)`)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`INSERT INTO equipment_lookup (equipment_id, lookup_name) VALUES (7, 'IS LRM-10'), (7, 'LRM 10')`)
	require.NoError(t, err)

	descs, err := LoadSQLite(ctx, sqlDB)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, []string{"IS LRM-10"}, descs[0].LookupNames)
	assert.Zero(t, descs[0].Damage)
	assert.Zero(t, descs[0].MinRange)

	reg, err := NewRegistry(descs)
	require.NoError(t, err)
	w, err := reg.Lookup("is lrm-10")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Damage)
}

func TestLoadPostgres(t *testing.T) {
	dsn := os.Getenv("HEXCOMBAT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("HEXCOMBAT_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, MigratePostgres(ctx, pool))
	descs, err := LoadPostgres(ctx, pool)
	require.NoError(t, err)
	if len(descs) == 0 {
		t.Skip("equipment table is empty")
	}
	_, err = NewRegistry(descs)
	assert.NoError(t, err)
}

func TestOpenFallsBackToCatalog(t *testing.T) {
	reg, source, err := Open(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "catalog", source)
	assert.Equal(t, len(StandardCatalog()), reg.Len())
}

func TestOpenEmptySQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	sqlDB, err := db.OpenSQLite(path, Schema...)
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = Open(context.Background(), path, "")
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}
