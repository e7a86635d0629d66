package equipment

import (
	"context"
	"fmt"

	"github.com/JustinWhittecar/hexcombat/internal/db"
)

// Open builds a registry from the first configured source: the SQLite
// equipment database, then Postgres, then the built-in catalog. It also
// reports which source was used.
func Open(ctx context.Context, sqlitePath, postgresDSN string) (*Registry, string, error) {
	switch {
	case sqlitePath != "":
		sqlDB, err := db.ConnectSQLite(sqlitePath)
		if err != nil {
			return nil, "", err
		}
		defer sqlDB.Close()
		descs, err := LoadSQLite(ctx, sqlDB)
		if err != nil {
			return nil, "", err
		}
		reg, err := NewRegistry(descs)
		if err != nil {
			return nil, "", fmt.Errorf("sqlite %s: %w", sqlitePath, err)
		}
		return reg, "sqlite", nil

	case postgresDSN != "":
		pool, err := db.Connect(ctx, postgresDSN)
		if err != nil {
			return nil, "", err
		}
		defer pool.Close()
		descs, err := LoadPostgres(ctx, pool)
		if err != nil {
			return nil, "", err
		}
		reg, err := NewRegistry(descs)
		if err != nil {
			return nil, "", fmt.Errorf("postgres: %w", err)
		}
		return reg, "postgres", nil

	default:
		reg, err := NewRegistry(StandardCatalog())
		return reg, "catalog", err
	}
}
