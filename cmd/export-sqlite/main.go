package main

import (
	"context"
	"os"

	"github.com/spf13/pflag"

	"github.com/JustinWhittecar/hexcombat/internal/config"
	"github.com/JustinWhittecar/hexcombat/internal/db"
	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/logging"
)

// export-sqlite copies the Postgres equipment tables into a fresh SQLite
// file for read-only deployments.
func main() {
	fs := pflag.NewFlagSet("export-sqlite", pflag.ExitOnError)
	config.RegisterFlags(fs)
	cfgPath := fs.String("config", "", "config file (JSON or YAML)")
	out := fs.String("output", "equipment.db", "SQLite file to create")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath, fs)
	log := logging.NewConsole(os.Stderr, "info", false)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = logging.NewConsole(os.Stderr, cfg.LogLevel, false)

	ctx := context.Background()
	pg, err := db.Connect(ctx, cfg.Equipment.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect")
	}
	defer pg.Close()

	if err := equipment.MigratePostgres(ctx, pg); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	descs, err := equipment.LoadPostgres(ctx, pg)
	if err != nil {
		log.Fatal().Err(err).Msg("load equipment")
	}
	if _, err := equipment.NewRegistry(descs); err != nil {
		log.Fatal().Err(err).Msg("validate")
	}

	os.Remove(*out)
	sl, err := db.OpenSQLite(*out, equipment.Schema...)
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite open")
	}
	defer sl.Close()

	n, err := equipment.SaveSQLite(ctx, sl, descs)
	if err != nil {
		log.Fatal().Err(err).Msg("export")
	}
	log.Info().Int("equipment", n).Str("output", *out).Msg("export complete")
}
