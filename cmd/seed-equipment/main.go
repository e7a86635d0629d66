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

func main() {
	fs := pflag.NewFlagSet("seed-equipment", pflag.ExitOnError)
	config.RegisterFlags(fs)
	cfgPath := fs.String("config", "", "config file (JSON or YAML)")
	input := fs.String("input", "", "weapons JSON file; empty seeds the built-in catalog")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath, fs)
	log := logging.NewConsole(os.Stderr, "info", false)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = logging.NewConsole(os.Stderr, cfg.LogLevel, false)

	path := cfg.Equipment.SQLitePath
	if path == "" {
		log.Fatal().Msg("usage: seed-equipment --equipment.sqlitePath <equipment.db> [--input <weapons.json>]")
	}

	descs := equipment.StandardCatalog()
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatal().Err(err).Msg("read input")
		}
		descs, err = equipment.ReadDescriptors(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("input", *input).Msg("parse input")
		}
	}
	// Registry construction rejects duplicate ids before anything is written.
	if _, err := equipment.NewRegistry(descs); err != nil {
		log.Fatal().Err(err).Msg("validate")
	}

	sqlDB, err := db.OpenSQLite(path, equipment.Schema...)
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	defer sqlDB.Close()

	n, err := equipment.SaveSQLite(context.Background(), sqlDB, descs)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int("count", n).Str("path", path).Msg("seeded equipment")
}
