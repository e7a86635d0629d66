package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/pflag"

	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/logging"
)

func main() {
	dir := pflag.String("dir", "", "MegaMek weapons source directory")
	out := pflag.String("output", "", "output JSON file")
	level := pflag.String("logLevel", "info", "log level")
	pflag.Parse()

	log := logging.NewConsole(os.Stderr, *level, false)
	if *dir == "" || *out == "" {
		log.Fatal().Msg("usage: extract-weapons --dir <path> --output <path>")
	}

	descs, skipped, err := equipment.Extract(os.DirFS(*dir))
	if err != nil {
		log.Fatal().Err(err).Msg("walk")
	}
	for _, id := range skipped {
		log.Warn().Str("weapon", id).Msg("skipped unresolvable weapon")
	}

	data, err := json.MarshalIndent(descs, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("marshal")
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal().Err(err).Msg("write")
	}
	log.Info().Int("count", len(descs)).Int("skipped", len(skipped)).Str("output", *out).Msg("extracted weapons")
}
