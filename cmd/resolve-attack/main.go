package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/JustinWhittecar/hexcombat/internal/attack"
	"github.com/JustinWhittecar/hexcombat/internal/config"
	"github.com/JustinWhittecar/hexcombat/internal/db"
	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/hexgrid"
	"github.com/JustinWhittecar/hexcombat/internal/hitloc"
	"github.com/JustinWhittecar/hexcombat/internal/logging"
	"github.com/JustinWhittecar/hexcombat/internal/replay"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fs := pflag.NewFlagSet("resolve-attack", pflag.ExitOnError)
	config.RegisterFlags(fs)
	cfgPath := fs.String("config", "", "config file (JSON or YAML)")
	weapon := fs.String("weapon", "", "weapon internal name, name or lookup name")
	from := fs.String("from", "0101", "shooter hex (XXYY)")
	to := fs.String("to", "0105", "target hex (XXYY)")
	shooterFacing := fs.String("shooter-facing", "S", "shooter facing (N, NE, SE, S, SW, NW)")
	targetFacing := fs.String("target-facing", "N", "target facing")
	shooterProne := fs.Bool("shooter-prone", false, "shooter is prone")
	targetProne := fs.Bool("target-prone", false, "target is prone")
	gunnery := fs.Int("gunnery", 4, "gunnery skill")
	attackerMove := fs.Int("attacker-move", 0, "attacker movement modifier")
	targetMove := fs.Int("target-move", 0, "target movement modifier")
	tn := fs.Int("tn", 0, "fixed target number; 0 builds one")
	artemis := fs.String("artemis", "", "artemis fire control (iv, v)")
	narc := fs.Bool("narc", false, "target carries a Narc beacon")
	tag := fs.Bool("tag", false, "target is TAG designated")
	ecm := fs.Bool("ecm", false, "target is inside friendly ECM")
	ams := fs.Bool("ams", false, "target has an active AMS")
	clusterHitter := fs.Bool("cluster-hitter", false, "shooter has the Cluster Hitter ability")
	mode := fs.String("mode", "slug", "LB-X ammunition (slug, cluster)")
	rate := fs.Int("rate", 0, "rotary AC rate of fire (1-6)")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath, fs)
	log := logging.NewConsole(os.Stderr, "info", false)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = logging.NewConsole(os.Stderr, cfg.LogLevel, false)

	if *weapon == "" {
		log.Fatal().Msg("usage: resolve-attack --weapon <name> [--from XXYY --to XXYY ...]")
	}

	shooter := position(log, "shooter", *from, *shooterFacing, *shooterProne)
	target := position(log, "target", *to, *targetFacing, *targetProne)

	req := attack.Request{
		Weapon:           *weapon,
		Shooter:          shooter,
		Target:           target,
		Gunnery:          *gunnery,
		AttackerMovement: *attackerMove,
		TargetMovement:   *targetMove,
		TargetNumber:     *tn,
		Context: weapons.AttackContext{
			Artemis:       parseArtemis(log, *artemis),
			ECMProtected:  *ecm,
			NarcedTarget:  *narc,
			TAGDesignated: *tag,
			ClusterHitter: *clusterHitter,
			TargetHasAMS:  *ams,
		},
		RateOfFire: *rate,
		Seed:       cfg.Seed,
	}
	if err := req.Mode.UnmarshalText([]byte(*mode)); err != nil {
		log.Fatal().Err(err).Msg("mode")
	}

	reg, source, err := equipment.Open(ctx, cfg.Equipment.SQLitePath, cfg.Equipment.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("equipment")
	}
	log.Debug().Str("source", source).Int("weapons", reg.Len()).Msg("equipment loaded")

	var board terrain.Source
	if cfg.BoardPath != "" {
		m, err := terrain.LoadBoard(cfg.BoardPath)
		if err != nil {
			log.Fatal().Err(err).Msg("board")
		}
		log.Debug().Str("path", cfg.BoardPath).Int("width", m.Width).Int("height", m.Height).Msg("board loaded")
		board = m
	}

	engine, err := weapons.NewEngine(hitloc.Standard{}, weapons.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("engine")
	}
	resolver, err := attack.NewResolver(reg, board, engine, log)
	if err != nil {
		log.Fatal().Err(err).Msg("resolver")
	}

	rec, err := resolver.Resolve(req)
	if err != nil {
		log.Fatal().Err(err).Msg("attack")
	}

	if cfg.Replay.Enabled {
		sqlDB, err := db.OpenSQLite(cfg.Replay.SQLitePath, replay.Schema...)
		if err != nil {
			log.Fatal().Err(err).Msg("replay db")
		}
		defer sqlDB.Close()
		if err := replay.NewSQLiteStore(sqlDB).Save(ctx, rec); err != nil {
			log.Fatal().Err(err).Msg("replay save")
		}
		log.Info().Str("id", rec.ID.String()).Str("path", cfg.Replay.SQLitePath).Msg("replay stored")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
}

func position(log zerolog.Logger, who, hex, facing string, prone bool) hexgrid.UnitPosition {
	off, err := hexgrid.ParseOffset(hex)
	if err != nil {
		log.Fatal().Err(err).Str("unit", who).Msg("hex")
	}
	f, ok := parseFacing(facing)
	if !ok {
		log.Fatal().Str("unit", who).Str("facing", facing).Msg("unknown facing")
	}
	return hexgrid.NewUnitPosition(who, off.ToAxial(), f).WithProne(prone)
}

func parseFacing(s string) (hexgrid.Facing, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for f := hexgrid.North; f <= hexgrid.Northwest; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

func parseArtemis(log zerolog.Logger, s string) weapons.Artemis {
	switch strings.ToLower(s) {
	case "":
		return weapons.NoArtemis
	case "iv", "4":
		return weapons.ArtemisIV
	case "v", "5":
		return weapons.ArtemisV
	}
	log.Fatal().Str("artemis", s).Msg("unknown artemis")
	return weapons.NoArtemis
}
