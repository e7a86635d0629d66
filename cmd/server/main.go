package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"github.com/JustinWhittecar/hexcombat/internal/attack"
	"github.com/JustinWhittecar/hexcombat/internal/config"
	"github.com/JustinWhittecar/hexcombat/internal/db"
	"github.com/JustinWhittecar/hexcombat/internal/equipment"
	"github.com/JustinWhittecar/hexcombat/internal/handlers"
	"github.com/JustinWhittecar/hexcombat/internal/hitloc"
	"github.com/JustinWhittecar/hexcombat/internal/logging"
	"github.com/JustinWhittecar/hexcombat/internal/replay"
	"github.com/JustinWhittecar/hexcombat/internal/terrain"
	"github.com/JustinWhittecar/hexcombat/internal/weapons"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fs := pflag.NewFlagSet("server", pflag.ExitOnError)
	config.RegisterFlags(fs)
	cfgPath := fs.String("config", "", "config file (JSON or YAML)")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath, fs)
	log := logging.New(os.Stderr, "info")
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = logging.New(os.Stderr, cfg.LogLevel)

	reg, source, err := equipment.Open(ctx, cfg.Equipment.SQLitePath, cfg.Equipment.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load equipment")
	}
	log.Info().Str("source", source).Int("weapons", reg.Len()).Msg("equipment loaded")

	var board terrain.Source
	if cfg.BoardPath != "" {
		m, err := terrain.LoadBoard(cfg.BoardPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load board")
		}
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

	attackHandler := &handlers.AttackHandler{Resolver: resolver, Log: log}
	var replayHandler *handlers.ReplayHandler
	if cfg.Replay.Enabled {
		replayDB, err := db.OpenSQLite(cfg.Replay.SQLitePath, replay.Schema...)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open replay DB")
		}
		defer replayDB.Close()
		store := replay.NewSQLiteStore(replayDB)
		attackHandler.Store = store
		replayHandler = &handlers.ReplayHandler{Store: store, Engine: engine}
	}

	mux := handlers.Routes(&handlers.EquipmentHandler{Registry: reg}, attackHandler, replayHandler)
	handler := handlers.CORS(cfg.Server.AllowedOrigins, handlers.RequestLog(log, mux))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Bool("replays", cfg.Replay.Enabled).Msg("server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}
