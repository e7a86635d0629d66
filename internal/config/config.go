package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type EquipmentConfig struct {
	SQLitePath  string `json:"sqlitePath" mapstructure:"sqlitePath"`
	PostgresDSN string `json:"postgresDSN" mapstructure:"postgresDSN"`
}

type ReplayConfig struct {
	Enabled    bool   `json:"enabled" mapstructure:"enabled"`
	SQLitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
}

// ServerConfig drives the HTTP API. AllowedOrigins get credentialed CORS.
type ServerConfig struct {
	Addr           string   `json:"addr" mapstructure:"addr"`
	AllowedOrigins []string `json:"allowedOrigins" mapstructure:"allowedOrigins"`
}

// Config is the resolved configuration. A Seed of zero asks the caller to
// draw one from crypto/rand.
type Config struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	Seed      uint64          `json:"seed" mapstructure:"seed"`
	BoardPath string          `json:"boardPath" mapstructure:"boardPath"`
	Equipment EquipmentConfig `json:"equipment" mapstructure:"equipment"`
	Replay    ReplayConfig    `json:"replay" mapstructure:"replay"`
	Server    ServerConfig    `json:"server" mapstructure:"server"`
}

const EnvPrefix = "HEXCOMBAT"

var defaults = map[string]any{
	"logLevel":              "info",
	"seed":                  uint64(0),
	"boardPath":             "",
	"equipment.sqlitePath":  "",
	"equipment.postgresDSN": "",
	"replay.enabled":        false,
	"replay.sqlitePath":     "replays.db",
	"server.addr":           ":8080",
	"server.allowedOrigins": []string{"http://localhost:5173", "http://localhost:8080"},
}

// RegisterFlags adds a flag for every key, with the same defaults Load
// applies.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("logLevel", defaults["logLevel"].(string), "log level (trace, debug, info, warn, error)")
	fs.Uint64("seed", 0, "dice seed; 0 draws one from crypto/rand")
	fs.String("boardPath", "", "MegaMek .board file for line of sight")
	fs.String("equipment.sqlitePath", "", "SQLite equipment database")
	fs.String("equipment.postgresDSN", "", "Postgres equipment database DSN")
	fs.Bool("replay.enabled", false, "store a replay of every resolution")
	fs.String("replay.sqlitePath", defaults["replay.sqlitePath"].(string), "SQLite replay database")
	fs.String("server.addr", defaults["server.addr"].(string), "HTTP listen address")
	fs.StringSlice("server.allowedOrigins", defaults["server.allowedOrigins"].([]string), "CORS origins allowed credentials")
}

// Load reads configuration. Precedence, highest first: changed flags,
// HEXCOMBAT_* environment variables, the config file at path (JSON or
// YAML; skipped when path is empty), defaults.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
