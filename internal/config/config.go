// Package config resolves liftlog settings from defaults, an optional TOML
// file and LIFTLOG_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/alexanderramin/liftlog/internal/timer"
)

type StoreKind string

const (
	StoreJSON   StoreKind = "json"
	StoreSQLite StoreKind = "sqlite"
)

// Config holds every user-tunable setting.
type Config struct {
	Store    StoreKind `toml:"store"`
	DataPath string    `toml:"data_path"`
	DBPath   string    `toml:"db_path"`

	// LogFile is empty to discard logs.
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	RestSeconds  int `toml:"rest_seconds"`
	HistoryLimit int `toml:"history_limit"`
}

// Dir is where liftlog keeps its files unless told otherwise.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".liftlog"
	}
	return filepath.Join(home, ".liftlog")
}

func DefaultConfig() Config {
	dir := Dir()
	return Config{
		Store:        StoreJSON,
		DataPath:     filepath.Join(dir, "liftlog.json"),
		DBPath:       filepath.Join(dir, "liftlog.db"),
		LogLevel:     "info",
		RestSeconds:  90,
		HistoryLimit: 10,
	}
}

// Load applies the config file named by LIFTLOG_CONFIG (or
// ~/.liftlog/config.toml when it exists) and then the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	path := getenv("LIFTLOG_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(Dir(), "config.toml")
	}
	if _, err := toml.DecodeFile(expandHome(path), &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	cfg.DataPath = expandHome(cfg.DataPath)
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("LIFTLOG_STORE"); v != "" {
		cfg.Store = StoreKind(strings.ToLower(v))
	}
	if v := getenv("LIFTLOG_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := getenv("LIFTLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("LIFTLOG_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("LIFTLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("LIFTLOG_REST_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LIFTLOG_REST_SECONDS=%q is not a number", v)
		}
		cfg.RestSeconds = n
	}
	return nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var err error
	switch c.Store {
	case StoreJSON:
		if c.DataPath == "" {
			err = multierr.Append(err, errors.New("data_path is required for the json store"))
		}
	case StoreSQLite:
		if c.DBPath == "" {
			err = multierr.Append(err, errors.New("db_path is required for the sqlite store"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("store %q must be %q or %q", c.Store, StoreJSON, StoreSQLite))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("log_level %q must be debug, info, warn or error", c.LogLevel))
	}
	if maxRest := int(timer.MaxDuration / time.Second); c.RestSeconds <= 0 || c.RestSeconds > maxRest {
		err = multierr.Append(err, fmt.Errorf("rest_seconds must be between 1 and %d, got %d", maxRest, c.RestSeconds))
	}
	if c.HistoryLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit))
	}
	return err
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
