// Package config resolves server settings from defaults, an optional JSONC
// file, environment variables and command-line flags, in that order.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/erazemk/izbor/internal/db"
)

// FileName is the config file looked up in the working directory.
const FileName = "izbor.jsonc"

var (
	ErrInvalid  = errors.New("invalid config")
	ErrNotFound = errors.New("config file not found")
	ErrExists   = errors.New("config file already exists")
)

// Config holds the resolved server settings.
type Config struct {
	Addr       string
	Driver     string
	DSN        string
	LogPath    string
	LogLevel   string
	Seed       bool
	CORSOrigin string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     ":3001",
		Driver:   string(db.SQLite),
		DSN:      "izbor.sqlite3",
		LogLevel: "info",
		Seed:     true,
	}
}

// fileConfig is the on-disk shape. Pointers distinguish unset keys from
// zero values so a file can turn seeding off.
type fileConfig struct {
	Addr       *string `json:"addr"`
	Driver     *string `json:"driver"`
	DSN        *string `json:"dsn"`
	LogPath    *string `json:"log"`
	LogLevel   *string `json:"log_level"`
	Seed       *bool   `json:"seed"`
	CORSOrigin *string `json:"cors_origin"`
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	ConfigPath string            // explicit file; must exist when set
	Env        map[string]string // environment variables
	Flags      *pflag.FlagSet    // parsed flags registered by RegisterFlags; may be nil
}

// Load resolves a Config. Precedence, highest last:
//  1. Default()
//  2. ConfigPath, or FileName in the working directory if present
//  3. PORT, IZBOR_ADDR, IZBOR_DB_DRIVER, IZBOR_DB, IZBOR_LOG, IZBOR_LOG_LEVEL
//  4. flags the user actually set
func Load(in LoadInput) (Config, error) {
	cfg := Default()

	path, mustExist := in.ConfigPath, true
	if path == "" {
		path, mustExist = FileName, false
	}
	fc, err := loadFile(path, mustExist)
	if err != nil {
		return Config{}, err
	}
	cfg = mergeFile(cfg, fc)

	cfg = applyEnv(cfg, in.Env)

	if in.Flags != nil {
		cfg, err = applyFlags(cfg, in.Flags)
		if err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, mustExist bool) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mustExist {
				return fileConfig{}, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	fc, err := parse(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}
	slog.Debug("loaded config file", "path", path)
	return fc, nil
}

func parse(data []byte) (fileConfig, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return fc, nil
}

func mergeFile(cfg Config, fc fileConfig) Config {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Addr, fc.Addr)
	set(&cfg.Driver, fc.Driver)
	set(&cfg.DSN, fc.DSN)
	set(&cfg.LogPath, fc.LogPath)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.CORSOrigin, fc.CORSOrigin)
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	return cfg
}

func applyEnv(cfg Config, env map[string]string) Config {
	if port := env["PORT"]; port != "" {
		cfg.Addr = ":" + port
	}
	if v := env["IZBOR_ADDR"]; v != "" {
		cfg.Addr = v
	}
	if v := env["IZBOR_DB_DRIVER"]; v != "" {
		cfg.Driver = v
	}
	if v := env["IZBOR_DB"]; v != "" {
		cfg.DSN = v
	}
	if v := env["IZBOR_LOG"]; v != "" {
		cfg.LogPath = v
	}
	if v := env["IZBOR_LOG_LEVEL"]; v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Validate checks the driver and log level.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalid)
	}
	if c.DSN == "" {
		return fmt.Errorf("%w: database is empty", ErrInvalid)
	}
	if _, err := db.ParseDialect(c.Driver); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Dialect returns the configured database dialect.
func (c Config) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.Driver)
}

// Level parses LogLevel (debug, info, warn or error).
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

const defaultFile = `// izbor server configuration (JSON with comments).
// Environment variables and command-line flags override these values.
{
	// Listen address.
	"addr": ":3001",

	// Database driver: "sqlite" or "postgres".
	"driver": "sqlite",

	// SQLite file path or Postgres connection string.
	"dsn": "izbor.sqlite3",

	// Optional log file, written in addition to stdout/stderr.
	"log": "",

	// debug, info, warn or error.
	"log_level": "info",

	// Load the built-in catalog when the store is empty.
	"seed": true,

	// Access-Control-Allow-Origin for browser clients. Empty disables CORS.
	"cors_origin": "",
}
`

// WriteDefault atomically writes a commented default config to path. It
// refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, strings.NewReader(defaultFile)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
