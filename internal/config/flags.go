package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and Load.
const (
	FlagConfig   = "config"
	FlagAddr     = "addr"
	FlagDriver   = "driver"
	FlagDB       = "db"
	FlagLog      = "log"
	FlagLogLevel = "log-level"
	FlagNoSeed   = "no-seed"
	FlagCORS     = "cors-origin"
)

// RegisterFlags adds the server flags to fs. Defaults shown in help are
// the built-in ones; Load only applies flags that were set explicitly.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(FlagConfig, "c", "", "path to a JSONC config file (default ./"+FileName+" if present)")
	fs.StringP(FlagAddr, "a", d.Addr, "listen address")
	fs.String(FlagDriver, d.Driver, "database driver (sqlite or postgres)")
	fs.StringP(FlagDB, "d", d.DSN, "SQLite file path or Postgres connection string")
	fs.StringP(FlagLog, "l", "", "also write logs to this file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.Bool(FlagNoSeed, false, "do not load the built-in catalog into an empty store")
	fs.String(FlagCORS, "", "Access-Control-Allow-Origin value for browser clients")
}

func applyFlags(cfg Config, fs *pflag.FlagSet) (Config, error) {
	strs := []struct {
		name string
		dst  *string
	}{
		{FlagAddr, &cfg.Addr},
		{FlagDriver, &cfg.Driver},
		{FlagDB, &cfg.DSN},
		{FlagLog, &cfg.LogPath},
		{FlagLogLevel, &cfg.LogLevel},
		{FlagCORS, &cfg.CORSOrigin},
	}
	for _, s := range strs {
		if fs.Lookup(s.name) == nil || !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return Config{}, err
		}
		*s.dst = v
	}

	if fs.Lookup(FlagNoSeed) != nil && fs.Changed(FlagNoSeed) {
		noSeed, err := fs.GetBool(FlagNoSeed)
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = !noSeed
	}
	return cfg, nil
}
