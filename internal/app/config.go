package app

import (
	"fmt"

	"github.com/specialistvlad/flowdoc/internal/localsession"
	"github.com/specialistvlad/flowdoc/internal/sqlitesession"
)

// Session store kinds.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FormPath    string // hcl file or directory; empty means the built-in form
	SessionPath string
	StoreKind   string

	LogFormat string
	LogLevel  string
	NoBanner  bool
}

// NewConfig validates cfg and fills store-dependent defaults.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.StoreKind {
	case "", StoreJSON:
		cfg.StoreKind = StoreJSON
		if cfg.SessionPath == "" {
			cfg.SessionPath = localsession.DefaultPath
		}
	case StoreSQLite:
		if cfg.SessionPath == "" {
			cfg.SessionPath = sqlitesession.DefaultPath
		}
	default:
		return nil, fmt.Errorf("unknown session store %q: must be %q or %q", cfg.StoreKind, StoreJSON, StoreSQLite)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return &cfg, nil
}
