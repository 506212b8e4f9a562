package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/flagx"
	"github.com/dmitrijs2005/taskdesk/internal/timex"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the DTO decoded from the config file. Zero values leave the
// corresponding Config field untouched.
type FileConfig struct {
	StoreURL       string          `json:"store_url" toml:"store_url"`
	SessionDB      string          `json:"session_db" toml:"session_db"`
	RequestTimeout *timex.Duration `json:"request_timeout" toml:"request_timeout"`
	LogLevel       string          `json:"log_level" toml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.StoreURL != "" {
		cfg.StoreURL = fc.StoreURL
	}
	if fc.SessionDB != "" {
		cfg.SessionDB = fc.SessionDB
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
