package config

import "time"

// Config holds runtime settings for the taskdesk CLI.
type Config struct {
	// StoreURL is the base URL of the REST store exposing /users and /tasks.
	StoreURL string
	// SessionDB is the SQLite file holding the persisted session.
	SessionDB string
	// RequestTimeout bounds each gateway call; zero means no timeout.
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with the defaults matching a local json-server.
func (c *Config) LoadDefaults() {
	c.StoreURL = "http://localhost:3000"
	c.SessionDB = "taskdesk.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the config file, the environment
// and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
