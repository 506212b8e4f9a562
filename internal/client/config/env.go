package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envStoreURL       = "TASKDESK_STORE_URL"
	envSessionDB      = "TASKDESK_SESSION_DB"
	envRequestTimeout = "TASKDESK_REQUEST_TIMEOUT"
	envLogLevel       = "TASKDESK_LOG_LEVEL"
)

// parseEnv loads the dotenv file given with -env (".env" when present
// otherwise) without overriding variables already set, then copies TASKDESK_*
// variables into cfg. A named dotenv file that cannot be read panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envStoreURL); ok && v != "" {
		cfg.StoreURL = v
	}
	if v, ok := os.LookupEnv(envSessionDB); ok && v != "" {
		cfg.SessionDB = v
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
