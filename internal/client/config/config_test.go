package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.StoreURL)
	assert.Equal(t, "taskdesk.db", c.SessionDB)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000", cfg.StoreURL)
	assert.Equal(t, "taskdesk.db", cfg.SessionDB)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.json", `{"store_url":"http://file:1","session_db":"file.db","log_level":"warn"}`)
	t.Setenv(envSessionDB, "env.db")

	os.Args = []string{"testbin", "-c", path, "-l", "debug"}
	cfg := LoadConfig()

	assert.Equal(t, "http://file:1", cfg.StoreURL, "file overrides default")
	assert.Equal(t, "env.db", cfg.SessionDB, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides file")
}
