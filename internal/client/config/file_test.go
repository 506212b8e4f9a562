package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndFormats(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"store_url": "http://store.example:3000",
			"session_db": "/var/lib/taskdesk/s.db",
			"request_timeout": "10s",
			"log_level": "debug"
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "http://store.example:3000", cfg.StoreURL)
		assert.Equal(t, "/var/lib/taskdesk/s.db", cfg.SessionDB)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.toml", "store_url = \"http://toml:3000\"\nrequest_timeout = \"250ms\"\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{SessionDB: "keep.db"}
		parseFile(cfg)

		assert.Equal(t, "http://toml:3000", cfg.StoreURL)
		assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, "keep.db", cfg.SessionDB, "absent keys keep earlier values")
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{StoreURL: "defaults:1234", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults:1234", cfg.StoreURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "absent.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
