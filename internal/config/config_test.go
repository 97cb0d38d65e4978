package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5, cfg.RateLimit.RPS)
	assert.Equal(t, "https://api.sendgrid.com/v3/mail/send", cfg.Provider.URL)
	assert.Empty(t, cfg.Provider.APIKey)
	assert.Equal(t, 10000, cfg.Provider.TimeoutMs)
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\nrate_limit:\n  rps: 20\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 20, cfg.RateLimit.RPS)
	assert.Equal(t, "info", cfg.Log.Level, "defaults survive a partial file")
}

func TestLoadSendGridKeyFromEnv(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "SG.from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "SG.from-env", cfg.Provider.APIKey)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}
