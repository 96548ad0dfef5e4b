package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
addr: ":8080"
database:
  driver: sqlite
  dsn: /tmp/tracker.db
session_ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/tmp/tracker.db", cfg.Database.DSN)

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)
}

func TestEnvSwitchesToPostgres(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "tracker")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tracker")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "host=localhost")
	assert.Contains(t, cfg.Database.DSN, "sslmode=disable")
}

func TestInvalidTTLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session_ttl: soon"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
