package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5*time.Second, cfg.DB.LockTimeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "Asia/Karachi", cfg.Time.DisplayZone)
	assert.Equal(t, 5*time.Hour, cfg.Time.DisplayOffset)
	assert.Equal(t, 50, cfg.History.ResolveLimit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func Test_LoadConfig_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "http:\n  port: 9090\ndb:\n  host: db.internal\n  lock_timeout: 2s\nhistory:\n  resolve_limit: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "override.internal", cfg.DB.Host)
	assert.Equal(t, 2*time.Second, cfg.DB.LockTimeout)
	assert.Equal(t, 20, cfg.History.ResolveLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func Test_LoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func Test_LoadConfig_RejectsInvalid(t *testing.T) {
	t.Setenv("HISTORY_RESOLVE_LIMIT", "0")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.resolve_limit")
}

func Test_Config_Validate(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	cfg.DB.Host = " "
	cfg.HTTP.Port = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.host is required")
	assert.Contains(t, err.Error(), "http.port must be positive")
}

func Test_Config_DSN(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=tracking sslmode=disable", cfg.DSN())
}
