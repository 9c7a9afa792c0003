package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(envConfigFile, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 8, cfg.RecomputeConcurrency)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gigify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
db_driver: sqlite
sqlite_path: "file:gigify.db"
recompute_concurrency: 2
cors_origins:
  - https://app.gigifypro.com
`), 0o600))

	t.Setenv(envConfigFile, path)
	t.Setenv("GIGIFY_ADDR", ":7070")
	t.Setenv("GIGIFY_REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:gigify.db", cfg.DB().SQLitePath)
	assert.Equal(t, 2, cfg.RecomputeConcurrency)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"https://app.gigifypro.com"}, cfg.CORSOrigins)
	assert.Equal(t, "gigscore", cfg.RedisChannel)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv(envConfigFile, "")
	t.Setenv("GIGIFY_DB_DRIVER", "mysql")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db_driver")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.JWTSecretKey = " "
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RecomputeConcurrency = 0
	assert.Error(t, cfg.Validate())
}
