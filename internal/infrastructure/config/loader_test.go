package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadConfigFrom_FileValues(t *testing.T) {
	dir := writeConfig(t, "test", `
server:
  port: 9000
  shutdownTimeout: 3
database:
  driver: sqlite
  path: ":memory:"
storage:
  type: local
  localDir: /tmp/uploads
cache:
  enabled: true
  addr: redis:6379
  ttl: 120
`)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "/tmp/uploads", cfg.Storage.LocalDir)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./receipts.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "uploads", cfg.Storage.LocalDir)
	assert.Equal(t, "http://localhost:8000", cfg.Storage.PublicBaseURL)
	assert.False(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "test", `
storage:
  type: local
`)
	t.Setenv("RA_STORAGE_TYPE", "s3")
	t.Setenv("RA_S3_BUCKET", "receipts")
	t.Setenv("RA_S3_REGION", "eu-west-1")
	t.Setenv("RA_DB_MAX_OPEN_CONNS", "1")
	t.Setenv("RA_CACHE_ENABLED", "true")

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "receipts", cfg.Storage.S3.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.S3.Region)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Cache.Enabled)
}

func TestConfig_Validate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		cfg, err := LoadConfigFrom(Test, t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("server database needs a host", func(t *testing.T) {
		cfg := valid(t)
		cfg.Database.Driver = "postgres"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid(t)
		cfg.Database.Driver = "oracle"
		assert.ErrorContains(t, cfg.Validate(), "invalid database driver")
	})

	t.Run("s3 needs a bucket", func(t *testing.T) {
		cfg := valid(t)
		cfg.Storage.Type = "s3"
		cfg.Storage.S3.Region = "us-east-1"
		assert.ErrorContains(t, cfg.Validate(), "storage.s3.bucket")
	})

	t.Run("unknown environment", func(t *testing.T) {
		cfg := valid(t)
		cfg.Environment = "staging"
		assert.ErrorContains(t, cfg.Validate(), "invalid environment value")
	})
}

func TestConfig_Warnings(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings())

	cfg.Environment = Production
	assert.Contains(t, cfg.Warnings(), "storage.publicBaseURL still points at localhost")
}
