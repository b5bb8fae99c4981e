package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "buildcalc.yaml")
	content := `
log_level: debug
cache_size: 0
database:
  host: db.internal
  port: 6543
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Zero(t, cfg.CacheSize)
	assert.Equal(t, "data/catalog", cfg.DataDir)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "buildcalc", cfg.Database.User)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BundledConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load("../../config/buildcalc.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "builds", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@localhost:5432/builds?sslmode=disable", d.DSN())
}
