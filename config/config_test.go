package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: glpmap-test
  log:
    level: debug
http:
  port: 9090
map:
  maxScale: 3.5
session:
  maxSessions: 4
  idleTTL: 10m
snapshot:
  dataDir: ./data
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FileAndDefaults(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "glpmap-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.InDelta(t, 3.5, cfg.Map.MaxScale, 1e-9)
	assert.InDelta(t, defaultMinScale, cfg.Map.MinScale, 1e-9)
	assert.InDelta(t, defaultHitRadius, cfg.Map.HitRadius, 1e-9)
	assert.Equal(t, 4, cfg.Session.MaxSessions)
	assert.Equal(t, 10*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, defaultJanitorInterval, cfg.Session.JanitorInterval)
	assert.Equal(t, "./data", cfg.Snapshot.DataDir)
	assert.Nil(t, cfg.PubSub)
}

func TestLoadWithEnv_EnvOverridesCamelCaseKeys(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("SESSION_IDLETTL", "45s")
	t.Setenv("SESSION_MAXSESSIONS", "12")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Session.IdleTTL)
	assert.Equal(t, 12, cfg.Session.MaxSessions)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Map)
	require.NotNil(t, cfg.Session)
	require.NotNil(t, cfg.Snapshot)
	assert.InDelta(t, defaultRotationOffset, cfg.Map.RotationOffset, 1e-9)
	assert.InDelta(t, defaultContainerWidth, cfg.Map.DefaultContainer.Width, 1e-9)
	assert.Equal(t, defaultMaxSessions, cfg.Session.MaxSessions)
	assert.Equal(t, defaultIdleTTL, cfg.Session.IdleTTL)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, defaultJournalCapacity, cfg.Worker.JournalCapacity)
}
