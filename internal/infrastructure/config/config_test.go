package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gmao.db", cfg.Database.GetDSN())
	assert.Equal(t, "log", cfg.Notification.Channel)
	assert.False(t, cfg.Notification.DryRun)
	assert.Equal(t, time.Hour, cfg.Scheduler.GenerationInterval)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gmao.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 9090
notification:
  dry_run: true
  channel: email
scheduler:
  generation_interval: 15m
`), 0o600))
	t.Setenv("GMAO_SERVER_PORT", "9191")

	cfg, err := Load(file, "release")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Notification.DryRun)
	assert.Equal(t, "email", cfg.Notification.Channel)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.GenerationInterval)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("notification:\n  channel: sms\n"), 0o600))

	_, err := Load(file, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	require.Error(t, err)
}
