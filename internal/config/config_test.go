package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"blight/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BLIGHT_CONFIG", "")
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("BLIGHT_CONFIG", "")
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, "1372549650225168436", cfg.AllowedUserID)
	assert.Equal(t, "1431996823316463730", cfg.Allies.MessageID)
	assert.Equal(t, "1431996824427696262", cfg.Enemies.MessageID)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
token: from-file
allowed_user_id: "7"
allies:
  channel_id: "100"
  message_id: "101"
log_level: debug
restrictions:
  - requests: 2
    duration: 30s
housekeeping: 1m
`)
	t.Setenv("BLIGHT_CONFIG", path)
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("BLIGHT_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "7", cfg.AllowedUserID)
	assert.Equal(t, ListMessage{ChannelID: "100", MessageID: "101"}, cfg.Allies)
	// Untouched values keep their defaults
	assert.Equal(t, "1431996824427696262", cfg.Enemies.MessageID)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []common.Restriction{{Requests: 2, Duration: 30 * time.Second}}, cfg.Restrictions)
	assert.Equal(t, time.Minute, cfg.Housekeeping)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("BLIGHT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DISCORD_TOKEN", "secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRestrictions(t *testing.T) {
	cfg := Default()
	cfg.Token = "secret"
	require.NoError(t, cfg.Validate())

	cfg.Restrictions = []common.Restriction{{Requests: 0, Duration: time.Second}}
	assert.Error(t, cfg.Validate())
}
