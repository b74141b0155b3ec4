package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadInto_KeepsDefaultsForAbsentKeys(t *testing.T) {
	writeConfig(t, `
env:
  serviceName: bazaar-test
orders:
  strictTransitions: true
`)

	cfg, err := LoadInto(Defaults(), "config")
	require.NoError(t, err)

	assert.Equal(t, "bazaar-test", cfg.Env.ServiceName)
	assert.True(t, cfg.Orders.StrictTransitions)
	assert.True(t, cfg.Orders.RestrictToAssignedBusiness)
	assert.Equal(t, 6, cfg.Offers.DefaultPageSize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadInto_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, `
redis:
  statsTTL: 1m
orders:
  restrictToAssignedBusiness: true
`)
	t.Setenv("REDIS_STATSTTL", "30s")
	t.Setenv("ORDERS_RESTRICTTOASSIGNEDBUSINESS", "false")

	cfg, err := LoadInto(Defaults(), "config")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Redis.StatsTTL)
	assert.False(t, cfg.Orders.RestrictToAssignedBusiness)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
