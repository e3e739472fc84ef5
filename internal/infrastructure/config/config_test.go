package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/orris-inc/statsboard/internal/shared/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "/v1/admin/console/server", cfg.Upstream.ServerTotalPath)
	assert.Equal(t, "/v1/admin/console/ticket", cfg.Upstream.TicketPath)
	assert.Equal(t, 3, cfg.Upstream.MaxRetries)
	assert.Equal(t, "memory", cfg.Query.Backend)
	assert.Equal(t, 10, cfg.Query.InvalidateLimit)
	assert.Equal(t, "statsboard:ratelimit:", cfg.Query.RateLimitPrefix)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, 5, cfg.Dashboard.TickCount)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9100
upstream:
  base_url: http://console.internal
query:
  backend: redis
  stale_time_seconds: 5
`)
	require.NoError(t, os.WriteFile(file, content, 0o600))

	t.Setenv("STATSBOARD_UPSTREAM_TOKEN", "secret-token")

	cfg, err := Load("release", file)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "http://console.internal", cfg.Upstream.BaseURL)
	assert.Equal(t, "secret-token", cfg.Upstream.Token)
	assert.True(t, cfg.Query.UseRedis())
	assert.Equal(t, "5s", cfg.Query.StaleTime().String())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestQueryConfig_RateLimitOverlapsCache(t *testing.T) {
	tests := []struct {
		name   string
		cfg    sharedConfig.QueryConfig
		expect bool
	}{
		{"separate", sharedConfig.QueryConfig{KeyPrefix: "statsboard:query:", RateLimitPrefix: "statsboard:ratelimit:"}, false},
		{"same", sharedConfig.QueryConfig{KeyPrefix: "statsboard:query:", RateLimitPrefix: "statsboard:query:"}, true},
		{"nested", sharedConfig.QueryConfig{KeyPrefix: "statsboard:", RateLimitPrefix: "statsboard:ratelimit:"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.cfg.RateLimitOverlapsCache())
		})
	}
}
