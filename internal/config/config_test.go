package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataSource(t *testing.T) {
	tests := []struct {
		name        string
		useExternal bool
		baseURL     string
		want        DataSource
	}{
		{"flag off", false, "https://api.xrpl.sale/v1", Mock},
		{"flag on, expected host", true, "https://api.xrpl.sale/v1", Live},
		{"flag on, host case differs", true, "https://API.xrpl.sale/v1", Live},
		{"flag on, other host", true, "http://localhost:8000/v1", Mock},
		{"flag on, relative url", true, "/api", Mock},
		{"flag on, garbage", true, "://", Mock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDataSource(tt.useExternal, tt.baseURL, "api.xrpl.sale")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("USE_EXTERNAL_BACKEND", "")
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("GATEWAY_TIMEOUT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SITE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.SiteURL)

	assert.Equal(t, defaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, Mock, cfg.API.Source)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_SiteURLFollowsPort(t *testing.T) {
	t.Setenv("SITE_URL", "")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.API.SiteURL)

	t.Setenv("SITE_URL", "https://xrpl.sale/")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://xrpl.sale", cfg.API.SiteURL)
}

func TestLoad_LiveSource(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.xrpl.sale/v1/")
	t.Setenv("USE_EXTERNAL_BACKEND", "true")
	t.Setenv("GATEWAY_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.xrpl.sale/v1", cfg.API.BaseURL)
	assert.Equal(t, Live, cfg.API.Source)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "GATEWAY_TIMEOUT")
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("external backend flag", func(t *testing.T) {
		t.Setenv("USE_EXTERNAL_BACKEND", "yes-please")
		_, err := Load()
		assert.ErrorContains(t, err, "USE_EXTERNAL_BACKEND")
	})

	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "x")
		_, err := Load()
		assert.ErrorContains(t, err, "REDIS_DB")
	})

	t.Run("cache backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		_, err := Load()
		assert.ErrorContains(t, err, "CACHE_BACKEND")
	})
}
