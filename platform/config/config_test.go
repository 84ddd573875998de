package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("VIEW_TOKEN_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, "https://restcountries.com/v3.1/name/{name}", cfg.GetCountryDataURL())
	assert.Equal(t, 10*time.Second, cfg.GetCountryDataTimeout())
	assert.Equal(t, 4, cfg.GetMapZoom())
	assert.Equal(t, "map", cfg.GetMapContainerID())
	assert.Equal(t, devViewTokenSecret, cfg.GetViewTokenSecret())
	assert.False(t, cfg.IsRedisEnabled())
}

func TestLoadRequiresViewSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("VIEW_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VIEW_TOKEN_SECRET")
}

func TestLoadRejectsWildcardWithCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadZoom(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("MAP_ZOOM", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
