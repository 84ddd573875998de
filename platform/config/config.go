// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CountryDataConfig provides settings for the country metadata client.
type CountryDataConfig interface {
	GetCountryDataURL() string
	GetCountryDataTimeout() time.Duration
}

// CacheConfig provides settings for the country profile cache.
type CacheConfig interface {
	GetCountryCacheTTL() time.Duration
	GetRedisURL() string
	IsRedisEnabled() bool
}

// ViewTokenConfig provides settings for hosting view sessions.
type ViewTokenConfig interface {
	GetViewTokenSecret() string
	GetViewTokenTTL() time.Duration
	GetViewIdleTTL() time.Duration
}

// MapConfig provides the fixed map widget settings.
type MapConfig interface {
	GetMapContainerID() string
	GetMapZoom() int
	GetMapTileURL() string
	GetMapTileAttribution() string
	GetMapPopupText() string
}

// LeaderConfig provides the optional leader table override.
type LeaderConfig interface {
	GetLeaderTablePath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	CountryDataURL     string
	CountryDataTimeout time.Duration
	CountryCacheTTL    time.Duration
	RedisURL           string
	ViewTokenSecret    string
	ViewTokenTTL       time.Duration
	ViewIdleTTL        time.Duration
	MapContainerID     string
	MapZoom            int
	MapTileURL         string
	MapTileAttribution string
	MapPopupText       string
	LeaderTablePath    string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CountryDataConfig implementation
func (c *Config) GetCountryDataURL() string             { return c.CountryDataURL }
func (c *Config) GetCountryDataTimeout() time.Duration { return c.CountryDataTimeout }

// CacheConfig implementation
func (c *Config) GetCountryCacheTTL() time.Duration { return c.CountryCacheTTL }
func (c *Config) GetRedisURL() string               { return c.RedisURL }
func (c *Config) IsRedisEnabled() bool              { return c.RedisURL != "" }

// ViewTokenConfig implementation
func (c *Config) GetViewTokenSecret() string     { return c.ViewTokenSecret }
func (c *Config) GetViewTokenTTL() time.Duration { return c.ViewTokenTTL }
func (c *Config) GetViewIdleTTL() time.Duration  { return c.ViewIdleTTL }

// MapConfig implementation
func (c *Config) GetMapContainerID() string     { return c.MapContainerID }
func (c *Config) GetMapZoom() int               { return c.MapZoom }
func (c *Config) GetMapTileURL() string         { return c.MapTileURL }
func (c *Config) GetMapTileAttribution() string { return c.MapTileAttribution }
func (c *Config) GetMapPopupText() string       { return c.MapPopupText }

// LeaderConfig implementation
func (c *Config) GetLeaderTablePath() string { return c.LeaderTablePath }

const devViewTokenSecret = "dev-view-secret-change-in-production"

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	viewSecret := getEnv("VIEW_TOKEN_SECRET", "")
	if viewSecret == "" && strings.EqualFold(env, "development") {
		viewSecret = devViewTokenSecret
	}

	cfg := &Config{
		Env:                env,
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		CountryDataURL:     getEnv("COUNTRY_DATA_URL", "https://restcountries.com/v3.1/name/{name}"),
		CountryDataTimeout: mustDuration(getEnv("COUNTRY_DATA_TIMEOUT", "10s")),
		CountryCacheTTL:    mustDuration(getEnv("COUNTRY_CACHE_TTL", "24h")),
		RedisURL:           getEnv("REDIS_URL", ""),
		ViewTokenSecret:    viewSecret,
		ViewTokenTTL:       mustDuration(getEnv("VIEW_TOKEN_TTL", "12h")),
		ViewIdleTTL:        mustDuration(getEnv("VIEW_IDLE_TTL", "2h")),
		MapContainerID:     getEnv("MAP_CONTAINER_ID", "map"),
		MapZoom:            mustInt(getEnv("MAP_ZOOM", "4")),
		MapTileURL:         getEnv("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
		MapTileAttribution: getEnv("MAP_TILE_ATTRIBUTION", "© OpenStreetMap contributors"),
		MapPopupText:       getEnv("MAP_POPUP_TEXT", "Detected Country"),
		LeaderTablePath:    getEnv("LEADER_TABLE_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CountryDataURL == "" {
		return fmt.Errorf("COUNTRY_DATA_URL is required")
	}
	if c.CountryDataTimeout <= 0 {
		return fmt.Errorf("COUNTRY_DATA_TIMEOUT must be a positive duration")
	}
	if c.ViewTokenSecret == "" {
		return fmt.Errorf("VIEW_TOKEN_SECRET is required outside development")
	}
	if c.ViewTokenTTL <= 0 {
		return fmt.Errorf("VIEW_TOKEN_TTL must be a positive duration")
	}
	if c.MapZoom < 0 || c.MapZoom > 20 {
		return fmt.Errorf("MAP_ZOOM must be between 0 and 20")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
