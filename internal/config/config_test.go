package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gameadvisor_test")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "https://api.steampowered.com", cfg.SteamAPIURL)
	assert.Equal(t, 150, cfg.SyncMaxGames)
	assert.Equal(t, 4, cfg.SyncWorkers)
	assert.Equal(t, 2500*time.Millisecond, cfg.SyncDetailInterval)
}

func TestLoadConfig_StoreURLIsBareHost(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// The client appends /api/appdetails to this base, so the default must
	// not carry a path of its own or detail requests hit /api/api/appdetails.
	assert.Equal(t, "https://store.steampowered.com", cfg.SteamStoreAPIURL)

	detailURL := cfg.SteamStoreAPIURL + "/api/appdetails"
	assert.Equal(t, 1, strings.Count(detailURL, "/api/"))
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SYNC_DETAIL_INTERVAL", "1s")
	t.Setenv("STEAM_STORE_API_URL", "http://localhost:8181")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, time.Second, cfg.SyncDetailInterval)
	assert.Equal(t, "http://localhost:8181", cfg.SteamStoreAPIURL)
}

func TestValidate(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())
}
