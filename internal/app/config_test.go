package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rentiva/rentiva-admin/internal/app"
	_ "github.com/rentiva/rentiva-admin/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := app.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("TOKEN_TTL", "-5m")

	_, err := app.LoadConfig()
	require.Error(t, err)
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv("RENTIVA_TEST_MODE", "1")
	app.RefreshTestMode()
	require.True(t, app.InTestMode())

	t.Setenv("RENTIVA_TEST_MODE", "0")
	app.RefreshTestMode()
	require.False(t, app.InTestMode())
	app.RefreshTestMode()
}