package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8089", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 75, cfg.Series.HorizonDays)
	assert.Equal(t, int64(0), cfg.Series.Seed)
	assert.Equal(t, 252, cfg.Series.PeriodsPerYear)
	assert.Equal(t, 0.03, cfg.Series.RiskFreeRate)
	assert.False(t, cfg.Export.RefreshEnabled)
	assert.Equal(t, "charts", cfg.Export.OutputDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SERIES_HORIZON_DAYS", "48")
	t.Setenv("SERIES_SEED", "42")
	t.Setenv("EXPORT_REFRESH_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "5.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 48, cfg.Series.HorizonDays)
	assert.Equal(t, int64(42), cfg.Series.Seed)
	assert.True(t, cfg.Export.RefreshEnabled)
	assert.Equal(t, 5.5, cfg.RateLimit)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERIES_HORIZON_DAYS", "not-a-number")
	t.Setenv("EXPORT_REFRESH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Series.HorizonDays)
	assert.Equal(t, "1m0s", cfg.Export.RefreshTimeout.String())
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "testing")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidHorizon(t *testing.T) {
	t.Setenv("SERIES_HORIZON_DAYS", "-3")

	_, err := Load()
	assert.Error(t, err)
}
