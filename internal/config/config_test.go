package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/temperature_daily.csv", cfg.DataFile)
	assert.Equal(t, "temperature_matrix.png", cfg.OutputFile)
	assert.Equal(t, 2008, cfg.YearStart)
	assert.Equal(t, 2017, cfg.YearEnd)
	assert.Equal(t, 0.0, cfg.TempMin)
	assert.Equal(t, 40.0, cfg.TempMax)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_FILE", "fixtures/hk.csv")
	t.Setenv("OUTPUT_FILE", "out.png")
	t.Setenv("YEAR_START", "1997")
	t.Setenv("YEAR_END", "2002")
	t.Setenv("TEMP_MIN", "-10")
	t.Setenv("TEMP_MAX", "45")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fixtures/hk.csv", cfg.DataFile)
	assert.Equal(t, "out.png", cfg.OutputFile)
	assert.Equal(t, 1997, cfg.YearStart)
	assert.Equal(t, 2002, cfg.YearEnd)
	assert.Equal(t, -10.0, cfg.TempMin)
	assert.Equal(t, 45.0, cfg.TempMax)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidYearStart(t *testing.T) {
	t.Setenv("YEAR_START", "two-thousand")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YEAR_START")
}

func TestLoad_ReversedYearRange(t *testing.T) {
	t.Setenv("YEAR_START", "2017")
	t.Setenv("YEAR_END", "2008")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year range")
}

func TestLoad_InvalidTempMax(t *testing.T) {
	t.Setenv("TEMP_MAX", "hot")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEMP_MAX")
}

func TestLoad_DegenerateTempDomain(t *testing.T) {
	t.Setenv("TEMP_MIN", "40")
	t.Setenv("TEMP_MAX", "40")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature domain")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}
