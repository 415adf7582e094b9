package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings for the chart binaries, populated from
// environment variables (optionally seeded from a .env file).
type Config struct {
	DataFile   string
	OutputFile string

	// Inclusive year window rendered as matrix columns.
	YearStart int
	YearEnd   int

	// Color/axis temperature domain in degrees Celsius.
	TempMin float64
	TempMax float64

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first if
// present; real environment variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	yearStart, err := parseInt("YEAR_START", 2008)
	if err != nil {
		return nil, err
	}
	yearEnd, err := parseInt("YEAR_END", 2017)
	if err != nil {
		return nil, err
	}
	tempMin, err := parseFloat("TEMP_MIN", 0)
	if err != nil {
		return nil, err
	}
	tempMax, err := parseFloat("TEMP_MAX", 40)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataFile:        envOrDefault("DATA_FILE", "data/temperature_daily.csv"),
		OutputFile:      envOrDefault("OUTPUT_FILE", "temperature_matrix.png"),
		YearStart:       yearStart,
		YearEnd:         yearEnd,
		TempMin:         tempMin,
		TempMax:         tempMax,
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.DataFile == "" {
		return nil, fmt.Errorf("DATA_FILE is required")
	}
	if cfg.YearStart > cfg.YearEnd {
		return nil, fmt.Errorf("invalid year range: YEAR_START %d > YEAR_END %d", cfg.YearStart, cfg.YearEnd)
	}
	if cfg.TempMin >= cfg.TempMax {
		return nil, fmt.Errorf("invalid temperature domain: TEMP_MIN %g >= TEMP_MAX %g", cfg.TempMin, cfg.TempMax)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}
