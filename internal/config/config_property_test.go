package config

import (
	"os"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

// validLogLevels are the accepted log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// unsetAllConfigEnv clears all config env vars.
func unsetAllConfigEnv() {
	for _, key := range []string{"LOG_LEVEL", "AUDIT_LOG_PATH", "PRICE_SCALE"} {
		os.Unsetenv(key)
	}
}

func TestProperty_ValidConfigParsing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unsetAllConfigEnv()
		defer unsetAllConfigEnv()

		level := rapid.SampledFrom(validLogLevels).Draw(t, "level")
		scale := rapid.IntRange(0, 16).Draw(t, "scale")

		os.Setenv("LOG_LEVEL", level)
		os.Setenv("PRICE_SCALE", strconv.Itoa(scale))

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LogLevel != level {
			t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, level)
		}
		if int(cfg.PriceScale) != scale {
			t.Fatalf("PriceScale = %d, want %d", cfg.PriceScale, scale)
		}
	})
}

func TestProperty_OutOfRangePriceScaleRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unsetAllConfigEnv()
		defer unsetAllConfigEnv()

		scale := rapid.OneOf(
			rapid.IntRange(-100, -1),
			rapid.IntRange(17, 100),
		).Draw(t, "scale")

		os.Setenv("PRICE_SCALE", strconv.Itoa(scale))

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for PRICE_SCALE=%d", scale)
		}
	})
}
