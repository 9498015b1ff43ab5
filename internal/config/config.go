package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the matching engine demo.
type Config struct {
	LogLevel     string
	AuditLogPath string
	PriceScale   int32
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	auditLogPath := getStr("AUDIT_LOG_PATH", "engine.log")

	priceScale, err := getInt("PRICE_SCALE", 8)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_SCALE: %w", err)
	}
	if priceScale < 0 || priceScale > 16 {
		return nil, fmt.Errorf("invalid PRICE_SCALE: %d, must be between 0 and 16", priceScale)
	}

	return &Config{
		LogLevel:     logLevel,
		AuditLogPath: auditLogPath,
		PriceScale:   int32(priceScale),
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
