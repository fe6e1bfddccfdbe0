package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port          string
	DBDriver      string // sqlite or postgres
	DBPath        string // sqlite file path or postgres DSN
	JWTSecret     string
	RateLimit     int           // requests per window per IP
	RateWindow    time.Duration // rate limit window
	DefaultLocale string        // month label locale when none is requested
}

// Load 加载配置
func Load() (*Config, error) {
	rateLimit, err := strconv.Atoi(envOrDefault("RATE_LIMIT", "120"))
	if err != nil || rateLimit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q", os.Getenv("RATE_LIMIT"))
	}

	rateWindow, err := time.ParseDuration(envOrDefault("RATE_WINDOW", "1m"))
	if err != nil || rateWindow <= 0 {
		return nil, fmt.Errorf("invalid RATE_WINDOW %q", os.Getenv("RATE_WINDOW"))
	}

	return &Config{
		Port:          envOrDefault("PORT", ":8080"),
		DBDriver:      envOrDefault("DB_DRIVER", "sqlite"),
		DBPath:        envOrDefault("DB_PATH", "./data/heatmap.db"),
		JWTSecret:     envOrDefault("JWT_SECRET", "your-secret-key-change-in-production"),
		RateLimit:     rateLimit,
		RateWindow:    rateWindow,
		DefaultLocale: envOrDefault("DEFAULT_LOCALE", "en"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
