package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	DBDSN    string
	Timezone *time.Location
	Seed     bool
}

// Load reads configuration from the environment. The .env file, if any, is
// loaded by main before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		DBDriver: getenv("DB_DRIVER", "sqlite"),
		DBDSN:    getenv("DB_DSN", "vendor-pos.db"),
		Seed:     os.Getenv("SEED") == "true",
	}

	// The "today" window for stats is anchored to this zone, not the host
	// locale. Defaults to UTC.
	tz := getenv("TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Timezone = loc

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
