// Package config loads server configuration from the environment.
// Entry points load a .env file first via godotenv, so local overrides
// work without exporting anything.
package config

import (
	"os"
	"strings"
	"time"
)

// Config holds everything the entry points need to wire the system.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DatabasePath is the SQLite file backing the snapshot slot.
	// ":memory:" keeps the slot ephemeral.
	DatabasePath string

	LogLevel string
	LogFile  string

	// AssistantAPIKeys feed the round-robin client pool. Empty means
	// the assistant runs against the mock client.
	AssistantAPIKeys []string

	// AutoPostInterval is how often the assistant considers posting;
	// AutoPostChance is the per-tick probability.
	AutoPostInterval time.Duration
	AutoPostChance   float64

	// HeartbeatInterval is how often the active session is marked
	// alive.
	HeartbeatInterval time.Duration

	// StorySweepInterval is how often expired stories are swept in the
	// background, independent of the sweep-before-read rule.
	StorySweepInterval time.Duration
}

// Load reads configuration from the environment, applying the stock
// product timings as defaults.
func Load() *Config {
	return &Config{
		Addr:               getenv("NEXLINK_ADDR", ":8787"),
		DatabasePath:       getenv("NEXLINK_DB", "nexlink.db"),
		LogLevel:           getenv("NEXLINK_LOG_LEVEL", "info"),
		LogFile:            getenv("NEXLINK_LOG_FILE", "nexlink.log"),
		AssistantAPIKeys:   splitKeys(os.Getenv("API_KEY")),
		AutoPostInterval:   getduration("NEXLINK_AUTOPOST_INTERVAL", 10*time.Second),
		AutoPostChance:     0.2,
		HeartbeatInterval:  getduration("NEXLINK_HEARTBEAT_INTERVAL", 30*time.Second),
		StorySweepInterval: getduration("NEXLINK_STORY_SWEEP_INTERVAL", time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// splitKeys parses the comma-separated API key list used for load
// balancing across assistant clients.
func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
