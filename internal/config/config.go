package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DiscordToken    string
	LogLevel        string
	BridgeTimeout   time.Duration
	BridgeQueueSize int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":7860"),
		DiscordToken:    os.Getenv("DISCORD_BOT_TOKEN"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		BridgeTimeout:   envDurationOr("BRIDGE_TIMEOUT", 30*time.Second),
		BridgeQueueSize: envIntOr("BRIDGE_QUEUE_SIZE", 64),
	}
}

// Validate checks that the configuration can actually run the service.
// A missing token or listen address is a fatal startup error.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if c.BridgeTimeout <= 0 {
		return fmt.Errorf("BRIDGE_TIMEOUT must be positive")
	}
	if c.BridgeQueueSize <= 0 {
		return fmt.Errorf("BRIDGE_QUEUE_SIZE must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
