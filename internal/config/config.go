package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for incursion-engine
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Content ContentConfig
	Redis   RedisConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// GameConfig holds session defaults
type GameConfig struct {
	SessionDurationMinutes int
}

// ContentConfig holds the game-master content directory
type ContentConfig struct {
	Dir string
}

// RedisConfig holds the optional snapshot publisher configuration
type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	Channel  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8333),
		},
		Game: GameConfig{
			SessionDurationMinutes: getEnvAsInt("SESSION_DURATION_MINUTES", 60),
		},
		Content: ContentConfig{
			Dir: getEnv("CONTENT_DIR", "./content"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			Channel:  getEnv("REDIS_CHANNEL", "incursion:state"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Game.SessionDurationMinutes < 10 || c.Game.SessionDurationMinutes > 120 {
		return fmt.Errorf("session duration must be between 10 and 120 minutes, got %d", c.Game.SessionDurationMinutes)
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("redis address is required when the publisher is enabled")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
