package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	GoEnv           string
	JWTSecret       string
	LogLevel        string
	SessionTTL      time.Duration
	NotificationTTL time.Duration
	SimulateFeed    bool
	FeedDelay       time.Duration
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		GoEnv:           env,
		JWTSecret:       getEnv("JWT_SECRET", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SessionTTL:      getDuration("SESSION_TTL_HOURS", 24) * time.Hour,
		NotificationTTL: getDuration("NOTIFICATION_TTL_SECONDS", 3) * time.Second,
		SimulateFeed:    getBool("SIMULATE_ORDER_FEED", true),
		FeedDelay:       getDuration("ORDER_FEED_DELAY_SECONDS", 5) * time.Second,
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "development-secret"
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL_SECONDS must be positive")
	}
	if c.FeedDelay <= 0 {
		return fmt.Errorf("ORDER_FEED_DELAY_SECONDS must be positive")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration retrieves an integer environment variable as a time.Duration unit count
func getDuration(key string, defaultValue int64) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
	}
	return time.Duration(defaultValue)
}

// getBool retrieves a boolean environment variable or returns a default value
func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Invalid value for %s: %q, using default %t", key, value, defaultValue)
	}
	return defaultValue
}
