package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	ServerPort         int
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables, optionally seeded
// from a local .env file.
func Load() (*Config, error) {
	// A missing .env file is not fatal.
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) == 0 {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS is set but contains no origins")
		}
	}

	cfg := &Config{
		ServerPort:         port,
		CORSAllowedOrigins: origins,
	}

	return cfg, nil
}
