package config

import (
	"os"
	"strings"
)

// Config holds the application configuration loaded from the environment.
// Values are read once at startup and injected into constructors; no
// component reads the environment directly.
type Config struct {
	Port         string
	GinMode      string
	DatabaseURL  string
	JWTSecretKey string

	// OpenAI completion provider
	OpenAIAPIKey string
	OpenAIModel  string

	// Routing filter policy for protected paths: "deferred" or "enforced"
	AuthPolicy string

	AllowedOrigins []string
}

// Load creates a Config from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecretKey:   os.Getenv("JWT_SECRET_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		AuthPolicy:     getEnv("AUTH_POLICY", "deferred"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated list, trimming whitespace
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
