package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiConcurrentReqs int
	GeminiTimeout        time.Duration

	// Scheme source
	SchemesAPIURL  string
	SchemesTimeout time.Duration
	MaxSchemes     int

	// Session store
	RedisURL    string // optional; in-memory store when empty
	DatabaseURL string // optional; Postgres scheme source when set
	SessionTTL  time.Duration

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GeminiTimeout:        getEnvAsDurationOrDefault("GEMINI_TIMEOUT", 30*time.Second),
		SchemesAPIURL:        getEnvOrDefault("SCHEMES_API_URL", ""),
		SchemesTimeout:       getEnvAsDurationOrDefault("SCHEMES_TIMEOUT", 10*time.Second),
		MaxSchemes:           getEnvAsIntOrDefault("MAX_SCHEMES", 5),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:          getEnvOrDefault("DATABASE_URL", ""),
		SessionTTL:           getEnvAsDurationOrDefault("SESSION_TTL", 30*time.Minute),
		AllowedOrigins:       splitAndTrim(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
